package domain

import (
	"errors"
	"fmt"
)

// ErrDirectoryNotFound is returned when the scan root is missing or not a directory.
var ErrDirectoryNotFound = errors.New("schemas directory not found")

// DirectoryNotFoundError names the root that could not be scanned.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDirectoryNotFound, e.Path)
}

func (e *DirectoryNotFoundError) Unwrap() error {
	return ErrDirectoryNotFound
}

// ParseErrorPrefix starts the violation reported for unreadable or unparsable files.
const ParseErrorPrefix = "Parse error: "

// ParseViolation formats a read or parse failure as a violation.
func ParseViolation(err error) string {
	return ParseErrorPrefix + err.Error()
}

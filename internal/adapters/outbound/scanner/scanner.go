package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/neuronexus/schemacheck/internal/domain"
)

// FileScanner implements domain.SchemaDiscoverer by walking the filesystem.
// Entries are visited depth-first in lexical order. Symlinked directories
// below the root are not followed; symlinked files are reported like regular
// files.
type FileScanner struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *FileScanner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &FileScanner{log: log}
}

// Discover returns every file below root whose name ends in domain.SchemaSuffix.
// Directories whose name matches one of excludePaths are skipped.
func (s *FileScanner) Discover(root string, excludePaths ...string) ([]domain.FileRecord, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &domain.DirectoryNotFoundError{Path: root}
	}

	skip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		skip[strings.TrimSuffix(p, "/")] = true
	}

	// WalkDir does not descend into a symlinked root unless it ends in a separator.
	walkRoot := root
	if li, err := os.Lstat(root); err == nil && li.Mode()&os.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	var records []domain.FileRecord
	err = filepath.WalkDir(walkRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			s.log.Warnw("skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if path != walkRoot && skip[d.Name()] {
				s.log.Debugw("excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), domain.SchemaSuffix) {
			records = append(records, domain.FileRecord{Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, &domain.DirectoryNotFoundError{Path: root}
	}

	s.log.Debugw("discovery finished", "root", root, "files", len(records))
	return records, nil
}

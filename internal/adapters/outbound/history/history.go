package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/neuronexus/schemacheck/internal/domain"
)

const (
	historyFile = ".schemacheck/history/runs.json"

	// DefaultLimit is the number of runs kept by New.
	DefaultLimit = 100
)

// FileHistory implements domain.RunHistory as a JSON array on disk. Only the
// newest limit runs are kept.
type FileHistory struct {
	limit int
}

func New() *FileHistory {
	return NewWithLimit(DefaultLimit)
}

// NewWithLimit keeps at most limit runs. A limit below 1 keeps everything.
func NewWithLimit(limit int) *FileHistory {
	return &FileHistory{limit: limit}
}

// Save appends entry, drops the oldest runs beyond the limit and replaces the
// file atomically so a concurrent reader never sees a partial array.
func (h *FileHistory) Save(projectPath string, entry domain.RunEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding runs: %w", err)
	}

	fp := filepath.Join(projectPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fp), "runs-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp)
}

// Load returns recorded runs, oldest first. A missing file yields no runs.
func (h *FileHistory) Load(projectPath string) ([]domain.RunEntry, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, historyFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", historyFile, err)
	}
	return entries, nil
}

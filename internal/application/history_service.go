package application

import (
	"fmt"
	"time"

	"github.com/neuronexus/schemacheck/internal/domain"
)

// HistoryService records run summaries alongside the current commit.
type HistoryService struct {
	history domain.RunHistory
	git     domain.GitInfo
	now     func() time.Time
}

func NewHistoryService(history domain.RunHistory, git domain.GitInfo) *HistoryService {
	return &HistoryService{history: history, git: git, now: time.Now}
}

// Record appends a summary of report to the project history.
func (s *HistoryService) Record(projectPath string, report *domain.Report) (domain.RunEntry, error) {
	entry := domain.RunEntry{
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Root:      report.Root,
		Total:     report.Total,
		PassCount: report.PassCount,
		FailCount: report.FailCount,
	}
	if s.git.IsGitRepo(projectPath) {
		// An unborn HEAD has no commit yet; the entry is still recorded.
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			entry.CommitHash = hash
		}
	}

	if err := s.history.Save(projectPath, entry); err != nil {
		return entry, fmt.Errorf("saving history: %w", err)
	}
	return entry, nil
}

// Entries returns all recorded runs, oldest first.
func (s *HistoryService) Entries(projectPath string) ([]domain.RunEntry, error) {
	entries, err := s.history.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}

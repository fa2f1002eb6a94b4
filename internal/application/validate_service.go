package application

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/neuronexus/schemacheck/internal/domain"
	"github.com/neuronexus/schemacheck/internal/domain/check"
)

// RunOptions tunes a single validation run.
type RunOptions struct {
	// Jobs bounds the number of files checked concurrently. Values below 2
	// check files sequentially.
	Jobs         int
	ExcludePaths []string
}

// ValidateService orchestrates the validation pipeline:
// discover schema files -> read and check each file -> aggregate a report.
type ValidateService struct {
	discoverer domain.SchemaDiscoverer
	log        *zap.SugaredLogger
}

// NewValidateService creates a ValidateService. A nil logger discards output.
func NewValidateService(discoverer domain.SchemaDiscoverer, log *zap.SugaredLogger) *ValidateService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ValidateService{discoverer: discoverer, log: log}
}

// Discover lists the schema files below root in discovery order.
func (s *ValidateService) Discover(root string, opts RunOptions) ([]domain.FileRecord, error) {
	files, err := s.discoverer.Discover(root, opts.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("discovering schemas: %w", err)
	}
	return files, nil
}

// Run discovers every schema file below root, checks each one and folds the
// results into a Report. Only a missing root aborts the run; unreadable or
// invalid files are recorded as failures.
func (s *ValidateService) Run(root string, opts RunOptions) (*domain.Report, error) {
	files, err := s.Discover(root, opts)
	if err != nil {
		return nil, err
	}
	s.log.Debugw("validating schemas", "root", root, "files", len(files), "jobs", opts.Jobs)

	results := s.checkAll(files, opts.Jobs)

	report := &domain.Report{
		Root:     root,
		Failures: []domain.FileFailure{},
		Files:    make([]domain.FileStatus, 0, len(files)),
	}
	for i, f := range files {
		report.Add(f.Path, results[i])
	}

	s.log.Debugw("validation finished",
		"total", report.Total, "passed", report.PassCount, "failed", report.FailCount)
	return report, nil
}

// checkAll returns one result per file, indexed like files.
func (s *ValidateService) checkAll(files []domain.FileRecord, jobs int) []domain.ValidationResult {
	results := make([]domain.ValidationResult, len(files))
	if jobs < 2 {
		for i, f := range files {
			results[i] = s.CheckFile(f.Path)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, f := range files {
		g.Go(func() error {
			results[i] = s.CheckFile(f.Path)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return results
}

// CheckFile reads one file and checks it. Read errors are reported the same
// way as parse errors.
func (s *ValidateService) CheckFile(path string) domain.ValidationResult {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Debugw("read failed", "path", path, "error", err)
		return domain.Fail(domain.ParseViolation(err))
	}

	result := check.Check(data)
	s.log.Debugw("checked schema", "path", path, "valid", result.Valid)
	return result
}

package domain

// Fixed constants of a schema check run.
const (
	DefaultRoot  = "schemas"
	SchemaSuffix = ".schema.json"
	DraftMarker  = "2020-12"
	IDPrefix     = "https://neuronexus.app/schemas/"
)

// RequiredFields lists the top-level keys every schema must carry, in report order.
var RequiredFields = []string{"$schema", "$id", "title", "description"}

// FileRecord is a single discovered schema file.
type FileRecord struct {
	Path string `json:"path"`
}

// ValidationResult is the outcome of checking one file.
// Valid is true iff Violations is empty.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

// Pass returns a passing result.
func Pass() ValidationResult {
	return ValidationResult{Valid: true, Violations: []string{}}
}

// Fail returns a failing result carrying the given violations.
func Fail(violations ...string) ValidationResult {
	return ValidationResult{Valid: false, Violations: violations}
}

// FileFailure attributes violations to one file.
type FileFailure struct {
	Path       string   `json:"path"`
	Violations []string `json:"violations"`
}

// FileStatus records the pass/fail outcome of one file in discovery order.
type FileStatus struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
}

// Report is the aggregate result of one run over a directory tree.
// PassCount+FailCount == Total and len(Failures) == FailCount.
type Report struct {
	Root      string        `json:"root"`
	Total     int           `json:"total"`
	PassCount int           `json:"pass_count"`
	FailCount int           `json:"fail_count"`
	Failures  []FileFailure `json:"failures"`
	Files     []FileStatus  `json:"files"`
}

// Passed reports whether every discovered file is valid.
func (r *Report) Passed() bool {
	return r.FailCount == 0
}

// Add folds one file's result into the report.
func (r *Report) Add(path string, result ValidationResult) {
	r.Total++
	r.Files = append(r.Files, FileStatus{Path: path, Valid: result.Valid})
	if result.Valid {
		r.PassCount++
		return
	}
	r.FailCount++
	r.Failures = append(r.Failures, FileFailure{Path: path, Violations: result.Violations})
}

// RunEntry is one persisted run summary.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Root       string `json:"root"`
	Total      int    `json:"total"`
	PassCount  int    `json:"pass_count"`
	FailCount  int    `json:"fail_count"`
}

// TreeNode is one entry in a directory structure overview.
type TreeNode struct {
	Name     string      `json:"name"`
	IsDir    bool        `json:"is_dir"`
	Children []*TreeNode `json:"children,omitempty"`
}

// TreeStats counts the files of interest below a root. TotalBytes sums the
// size of every regular file, not only schemas and docs.
type TreeStats struct {
	SchemaFiles int   `json:"schema_files"`
	DocFiles    int   `json:"doc_files"`
	TotalBytes  int64 `json:"total_bytes"`
}

// Total returns schema plus documentation files.
func (s TreeStats) Total() int {
	return s.SchemaFiles + s.DocFiles
}

// TotalKB returns TotalBytes in kibibytes.
func (s TreeStats) TotalKB() float64 {
	return float64(s.TotalBytes) / 1024
}

// Structure is a depth-limited view of a schema directory.
type Structure struct {
	Root  *TreeNode `json:"root"`
	Stats TreeStats `json:"stats"`
}

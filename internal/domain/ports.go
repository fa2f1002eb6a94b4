package domain

// SchemaDiscoverer finds schema files below a root directory.
type SchemaDiscoverer interface {
	Discover(root string, excludePaths ...string) ([]FileRecord, error)
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RunHistory persists run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo provides git metadata for a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

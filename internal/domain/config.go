package domain

import (
	"fmt"
	"strings"
)

// ProjectConfig holds project-level configuration loaded from .schemacheck.yaml.
type ProjectConfig struct {
	Root         string   `yaml:"root"          json:"root,omitempty"`
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
	Jobs         int      `yaml:"jobs"          json:"jobs,omitempty"`
	History      *bool    `yaml:"history"       json:"history,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Root: DefaultRoot, Jobs: 1}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Jobs == 0 {
		c.Jobs = 1
	}
	return c
}

// HistoryEnabled reports whether run summaries should be recorded. Off unless
// the config sets history: true.
func (c ProjectConfig) HistoryEnabled() bool {
	return c.History != nil && *c.History
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for i, p := range c.ExcludePaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("exclude_paths[%d] is empty", i)
		}
	}
	return nil
}

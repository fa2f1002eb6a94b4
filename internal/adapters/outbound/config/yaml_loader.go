package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/neuronexus/schemacheck/internal/domain"
)

const fileName = ".schemacheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .schemacheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .schemacheck.yaml from projectPath. A missing or empty file
// yields DefaultConfig. Unknown keys are rejected so a misspelt option such
// as exclude_path fails loudly instead of being ignored.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg.WithDefaults(), nil
}

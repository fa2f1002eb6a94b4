package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neuronexus/schemacheck/internal/domain"
)

const configFileName = ".schemacheck.yaml"

func newInitCmd() *cobra.Command {
	var (
		root      string
		jobs      int
		exclude   []string
		createDir bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .schemacheck.yaml configuration file",
		Long:  "Create a .schemacheck.yaml with default settings and, optionally, an empty schemas directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			cfg := domain.ProjectConfig{Root: root, Jobs: jobs, ExcludePaths: exclude}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			content, err := generateConfig(cfg.WithDefaults())
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)

			if createDir {
				dir := rootDir(absPath, cfg.WithDefaults())
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("creating schemas directory: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s/\n", cfg.WithDefaults().Root)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "schemas", domain.DefaultRoot, "Schemas root directory to record in the config")
	cmd.Flags().IntVar(&jobs, "jobs", 1, "Number of files to check concurrently")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to skip (comma-separated)")
	cmd.Flags().BoolVar(&createDir, "mkdir", false, "Also create the schemas root directory")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .schemacheck.yaml")

	return cmd
}

// initFile is the subset of ProjectConfig that init writes out.
type initFile struct {
	Root         string   `yaml:"root"`
	Jobs         int      `yaml:"jobs"`
	ExcludePaths []string `yaml:"exclude_paths,omitempty"`
}

func generateConfig(cfg domain.ProjectConfig) (string, error) {
	body, err := yaml.Marshal(initFile{Root: cfg.Root, Jobs: cfg.Jobs, ExcludePaths: cfg.ExcludePaths})
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	var b strings.Builder
	b.WriteString("# schemacheck configuration\n\n")
	b.Write(body)

	if len(cfg.ExcludePaths) == 0 {
		b.WriteString(`
# exclude_paths:
#   - drafts
#   - archive
`)
	}

	b.WriteString(`
# Set to true to record runs in .schemacheck/history/runs.json.
# history: false
`)
	return b.String(), nil
}

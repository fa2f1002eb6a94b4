package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neuronexus/schemacheck/internal/adapters/outbound/config"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/gitinfo"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/history"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/logger"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/scanner"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/tui"
	"github.com/neuronexus/schemacheck/internal/application"
	"github.com/neuronexus/schemacheck/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every command.
type globalFlags struct {
	path    string
	root    string
	verbose bool

	loader domain.ConfigLoader
}

func newRootCmd(loader domain.ConfigLoader) *cobra.Command {
	g := globalFlags{loader: loader}
	var (
		jobs       int
		exclude    []string
		jsonOutput bool
		noHistory  bool
		withHist   bool
	)

	cmd := &cobra.Command{
		Use:   "schemacheck",
		Short: "Validate NeuroNexus JSON schema files",
		Long: "schemacheck walks the schemas directory, checks every *.schema.json file for the required " +
			"$schema, $id, title and description fields, and exits non-zero if any file fails.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("exclude") {
				cfg.ExcludePaths = exclude
			}
			if withHist {
				on := true
				cfg.History = &on
			}
			if noHistory {
				off := false
				cfg.History = &off
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			return runValidate(cmd, g.path, cfg, log, jsonOutput)
		},
	}

	cmd.PersistentFlags().StringVar(&g.path, "path", ".", "Project directory holding .schemacheck.yaml and the schemas root")
	cmd.PersistentFlags().StringVar(&g.root, "root", "", "Schemas root directory (default \"schemas\")")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Write debug logs to stderr")

	cmd.Flags().IntVar(&jobs, "jobs", 1, "Number of files to check concurrently")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to skip (comma-separated)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&withHist, "history", false, "Record this run in .schemacheck/history (off unless history: true in .schemacheck.yaml)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run, even if history: true in .schemacheck.yaml")
	cmd.MarkFlagsMutuallyExclusive("history", "no-history")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newTreeCmd(&g))
	cmd.AddCommand(newHistoryCmd(&g))
	cmd.AddCommand(newMCPCmd(&g))
	return cmd
}

// load reads project configuration, applies --root and builds the logger.
func (g *globalFlags) load(cmd *cobra.Command) (domain.ProjectConfig, *zap.SugaredLogger, error) {
	log := logger.New(g.verbose, cmd.ErrOrStderr())

	cfg, err := g.loader.Load(g.path)
	if err != nil {
		return domain.ProjectConfig{}, log, fmt.Errorf("loading config: %w", err)
	}
	if g.root != "" {
		cfg.Root = g.root
	}
	log.Debugw("configuration loaded", "path", g.path, "root", cfg.Root, "jobs", cfg.Jobs)
	return cfg, log, nil
}

// rootDir resolves the schemas root against the project path.
func rootDir(projectPath string, cfg domain.ProjectConfig) string {
	if filepath.IsAbs(cfg.Root) {
		return cfg.Root
	}
	return filepath.Join(projectPath, cfg.Root)
}

func runValidate(
	cmd *cobra.Command,
	projectPath string,
	cfg domain.ProjectConfig,
	log *zap.SugaredLogger,
	jsonOutput bool,
) error {
	out := cmd.OutOrStdout()
	root := rootDir(projectPath, cfg)

	if !jsonOutput {
		fmt.Fprint(out, tui.RenderBanner())
	}

	svc := application.NewValidateService(scanner.New(log), log)
	report, err := svc.Run(root, application.RunOptions{Jobs: cfg.Jobs, ExcludePaths: cfg.ExcludePaths})
	if err != nil {
		if errors.Is(err, domain.ErrDirectoryNotFound) && !jsonOutput {
			fmt.Fprint(out, tui.RenderNotFound(root))
		}
		return err
	}

	if cfg.HistoryEnabled() {
		hist := application.NewHistoryService(history.New(), gitinfo.New())
		if _, err := hist.Record(projectPath, report); err != nil {
			log.Warnw("could not record run", "error", err)
		}
	}

	if jsonOutput {
		if err := renderJSON(cmd, report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, tui.RenderReport(report))
	}

	if !report.Passed() {
		return fmt.Errorf("validation failed: %d of %d schema(s) invalid", report.FailCount, report.Total)
	}
	return nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd(config.New())
}

// NewRootCmdWithLoaderForTest returns the root command reading configuration
// through loader.
func NewRootCmdWithLoaderForTest(loader domain.ConfigLoader) *cobra.Command {
	return newRootCmd(loader)
}

func Execute() error {
	return newRootCmd(config.New()).Execute()
}

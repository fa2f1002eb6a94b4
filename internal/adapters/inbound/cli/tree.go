package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuronexus/schemacheck/internal/adapters/outbound/scanner"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/tui"
	"github.com/neuronexus/schemacheck/internal/domain"
)

func newTreeCmd(g *globalFlags) *cobra.Command {
	var (
		depth      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the schemas directory structure",
		Long:  "Print the schemas directory tree up to --depth levels, followed by schema and documentation file counts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return fmt.Errorf("depth must not be negative, got %d", depth)
			}

			cfg, log, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			root := rootDir(g.path, cfg)
			st, err := scanner.New(log).Structure(root, depth)
			if err != nil {
				if errors.Is(err, domain.ErrDirectoryNotFound) && !jsonOutput {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotFound(root))
				}
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, st)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStructure(st))
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 3, "Maximum depth to display")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the structure as JSON")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuronexus/schemacheck/internal/adapters/outbound/gitinfo"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/history"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/tui"
	"github.com/neuronexus/schemacheck/internal/application"
)

func newHistoryCmd(g *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded validation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewHistoryService(history.New(), gitinfo.New())
			entries, err := svc.Entries(g.path)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}

package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/neuronexus/schemacheck/internal/adapters/inbound/mcp"
)

func newMCPCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the schemacheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(g))
	return cmd
}

func newMCPServeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the schemacheck MCP server (stdio)",
		Long:  "Start the schemacheck MCP server using stdio transport so coding assistants can validate schemas and inspect failures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewSchemaCheckMCPServer(g.path, g.loader)
			return server.ServeStdio(s)
		},
	}
}

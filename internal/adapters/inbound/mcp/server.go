package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/neuronexus/schemacheck/internal/domain"
)

const serverVersion = "0.1.0"

// NewSchemaCheckMCPServer creates an MCP server with the schema validation
// tools and resources registered. projectPath is the directory holding
// .schemacheck.yaml and the schemas root; loader reads that configuration.
func NewSchemaCheckMCPServer(projectPath string, loader domain.ConfigLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"schemacheck",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	p := &project{path: projectPath, loader: loader}
	registerTools(s, p)
	registerResources(s, p)

	return s
}

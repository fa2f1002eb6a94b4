package mcp

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const reportURI = "schemacheck://report"

// registerResources registers all schemacheck MCP resources on the given server.
func registerResources(s *server.MCPServer, p *project) {
	s.AddResource(
		mcplib.NewResource(
			reportURI,
			"Validation Report",
			mcplib.WithResourceDescription("Pass/fail report for every schema file below the schemas root"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(p),
	)
}

func handleReportResource(p *project) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := runReport(p)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      reportURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

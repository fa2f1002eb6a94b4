package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/neuronexus/schemacheck/internal/adapters/outbound/scanner"
	"github.com/neuronexus/schemacheck/internal/application"
	"github.com/neuronexus/schemacheck/internal/domain"
)

// registerTools registers all schemacheck MCP tools on the given server.
func registerTools(s *server.MCPServer, p *project) {
	s.AddTool(
		mcplib.NewTool("schemacheck_validate",
			mcplib.WithDescription("Validate every *.schema.json file below the schemas root and return the report as JSON"),
		),
		handleValidate(p),
	)

	s.AddTool(
		mcplib.NewTool("schemacheck_check_file",
			mcplib.WithDescription("Check a single schema file and return its violations as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the schema file, relative to the project directory"),
			),
		),
		handleCheckFile(p),
	)

	s.AddTool(
		mcplib.NewTool("schemacheck_list",
			mcplib.WithDescription("List the schema files that a validation run would check, in discovery order"),
		),
		handleList(p),
	)
}

// project is the directory the server answers for. Configuration is reloaded
// on every request so edits to .schemacheck.yaml apply without a restart.
type project struct {
	path   string
	loader domain.ConfigLoader
}

// session bundles the configuration and service for one request.
type session struct {
	root string
	opts application.RunOptions
	svc  *application.ValidateService
}

func newSession(p *project) (*session, error) {
	cfg, err := p.loader.Load(p.path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &session{
		root: resolve(p.path, cfg.Root),
		opts: application.RunOptions{Jobs: cfg.Jobs, ExcludePaths: cfg.ExcludePaths},
		svc:  application.NewValidateService(scanner.New(nil), nil),
	}, nil
}

func resolve(base, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(base, rel)
}

func runReport(p *project) (*domain.Report, error) {
	sess, err := newSession(p)
	if err != nil {
		return nil, err
	}
	return sess.svc.Run(sess.root, sess.opts)
}

func handleValidate(p *project) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := runReport(p)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleCheckFile(p *project) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		sess, err := newSession(p)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		type fileResult struct {
			File string `json:"file"`
			domain.ValidationResult
		}
		return jsonResult(fileResult{
			File:             file,
			ValidationResult: sess.svc.CheckFile(resolve(p.path, file)),
		})
	}
}

func handleList(p *project) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sess, err := newSession(p)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		files, err := sess.svc.Discover(sess.root, sess.opts)
		if err != nil {
			return errorResult(fmt.Sprintf("discovery failed: %v", err)), nil
		}
		if files == nil {
			files = []domain.FileRecord{}
		}
		return jsonResult(files)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result flagged as an error.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

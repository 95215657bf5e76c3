package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/csvgate/csvgate/internal/adapters/outbound/config"
	"github.com/csvgate/csvgate/internal/adapters/outbound/decoder"
	"github.com/csvgate/csvgate/internal/adapters/outbound/scanner"
	"github.com/csvgate/csvgate/internal/application"
	"github.com/csvgate/csvgate/internal/domain"
)

// registerTools registers all CSVGate MCP tools on the given server.
func registerTools(s *server.MCPServer, inputRoot string) {
	// 1. csvgate_evaluate
	s.AddTool(
		mcplib.NewTool("csvgate_evaluate",
			mcplib.WithDescription("Evaluate the tabular files under the input directory and return the full data-quality report as JSON. Does not write report files."),
			mcplib.WithString("required",
				mcplib.Description("Required columns, comma-separated"),
			),
			mcplib.WithNumber("max_dup_scan",
				mcplib.Description("Max rows to scan for duplicates per file; 0 disables the scan"),
			),
		),
		handleEvaluate(inputRoot),
	)

	// 2. csvgate_list_files
	s.AddTool(
		mcplib.NewTool("csvgate_list_files",
			mcplib.WithDescription("List the tabular files that would be evaluated, in evaluation order"),
		),
		handleListFiles(inputRoot),
	)
}

func handleEvaluate(inputRoot string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := newService()

		req, err := svc.Resolve(domain.EvalRequest{
			InputRoot:  inputRoot,
			Required:   splitRequired(request.GetString("required", "")),
			MaxDupScan: request.GetInt("max_dup_scan", -1),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("resolving request failed: %v", err)), nil
		}

		report, err := svc.Evaluate(req)
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListFiles(inputRoot string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := newService()

		req, err := svc.Resolve(domain.EvalRequest{InputRoot: inputRoot, MaxDupScan: -1})
		if err != nil {
			return errorResult(fmt.Sprintf("resolving request failed: %v", err)), nil
		}

		files, err := scanner.New().Scan(req.InputRoot, req.Extension)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}

		rels := make([]string, len(files))
		for i, f := range files {
			rels[i] = f.RelPath
		}
		return jsonResult(rels)
	}
}

func newService() *application.EvalService {
	return application.NewEvalService(
		scanner.New(),
		decoder.New(),
		config.New(),
	)
}

func splitRequired(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

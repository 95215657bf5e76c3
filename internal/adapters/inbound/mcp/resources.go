package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/csvgate/csvgate/internal/adapters/outbound/reportwriter"
)

// registerResources registers all CSVGate MCP resources on the given server.
func registerResources(s *server.MCPServer, outDir string) {
	// csvgate://report - the last written structured report
	s.AddResource(
		mcplib.NewResource(
			"csvgate://report",
			"Evaluation Report",
			mcplib.WithResourceDescription("Structured report from the most recent evaluation run"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(outDir),
	)
}

func handleReportResource(outDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := os.ReadFile(filepath.Join(outDir, reportwriter.JSONFileName))
		if err != nil {
			return nil, fmt.Errorf("reading last report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "csvgate://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

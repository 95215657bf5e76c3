package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCSVGateMCPServer creates an MCP server with the CSVGate tools and
// resources registered. inputRoot is the directory of tabular files to
// evaluate; outDir is where reports from prior runs live.
func NewCSVGateMCPServer(inputRoot, outDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"csvgate",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, inputRoot)
	registerResources(s, outDir)

	return s
}

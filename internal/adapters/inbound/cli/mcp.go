package cli

import (
	mcpadapter "github.com/csvgate/csvgate/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/csvgate/csvgate/internal/domain"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the CSVGate MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		inputRoot string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start CSVGate MCP server (stdio)",
		Long:  "Start the CSVGate MCP server using stdio transport. This allows AI assistants to run evaluations and read the latest report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputRoot == "" {
				inputRoot = "."
			}
			if outDir == "" {
				outDir = domain.DefaultOutputDir
			}
			s := mcpadapter.NewCSVGateMCPServer(inputRoot, outDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&inputRoot, "path", "", "Input directory (defaults to current working directory)")
	cmd.Flags().StringVar(&outDir, "outdir", "", "Report output directory (default ./work)")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	mcpadapter "github.com/open-technology-foundation/deltags/internal/adapters/driving/mcp"
	"github.com/open-technology-foundation/deltags/internal/logger"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server",
	Long: `Expose the detag pipeline as a Model Context Protocol tool.
Serves over stdio by default, or over streamable HTTP with --http.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve MCP over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	ensureServices()

	server, err := mcpadapter.NewServer(&mcpadapter.Ports{Detag: detagService})
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}
	return server.Run(cmd.Context())
}

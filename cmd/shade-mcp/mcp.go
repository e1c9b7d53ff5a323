package main

import (
	"log"

	"github.com/ironsheep/shade-mcp/internal/config"
	"github.com/ironsheep/shade-mcp/internal/recommend"
	"github.com/ironsheep/shade-mcp/internal/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdin/stdout",
	Long: `Run the MCP server. Requests are read from stdin one JSON-RPC message
per line and responses are written to stdout. Logs go to stderr.

Set SHADE_MCP_LOG_LEVEL=debug to log every request and response.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if cfg.Debug() {
		log.Printf("%s v%s (commit %s, built %s)", server.ServerName, Version, CommitSHA, BuildDate)
	}

	srv := server.New(
		server.WithRecommender(recommend.Default()),
		server.WithSwatchSize(cfg.Swatch.Size),
		server.WithDebug(cfg.Debug()),
	)
	return srv.Run()
}

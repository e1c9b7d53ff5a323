package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shade-mcp",
	Short: "Skin tone detection and lipstick shade recommendations",
	Long: `shade-mcp estimates a skin tone from a photo, matches it to the nearest
MAC NC foundation shade and recommends lipsticks for that shade.

Run without a subcommand it speaks MCP over stdin/stdout, ready to be
configured in an MCP client. Use "serve" for the HTTP upload API and
"analyze" to process photos from the command line.`,
	SilenceUsage: true,
	RunE:         runMCP,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()

	// stdout belongs to the MCP protocol and to command output
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

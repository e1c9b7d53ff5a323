package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/shade-mcp/internal/palette"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the reference shades and their lipsticks",
	RunE:  runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().String("format", formatText, "Output format: text, json or yaml")
}

func runPalette(cmd *cobra.Command, args []string) error {
	format := mustGetString(cmd, "format")
	if err := validateFormat(format); err != nil {
		return err
	}

	tones := palette.Default().Tones()
	out := cmd.OutOrStdout()
	if format == formatText {
		printPalette(out, tones)
		return nil
	}
	return writeStructured(out, format, tones)
}

func printPalette(w io.Writer, tones []palette.Tone) {
	for _, t := range tones {
		fmt.Fprintf(w, "%-5s %-16s %s\n", t.ID, t.RGB, strings.Join(t.Products, ", "))
	}
}

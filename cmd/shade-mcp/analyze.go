package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ironsheep/shade-mcp/internal/imaging"
	"github.com/ironsheep/shade-mcp/internal/recommend"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <photo> [photo...]",
	Short: "Detect the skin tone of one or more photos",
	Long: `Analyze JPG or PNG photos. For each photo the average color of a centered
window is matched to the nearest MAC NC shade and the lipsticks recommended
for that shade are printed.

A photo that cannot be read is reported and skipped; the command exits
non-zero if any photo failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("format", formatText, "Output format: text, json or yaml")
}

// analysis is the outcome for one file. Exactly one of Result and Error is set.
type analysis struct {
	File   string            `json:"file" yaml:"file"`
	Result *recommend.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string            `json:"error,omitempty" yaml:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format := mustGetString(cmd, "format")
	if err := validateFormat(format); err != nil {
		return err
	}

	rec := recommend.Default()
	bar := newAnalyzeProgressBar(len(args))

	results := make([]analysis, 0, len(args))
	failed := 0
	for _, path := range args {
		res, err := analyzeFile(rec, path)
		a := analysis{File: path, Result: res}
		if err != nil {
			a.Error = err.Error()
			failed++
		}
		results = append(results, a)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	out := cmd.OutOrStdout()
	if format == formatText {
		printAnalyses(out, results)
	} else if err := writeStructured(out, format, results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d photos could not be analyzed", failed, len(args))
	}
	return nil
}

func analyzeFile(rec *recommend.Recommender, path string) (*recommend.Result, error) {
	if !imaging.IsSupportedUpload(path) {
		return nil, fmt.Errorf("%w: only JPG, JPEG and PNG files are accepted", imaging.ErrUnsupportedImage)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return rec.AnalyzeReader(f)
}

// newAnalyzeProgressBar returns nil for a single photo.
func newAnalyzeProgressBar(count int) *progressbar.ProgressBar {
	if count < 2 {
		return nil
	}
	return progressbar.NewOptions(count,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Analyzing photos"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("photos"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)
}

func printAnalyses(w io.Writer, results []analysis) {
	for i, a := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if len(results) > 1 {
			fmt.Fprintf(w, "%s\n", a.File)
		}
		if a.Error != "" {
			fmt.Fprintf(w, "Error: %s\n", a.Error)
			continue
		}
		printResult(w, a.Result)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, lightingNote)
}

func printResult(w io.Writer, res *recommend.Result) {
	fmt.Fprintf(w, "Detected RGB:       %s %s\n", res.DetectedRGB(), res.Detected.Hex)
	fmt.Fprintf(w, "Complexion match:   %s %s %s\n", res.Tone, res.ToneRGB(), res.ToneColor.Hex)
	fmt.Fprintf(w, "Distance:           %.2f (CIEDE2000 %.2f)\n", res.Distance, res.DeltaE)
	fmt.Fprintf(w, "Recommended lipsticks: %s\n", strings.Join(res.Products, ", "))
}

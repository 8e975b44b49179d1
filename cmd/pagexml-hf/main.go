// pagexml-hf is a command-line tool for converting PAGE-XML layout exports
// into machine-learning datasets.
//
// It reads a Transkribus-style export (ZIP archive or directory tree), parses
// the layout XML of every project, and writes a dataset of images plus an
// XLSX manifest at the chosen granularity: whole pages, page text, cropped
// regions, cropped lines, or sliding windows of lines.
//
// Usage:
//
//	pagexml-hf [options] <source>
//
// Options:
//
//	-mode string        Record granularity: raw, text, region, line, window (default "text")
//	-namespace string   Override the PAGE-XML content namespace
//	-output string      Output directory (default "dataset")
//	-window-size int    Lines per window, window mode only (default 2)
//	-overlap int        Lines shared between consecutive windows (default 0)
//	-mask-crop          White out pixels outside the crop polygon
//	-min-width int      Skip crops narrower than this many pixels
//	-allow-empty        Keep regions and lines without transcription
//	-split-train float  Train share for a train/test split, 0 disables (default 0)
//	-split-seed int     Shuffle seed for the split (default 42)
//	-split-shuffle      Shuffle before splitting
//	-stats-only         Print content statistics and exit without exporting
//	-quiet              Suppress per-file diagnostics
//
// Examples:
//
// Export cropped lines with masked polygons:
//
//	pagexml-hf -mode line -mask-crop -output lines export.zip
//
// Export windows of three lines with one line of overlap, split 80/20:
//
//	pagexml-hf -mode window -window-size 3 -overlap 1 -split-train 0.8 -split-shuffle export.zip
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	pagexml "github.com/l0rn0r/pagexml-hf"
	"github.com/l0rn0r/pagexml-hf/dataset"
	"github.com/l0rn0r/pagexml-hf/export"
)

func main() {
	modeName := flag.String("mode", "text", "Record granularity: raw, text, region, line, window")
	namespace := flag.String("namespace", "", "Override the PAGE-XML content namespace")
	outputDir := flag.String("output", "dataset", "Output directory")
	windowSize := flag.Int("window-size", 2, "Lines per window (window mode)")
	overlap := flag.Int("overlap", 0, "Lines shared between consecutive windows (window mode)")
	maskCrop := flag.Bool("mask-crop", false, "White out pixels outside the crop polygon")
	minWidth := flag.Int("min-width", 0, "Skip crops narrower than this many pixels")
	allowEmpty := flag.Bool("allow-empty", false, "Keep regions and lines without transcription")
	splitTrain := flag.Float64("split-train", 0, "Train share for a train/test split, 0 disables")
	splitSeed := flag.Int64("split-seed", 42, "Shuffle seed for the split")
	splitShuffle := flag.Bool("split-shuffle", false, "Shuffle before splitting")
	statsOnly := flag.Bool("stats-only", false, "Print content statistics and exit")
	quiet := flag.Bool("quiet", false, "Suppress per-file diagnostics")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pagexml-hf [options] <source>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	sourcePath := flag.Arg(0)

	mode, err := export.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *minWidth < 0 {
		fmt.Fprintln(os.Stderr, "Error: -min-width must not be negative")
		os.Exit(2)
	}
	if *splitTrain != 0 && (*splitTrain <= 0 || *splitTrain >= 1) {
		fmt.Fprintln(os.Stderr, "Error: -split-train must be between 0 and 1 exclusive")
		os.Exit(2)
	}
	if _, err := os.Stat(sourcePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot access source: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	conv := pagexml.Open(sourcePath).
		Namespace(*namespace).
		Mode(mode).
		WindowSize(*windowSize).
		Overlap(*overlap).
		MinWidth(*minWidth).
		Logger(logger)
	if *maskCrop {
		conv = conv.Mask()
	}
	if *allowEmpty {
		conv = conv.AllowEmpty()
	}

	if *statsOnly {
		stats, err := conv.Stats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printStats(stats)
		return
	}

	records, err := conv.Records()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ds := dataset.Collect(mode, records)
	conv.Close()

	if *splitTrain > 0 {
		if *splitShuffle {
			ds.Shuffle(*splitSeed)
		}
		train, test, err := ds.Split(*splitTrain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := train.Save(filepath.Join(*outputDir, "train")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: saving train split: %v\n", err)
			os.Exit(1)
		}
		if err := test.Save(filepath.Join(*outputDir, "test")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: saving test split: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d train and %d test records to %s\n", train.Len(), test.Len(), *outputDir)
	} else {
		if err := ds.Save(*outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: saving dataset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d records to %s\n", ds.Len(), *outputDir)
	}

	printSummary(conv.Summary())
}

func printStats(stats pagexml.Stats) {
	fmt.Printf("Pages:    %d\n", stats.TotalPages)
	fmt.Printf("Regions:  %d (%.2f per page)\n", stats.TotalRegions, stats.AvgRegionsPerPage)
	fmt.Printf("Lines:    %d (%.2f per page)\n", stats.TotalLines, stats.AvgLinesPerPage)
	fmt.Printf("Projects: %d\n", len(stats.Projects))
	for _, p := range stats.Projects {
		fmt.Printf("  %s\n", p)
	}
}

func printSummary(sum export.Summary) {
	fmt.Printf("Processed: %d, skipped: %d\n", sum.Processed, sum.Skipped)
	if len(sum.Failures) == 0 {
		return
	}
	fmt.Printf("Image failures: %d\n", len(sum.Failures))
	for _, f := range sum.SampleFailures(5) {
		fmt.Printf("  %s: %v\n", f.Source, f.Err)
	}
}

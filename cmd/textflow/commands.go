package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/textflow/textflow/internal/pipe"
	"github.com/textflow/textflow/pkg/analyzer"
	"github.com/textflow/textflow/pkg/config"
	"github.com/textflow/textflow/pkg/diag"
	"github.com/textflow/textflow/pkg/export"
	"github.com/textflow/textflow/pkg/scan"
	"github.com/textflow/textflow/pkg/tui"
	"github.com/textflow/textflow/pkg/watch"
)

var statsCmd = &cobra.Command{
	Use:   "stats <input-file>",
	Short: "Compute descriptive statistics over numeric lines",
	Long: `Compute mean, median, mode(s), population variance, and standard deviation
from a text file containing one number per line. Invalid lines are reported
and skipped.

Examples:
  textflow stats numbers.txt
  textflow stats -o results.txt numbers.txt
  textflow stats --xlsx numbers.xlsx numbers.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

var convertCmd = &cobra.Command{
	Use:   "convert <input-file>",
	Short: "Convert integer lines to binary and hexadecimal",
	Long: `Parse each line as a strict signed integer and convert it to base 2 and
base 16 using repeated division. Invalid lines are reported and skipped. The
console shows the first conversions only; the full list goes to the results
file.

Examples:
  textflow convert numbers.txt
  textflow convert --watch numbers.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var wordCountCmd = &cobra.Command{
	Use:   "wordcount <input-file>",
	Short: "Count word frequencies",
	Long: `Count the frequency of each distinct word. Tokens are normalized to
lowercase alphanumerics plus apostrophes; tokens that normalize to nothing
and blank lines are reported and skipped. Output is ordered by descending
frequency, ties broken alphabetically.

Examples:
  textflow wordcount book.txt
  textflow wordcount --progress book.txt.gz`,
	Args: cobra.ExactArgs(1),
	RunE: runWordCount,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resultsPath := resolveOutput(cfg.StatisticsPath())

	return runAnalysis(args[0], resultsPath, "stats", cfg, func() pipe.Analyzer[float64] {
		return analyzer.NewStatistics()
	})
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resultsPath := resolveOutput(cfg.ConversionPath())

	return runAnalysis(args[0], resultsPath, "convert", cfg, func() pipe.Analyzer[int64] {
		return analyzer.NewConversion(cfg.Report.ConsoleLimit, filepath.Base(resultsPath))
	})
}

func runWordCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resultsPath := resolveOutput(cfg.WordCountPath())

	return runAnalysis(args[0], resultsPath, "wordcount", cfg, func() pipe.Analyzer[string] {
		return analyzer.NewWordCount()
	})
}

// runAnalysis executes one batch run, then optionally keeps re-running on
// input changes when --watch is set. A fresh analyzer is built per run so
// accumulated state never leaks between runs.
func runAnalysis[T any](inputPath, resultsPath, mode string, cfg *config.Config, newAnalyzer func() pipe.Analyzer[T]) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	run := func(path string) error {
		return runOnce(ctx, path, resultsPath, mode, newAnalyzer(), cfg)
	}

	if err := run(inputPath); err != nil {
		return err
	}

	if !watchInput {
		return nil
	}

	w, err := watch.New(inputPath)
	if err != nil {
		return err
	}
	w.OnChange = func(path string) error {
		fmt.Println()
		return run(path)
	}
	w.OnError = func(path string, err error) {
		tui.PrintError(fmt.Sprintf("%s: %v", path, err))
	}

	fmt.Println("Watching for changes. Press Ctrl-C to stop.")
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runOnce[T any](ctx context.Context, inputPath, resultsPath, mode string, a pipe.Analyzer[T], cfg *config.Config) error {
	runID := uuid.New().String()
	if verbose {
		tui.PrintBanner(mode, runID, inputPath, resultsPath)
	}

	opts := pipe.Options{
		ResultsPath: resultsPath,
		Console:     os.Stdout,
		Diagnostics: diag.NewConsole(os.Stdout),
		BufferSize:  cfg.Scan.BufferSize,
	}

	// Byte progress only makes sense when the on-disk size matches what the
	// scanner will read, so compressed input goes without a bar.
	if showProgress && !scan.IsGzipPath(inputPath) {
		if stat, err := os.Stat(inputPath); err == nil {
			opts.Progress = tui.ScanProgress(stat.Size(), "scanning")
		}
	}

	result, err := pipe.New(a, opts).Run(ctx, inputPath)
	if err != nil {
		return err
	}

	if xlsxFile != "" {
		if err := export.XLSX(xlsxFile, runID, result.Summary, result.Elapsed); err != nil {
			return fmt.Errorf("exporting xlsx: %w", err)
		}
	}

	if verbose {
		tui.PrintDone(result.Counts.Items, result.Elapsed, resultsPath)
	}
	return nil
}

// loadConfig loads the layered configuration (defaults, user and project
// files, environment).
func loadConfig() (*config.Config, error) {
	m := config.NewManager()
	if err := m.Load(); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return m.Get(), nil
}

// resolveOutput applies the -o override to a configured results path.
func resolveOutput(configured string) string {
	if outputFile != "" {
		return outputFile
	}
	return configured
}

// textflow - batch text-analysis utilities.
// Reads a line-oriented input file, validates each record, aggregates the
// valid ones, and reports to the console and a results file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	outputFile   string
	xlsxFile     string
	watchInput   bool
	showProgress bool
	verbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textflow",
	Short: "textflow - batch text-analysis utilities",
	Long: `textflow is a family of batch text-analysis tools. Each subcommand reads a
line-oriented input file, skips and reports invalid lines, aggregates the
valid records, and writes a summary to the console and a results file.

Modes:
  stats      descriptive statistics over numeric lines
  convert    strict-integer parsing with binary/hex conversion
  wordcount  word-frequency counting with normalization`,
	Version: fmt.Sprintf("%s (%s)", version, commit),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the textflow version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "textflow %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	for _, cmd := range []*cobra.Command{statsCmd, convertCmd, wordCountCmd} {
		cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Results file path (overrides the mode default)")
		cmd.Flags().StringVar(&xlsxFile, "xlsx", "", "Also export the summary as an Excel workbook")
		cmd.Flags().BoolVar(&watchInput, "watch", false, "Re-run the analysis when the input file changes")
		cmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar while scanning")
	}

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(wordCountCmd)
	rootCmd.AddCommand(versionCmd)
}

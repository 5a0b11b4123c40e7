// Package tui provides the console look of the textflow tools: a handful of
// lipgloss styles, a run banner, and a byte-based scan progress bar. Report
// bodies are printed unstyled so the console copy matches the results file.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
)

// Styles (Swiss minimal, same palette across all tools).
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CC66")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

// PrintBanner prints the verbose run header before processing starts.
func PrintBanner(mode, runID, input, output string) {
	fmt.Println()
	fmt.Println(titleStyle.Render("  TEXTFLOW ") + mutedStyle.Render(mode))
	fmt.Printf("  %s %s\n", mutedStyle.Render("Run:"), runID)
	fmt.Printf("  %s %s\n", mutedStyle.Render("Input:"), input)
	fmt.Printf("  %s %s\n", mutedStyle.Render("Output:"), output)
	fmt.Println()
}

// PrintDone prints the completion footer after the report has been written.
func PrintDone(items int, elapsed time.Duration, resultsPath string) {
	fmt.Printf("%s %s\n",
		successStyle.Render("✓"),
		mutedStyle.Render(fmt.Sprintf("%d items in %s, results in %s", items, FormatDuration(elapsed), resultsPath)))
}

// PrintError prints a fatal error line.
func PrintError(msg string) {
	fmt.Printf("%s %s\n", errorStyle.Render("[ERROR]"), msg)
}

// FormatDuration formats a duration in a human-readable way.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}

// ScanProgress creates a byte-based progress bar for reading an input file.
func ScanProgress(totalBytes int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

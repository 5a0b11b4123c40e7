// Package analyzer provides the three analysis modes that plug into the
// report pipeline: descriptive statistics, integer base conversion, and word
// frequency counting. Each mode pairs a line validator with an aggregator
// and a summary renderer.
package analyzer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/textflow/textflow/internal/pipe"
	"github.com/textflow/textflow/pkg/scan"
	"github.com/textflow/textflow/pkg/stats"
)

// Statistics accumulates finite floating-point samples and reports mean,
// median, mode(s), population variance, and standard deviation.
type Statistics struct {
	samples []float64
}

// NewStatistics creates the statistics mode analyzer.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Name implements pipe.Analyzer.
func (a *Statistics) Name() string { return "statistics" }

// Validate classifies one line as a finite float sample or an invalid line.
// The whole stripped line must parse; values that parse but are not finite
// (overflow to infinity, literal inf/nan) are rejected after the parse.
func (a *Statistics) Validate(ln scan.Line) []pipe.Outcome[float64] {
	if ln.Text == "" {
		return one(pipe.Invalid[float64](ln.No, "empty/blank line"))
	}

	v, err := strconv.ParseFloat(ln.Text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// The literal is numeric but its magnitude exceeds float64.
			return one(pipe.Invalid[float64](ln.No, fmt.Sprintf("non-finite value '%s'", ln.Text)))
		}
		return one(pipe.Invalid[float64](ln.No, fmt.Sprintf("not a number '%s'", ln.Text)))
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return one(pipe.Invalid[float64](ln.No, fmt.Sprintf("non-finite value '%s'", ln.Text)))
	}

	return one(pipe.Valid(v))
}

// Accumulate implements pipe.Analyzer.
func (a *Statistics) Accumulate(v float64) {
	a.samples = append(a.samples, v)
}

// Aggregate implements pipe.Analyzer. With no valid samples it produces the
// "no valid data" fallback summary instead of calling into the statistics
// package, which is undefined on empty input.
func (a *Statistics) Aggregate(c pipe.Counts) pipe.Summary {
	if len(a.samples) == 0 {
		return &StatsSummary{Counts: c, NoData: true}
	}
	return &StatsSummary{Counts: c, Stats: stats.Describe(a.samples)}
}

// StatsSummary is the statistics mode report snapshot.
type StatsSummary struct {
	Counts pipe.Counts
	Stats  stats.Result
	NoData bool
}

// Render implements pipe.Summary.
func (s *StatsSummary) Render(elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("=== Statistical Results ===\n")

	if s.NoData {
		b.WriteString("No valid data to process.\n")
		fmt.Fprintf(&b, "Invalid data count: %d\n", s.Counts.Invalid)
		fmt.Fprintf(&b, "Elapsed time (s): %.6f\n", elapsed.Seconds())
		return b.String()
	}

	fmt.Fprintf(&b, "Valid data count: %d\n", s.Counts.Valid)
	fmt.Fprintf(&b, "Invalid data count: %d\n", s.Counts.Invalid)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Mean: %s\n", formatFloat(s.Stats.Mean))
	fmt.Fprintf(&b, "Median: %s\n", formatFloat(s.Stats.Median))

	if len(s.Stats.Modes) == 0 {
		b.WriteString("Mode: No mode (all frequencies are 1).\n")
	} else {
		fmt.Fprintf(&b, "Mode(s) (frequency %d): %s\n", s.Stats.ModeFreq, formatFloatList(s.Stats.Modes))
	}

	fmt.Fprintf(&b, "Variance: %s\n", formatFloat(s.Stats.Variance))
	fmt.Fprintf(&b, "Standard deviation: %s\n", formatFloat(s.Stats.StdDev))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Elapsed time (s): %.6f\n", elapsed.Seconds())

	return b.String()
}

// RenderConsole implements pipe.Summary; the console copy is the full report.
func (s *StatsSummary) RenderConsole(elapsed time.Duration) string {
	return s.Render(elapsed)
}

// one wraps a single outcome in the slice shape Validate returns.
func one[T any](o pipe.Outcome[T]) []pipe.Outcome[T] {
	return []pipe.Outcome[T]{o}
}

// formatFloat renders a float with the shortest round-trip representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatFloatList renders values as "[a, b, c]".
func formatFloatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package analyzer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/textflow/textflow/internal/pipe"
	"github.com/textflow/textflow/pkg/baseconv"
	"github.com/textflow/textflow/pkg/scan"
)

// Conversion accumulates strictly parsed signed integers and reports their
// binary and hexadecimal renderings.
type Conversion struct {
	samples      []int64
	consoleLimit int
	resultsName  string
}

// NewConversion creates the conversion mode analyzer. consoleLimit caps how
// many conversions the console copy of the report shows (<= 0 disables the
// cap); resultsName is the results file named in the truncation note.
func NewConversion(consoleLimit int, resultsName string) *Conversion {
	return &Conversion{consoleLimit: consoleLimit, resultsName: resultsName}
}

// Name implements pipe.Analyzer.
func (a *Conversion) Name() string { return "conversion" }

// Validate applies the strict integer grammar: an optional single leading
// sign followed by ASCII digits only. The scan aborts at the first non-digit.
// Magnitudes that overflow int64 are rejected as invalid lines rather than
// wrapped or saturated.
func (a *Conversion) Validate(ln scan.Line) []pipe.Outcome[int64] {
	text := ln.Text
	if text == "" {
		return one(pipe.Invalid[int64](ln.No, "empty/blank line"))
	}

	negative := false
	start := 0
	if text[0] == '+' {
		start = 1
	} else if text[0] == '-' {
		negative = true
		start = 1
	}

	if start == len(text) {
		return one(pipe.Invalid[int64](ln.No, fmt.Sprintf("sign without digits '%s'", text)))
	}

	var value int64
	for i := start; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return one(pipe.Invalid[int64](ln.No, fmt.Sprintf("not an integer '%s'", text)))
		}
		d := int64(c - '0')
		if value > (math.MaxInt64-d)/10 {
			return one(pipe.Invalid[int64](ln.No, fmt.Sprintf("integer out of range '%s'", text)))
		}
		value = value*10 + d
	}

	if negative {
		value = -value
	}
	return one(pipe.Valid(value))
}

// Accumulate implements pipe.Analyzer.
func (a *Conversion) Accumulate(v int64) {
	a.samples = append(a.samples, v)
}

// Aggregate implements pipe.Analyzer.
func (a *Conversion) Aggregate(c pipe.Counts) pipe.Summary {
	return &ConversionSummary{
		Counts:       c,
		Numbers:      a.samples,
		ConsoleLimit: a.consoleLimit,
		ResultsName:  a.resultsName,
	}
}

// ConversionSummary is the conversion mode report snapshot.
type ConversionSummary struct {
	Counts       pipe.Counts
	Numbers      []int64
	ConsoleLimit int
	ResultsName  string
}

// Render implements pipe.Summary; the file copy always lists every
// conversion.
func (s *ConversionSummary) Render(elapsed time.Duration) string {
	return s.render(elapsed, 0)
}

// RenderConsole implements pipe.Summary; the console copy is capped at the
// configured limit, with a note when more were written to the results file.
func (s *ConversionSummary) RenderConsole(elapsed time.Duration) string {
	return s.render(elapsed, s.ConsoleLimit)
}

func (s *ConversionSummary) render(elapsed time.Duration, limit int) string {
	var b strings.Builder
	b.WriteString("=== Conversion Results (Decimal -> Binary / Hex) ===\n")
	fmt.Fprintf(&b, "Valid numbers: %d\n", s.Counts.Valid)
	fmt.Fprintf(&b, "Invalid lines skipped: %d\n", s.Counts.Invalid)
	b.WriteString("\n")
	b.WriteString("Decimal -> Binary -> Hex\n")
	b.WriteString("------------------------\n")

	shown := s.Numbers
	if limit > 0 && len(s.Numbers) > limit {
		shown = s.Numbers[:limit]
	}
	for _, n := range shown {
		fmt.Fprintf(&b, "%d -> %s -> %s\n", n, baseconv.ToBinary(n), baseconv.ToHex(n))
	}

	if limit > 0 && len(s.Numbers) > limit {
		b.WriteString("\n")
		fmt.Fprintf(&b, "... showing first %d of %d items. Full results were written to %s.\n",
			limit, len(s.Numbers), s.ResultsName)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Elapsed time (s): %.6f\n", elapsed.Seconds())

	return b.String()
}

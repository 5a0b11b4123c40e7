// Package pipe implements the shared report pipeline skeleton: open the
// input, stream lines through the active analyzer's validator, accumulate
// valid records, aggregate, and emit the summary to the console and a
// results file.
//
// The three analysis modes plug into the pipeline through the Analyzer
// capability set (validate, accumulate, aggregate).
package pipe

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/textflow/textflow/pkg/diag"
	"github.com/textflow/textflow/pkg/scan"
)

// Outcome is the result of validating one input item: either a valid typed
// value or a reportable invalid item. Exactly one case is populated.
type Outcome[T any] struct {
	value  T
	lineNo int
	reason string
	valid  bool
}

// Valid wraps a successfully validated value.
func Valid[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, valid: true}
}

// Invalid records a validation failure for the given 1-based line number.
// The reason may embed the offending text.
func Invalid[T any](lineNo int, reason string) Outcome[T] {
	return Outcome[T]{lineNo: lineNo, reason: reason}
}

// Value returns the validated value and true, or the zero value and false
// for invalid outcomes.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.valid
}

// LineNo returns the line number of an invalid outcome.
func (o Outcome[T]) LineNo() int { return o.lineNo }

// Reason returns the failure reason of an invalid outcome.
func (o Outcome[T]) Reason() string { return o.reason }

// Counts tracks how many items were scanned and how they validated.
// Valid + Invalid == Items holds after every scan.
type Counts struct {
	Lines   int // physical lines read from the input
	Items   int // validated items (lines, or tokens in word count mode)
	Valid   int
	Invalid int
}

// Summary is an immutable snapshot of one run's results. Render produces the
// full report written to the results file; RenderConsole may truncate.
type Summary interface {
	Render(elapsed time.Duration) string
	RenderConsole(elapsed time.Duration) string
}

// Analyzer is the capability set a mode plugs into the pipeline.
type Analyzer[T any] interface {
	// Name identifies the mode (e.g. "statistics").
	Name() string

	// Validate classifies one stripped line, producing one outcome per
	// validated item. Statistics and conversion modes emit exactly one
	// outcome per line; word count mode emits one per token.
	Validate(ln scan.Line) []Outcome[T]

	// Accumulate stores one validated record.
	Accumulate(v T)

	// Aggregate computes the mode's summary over everything accumulated.
	// Called exactly once, after the scan completes.
	Aggregate(c Counts) Summary
}

// Options configures a pipeline run.
type Options struct {
	// ResultsPath is the file the full report is written to, truncating any
	// prior contents.
	ResultsPath string

	// Console receives the (possibly truncated) report copy. Defaults to
	// os.Stdout.
	Console io.Writer

	// Diagnostics receives one report per invalid item as the scan
	// proceeds. Defaults to a discarding sink.
	Diagnostics diag.Sink

	// BufferSize is the initial read buffer size in bytes; <= 0 uses the
	// scan package default. Lines of any length are accepted.
	BufferSize int

	// Progress, when set, receives every input byte as it is read.
	Progress io.Writer
}

// Result is what a completed run produced.
type Result struct {
	Summary Summary
	Counts  Counts
	Elapsed time.Duration
}

// Pipeline orchestrates one analysis mode end to end.
type Pipeline[T any] struct {
	analyzer Analyzer[T]
	opts     Options
}

// New creates a pipeline around an analyzer.
func New[T any](a Analyzer[T], opts Options) *Pipeline[T] {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = diag.Discard{}
	}
	return &Pipeline[T]{analyzer: a, opts: opts}
}

// Run executes Open -> Scan -> Aggregate -> Report for one input file.
// Open failures are fatal: the error is returned and no results file is
// written. Per-item validation failures only degrade the counters.
//
// Elapsed time covers read + aggregation but not the report writes.
func (p *Pipeline[T]) Run(ctx context.Context, inputPath string) (*Result, error) {
	start := time.Now()

	r, cleanup, err := scan.Open(inputPath)
	if err != nil {
		return nil, openError(inputPath, err)
	}
	defer cleanup()

	if p.opts.Progress != nil {
		r = io.TeeReader(r, p.opts.Progress)
	}

	var counts Counts
	sc := scan.NewScanner(r, p.opts.BufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ln, ok := sc.Next()
		if !ok {
			break
		}
		counts.Lines++

		for _, out := range p.analyzer.Validate(ln) {
			counts.Items++
			if v, valid := out.Value(); valid {
				counts.Valid++
				p.analyzer.Accumulate(v)
			} else {
				counts.Invalid++
				p.opts.Diagnostics.Invalid(out.LineNo(), out.Reason())
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	summary := p.analyzer.Aggregate(counts)
	elapsed := time.Since(start)

	if _, err := fmt.Fprint(p.opts.Console, summary.RenderConsole(elapsed)); err != nil {
		return nil, fmt.Errorf("writing console report: %w", err)
	}
	if err := os.WriteFile(p.opts.ResultsPath, []byte(summary.Render(elapsed)), 0o644); err != nil {
		return nil, fmt.Errorf("writing results file: %w", err)
	}

	return &Result{Summary: summary, Counts: counts, Elapsed: elapsed}, nil
}

// openError maps input-open failures onto the pipeline's fatal sentinels,
// keeping the offending path in the message.
func openError(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s", ErrPermission, path)
	default:
		return fmt.Errorf("opening %s: %w", path, err)
	}
}

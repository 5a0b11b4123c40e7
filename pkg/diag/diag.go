// Package diag provides the per-record diagnostic side channel. Invalid
// lines and tokens are reported here as the scan proceeds; the reports are
// advisory and never part of the persisted results file.
package diag

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Sink receives one report per invalid input item.
type Sink interface {
	// Invalid reports a line or token that failed validation. The reason may
	// embed the offending text.
	Invalid(lineNo int, reason string)
}

var errTag = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)

// Console writes diagnostics to a writer in the fixed
// "[ERROR] Line <n>: <reason>. Skipping." shape.
type Console struct {
	Out io.Writer
}

// NewConsole returns a console sink writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{Out: w}
}

// Invalid implements Sink.
func (c *Console) Invalid(lineNo int, reason string) {
	fmt.Fprintf(c.Out, "%s Line %d: %s. Skipping.\n", errTag.Render("[ERROR]"), lineNo, reason)
}

// Discard is a Sink that drops all reports.
type Discard struct{}

// Invalid implements Sink.
func (Discard) Invalid(int, string) {}

// Record is one captured diagnostic.
type Record struct {
	LineNo int
	Reason string
}

// Capture collects diagnostics in memory so tests can assert on them without
// parsing process output.
type Capture struct {
	mu      sync.Mutex
	Records []Record
}

// Invalid implements Sink.
func (c *Capture) Invalid(lineNo int, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Records = append(c.Records, Record{LineNo: lineNo, Reason: reason})
}

package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/textflow/textflow/internal/pipe"
	"github.com/textflow/textflow/pkg/scan"
	"github.com/textflow/textflow/pkg/wordfreq"
)

// WordCount tallies normalized word frequencies. Unlike the other modes it
// validates whitespace-delimited tokens, not whole lines.
type WordCount struct {
	table *wordfreq.Table
}

// NewWordCount creates the word count mode analyzer.
func NewWordCount() *WordCount {
	return &WordCount{table: wordfreq.NewTable()}
}

// Name implements pipe.Analyzer.
func (a *WordCount) Name() string { return "wordcount" }

// Validate emits one outcome per token on the line. A blank line is itself
// one invalid item; a token that normalizes to the empty string (pure
// punctuation) is invalid.
func (a *WordCount) Validate(ln scan.Line) []pipe.Outcome[string] {
	if ln.Text == "" {
		return one(pipe.Invalid[string](ln.No, "empty/blank line"))
	}

	tokens := strings.Fields(ln.Text)
	outcomes := make([]pipe.Outcome[string], 0, len(tokens))
	for _, tok := range tokens {
		word := wordfreq.Normalize(tok)
		if word == "" {
			outcomes = append(outcomes, pipe.Invalid[string](ln.No, fmt.Sprintf("invalid token '%s'", tok)))
			continue
		}
		outcomes = append(outcomes, pipe.Valid(word))
	}
	return outcomes
}

// Accumulate implements pipe.Analyzer.
func (a *WordCount) Accumulate(word string) {
	a.table.Add(word)
}

// Aggregate implements pipe.Analyzer.
func (a *WordCount) Aggregate(c pipe.Counts) pipe.Summary {
	return &WordCountSummary{
		Counts:   c,
		Entries:  a.table.Entries(),
		Total:    a.table.Total(),
		Distinct: a.table.Distinct(),
	}
}

// WordCountSummary is the word count mode report snapshot.
type WordCountSummary struct {
	Counts   pipe.Counts
	Entries  []wordfreq.Entry
	Total    int
	Distinct int
}

// Render implements pipe.Summary. Words are listed by descending frequency,
// ties broken alphabetically.
func (s *WordCountSummary) Render(elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("=== Word Count Results ===\n")
	fmt.Fprintf(&b, "Total valid words counted: %d\n", s.Total)
	fmt.Fprintf(&b, "Distinct words: %d\n", s.Distinct)
	fmt.Fprintf(&b, "Invalid items skipped: %d\n", s.Counts.Invalid)
	b.WriteString("\n")
	b.WriteString("Word -> Frequency\n")
	b.WriteString("-----------------\n")

	for _, e := range s.Entries {
		fmt.Fprintf(&b, "%s -> %d\n", e.Word, e.Count)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Elapsed time (s): %.6f\n", elapsed.Seconds())

	return b.String()
}

// RenderConsole implements pipe.Summary; the console copy is the full report.
func (s *WordCountSummary) RenderConsole(elapsed time.Duration) string {
	return s.Render(elapsed)
}

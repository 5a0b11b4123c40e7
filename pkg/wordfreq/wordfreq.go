// Package wordfreq normalizes tokens and tallies word frequencies with a
// deterministic output ordering.
package wordfreq

import (
	"sort"
	"strings"
	"unicode"
)

// Normalize reduces a raw token to a word: alphanumeric runes and apostrophes
// are kept and lowercased, everything else is discarded. The result may be
// empty (e.g. a token that was pure punctuation).
func Normalize(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Entry is one row of the frequency report.
type Entry struct {
	Word  string
	Count int
}

// Table accumulates word occurrence counts.
type Table struct {
	counts map[string]int
	total  int
}

// NewTable returns an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add tallies one occurrence of an already-normalized word.
func (t *Table) Add(word string) {
	t.counts[word]++
	t.total++
}

// Total returns the number of words tallied, counting repeats.
func (t *Table) Total() int { return t.total }

// Distinct returns the number of distinct words seen.
func (t *Table) Distinct() int { return len(t.counts) }

// Entries returns the table contents ordered by descending frequency, ties
// broken by ascending word. The ordering is stable across runs for identical
// input.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for w, c := range t.counts {
		entries = append(entries, Entry{Word: w, Count: c})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

package analyzer

import (
	"strings"
	"testing"
	"time"

	"github.com/textflow/textflow/internal/pipe"
	"github.com/textflow/textflow/pkg/scan"
)

func TestWordCountValidate(t *testing.T) {
	a := NewWordCount()

	t.Run("blank line is one invalid item", func(t *testing.T) {
		outcomes := a.Validate(scan.Line{No: 2, Text: ""})
		if len(outcomes) != 1 {
			t.Fatalf("got %d outcomes, want 1", len(outcomes))
		}
		if _, valid := outcomes[0].Value(); valid {
			t.Error("blank line validated as a word")
		}
		if !strings.Contains(outcomes[0].Reason(), "empty/blank line") {
			t.Errorf("reason = %q", outcomes[0].Reason())
		}
	})

	t.Run("one outcome per token", func(t *testing.T) {
		outcomes := a.Validate(scan.Line{No: 1, Text: "Hello, world! ... C++"})
		if len(outcomes) != 4 {
			t.Fatalf("got %d outcomes, want 4", len(outcomes))
		}

		words := []string{}
		invalid := 0
		for _, o := range outcomes {
			if w, valid := o.Value(); valid {
				words = append(words, w)
			} else {
				invalid++
			}
		}

		if invalid != 1 {
			t.Errorf("invalid tokens = %d, want 1 (the pure punctuation)", invalid)
		}
		want := []string{"hello", "world", "c"}
		if len(words) != len(want) {
			t.Fatalf("words = %v, want %v", words, want)
		}
		for i := range want {
			if words[i] != want[i] {
				t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
			}
		}
	})
}

func TestWordCountReport(t *testing.T) {
	a := NewWordCount()
	for _, w := range []string{"a", "a", "b"} {
		a.Accumulate(w)
	}

	s := a.Aggregate(pipe.Counts{Lines: 1, Items: 3, Valid: 3})
	text := s.Render(time.Millisecond)

	for _, want := range []string{
		"=== Word Count Results ===",
		"Total valid words counted: 3",
		"Distinct words: 2",
		"Invalid items skipped: 0",
		"Word -> Frequency",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}

	// a (2) must come before b (1).
	if strings.Index(text, "a -> 2") > strings.Index(text, "b -> 1") {
		t.Errorf("words out of order:\n%s", text)
	}
}

func TestWordCountAlphabeticalTieBreak(t *testing.T) {
	a := NewWordCount()
	for _, o := range a.Validate(scan.Line{No: 1, Text: "b a"}) {
		if w, valid := o.Value(); valid {
			a.Accumulate(w)
		}
	}

	s := a.Aggregate(pipe.Counts{Lines: 1, Items: 2, Valid: 2})
	text := s.Render(time.Millisecond)

	if strings.Index(text, "a -> 1") > strings.Index(text, "b -> 1") {
		t.Errorf("tie not broken alphabetically:\n%s", text)
	}
}

func TestWordCountConsoleMatchesFile(t *testing.T) {
	a := NewWordCount()
	a.Accumulate("word")
	s := a.Aggregate(pipe.Counts{Valid: 1, Items: 1})

	if s.Render(time.Second) != s.RenderConsole(time.Second) {
		t.Error("word count console report differs from the file report")
	}
}

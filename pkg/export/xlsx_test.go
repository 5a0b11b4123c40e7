package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/textflow/textflow/internal/pipe"
	"github.com/textflow/textflow/pkg/analyzer"
	"github.com/textflow/textflow/pkg/stats"
	"github.com/textflow/textflow/pkg/wordfreq"
)

func TestXLSXWordCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")
	summary := &analyzer.WordCountSummary{
		Counts:   pipe.Counts{Valid: 3, Items: 3},
		Entries:  []wordfreq.Entry{{Word: "a", Count: 2}, {Word: "b", Count: 1}},
		Total:    3,
		Distinct: 2,
	}

	if err := XLSX(path, "test-run", summary, time.Millisecond); err != nil {
		t.Fatalf("XLSX() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); name != "WordCount" {
		t.Errorf("sheet name = %q, want WordCount", name)
	}

	got, err := f.GetCellValue("WordCount", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "a" {
		t.Errorf("A2 = %q, want a", got)
	}
}

func TestXLSXStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.xlsx")
	summary := &analyzer.StatsSummary{
		Counts: pipe.Counts{Valid: 2, Items: 2},
		Stats:  stats.Result{Count: 2, Mean: 1.5, Median: 1.5, ModeFreq: 1},
	}

	if err := XLSX(path, "test-run", summary, time.Millisecond); err != nil {
		t.Fatalf("XLSX() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); name != "Statistics" {
		t.Errorf("sheet name = %q, want Statistics", name)
	}
}

func TestXLSXUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := XLSX(path, "test-run", struct{}{}, 0); err == nil {
		t.Error("XLSX() succeeded on an unsupported summary type")
	}
}

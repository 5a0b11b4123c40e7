// Package export writes analysis summaries as Excel workbooks.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/textflow/textflow/pkg/analyzer"
	"github.com/textflow/textflow/pkg/baseconv"
)

// XLSX writes the given summary to an .xlsx workbook at path. The run ID is
// recorded in the workbook's document properties.
func XLSX(path, runID string, summary interface{}, elapsed time.Duration) error {
	f := excelize.NewFile()
	defer f.Close()

	var err error
	switch s := summary.(type) {
	case *analyzer.StatsSummary:
		err = writeStats(f, s)
	case *analyzer.ConversionSummary:
		err = writeConversions(f, s)
	case *analyzer.WordCountSummary:
		err = writeWordCounts(f, s)
	default:
		return fmt.Errorf("export: unsupported summary type %T", summary)
	}
	if err != nil {
		return err
	}

	f.SetDocProps(&excelize.DocProperties{
		Creator:     "textflow",
		Description: fmt.Sprintf("run %s, elapsed %.6fs", runID, elapsed.Seconds()),
	})

	return f.SaveAs(path)
}

func writeStats(f *excelize.File, s *analyzer.StatsSummary) error {
	const sheet = "Statistics"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Valid data count", s.Counts.Valid},
		{"Invalid data count", s.Counts.Invalid},
	}
	if s.NoData {
		rows = append(rows, []interface{}{"Note", "No valid data to process."})
	} else {
		rows = append(rows,
			[]interface{}{"Mean", s.Stats.Mean},
			[]interface{}{"Median", s.Stats.Median},
			[]interface{}{"Mode frequency", s.Stats.ModeFreq},
			[]interface{}{"Variance", s.Stats.Variance},
			[]interface{}{"Standard deviation", s.Stats.StdDev},
		)
		for i, m := range s.Stats.Modes {
			rows = append(rows, []interface{}{fmt.Sprintf("Mode %d", i+1), m})
		}
	}

	return writeRows(f, sheet, rows)
}

func writeConversions(f *excelize.File, s *analyzer.ConversionSummary) error {
	const sheet = "Conversions"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Decimal", "Binary", "Hex"}}
	for _, n := range s.Numbers {
		rows = append(rows, []interface{}{n, baseconv.ToBinary(n), baseconv.ToHex(n)})
	}

	return writeRows(f, sheet, rows)
}

func writeWordCounts(f *excelize.File, s *analyzer.WordCountSummary) error {
	const sheet = "WordCount"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Word", "Frequency"}}
	for _, e := range s.Entries {
		rows = append(rows, []interface{}{e.Word, e.Count})
	}

	return writeRows(f, sheet, rows)
}

func renameDefaultSheet(f *excelize.File, name string) error {
	return f.SetSheetName(f.GetSheetName(0), name)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

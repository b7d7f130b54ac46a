// Package xlsxtest builds small workbooks on disk for tests.
package xlsxtest

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// Skip leaves a row out entirely, producing a gap in the row numbering.
var Skip []any

// DateFormat is applied to time.Time cells.
const DateFormat = "yyyy-mm-dd hh:mm:ss"

// Write saves a single-sheet workbook to dir/name. Cells may be string,
// float64, int, bool, time.Time or nil (no cell). A Skip row is left out.
func Write(t testing.TB, dir, name string, rows [][]any) string {
	t.Helper()

	wb := spreadsheet.New()
	sheet := wb.AddSheet()

	dates := wb.StyleSheet.AddCellStyle()
	dates.SetNumberFormat(DateFormat)

	for r, values := range rows {
		if values == nil {
			continue
		}
		row := sheet.Row(uint32(r + 1))
		for c, v := range values {
			if v == nil {
				continue
			}
			cell := row.Cell(reference.IndexToColumn(uint32(c)))
			switch v := v.(type) {
			case string:
				cell.SetString(v)
			case float64:
				cell.SetNumber(v)
			case int:
				cell.SetNumber(float64(v))
			case bool:
				cell.SetBool(v)
			case time.Time:
				cell.SetNumber(Serial(v))
				cell.SetStyle(dates)
			default:
				t.Fatalf("unsupported cell type %T", v)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := wb.SaveToFile(path); err != nil {
		t.Fatalf("failed to save %s: %v", path, err)
	}

	return path
}

// Serial converts t to an Excel 1900-system serial date.
func Serial(t time.Time) float64 {
	epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	days := t.Sub(epoch).Seconds() / 86400
	return math.Round(days*86400) / 86400
}

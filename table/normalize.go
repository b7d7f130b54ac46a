package table

import (
	"fmt"
	"strings"
)

// DefaultDateColumn is the header of the release date column.
const DefaultDateColumn = "发版日期"

const midnight = " 00:00:00"

// Options controls Normalize.
type Options struct {
	// DateColumn names the column whose values lose a trailing " 00:00:00".
	// Empty means DefaultDateColumn.
	DateColumn string
}

var lineBreaks = strings.NewReplacer("\n", " ", "\r", "")

// Normalize converts every cell of t to text, trims the midnight suffix from
// the date column and flattens line breaks. t is not modified.
func Normalize(t *Table, opts Options) (*TextTable, error) {
	dateColumn := opts.DateColumn
	if dateColumn == "" {
		dateColumn = DefaultDateColumn
	}

	out := &TextTable{
		Columns: make([]string, len(t.Columns)),
		Rows:    make([][]string, 0, len(t.Rows)),
	}

	for i, c := range t.Columns {
		out.Columns[i] = lineBreaks.Replace(c)
	}

	dateIx := t.Index(dateColumn)

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i+1, len(row), len(t.Columns))
		}

		record := make([]string, len(row))
		for j, v := range row {
			s := v.String()
			if j == dateIx {
				s = strings.TrimSuffix(s, midnight)
			}
			record[j] = lineBreaks.Replace(s)
		}

		out.Rows = append(out.Rows, record)
	}

	return out, nil
}

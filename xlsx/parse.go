package xlsx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/dashsync/table"
)

// ErrNoHeader is returned for a workbook without sheets or with an empty first sheet.
var ErrNoHeader = errors.New("no header row")

// ReadFile opens the workbook at path and reads its first sheet. A missing
// file yields an error wrapping fs.ErrNotExist.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return ReadTable(f, info.Size())
}

// ReadTable reads an XLSX from r/size and returns the first sheet as a table.
// The first non-empty row is the header; empty cells become table.Empty.
func ReadTable(r io.ReaderAt, size int64) (*table.Table, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, err
	}

	return readWorkbook(wb)
}

func readWorkbook(wb *spreadsheet.Workbook) (*table.Table, error) {
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}

	base, is1904 := epoch(wb)

	// ---- collect rows keyed by row number ----
	type sparseRow struct {
		number uint32
		cells  map[int]table.Value
		width  int
	}

	var rows []sparseRow
	for _, row := range sheets[0].Rows() {
		fillReferences(row)
		sr := sparseRow{number: row.RowNumber(), cells: map[int]table.Value{}}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			v := cellValue(wb, cell, base, is1904)
			if v.Kind == table.Empty {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			sr.cells[colIdx] = v
			if colIdx+1 > sr.width {
				sr.width = colIdx + 1
			}
		}
		if len(sr.cells) > 0 {
			rows = append(rows, sr)
		}
	}

	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	header, data := rows[0], rows[1:]

	width := header.width
	for _, sr := range data {
		width = max(width, sr.width)
	}

	names := make([]string, width)
	for c := range names {
		if v, ok := header.cells[c]; ok {
			names[c] = v.String()
		}
	}

	t := &table.Table{
		Columns: columnNames(names),
	}

	// --- build rows, filling gaps between physical rows ---
	next := header.number + 1
	for _, sr := range data {
		for ; next < sr.number; next++ {
			t.Rows = append(t.Rows, make([]table.Value, width))
		}

		record := make([]table.Value, width)
		for c, v := range sr.cells {
			record[c] = v
		}
		t.Rows = append(t.Rows, record)
		next = sr.number + 1
	}

	return t, nil
}

// fillReferences gives cells without a usable "r" attribute the column after
// the previous cell. Row.Cells skips such cells, and some non-Excel writers
// omit the attribute entirely.
func fillReferences(row spreadsheet.Row) {
	x := row.X()
	if x == nil {
		return
	}

	prev := -1
	for _, c := range x.C {
		if c.RAttr != nil {
			if ref, err := reference.ParseCellReference(*c.RAttr); err == nil {
				prev = int(ref.ColumnIdx)
				continue
			}
		}
		prev++
		c.RAttr = unioffice.Stringf("%s%d", reference.IndexToColumn(uint32(prev)), row.RowNumber())
	}
}

// cellValue resolves a cell into a typed value using its type attribute and,
// for numbers, its number format.
func cellValue(wb *spreadsheet.Workbook, cell spreadsheet.Cell, base time.Time, is1904 bool) table.Value {
	x := cell.X()
	if x == nil {
		return table.EmptyValue()
	}

	switch {
	case isText(x.TAttr):
		if s := cell.GetString(); s != "" {
			return table.TextValue(s)
		}
		return table.EmptyValue()

	case x.V == nil:
		return table.EmptyValue()

	case x.TAttr == sml.ST_CellTypeB:
		return table.BoolValue(*x.V == "1" || *x.V == "true")

	case x.TAttr == sml.ST_CellTypeE:
		return table.TextValue(*x.V)
	}

	f, err := strconv.ParseFloat(*x.V, 64)
	if err != nil {
		if *x.V == "" {
			return table.EmptyValue()
		}
		return table.TextValue(*x.V)
	}

	if x.SAttr != nil {
		if id, code, ok := GetNumFmt(wb.StyleSheet, *x.SAttr); ok {
			switch classify(id, code) {
			case dateTime:
				return table.TimeValue(serialToTime(f, base, is1904))
			case timeOnly:
				return table.ClockValue(serialToTime(f, base, is1904))
			}
		}
	}

	return table.NumberValue(f)
}

// columnNames fills blank header cells with "Unnamed: N" and suffixes
// duplicates with ".1", ".2", ...
func columnNames(raw []string) []string {
	names := make([]string, len(raw))
	taken := map[string]bool{}
	counts := map[string]int{}

	for i, name := range raw {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for taken[candidate] {
			counts[name]++
			candidate = fmt.Sprintf("%s.%d", name, counts[name])
		}

		taken[candidate] = true
		names[i] = candidate
	}

	return names
}

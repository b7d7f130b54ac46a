package table

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Intermediate representation for a loaded sheet.

// Kind tags the original type of a spreadsheet cell.
type Kind int

const (
	Empty Kind = iota
	Text
	Number
	Bool
	Time
	TimeOfDay
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Text:
		return "text"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Time:
		return "time"
	case TimeOfDay:
		return "time-of-day"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single cell as read from the spreadsheet. Only the field matching
// Kind is meaningful.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
	Time   time.Time
}

func TextValue(s string) Value { return Value{Kind: Text, Text: s} }
func NumberValue(f float64) Value { return Value{Kind: Number, Number: f} }
func BoolValue(b bool) Value { return Value{Kind: Bool, Bool: b} }
func TimeValue(t time.Time) Value { return Value{Kind: Time, Time: t} }
func ClockValue(t time.Time) Value { return Value{Kind: TimeOfDay, Time: t} }
func EmptyValue() Value { return Value{} }

// String renders the value the way a generic stringify would: midnight dates
// keep their " 00:00:00" suffix, booleans are capitalised, integral numbers
// have no fraction.
func (v Value) String() string {
	switch v.Kind {
	case Text:
		return v.Text
	case Number:
		return formatNumber(v.Number)
	case Bool:
		if v.Bool {
			return "True"
		}
		return "False"
	case Time:
		return v.Time.Format("2006-01-02 15:04:05")
	case TimeOfDay:
		return v.Time.Format("15:04:05")
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}

	if abs := math.Abs(f); abs >= 1e-4 && abs < 1e16 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'e', -1, 64)
}

// Table holds the header and data rows of one sheet. Every row has exactly
// len(Columns) values, in column order.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// String summarizes the table for log output.
func (t Table) String() string {
	return fmt.Sprintf("Columns: %v, Rows: %d", t.Columns, len(t.Rows))
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	return indexOf(t.Columns, name)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// TextTable is a normalized Table: every cell is plain text with no line breaks.
type TextTable struct {
	Columns []string
	Rows    [][]string
}

// String summarizes the table for log output.
func (t TextTable) String() string {
	return fmt.Sprintf("Columns: %v, Rows: %d", t.Columns, len(t.Rows))
}

func (t *TextTable) Len() int {
	return len(t.Rows)
}

func indexOf(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

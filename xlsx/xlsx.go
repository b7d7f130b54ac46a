package xlsx

import (
	"math"
	"strings"
	"time"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// Built-in number format ids that render as a date (with or without a time
// part). 27-36 and 50-58 are the CJK locale date formats.
var builtinDates = map[uint32]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 57: true, 58: true,
}

// Built-in number format ids that render as a time of day or a duration.
var builtinTimes = map[uint32]bool{
	18: true, 19: true, 20: true, 21: true,
	32: true, 33: true, 34: true, 35: true,
	45: true, 46: true, 47: true,
	55: true, 56: true,
}

type dateKind int

const (
	notDate dateKind = iota
	dateTime
	timeOnly
)

// Helper to extract the number format id and (custom) format code from a style ID
func GetNumFmt(ss spreadsheet.StyleSheet, styleID uint32) (uint32, string, bool) {
	if ss.X() == nil || ss.X().CellXfs == nil {
		return 0, "", false
	}
	if int(styleID) >= len(ss.X().CellXfs.Xf) {
		return 0, "", false
	}
	xf := ss.X().CellXfs.Xf[styleID]
	if xf == nil || xf.NumFmtIdAttr == nil {
		return 0, "", false
	}
	id := *xf.NumFmtIdAttr
	if ss.X().NumFmts != nil {
		for _, nf := range ss.X().NumFmts.NumFmt {
			if nf != nil && nf.NumFmtIdAttr == id {
				return id, nf.FormatCodeAttr, true
			}
		}
	}
	return id, "", true
}

// classify decides whether a number format renders dates, times or plain numbers.
func classify(id uint32, code string) dateKind {
	if code == "" {
		switch {
		case builtinDates[id]:
			return dateTime
		case builtinTimes[id]:
			return timeOnly
		}
		return notDate
	}
	return classifyCode(code)
}

// classifyCode scans the first section of a custom format code for date and
// time tokens, ignoring quoted literals, escaped characters and bracketed
// colour/locale modifiers. Elapsed time brackets ([h], [mm], [ss]) count.
func classifyCode(code string) dateKind {
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	var date, clock, month bool
	runes := []rune(strings.ToLower(code))

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '"':
			for i++; i < len(runes) && runes[i] != '"'; i++ {
			}
		case '\\', '_', '*':
			i++
		case '[':
			j := i + 1
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j > i+1 && j < len(runes) && strings.Trim(string(runes[i+1:j]), "hms") == "" {
				clock = true
			}
			i = j
		case 'y', 'd':
			date = true
		case 'h', 's':
			clock = true
		case 'm':
			month = true
		}
	}

	switch {
	case date || (month && !clock):
		return dateTime
	case clock:
		return timeOnly
	default:
		return notDate
	}
}

// epoch returns the zero date of the workbook's serial date system.
func epoch(wb *spreadsheet.Workbook) (time.Time, bool) {
	if wb.Uses1904Dates() {
		return time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC), false
}

// serialToTime converts an Excel serial date to a time, rounded to the second.
// Serials before 1900-03-01 are shifted to undo the phantom 1900-02-29.
func serialToTime(serial float64, base time.Time, is1904 bool) time.Time {
	if !is1904 && serial > 0 && serial < 60 {
		serial++
	}
	seconds := math.Round(serial * 86400)
	return base.Add(time.Duration(seconds) * time.Second)
}

func isText(t sml.ST_CellType) bool {
	return t == sml.ST_CellTypeS || t == sml.ST_CellTypeStr || t == sml.ST_CellTypeInlineStr
}

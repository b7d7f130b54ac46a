package table

import (
	"encoding/csv"
	"io"
	"strings"
)

// emptyRecord is a record holding one empty field. csv.Writer renders it as a
// blank line, which readers skip.
const emptyRecord = "\"\"\n"

// WriteCSV writes the header and rows of t to w as comma separated records,
// one per line, LF terminated.
func WriteCSV(w io.Writer, t *TextTable) error {
	cw := csv.NewWriter(w)

	if err := writeRecord(w, cw, t.Columns); err != nil {
		return err
	}

	for _, record := range t.Rows {
		if err := writeRecord(w, cw, record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func writeRecord(w io.Writer, cw *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, emptyRecord)
	return err
}

// CSV returns t rendered by WriteCSV.
func CSV(t *TextTable) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, t); err != nil {
		return "", err
	}
	return b.String(), nil
}

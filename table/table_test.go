package table

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressTable() *Table {
	return &Table{
		Columns: []string{"任务", "状态", "发版日期"},
		Rows: [][]Value{
			{TextValue("A"), TextValue("Done"), TimeValue(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))},
			{TextValue("B"), EmptyValue(), EmptyValue()},
		},
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"empty", EmptyValue(), ""},
		{"text", TextValue("hello"), "hello"},
		{"integer", NumberValue(42), "42"},
		{"negative integer", NumberValue(-7), "-7"},
		{"fraction", NumberValue(3.25), "3.25"},
		{"small", NumberValue(0.00001), "1e-05"},
		{"true", BoolValue(true), "True"},
		{"false", BoolValue(false), "False"},
		{"midnight", TimeValue(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)), "2024-01-15 00:00:00"},
		{"afternoon", TimeValue(time.Date(2024, 1, 15, 14, 30, 5, 0, time.UTC)), "2024-01-15 14:30:05"},
		{"clock", ClockValue(time.Date(1899, 12, 30, 9, 5, 0, 0, time.UTC)), "09:05:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.value.String())
		})
	}
}

func TestNormalize_StripsMidnightFromDateColumn(t *testing.T) {
	out, err := Normalize(progressTable(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", out.Rows[0][2])
}

func TestNormalize_KeepsNonMidnightTimes(t *testing.T) {
	in := &Table{
		Columns: []string{"发版日期"},
		Rows: [][]Value{
			{TimeValue(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))},
			{TextValue("TBD")},
		},
	}

	out, err := Normalize(in, Options{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2024-01-15 08:00:00"}, {"TBD"}}, out.Rows)
}

func TestNormalize_OnlyTouchesDateColumn(t *testing.T) {
	in := &Table{
		Columns: []string{"创建时间", "发版日期"},
		Rows: [][]Value{
			{TextValue("2024-01-01 00:00:00"), TextValue("2024-02-01 00:00:00")},
		},
	}

	out, err := Normalize(in, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01 00:00:00", "2024-02-01"}, out.Rows[0])
}

func TestNormalize_CustomDateColumn(t *testing.T) {
	in := &Table{
		Columns: []string{"release", "发版日期"},
		Rows: [][]Value{
			{TextValue("2024-03-01 00:00:00"), TextValue("2024-03-02 00:00:00")},
		},
	}

	out, err := Normalize(in, Options{DateColumn: "release"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02 00:00:00"}, out.Rows[0])
}

func TestNormalize_FlattensLineBreaks(t *testing.T) {
	in := &Table{
		Columns: []string{"备注"},
		Rows: [][]Value{
			{TextValue("line1\nline2")},
			{TextValue("a\r\nb")},
			{TextValue("\r")},
		},
	}

	out, err := Normalize(in, Options{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"line1 line2"}, {"a b"}, {""}}, out.Rows)
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	in := progressTable()

	_, err := Normalize(in, Options{})
	require.NoError(t, err)
	assert.Equal(t, progressTable(), in)
}

func TestNormalize_RaggedRow(t *testing.T) {
	in := &Table{
		Columns: []string{"a", "b"},
		Rows:    [][]Value{{TextValue("x")}},
	}

	_, err := Normalize(in, Options{})
	assert.Error(t, err)
}

func TestCSV(t *testing.T) {
	out, err := Normalize(progressTable(), Options{})
	require.NoError(t, err)

	text, err := CSV(out)
	require.NoError(t, err)
	assert.Equal(t, "任务,状态,发版日期\nA,Done,2024-01-15\nB,,\n", text)
}

func TestCSV_EmptyCellsAreEmptyFields(t *testing.T) {
	in := &Table{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]Value{{EmptyValue(), NumberValue(1), EmptyValue()}},
	}

	out, err := Normalize(in, Options{})
	require.NoError(t, err)

	text, err := CSV(out)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\n,1,\n", text)
	assert.NotContains(t, text, "nan")
	assert.NotContains(t, text, "None")
}

func TestCSV_Quoting(t *testing.T) {
	in := &TextTable{
		Columns: []string{"name", "note"},
		Rows:    [][]string{{"a,b", `say "hi"`}},
	}

	text, err := CSV(in)
	require.NoError(t, err)
	assert.Equal(t, "name,note\n\"a,b\",\"say \"\"hi\"\"\"\n", text)
}

func TestCSV_Deterministic(t *testing.T) {
	first, err := Normalize(progressTable(), Options{})
	require.NoError(t, err)
	second, err := Normalize(progressTable(), Options{})
	require.NoError(t, err)

	a, err := CSV(first)
	require.NoError(t, err)
	b, err := CSV(second)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCSV_SingleColumnEmptyRow(t *testing.T) {
	in := &Table{
		Columns: []string{"任务"},
		Rows:    [][]Value{{TextValue("A")}, {EmptyValue()}, {TextValue("C")}},
	}

	out, err := Normalize(in, Options{})
	require.NoError(t, err)

	text, err := CSV(out)
	require.NoError(t, err)
	assert.Equal(t, "任务\nA\n\"\"\nC\n", text)

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"任务"}, {"A"}, {""}, {"C"}}, records)
}

func TestTableString(t *testing.T) {
	in := progressTable()
	assert.Equal(t, "Columns: [任务 状态 发版日期], Rows: 2", in.String())

	out, err := Normalize(in, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Columns: [任务 状态 发版日期], Rows: 2", out.String())
}

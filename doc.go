/*
Package dashsync copies a project progress spreadsheet into a static HTML dashboard.

The first sheet of the workbook is read, every cell is rendered as text, the
release date column loses its midnight time suffix and line breaks are
flattened. The result is serialized as CSV and written into the dashboard's
embedded data block:

	const rawData = `任务,状态,发版日期
	A,Done,2024-01-15
	`;

Only the text between the backticks changes; the rest of the HTML is kept as is.
*/
package dashsync

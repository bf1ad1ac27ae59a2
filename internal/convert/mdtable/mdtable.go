// Package mdtable renders tabular data (CSV rows, XLSX sheets) into
// Markdown tables. Adapted from the teacher's table_renderer.go, trimmed to
// the generic header/rows shape this project's converters need.
package mdtable

import (
	"strings"
)

// Render produces a Markdown table from headers and rows. If headers is
// empty, the first row is used as the header and the remaining rows become
// the body. Cells are escaped so embedded pipes and newlines cannot break
// the table's column alignment.
func Render(headers []string, rows [][]string) string {
	if len(headers) == 0 && len(rows) > 0 {
		headers = rows[0]
		rows = rows[1:]
	}
	if len(headers) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow(&b, headers)
	writeSeparator(&b, len(headers))
	for _, row := range rows {
		writeRow(&b, padTo(row, len(headers)))
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, n int) {
	b.WriteString("|")
	for i := 0; i < n; i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
}

func padTo(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

// escapeCell escapes pipe and newline characters so a cell value cannot
// break a Markdown table's row structure.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}

// Package table defines the in-memory tabular value shared by the
// ingestion sources and the profiling engine.
package table

import "strings"

// MaxCellLen bounds cell values in rendered previews.
const MaxCellLen = 200

// Table is an immutable rectangular-ish grid of text cells. Rows may be
// ragged: a row's length is allowed to differ from len(Headers).
type Table struct {
	Headers []string
	Rows    [][]string
}

// New constructs a Table over the given headers and rows.
func New(headers []string, rows [][]string) *Table {
	return &Table{Headers: headers, Rows: rows}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumColumns returns the number of header columns.
func (t *Table) NumColumns() int { return len(t.Headers) }

// Cell returns the trimmed cell at (row, col) and whether it is non-empty.
// Positions beyond a ragged row's end read as empty.
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	v := strings.TrimSpace(r[col])
	return v, v != ""
}

// Truncate shortens s to max runes, appending "..." when it was cut.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// Markdown renders the table as a markdown grid, padding or cutting ragged
// rows to the header width and bounding each cell at MaxCellLen. maxRows <= 0
// renders every row.
func (t *Table) Markdown(maxRows int) string {
	rows := t.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(t.Headers, " | ") + " |\n")
	b.WriteString("|")
	for range t.Headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(t.Headers))
		for i := range t.Headers {
			if i < len(row) {
				cells[i] = Truncate(row[i], MaxCellLen)
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

package cli

import (
	"strings"
)

// Table renders rows of text in aligned columns. It backs the plain
// preview output on non-terminal writers, where ANSI swatches are not
// an option.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2,
	}
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render returns the table as a string: header line, dash separator,
// then one line per row, each column sized to its widest cell.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	line := make([]string, len(t.headers))
	var sb strings.Builder

	for i, h := range t.headers {
		line[i] = padRight(h, widths[i])
	}
	sb.WriteString(strings.Join(line, gap))
	sb.WriteString("\n")

	for i, w := range widths {
		line[i] = strings.Repeat("-", w)
	}
	sb.WriteString(strings.Join(line, gap))
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			line[i] = padRight(cell, widths[i])
		}
		sb.WriteString(strings.Join(line, gap))
		sb.WriteString("\n")
	}

	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

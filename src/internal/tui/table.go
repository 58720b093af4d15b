package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a bordered table with an optional title. Column widths grow to
// fit the widest cell.
type Table struct {
	title      string
	columns    []column
	rows       []tableRow
	hideHeader bool
	minWidth   int
}

type column struct {
	header string
	width  int
}

type tableRow struct {
	cells  []string
	active bool
}

// NewTable creates a table with one column per header.
func NewTable(headers ...string) *Table {
	t := &Table{columns: make([]column, len(headers))}
	for i, h := range headers {
		t.columns[i] = column{header: h, width: lipgloss.Width(h)}
	}
	return t
}

// SetTitle sets a title centered above the columns.
func (t *Table) SetTitle(title string) {
	t.title = title
}

// HideHeader leaves out the header row and its rule.
func (t *Table) HideHeader() {
	t.hideHeader = true
}

// SetMinWidth pads the last column so the table is at least width cells
// wide inside its border.
func (t *Table) SetMinWidth(width int) {
	t.minWidth = width
}

// AddRow appends a row. Cells beyond the column count are dropped.
func (t *Table) AddRow(cells ...string) {
	t.add(cells, false)
}

// AddActiveRow appends a row drawn in the active style.
func (t *Table) AddActiveRow(cells ...string) {
	t.add(cells, true)
}

func (t *Table) add(cells []string, active bool) {
	row := tableRow{cells: make([]string, len(t.columns)), active: active}
	for i := range t.columns {
		if i >= len(cells) {
			break
		}
		row.cells[i] = cells[i]
		// lipgloss.Width ignores ANSI sequences in pre-styled cells
		t.columns[i].width = max(t.columns[i].width, lipgloss.Width(cells[i]))
	}
	t.rows = append(t.rows, row)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Render draws the table. A table without columns renders as "".
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	initStyles()

	widths, total := t.layout()
	var lines []string

	if t.title != "" {
		lines = append(lines,
			StyleTitle.Width(total).Render(t.title),
			rule(total))
	}

	if !t.hideHeader {
		headers := make([]string, len(t.columns))
		for i, c := range t.columns {
			headers[i] = c.header
		}
		lines = append(lines, renderCells(StyleTableHeader, headers, widths))

		var sep strings.Builder
		for _, w := range widths {
			sep.WriteString(rule(w))
		}
		lines = append(lines, sep.String())
	}

	for _, row := range t.rows {
		style := StyleTableCell
		if row.active {
			style = StyleTableRowActive
		}
		lines = append(lines, renderCells(style, row.cells, widths))
	}

	return StyleTableBorder.Render(strings.Join(lines, "\n"))
}

// layout returns the rendered width of each column, padding included, and
// their sum after applying the minimum width.
func (t *Table) layout() ([]int, int) {
	widths := make([]int, len(t.columns))
	total := 0
	for i, c := range t.columns {
		widths[i] = c.width + 2
		total += widths[i]
	}
	if t.minWidth > total {
		widths[len(widths)-1] += t.minWidth - total
		total = t.minWidth
	}
	return widths, total
}

func renderCells(style lipgloss.Style, cells []string, widths []int) string {
	var line strings.Builder
	for i, cell := range cells {
		line.WriteString(style.Width(widths[i]).Render(cell))
	}
	return line.String()
}

func rule(width int) string {
	return StyleMuted.Render(strings.Repeat("─", width))
}

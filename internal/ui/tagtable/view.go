package tagtable

import (
	"strings"

	"github.com/llehouerou/tagbatch/internal/table"
	"github.com/llehouerou/tagbatch/internal/ui"
	"github.com/llehouerou/tagbatch/internal/ui/render"
	"github.com/llehouerou/tagbatch/internal/ui/styles"
)

const (
	arrowAscending  = "⇧"
	arrowDescending = "⇩"
)

var columnWeights = []int{1, 1, 1, 1, ui.LyricsWeight}

// HeaderLabel returns the column title with its sort indicator.
func HeaderLabel(col table.Column, state table.SortState) string {
	switch state {
	case table.Ascending:
		return col.String() + " " + arrowAscending
	case table.Descending:
		return col.String() + " " + arrowDescending
	default:
		return col.String()
	}
}

// View renders the table inside a panel.
func (m Model) View() string {
	if m.Width() < 2 || m.Height() < ui.PanelOverhead {
		return ""
	}

	innerWidth := m.Width() - 2
	height := m.listHeight()
	widths := render.ColumnWidths(innerWidth, ui.ColumnGap, ui.MinColumnWidth, columnWeights)
	gap := strings.Repeat(" ", ui.ColumnGap)
	t := styles.T().S()

	lines := make([]string, 0, height+ui.HeaderHeight)

	headers := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		state := table.Unsorted
		if col == m.sortCol {
			state = m.sortState
		}
		cell := render.CellText(HeaderLabel(col, state), widths[i])
		if state != table.Unsorted {
			headers[i] = t.SortHeader.Render(cell)
		} else {
			headers[i] = t.Header.Render(cell)
		}
	}
	lines = append(lines, strings.Join(headers, gap), t.Subtle.Render(render.Separator(innerWidth)))

	start, end := m.cur.visibleRange(len(m.rows), height)
	for row := start; row < end; row++ {
		lines = append(lines, m.renderRow(row, widths, gap))
	}

	if len(m.rows) == 0 {
		lines = append(lines, t.Muted.Render(render.TruncateAndPad("No MP3 files", innerWidth)))
	}
	for len(lines) < height+ui.HeaderHeight {
		lines = append(lines, "")
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(row int, widths []int, gap string) string {
	t := styles.T().S()
	rec := m.rows[row]
	selected := row == m.cur.pos

	cells := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cell := render.CellText(col.Value(rec), widths[i])
		switch {
		case selected && col == m.col:
			cells[i] = t.CursorCell.Render(cell)
		case selected:
			cells[i] = t.CursorRow.Render(cell)
		case col == table.ColFilename:
			cells[i] = t.Muted.Render(cell)
		default:
			cells[i] = t.Base.Render(cell)
		}
	}

	sep := gap
	if selected {
		sep = t.CursorRow.Render(gap)
	}
	return strings.Join(cells, sep)
}

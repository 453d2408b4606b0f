// Package tagtable renders the records of an edit session as a table with a
// row and column cursor.
package tagtable

import (
	"github.com/llehouerou/tagbatch/internal/keymap"
	"github.com/llehouerou/tagbatch/internal/table"
	"github.com/llehouerou/tagbatch/internal/tags"
	"github.com/llehouerou/tagbatch/internal/ui"
)

// Model is the table view. It only holds display copies of the records.
type Model struct {
	ui.Base
	rows      []tags.Record
	sortCol   table.Column
	sortState table.SortState
	cur       cursor
	col       table.Column
}

// New creates an empty table with the cursor on the Title column.
func New() Model {
	return Model{
		cur: cursor{margin: ui.ScrollMargin},
		col: table.ColTitle,
	}
}

// SetRows replaces the displayed records, keeping the cursor in range.
func (m *Model) SetRows(rows []tags.Record) {
	m.rows = rows
	m.cur.clampToBounds(len(m.rows), m.listHeight())
}

// SetSort sets the column whose header shows a sort indicator.
func (m *Model) SetSort(col table.Column, state table.SortState) {
	m.sortCol = col
	m.sortState = state
}

// SetSize sets the dimensions and re-clamps the scroll position.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cur.ensureVisible(len(m.rows), m.listHeight())
}

// Len returns the number of rows.
func (m Model) Len() int {
	return len(m.rows)
}

// Cursor returns the selected row.
func (m Model) Cursor() int {
	return m.cur.pos
}

// Column returns the selected column.
func (m Model) Column() table.Column {
	return m.col
}

// Selected returns the record under the cursor.
func (m Model) Selected() (tags.Record, bool) {
	if len(m.rows) == 0 {
		return tags.Record{}, false
	}
	return m.rows[m.cur.pos], true
}

// SelectRow moves the cursor to row.
func (m *Model) SelectRow(row int) {
	m.cur.jump(row, len(m.rows), m.listHeight())
}

// SelectColumn moves the column cursor to col.
func (m *Model) SelectColumn(col table.Column) {
	if col.Valid() {
		m.col = col
	}
}

// HandleAction applies a navigation action and reports whether it was one.
func (m *Model) HandleAction(a keymap.Action) bool {
	height := m.listHeight()
	n := len(m.rows)

	switch a {
	case keymap.ActionMoveUp:
		m.cur.move(-1, n, height)
	case keymap.ActionMoveDown:
		m.cur.move(1, n, height)
	case keymap.ActionPageUp:
		m.cur.move(-max(height-1, 1), n, height)
	case keymap.ActionPageDown:
		m.cur.move(max(height-1, 1), n, height)
	case keymap.ActionJumpStart:
		m.cur.jump(0, n, height)
	case keymap.ActionJumpEnd:
		m.cur.jump(n-1, n, height)
	case keymap.ActionMoveLeft:
		if m.col > table.ColFilename {
			m.col--
		}
	case keymap.ActionMoveRight:
		if m.col < table.ColLyrics {
			m.col++
		}
	default:
		return false
	}
	return true
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

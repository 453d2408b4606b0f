package tagtable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tagbatch/internal/keymap"
	"github.com/llehouerou/tagbatch/internal/table"
	"github.com/llehouerou/tagbatch/internal/tags"
	"github.com/llehouerou/tagbatch/internal/ui/testutil"
)

func sampleRows() []tags.Record {
	return []tags.Record{
		{Filename: "a.mp3", Title: "X"},
		{Filename: "b.mp3"},
		{Filename: "c.mp3", Title: "Y", Lyrics: "first line\nsecond line"},
	}
}

func newTable(rows []tags.Record) Model {
	m := New()
	m.SetSize(100, 12)
	m.SetRows(rows)
	return m
}

func TestModel_Navigation(t *testing.T) {
	m := newTable(sampleRows())

	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, table.ColTitle, m.Column())

	assert.True(t, m.HandleAction(keymap.ActionMoveDown))
	assert.Equal(t, 1, m.Cursor())

	m.HandleAction(keymap.ActionJumpEnd)
	assert.Equal(t, 2, m.Cursor())

	m.HandleAction(keymap.ActionMoveDown)
	assert.Equal(t, 2, m.Cursor(), "cursor stays on the last row")

	m.HandleAction(keymap.ActionJumpStart)
	assert.Equal(t, 0, m.Cursor())

	m.HandleAction(keymap.ActionMoveLeft)
	assert.Equal(t, table.ColFilename, m.Column())
	m.HandleAction(keymap.ActionMoveLeft)
	assert.Equal(t, table.ColFilename, m.Column(), "column stays on the first column")

	for range 10 {
		m.HandleAction(keymap.ActionMoveRight)
	}
	assert.Equal(t, table.ColLyrics, m.Column())

	assert.False(t, m.HandleAction(keymap.ActionSave))
}

func TestModel_PageMoves(t *testing.T) {
	rows := make([]tags.Record, 50)
	for i := range rows {
		rows[i] = tags.Record{Filename: strings.Repeat("x", i+1) + ".mp3"}
	}
	m := newTable(rows)

	m.HandleAction(keymap.ActionPageDown)
	assert.Equal(t, 7, m.Cursor(), "page is list height minus one")

	m.HandleAction(keymap.ActionPageUp)
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_SetRowsClampsCursor(t *testing.T) {
	m := newTable(sampleRows())
	m.HandleAction(keymap.ActionJumpEnd)

	m.SetRows(sampleRows()[:1])
	assert.Equal(t, 0, m.Cursor())

	m.SetRows(nil)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_SelectRow(t *testing.T) {
	m := newTable(sampleRows())

	m.SelectRow(2)
	rec, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c.mp3", rec.Filename)

	m.SelectRow(99)
	assert.Equal(t, 2, m.Cursor())
}

func TestHeaderLabel(t *testing.T) {
	assert.Equal(t, "Title", HeaderLabel(table.ColTitle, table.Unsorted))
	assert.Equal(t, "Title ⇧", HeaderLabel(table.ColTitle, table.Ascending))
	assert.Equal(t, "Album ⇩", HeaderLabel(table.ColAlbum, table.Descending))
}

func TestView_HeadersAndRows(t *testing.T) {
	m := newTable(sampleRows())
	m.SetSort(table.ColTitle, table.Ascending)

	view := testutil.StripANSI(m.View())

	for _, want := range []string{"Filename", "Title ⇧", "Artist", "Album", "Lyrics", "a.mp3", "b.mp3", "c.mp3"} {
		assert.Contains(t, view, want)
	}
	assert.Contains(t, view, "first line second line", "lyrics are flattened onto one line")
}

func TestView_LinesHaveEqualWidth(t *testing.T) {
	m := newTable(sampleRows())
	lines := testutil.SplitLines(m.View())
	require.NotEmpty(t, lines)

	width := testutil.MeasureWidth(lines[0])
	assert.Equal(t, 100, width)
	for i, line := range lines {
		assert.Equal(t, width, testutil.MeasureWidth(line), "line %d", i)
	}
}

func TestView_Empty(t *testing.T) {
	m := newTable(nil)

	assert.Contains(t, testutil.StripANSI(m.View()), "No MP3 files")
}

func TestView_TooSmall(t *testing.T) {
	m := New()
	m.SetSize(1, 1)
	assert.Empty(t, m.View())
}

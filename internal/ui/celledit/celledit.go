// Package celledit provides the popup used to edit one table cell.
// Single-line fields use a text input; lyrics use a multi-line text area.
package celledit

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tagbatch/internal/keymap"
	"github.com/llehouerou/tagbatch/internal/table"
	"github.com/llehouerou/tagbatch/internal/ui"
	"github.com/llehouerou/tagbatch/internal/ui/popup"
	"github.com/llehouerou/tagbatch/internal/ui/render"
	"github.com/llehouerou/tagbatch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

const lyricsHeight = 10

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model edits the value of a single cell.
type Model struct {
	ui.Base
	keys      *keymap.Resolver
	row       int
	column    table.Column
	filename  string
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

// New creates an idle editor.
func New() Model {
	return Model{keys: keymap.ForContexts("edit")}
}

// Start opens the editor on a cell holding value.
func (m *Model) Start(row int, column table.Column, filename, value string, width, height int) tea.Cmd {
	m.row = row
	m.column = column
	m.filename = filename
	m.multiline = column == table.ColLyrics
	m.Base.SetSize(width, height)

	if m.multiline {
		m.area = textarea.New()
		m.area.ShowLineNumbers = false
		m.area.CharLimit = 0
		m.area.MaxHeight = 0
		m.area.SetValue(value)
		m.resizeArea()
		return m.area.Focus()
	}

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.CharLimit = 0
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

// SetSize sets the popup dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if m.multiline {
		m.resizeArea()
	}
}

func (m *Model) resizeArea() {
	m.area.SetWidth(max(m.Width(), 10))
	m.area.SetHeight(min(lyricsHeight, max(m.Height()-6, 3)))
}

// Value returns the text currently in the editor.
func (m Model) Value() string {
	if m.multiline {
		return m.area.Value()
	}
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		key := keyMsg.String()
		// Enter inserts a line break in lyrics; ctrl+s applies.
		if !(m.multiline && key == "enter") {
			switch m.keys.Resolve(key) {
			case keymap.ActionCancel:
				res := Result{Row: m.row, Column: m.column, Canceled: true}
				return m, func() tea.Msg { return ActionMsg(res) }
			case keymap.ActionConfirm:
				res := Result{Row: m.row, Column: m.column, Value: m.Value()}
				return m, func() tea.Msg { return ActionMsg(res) }
			}
		}
	}

	var cmd tea.Cmd
	if m.multiline {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	title := titleStyle().Render("Edit " + m.column.String())
	file := styles.T().S().Muted.Render(render.Truncate(m.filename, m.Width()))

	var field, hint string
	if m.multiline {
		field = m.area.View()
		hint = "ctrl+s: apply, enter: new line, esc: cancel"
	} else {
		field = m.input.View()
		hint = "enter: apply, esc: cancel"
	}

	return title + "\n" + file + "\n\n" + field + "\n\n" + hintStyle().Render(hint)
}

package app

import (
	"strings"

	"github.com/llehouerou/tagbatch/internal/ui/headerbar"
	"github.com/llehouerou/tagbatch/internal/ui/jobbar"
	"github.com/llehouerou/tagbatch/internal/ui/popup"
	"github.com/llehouerou/tagbatch/internal/ui/render"
	"github.com/llehouerou/tagbatch/internal/ui/styles"
)

// statusHeight is the line under the table used for status messages.
const statusHeight = 1

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	dir := ""
	count := 0
	if m.Session != nil {
		dir = m.Session.Dir
		count = m.Session.Store.Len()
	}

	parts := []string{headerbar.Render(dir, count, m.Width), m.Table.View()}
	if bar := jobbar.Render(m.JobView, m.Width); bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, m.renderStatus())
	base := strings.Join(parts, "\n")

	var content string
	size := popup.SizeWide
	switch m.Popup {
	case PopupPrompt:
		content = m.Prompt.View()
	case PopupEditor:
		content = m.Editor.View()
	case PopupHelp:
		content = m.Help.View()
		size = popup.SizeAuto
	case PopupNone:
		return base
	}

	return popup.Compose(base, popup.RenderBordered(content, m.Width, m.Height, size), m.Width)
}

func (m Model) renderStatus() string {
	t := styles.T().S()
	text := render.Truncate(m.Status.Text, m.Width)
	if m.Status.Error {
		return t.Error.Render(text)
	}
	return t.Success.Render(text)
}

// resize distributes the terminal height between the components.
func (m *Model) resize() {
	tableHeight := m.Height - headerbar.Height - statusHeight - jobbar.Height(m.JobView != nil)
	m.Table.SetSize(m.Width, max(tableHeight, 0))

	w, h := m.popupSize()
	m.Prompt.SetSize(w, h)
	m.Editor.SetSize(w, h)
	m.Help.SetSize(m.Width, m.Height)
}

func (m Model) popupSize() (width, height int) {
	return popup.ContentWidth(m.Width, popup.SizeWide), max(m.Height-8, 4)
}

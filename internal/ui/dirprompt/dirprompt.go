// Package dirprompt provides the popup that selects the directory to load.
package dirprompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tagbatch/internal/keymap"
	"github.com/llehouerou/tagbatch/internal/state"
	"github.com/llehouerou/tagbatch/internal/ui"
	"github.com/llehouerou/tagbatch/internal/ui/popup"
	"github.com/llehouerou/tagbatch/internal/ui/render"
	"github.com/llehouerou/tagbatch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Model prompts for a directory path, offering recently opened ones.
type Model struct {
	ui.Base
	keys     *keymap.Resolver
	input    textinput.Model
	recent   []state.RecentDir
	selected int // index into recent, -1 when the path was typed
}

// New creates an idle prompt.
func New() Model {
	return Model{keys: keymap.ForContexts("prompt"), selected: -1}
}

// Start opens the prompt prefilled with initial.
func (m *Model) Start(initial string, recent []state.RecentDir, width, height int) tea.Cmd {
	m.SetSize(width, height)
	m.recent = recent
	m.selected = -1

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "/path/to/music"
	m.input.CharLimit = 0
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Value returns the path currently typed.
func (m Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.keys.Resolve(keyMsg.String()) {
		case keymap.ActionCancel:
			return m, func() tea.Msg { return ActionMsg(Result{Canceled: true}) }
		case keymap.ActionConfirm:
			dir := strings.TrimSpace(m.input.Value())
			return m, func() tea.Msg { return ActionMsg(Result{Dir: dir}) }
		case keymap.ActionRecent:
			m.nextRecent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.selected = -1
	}
	return m, cmd
}

func (m *Model) nextRecent() {
	if len(m.recent) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.recent)
	m.input.SetValue(m.recent[m.selected].Path)
	m.input.CursorEnd()
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Open directory"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	if len(m.recent) > 0 {
		sb.WriteString("\n")
		sb.WriteString(t.S().Muted.Render("Recent"))
		sb.WriteString("\n")

		ageWidth := 0
		ages := make([]string, len(m.recent))
		for i, d := range m.recent {
			ages[i] = humanize.Time(d.OpenedAt)
			ageWidth = max(ageWidth, lipgloss.Width(ages[i]))
		}
		pathWidth := max(m.Width()-ageWidth-4, 10)

		for i, d := range m.recent {
			marker := "  "
			style := t.S().Base
			if i == m.selected {
				marker = "▸ "
				style = t.S().CursorRow
			}
			line := marker + render.TruncateAndPad(d.Path, pathWidth) + "  " + t.S().Subtle.Render(ages[i])
			sb.WriteString(style.Render(line))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(t.S().Subtle.Render("enter: load, tab: recent, esc: close"))
	return sb.String()
}

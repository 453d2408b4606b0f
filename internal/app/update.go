package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tagbatch/internal/keymap"
	"github.com/llehouerou/tagbatch/internal/ui/action"
	"github.com/llehouerou/tagbatch/internal/ui/celledit"
	"github.com/llehouerou/tagbatch/internal/ui/dirprompt"
	"github.com/llehouerou/tagbatch/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case PollMsg:
		return m.handlePoll()

	case StatusClearMsg:
		if msg.Seq == m.statusSeq {
			m.Status = Status{}
		}
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToPopup(msg)
}

// forwardToPopup passes non-key messages (cursor blink) to the open popup.
func (m Model) forwardToPopup(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Popup {
	case PopupPrompt:
		_, cmd = m.Prompt.Update(msg)
	case PopupEditor:
		_, cmd = m.Editor.Update(msg)
	case PopupHelp, PopupNone:
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.Popup {
	case PopupPrompt:
		_, cmd := m.Prompt.Update(msg)
		return m, cmd
	case PopupEditor:
		_, cmd := m.Editor.Update(msg)
		return m, cmd
	case PopupHelp:
		_, cmd := m.Help.Update(msg)
		return m, cmd
	case PopupNone:
	}

	a := m.keys.Resolve(msg.String())
	if m.Table.HandleAction(a) {
		return m, nil
	}

	switch a {
	case keymap.ActionQuit:
		if m.Busy() {
			m.setError("Wait for the running job to finish (ctrl+c to force)")
			return m, nil
		}
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Help.SetContexts([]string{"global", "table", "edit", "prompt"})
		m.Popup = PopupHelp
		m.resize()
		return m, nil
	case keymap.ActionOpen:
		if m.Busy() {
			m.setBusy()
			return m, nil
		}
		return m, m.openPrompt()
	case keymap.ActionEdit:
		return m.beginEdit()
	case keymap.ActionSave:
		return m.save()
	case keymap.ActionSortColumn:
		return m.sort(m.Table.Column())
	}

	if idx, ok := keymap.SortIndex(a); ok {
		return m.sortByIndex(idx)
	}
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case dirprompt.Result:
		return m.handlePromptResult(a)
	case celledit.Result:
		return m.handleEditResult(a)
	case helpbindings.Close:
		m.Popup = PopupNone
		return m, nil
	}
	return m, nil
}

package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tagbatch/internal/ui/popup"
)

// PopupHarness wraps a popup for testing, providing helpers to simulate
// user interactions and inspect state.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness creates a test harness for any popup.Popup implementation.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the underlying popup for type assertion when needed.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the popup's rendered content without styling.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// SendMsg sends any message to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing a rune key such as "?" or "q".
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Type sends each rune of text as its own key press.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *PopupHarness) SendEnter() tea.Cmd { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }
func (h *PopupHarness) SendTab() tea.Cmd { return h.SendSpecialKey(tea.KeyTab) }
func (h *PopupHarness) SendUp() tea.Cmd { return h.SendSpecialKey(tea.KeyUp) }
func (h *PopupHarness) SendDown() tea.Cmd { return h.SendSpecialKey(tea.KeyDown) }

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

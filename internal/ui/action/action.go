// Package action defines the messages UI components send to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is an outcome reported by a UI component.
// ActionType returns an identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
type Msg struct {
	Source string // "celledit", "dirprompt", "helpbindings"
	Action Action
}

var _ tea.Msg = Msg{}

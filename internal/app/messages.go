package app

import "time"

// PollMsg asks the model to check the running job for progress.
type PollMsg time.Time

// StatusClearMsg clears a transient status if it is still the one shown.
type StatusClearMsg struct {
	Seq int
}

// PopupKind identifies the modal popup currently shown.
type PopupKind int

const (
	PopupNone PopupKind = iota
	PopupPrompt
	PopupEditor
	PopupHelp
)

// Status is the one-line message shown under the table.
type Status struct {
	Text  string
	Error bool
}

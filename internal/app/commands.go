package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a transient success message stays visible.
const statusTimeout = 5 * time.Second

// PollCmd returns a command that sends PollMsg after interval.
func PollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}

// StatusClearCmd returns a command that clears status seq after statusTimeout.
func StatusClearCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
		return StatusClearMsg{Seq: seq}
	})
}

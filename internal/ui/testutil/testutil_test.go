package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tagbatch/internal/ui/popup"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"truecolor", "\x1b[38;2;167;139;250mx\x1b[0m", "x"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31m日本\x1b[0m"); got != 4 {
		t.Errorf("MeasureWidth = %d, want 4", got)
	}
}

func TestFindLine(t *testing.T) {
	out := "first\nsecond line\nthird"

	if got := FindLine(out, "second"); got != "second line" {
		t.Errorf("FindLine = %q, want %q", got, "second line")
	}
	if got := FindLine(out, "missing"); got != "" {
		t.Errorf("FindLine for missing = %q, want empty", got)
	}
	if !ContainsLine(out, "third") {
		t.Error("ContainsLine(third) = false")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines = %q, want [a b]", got)
	}
}

type mockPopup struct {
	keys []string
}

var _ popup.Popup = (*mockPopup)(nil)

func (m *mockPopup) Init() tea.Cmd { return nil }

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keys = append(m.keys, key.String())
		if key.Type == tea.KeyEnter {
			return m, func() tea.Msg { return "enter-pressed" }
		}
	}
	return m, nil
}

func (m *mockPopup) View() string { return "\x1b[1mmock\x1b[0m" }
func (m *mockPopup) SetSize(width, height int) {}

func TestPopupHarness(t *testing.T) {
	m := &mockPopup{}
	h := NewPopupHarness(m)

	h.Type("ab")
	h.SendEnter()

	if len(m.keys) != 3 || m.keys[0] != "a" || m.keys[1] != "b" || m.keys[2] != "enter" {
		t.Errorf("keys = %v, want [a b enter]", m.keys)
	}
	if msg := ExecuteCmd(h.LastCommand()); msg != "enter-pressed" {
		t.Errorf("last command produced %v, want enter-pressed", msg)
	}
	if h.View() != "mock" {
		t.Errorf("View() = %q, want stripped %q", h.View(), "mock")
	}
}

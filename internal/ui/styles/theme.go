package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the editor.
type Theme struct {
	Primary   lipgloss.Color // focused cell, sorted column
	Secondary lipgloss.Color // header gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color // cursor row highlight
	BgCell   lipgloss.Color // focused cell highlight

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base       lipgloss.Style
	Muted      lipgloss.Style
	Subtle     lipgloss.Style
	Title      lipgloss.Style
	Header     lipgloss.Style // column headers
	SortHeader lipgloss.Style // header of the sorted column
	CursorRow  lipgloss.Style
	CursorCell lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),
	BgCell:   lipgloss.Color("#4c3d7a"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Bold(true),
		SortHeader: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		CursorRow: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		CursorCell: lipgloss.NewStyle().
			Background(t.BgCell).
			Foreground(t.FgBase).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

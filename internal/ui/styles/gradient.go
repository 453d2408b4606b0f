package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Brand renders the application name in bold with the theme gradient.
func Brand(name string) string {
	return gradient(name, T().Primary, T().Secondary, true)
}

// BarGradient colors the filled part of a progress bar.
func BarGradient(bar string) string {
	return gradient(bar, T().Primary, T().Success, false)
}

// gradient colors each grapheme of text along an HCL blend from one theme
// color to the other. Non-hex colors fall back to the plain from color.
func gradient(text string, from, to lipgloss.Color, bold bool) string {
	var graphemes []string
	for g := uniseg.NewGraphemes(text); g.Next(); {
		graphemes = append(graphemes, g.Str())
	}

	base := lipgloss.NewStyle().Bold(bold)
	start, errFrom := colorful.Hex(string(from))
	end, errTo := colorful.Hex(string(to))
	if len(graphemes) < 2 || errFrom != nil || errTo != nil {
		if text == "" {
			return ""
		}
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, hex := range blend(start, end, len(graphemes)) {
		b.WriteString(base.Foreground(lipgloss.Color(hex)).Render(graphemes[i]))
	}
	return b.String()
}

// blend returns n hex colors from start to end inclusive.
func blend(start, end colorful.Color, n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped().Hex()
	}
	return out
}

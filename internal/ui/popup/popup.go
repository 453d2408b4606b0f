package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tagbatch/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeWide = SizeConfig{WidthPct: 70, HeightPct: 0} // cell editor, directory prompt
	SizeAuto = SizeConfig{}                           // help
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // border
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

// ContentWidth returns the inner width a popup of the given size gets.
func ContentWidth(screenW int, size SizeConfig) int {
	if size.WidthPct > 0 {
		return max(screenW*size.WidthPct/100-6, 10)
	}
	return max(screenW-10, 10)
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	contentHeight := strings.Count(content, "\n") + 1 + 4 // padding + border
	height = min(contentHeight, max(screenH-4, 3))
	if size.HeightPct > 0 {
		height = screenH * size.HeightPct / 100
	}

	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, height
	}

	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 && width > size.MaxWidth {
		width = size.MaxWidth
	}
	width = min(width, max(screenW-4, 6))
	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

// Center centers pre-rendered content in the terminal.
func Center(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	boxWidth := maxLineWidth(box)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

// Compose overlays popupView on top of base.
// Non-space characters in the overlay replace the base at the same position;
// both strings may carry ANSI styling.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// A wide character cut at startCol is dropped from the prefix; pad back.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			if w := ansi.StringWidth(suffix); w < width-endCol {
				result += strings.Repeat(" ", width-endCol-w)
			}
			result += suffix
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

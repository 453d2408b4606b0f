// Package headerbar renders the single-line bar at the top of the screen.
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tagbatch/internal/ui/render"
	"github.com/llehouerou/tagbatch/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appTitle = "tagbatch"

// Render returns the header bar: title, loaded directory and record count.
// dir is empty when nothing has been loaded yet.
func Render(dir string, count, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T().S()

	left := styles.Brand(appTitle)

	right := t.Muted.Render("? help")
	if dir != "" {
		right = t.Muted.Render(fmt.Sprintf("%d files", count)) + "  " + right
	}

	if dir == "" {
		return render.Row(left, right, width)
	}

	dirWidth := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if dirWidth < 5 {
		return render.Row(left, right, width)
	}
	middle := t.Base.Render(render.TruncateEllipsis(dir, dirWidth))
	return render.Row(left+"  "+middle, right, width)
}

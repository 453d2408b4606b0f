// Package jobbar displays the progress of the running load or save at the
// bottom of the screen.
package jobbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tagbatch/internal/batch"
	"github.com/llehouerou/tagbatch/internal/ui"
	"github.com/llehouerou/tagbatch/internal/ui/render"
	"github.com/llehouerou/tagbatch/internal/ui/styles"
)

// BorderHeight is the height of borders around the job bar.
const BorderHeight = 2

// Height returns the bar height: one line plus borders while a job runs.
func Height(active bool) int {
	if !active {
		return 0
	}
	return 1 + BorderHeight
}

// Job is the state shown for the running job.
type Job struct {
	Label    string
	Progress batch.Progress
}

// SaveLabel is the label of a save job after completed of total files.
func SaveLabel(p batch.Progress) string {
	return fmt.Sprintf("Saving %d/%d...", p.Completed, p.Total)
}

// CountText formats the progress as "42% (3/7)".
func CountText(p batch.Progress) string {
	return fmt.Sprintf("%d%% (%d/%d)", p.Percent(), p.Completed, p.Total)
}

// Render renders the job bar with the given width.
// Returns empty string when job is nil.
func Render(job *Job, width int) string {
	if job == nil || width < 4 {
		return ""
	}

	innerWidth := width - 2
	return styles.PanelStyle(false).
		Width(innerWidth).
		Render(renderLine(*job, innerWidth))
}

// renderLine renders: "◦ Label  [━━━━────] 42% (3/7)"
func renderLine(job Job, width int) string {
	t := styles.T()
	count := CountText(job.Progress)

	// spinner(2) + brackets(2) + spaces around bar(3)
	fixed := 2 + 2 + 3 + lipgloss.Width(count)
	labelWidth := max(width-fixed-ui.MinProgressBarWidth*2, 10)
	barWidth := max(width-labelWidth-fixed, ui.MinProgressBarWidth)

	filled := barWidth * job.Progress.Percent() / 100

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Render("◦"))
	b.WriteString(" ")
	b.WriteString(t.S().Title.Render(render.TruncateAndPad(job.Label, labelWidth)))
	b.WriteString("  [")
	b.WriteString(styles.BarGradient(strings.Repeat("━", filled)))
	b.WriteString(t.S().Subtle.Render(strings.Repeat("─", barWidth-filled)))
	b.WriteString("] ")
	b.WriteString(t.S().Muted.Render(count))
	return b.String()
}

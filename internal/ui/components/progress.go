package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int

	// LowAt switches the fill to the warning color at or below this
	// fraction. Zero disables it.
	LowAt float64
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	barWidth := max(p.Width-lipgloss.Width(result), 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	fill := theme.ProgressFilled
	if p.LowAt > 0 && p.Percent <= p.LowAt {
		fill = theme.ProgressLow
	}

	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	return result
}

package play

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// lowTimeFraction is where the timer turns red.
const lowTimeFraction = 0.2

func (s *PlayScreen) View(width, height int) string {
	p, ok := s.engine.Problem()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderStatus(width))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", s.engine.RemainingFraction(), min(width-8, layout.ContentWidth))
	bar.LowAt = lowTimeFraction
	b.WriteString(layout.Center(bar.View(), width))
	b.WriteString("\n\n\n")

	b.WriteString(layout.Center(theme.Question.Render(p.Question+" ="), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(s.input.View(), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(s.renderFeedback(), width))
	b.WriteString("\n")

	return b.String()
}

func (s *PlayScreen) renderStatus(width int) string {
	timerStyle := theme.Timer
	if s.engine.RemainingFraction() <= lowTimeFraction {
		timerStyle = theme.TimerLow
	}
	timer := timerStyle.Render(fmt.Sprintf("⏱ %ds", s.engine.RemainingSeconds()))
	score := theme.Correct.Render(fmt.Sprintf("✓ %d", s.engine.Score()))
	return layout.Center(timer+"     "+score, width)
}

func (s *PlayScreen) renderFeedback() string {
	if s.last == nil || !s.engine.Locked() {
		return theme.Hint.Render("Type the answer and press Enter")
	}
	if s.last.Correct {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render(fmt.Sprintf("Not quite, it was %d", s.last.Entry.CorrectAnswer))
}

package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/screen"
	sess "github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// SummaryScreen shows the result of the round that just ended.
type SummaryScreen struct {
	engine *sess.Engine
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the engine's latest result.
func New(engine *sess.Engine) *SummaryScreen {
	return &SummaryScreen{engine: engine}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Round Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "S", Description: "Settings"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "a":
			_, _ = s.engine.Again()
		case "s":
			_ = s.engine.Settings()
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.engine.Result()
	if res == nil {
		return ""
	}
	sum := res.Summary

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Center(theme.Title.Render("Time's up!"), width))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(theme.Timer.Render(fmt.Sprintf("Score  %d", sum.Score)), width))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Accuracy: %d%%",
		sum.Attempts, sum.Correct, sum.Accuracy)
	b.WriteString(layout.Center(theme.Body.Render(statsLine), width))
	b.WriteString("\n")
	b.WriteString(layout.Center(theme.Dim.Render(res.Record.Config.Label()), width))
	b.WriteString("\n\n")

	if len(sum.Missed) > 0 {
		b.WriteString(layout.Center(theme.Dim.Render("Missed"), width))
		b.WriteString("\n")
		b.WriteString(layout.Divider(width))
		b.WriteString("\n")
		for _, e := range sum.Missed {
			line := fmt.Sprintf("%s = %d", e.Question, e.CorrectAnswer) +
				lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("   you said %d", e.UserAnswer))
			b.WriteString(layout.Center(theme.Body.Render(line), width))
			b.WriteString("\n")
		}
	} else if sum.Attempts > 0 {
		b.WriteString(layout.Center(theme.Correct.Render("Perfect round!"), width))
		b.WriteString("\n")
	}

	if res.SaveErr != nil {
		b.WriteString("\n")
		b.WriteString(layout.Center(theme.Hint.Render("This result could not be saved."), width))
		b.WriteString("\n")
	}

	return b.String()
}

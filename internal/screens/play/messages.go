package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/mathsprint/internal/session"
)

// countdownTickMsg is delivered once per tick interval while a round runs.
type countdownTickMsg struct {
	Token sess.Token
}

// feedbackDoneMsg is delivered when the feedback delay after an answer ends.
type feedbackDoneMsg struct {
	Token sess.Token
}

// tickCmd schedules the next countdown tick for tok.
func tickCmd(tok sess.Token, d time.Duration) tea.Cmd {
	if tok == 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return countdownTickMsg{Token: tok}
	})
}

// feedbackCmd schedules the end of the feedback window for tok.
func feedbackCmd(tok sess.Token, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Token: tok}
	})
}

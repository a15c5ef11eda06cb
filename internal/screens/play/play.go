package play

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/screen"
	sess "github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
)

// answerCharLimit fits the widest answer, "-9801".
const answerCharLimit = 8

// PlayScreen runs one timed round.
type PlayScreen struct {
	ctx    context.Context
	engine *sess.Engine
	input  components.TextInput

	// last is the most recent accepted submission, shown while locked.
	last *sess.Submission
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the round the engine has just started.
func New(ctx context.Context, engine *sess.Engine) *PlayScreen {
	return &PlayScreen{
		ctx:    ctx,
		engine: engine,
		input:  components.NewTextInput("answer", true, answerCharLimit),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		tickCmd(s.engine.Countdown(), s.engine.Options().TickInterval),
	)
}

func (s *PlayScreen) Title() string {
	return "Sprint"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return s.handleTick(msg)

	case feedbackDoneMsg:
		if s.engine.Advance(msg.Token) {
			s.input.Reset()
			s.last = nil
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			_ = s.engine.Abandon()
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	if s.engine.Locked() {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PlayScreen) handleTick(msg countdownTickMsg) (screen.Screen, tea.Cmd) {
	if s.engine.Tick(s.ctx, msg.Token) == sess.TickContinue {
		return s, tickCmd(msg.Token, s.engine.Options().TickInterval)
	}
	return s, nil
}

// submit scores the typed answer and schedules the feedback window.
func (s *PlayScreen) submit() tea.Cmd {
	sub, ok := s.engine.Submit(s.input.Value())
	if !ok {
		return nil
	}
	s.last = &sub
	if sub.Correct {
		s.input.SetMark(components.MarkCorrect)
	} else {
		s.input.SetMark(components.MarkWrong)
	}
	return feedbackCmd(sub.Token, sub.Delay)
}

package play

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/problemgen"
	sess "github.com/abhisek/mathsprint/internal/session"
)

// fixedSource always asks "3 − 7".
type fixedSource struct{}

func (fixedSource) Generate(problemgen.Config) problemgen.Problem {
	return problemgen.Problem{Question: "3 − 7", Answer: -4}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func startedScreen(t *testing.T) (*PlayScreen, *sess.Engine) {
	t.Helper()
	e := sess.NewEngine(fixedSource{}, nil)
	if _, err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := New(context.Background(), e)
	s.Init()
	return s, e
}

func typeString(s *PlayScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestPlayScreen_Title(t *testing.T) {
	s, _ := startedScreen(t)
	if s.Title() != "Sprint" {
		t.Errorf("Title = %q, want %q", s.Title(), "Sprint")
	}
}

func TestPlayScreen_InitSchedulesTick(t *testing.T) {
	s, _ := startedScreen(t)
	if s.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestPlayScreen_CorrectAnswer(t *testing.T) {
	s, e := startedScreen(t)
	typeString(s, "-4")

	if s.input.Value() != "-4" {
		t.Fatalf("input = %q, want %q", s.input.Value(), "-4")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected feedback command after a scored answer")
	}
	if e.Score() != 1 {
		t.Errorf("Score = %d, want 1", e.Score())
	}
	if !e.Locked() {
		t.Error("expected engine to be locked during feedback")
	}
	if !strings.Contains(s.View(80, 20), "Correct!") {
		t.Error("expected correct feedback in view")
	}

	s.Update(feedbackDoneMsg{Token: s.last.Token})
	if e.Locked() {
		t.Error("expected engine to unlock after feedback")
	}
	if s.input.Value() != "" {
		t.Errorf("input = %q, want cleared", s.input.Value())
	}
}

func TestPlayScreen_WrongAnswerShowsSolution(t *testing.T) {
	s, e := startedScreen(t)
	typeString(s, "4")
	s.Update(specialKey(tea.KeyEnter))

	if !e.Failing() {
		t.Error("expected failure indication")
	}
	if !strings.Contains(s.View(80, 20), "it was -4") {
		t.Error("expected the correct answer in view")
	}
}

func TestPlayScreen_IgnoresTypingWhileLocked(t *testing.T) {
	s, _ := startedScreen(t)
	typeString(s, "1")
	s.Update(specialKey(tea.KeyEnter))
	typeString(s, "2")

	if s.input.Value() != "1" {
		t.Errorf("input = %q, want %q", s.input.Value(), "1")
	}
}

func TestPlayScreen_RejectsNonDigits(t *testing.T) {
	s, _ := startedScreen(t)
	typeString(s, "1a-2")

	if s.input.Value() != "12" {
		t.Errorf("input = %q, want %q", s.input.Value(), "12")
	}
}

func TestPlayScreen_SingleLeadingMinus(t *testing.T) {
	s, _ := startedScreen(t)
	typeString(s, "--5")

	if s.input.Value() != "-5" {
		t.Errorf("input = %q, want %q", s.input.Value(), "-5")
	}
}

func TestPlayScreen_EmptySubmitIgnored(t *testing.T) {
	s, e := startedScreen(t)
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	if len(e.RoundHistory()) != 0 {
		t.Error("expected no history entry")
	}
}

func TestPlayScreen_Tick(t *testing.T) {
	s, e := startedScreen(t)
	tok := e.Countdown()

	_, cmd := s.Update(countdownTickMsg{Token: tok})
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
	if e.Remaining() != sess.DefaultRoundTicks-1 {
		t.Errorf("Remaining = %d, want %d", e.Remaining(), sess.DefaultRoundTicks-1)
	}
}

func TestPlayScreen_StaleTickIgnored(t *testing.T) {
	s, e := startedScreen(t)

	_, cmd := s.Update(countdownTickMsg{Token: e.Countdown() + 100})
	if cmd != nil {
		t.Error("expected no command for a stale tick")
	}
	if e.Remaining() != sess.DefaultRoundTicks {
		t.Errorf("Remaining = %d, want %d", e.Remaining(), sess.DefaultRoundTicks)
	}
}

func TestPlayScreen_LastTickEndsRound(t *testing.T) {
	e := sess.NewEngine(fixedSource{}, nil, sess.WithOptions(sess.Options{RoundTicks: 1}))
	tok, _ := e.Start()
	s := New(context.Background(), e)

	_, cmd := s.Update(countdownTickMsg{Token: tok})
	if cmd != nil {
		t.Error("expected no further tick after expiry")
	}
	if e.Phase() != sess.PhaseResult {
		t.Errorf("Phase = %v, want result", e.Phase())
	}
}

func TestPlayScreen_EscAbandons(t *testing.T) {
	s, e := startedScreen(t)
	s.Update(specialKey(tea.KeyEscape))

	if e.Phase() != sess.PhaseMenu {
		t.Errorf("Phase = %v, want menu", e.Phase())
	}
}

func TestPlayScreen_View(t *testing.T) {
	s, _ := startedScreen(t)
	view := s.View(80, 20)

	if !strings.Contains(view, "3 − 7 =") {
		t.Error("expected question in view")
	}
	if !strings.Contains(view, "60s") {
		t.Error("expected remaining time in view")
	}
}

func TestPlayScreen_ViewShowsSecondsNotTicks(t *testing.T) {
	e := sess.NewEngine(fixedSource{}, nil,
		sess.WithOptions(sess.Options{RoundTicks: 30, TickInterval: 2 * time.Second}))
	if _, err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	view := New(context.Background(), e).View(80, 20)

	if !strings.Contains(view, "60s") {
		t.Errorf("expected 60 seconds remaining in view, got:\n%s", view)
	}
	if strings.Contains(view, "30s") {
		t.Error("timer shows ticks instead of seconds")
	}
}

func TestPlayScreen_KeyHints(t *testing.T) {
	s, _ := startedScreen(t)
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}

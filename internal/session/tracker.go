package session

import (
	"time"

	"github.com/abhisek/mathsprint/internal/problemgen"
)

// Outcome is the result of a scored submission.
type Outcome struct {
	Entry   HistoryEntry
	Correct bool

	// Delay is how long to wait before the next problem appears.
	Delay time.Duration
}

// Tracker accumulates one round's answers and score.
//
// After a scored submission the tracker is locked until Release is called;
// submissions while locked are dropped, so a problem can be scored at most
// once.
type Tracker struct {
	correctDelay time.Duration
	wrongDelay   time.Duration

	history []HistoryEntry
	score   int
	locked  bool
	failing bool
}

// NewTracker creates an empty tracker with the given feedback delays.
func NewTracker(correctDelay, wrongDelay time.Duration) *Tracker {
	return &Tracker{correctDelay: correctDelay, wrongDelay: wrongDelay}
}

// Submit scores raw against p. It returns false, changing nothing, when raw
// is not an integer or the tracker is locked.
func (t *Tracker) Submit(p problemgen.Problem, raw string) (Outcome, bool) {
	if t.locked {
		return Outcome{}, false
	}
	answer, err := problemgen.ParseAnswer(raw)
	if err != nil {
		return Outcome{}, false
	}

	entry := HistoryEntry{
		Question:      p.Question,
		CorrectAnswer: p.Answer,
		UserAnswer:    answer,
		IsCorrect:     answer == p.Answer,
	}
	t.history = append(t.history, entry)
	t.locked = true

	out := Outcome{Entry: entry, Correct: entry.IsCorrect}
	if entry.IsCorrect {
		t.score++
		out.Delay = t.correctDelay
	} else {
		t.failing = true
		out.Delay = t.wrongDelay
	}
	return out, true
}

// Release ends the feedback window and accepts submissions again.
func (t *Tracker) Release() {
	t.locked = false
	t.failing = false
}

// Locked reports whether a feedback window is open.
func (t *Tracker) Locked() bool { return t.locked }

// Failing reports whether the failure indication is active.
func (t *Tracker) Failing() bool { return t.failing }

// Score returns the number of correct answers.
func (t *Tracker) Score() int { return t.score }

// Attempts returns the number of scored submissions.
func (t *Tracker) Attempts() int { return len(t.history) }

// History returns a copy of the round's entries in submission order.
func (t *Tracker) History() []HistoryEntry {
	out := make([]HistoryEntry, len(t.history))
	copy(out, t.history)
	return out
}

// Summarize derives the result-screen summary.
func (t *Tracker) Summarize() Summary {
	return BuildSummary(t.score, t.history)
}

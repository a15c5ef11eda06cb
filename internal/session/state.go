package session

import (
	"time"

	"github.com/abhisek/mathsprint/internal/problemgen"
)

// Phase is the screen the session engine is on.
type Phase int

const (
	PhaseMenu    Phase = iota // Configuring operators and modifiers
	PhasePlaying              // Round in progress
	PhaseResult               // Round finished, showing the summary
	PhaseHistory              // Browsing the leaderboard
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	case PhaseHistory:
		return "history"
	}
	return "unknown"
}

// Defaults for Options.
const (
	DefaultRoundTicks   = 60
	DefaultTickInterval = time.Second
	DefaultCorrectDelay = 150 * time.Millisecond
	DefaultWrongDelay   = 400 * time.Millisecond
)

// Options holds the round timing.
type Options struct {
	// RoundTicks is the countdown length in ticks.
	RoundTicks int

	// TickInterval is the wall-clock length of one tick.
	TickInterval time.Duration

	// CorrectDelay is the pause after a correct answer before the next problem.
	CorrectDelay time.Duration

	// WrongDelay is the pause after a wrong answer, during which the failure
	// indication is shown.
	WrongDelay time.Duration
}

// DefaultOptions returns the standard 60-second round timing.
func DefaultOptions() Options {
	return Options{
		RoundTicks:   DefaultRoundTicks,
		TickInterval: DefaultTickInterval,
		CorrectDelay: DefaultCorrectDelay,
		WrongDelay:   DefaultWrongDelay,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.RoundTicks <= 0 {
		o.RoundTicks = d.RoundTicks
	}
	if o.TickInterval <= 0 {
		o.TickInterval = d.TickInterval
	}
	if o.CorrectDelay <= 0 {
		o.CorrectDelay = d.CorrectDelay
	}
	if o.WrongDelay <= 0 {
		o.WrongDelay = d.WrongDelay
	}
	return o
}

// HistoryEntry records one scored answer within a round.
type HistoryEntry struct {
	Question      string
	CorrectAnswer int
	UserAnswer    int
	IsCorrect     bool
}

// Token identifies one armed timer. A timer is cancelled by replacing or
// clearing the engine's current token; messages carrying an old token are
// ignored. The zero Token is never issued.
type Token uint64

// round holds the state owned by a single in-progress round.
type round struct {
	config    problemgen.Config
	problem   problemgen.Problem
	tracker   *Tracker
	remaining int
}

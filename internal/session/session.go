package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathsprint/internal/leaderboard"
	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/store"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// current phase. The engine state is left unchanged.
var ErrInvalidTransition = errors.New("invalid transition")

// ProblemSource produces problems for a configuration.
type ProblemSource interface {
	Generate(cfg problemgen.Config) problemgen.Problem
}

// TickResult reports what a countdown tick did.
type TickResult int

const (
	TickIgnored  TickResult = iota // Stale token or no round in progress
	TickContinue                   // Time remains; schedule the next tick
	TickExpired                    // Round ended and was recorded
)

// Submission is an accepted answer plus the feedback timer to schedule.
type Submission struct {
	Outcome

	// Token must be passed to Advance once Outcome.Delay has elapsed.
	Token Token
}

// Result is the outcome of the most recently completed round.
type Result struct {
	Record  store.GameRecord
	Summary Summary

	// SaveErr is set when the record could not be persisted.
	SaveErr error
}

// Engine drives menu, play, result, and history phases.
//
// Timers are external: Start returns a countdown token and Submit returns a
// feedback token, and the caller delivers them back through Tick and Advance
// after the relevant interval. Only the current token of each kind is
// honored. Engine is not safe for concurrent use.
type Engine struct {
	opts    Options
	gen     ProblemSource
	history *store.History
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string

	phase  Phase
	config problemgen.Config
	round  *round
	result *Result

	lastToken Token
	countdown Token // zero when disarmed
	feedback  Token // zero when no feedback window is pending
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithOptions sets the round timing. Zero fields keep their defaults.
func WithOptions(o Options) EngineOption {
	return func(e *Engine) { e.opts = o.withDefaults() }
}

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithIDFunc overrides record ID generation.
func WithIDFunc(f func() string) EngineOption {
	return func(e *Engine) { e.newID = f }
}

// WithConfig sets the initial configuration. An invalid cfg is ignored.
func WithConfig(cfg problemgen.Config) EngineOption {
	return func(e *Engine) {
		if cfg.Validate() == nil {
			e.config = cfg
		}
	}
}

// NewEngine creates an engine in the menu phase. history must already be
// loaded; a nil history keeps records in memory only.
func NewEngine(gen ProblemSource, history *store.History, opts ...EngineOption) *Engine {
	if history == nil {
		history = store.NewHistory(store.NewMemoryStore())
	}
	e := &Engine{
		opts:    DefaultOptions(),
		gen:     gen,
		history: history,
		logger:  zap.NewNop(),
		now:     time.Now,
		newID:   uuid.NewString,
		phase:   PhaseMenu,
		config:  problemgen.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Options returns the round timing in effect.
func (e *Engine) Options() Options { return e.opts }

// Config returns the configuration the next round will use.
func (e *Engine) Config() problemgen.Config { return e.config }

// Toggle flips a configuration flag. It is only allowed in the menu.
// Disabling the last operator reports false and changes nothing.
func (e *Engine) Toggle(f problemgen.Flag) (bool, error) {
	if e.phase != PhaseMenu {
		return false, ErrInvalidTransition
	}
	return e.config.Toggle(f), nil
}

// Start begins a round from the menu and returns the countdown token.
func (e *Engine) Start() (Token, error) {
	if e.phase != PhaseMenu {
		return 0, ErrInvalidTransition
	}
	return e.begin(), nil
}

// Again begins a new round from the result screen.
func (e *Engine) Again() (Token, error) {
	if e.phase != PhaseResult {
		return 0, ErrInvalidTransition
	}
	return e.begin(), nil
}

// begin discards any previous round, cancels outstanding timers, and arms a
// fresh countdown.
func (e *Engine) begin() Token {
	e.disarm()
	e.result = nil
	e.round = &round{
		config:    e.config,
		tracker:   NewTracker(e.opts.CorrectDelay, e.opts.WrongDelay),
		remaining: e.opts.RoundTicks,
	}
	e.round.problem = e.gen.Generate(e.round.config)
	e.countdown = e.nextToken()
	e.phase = PhasePlaying

	e.logger.Info("round started",
		zap.String("config", e.round.config.Key()),
		zap.Int("ticks", e.round.remaining))
	return e.countdown
}

// Tick advances the countdown by one tick. Ticks carrying anything other
// than the armed countdown token are ignored. When the countdown reaches
// zero the round is recorded and the engine moves to the result phase.
func (e *Engine) Tick(ctx context.Context, tok Token) TickResult {
	if e.phase != PhasePlaying || tok == 0 || tok != e.countdown {
		return TickIgnored
	}
	e.round.remaining--
	if e.round.remaining > 0 {
		return TickContinue
	}
	e.finish(ctx)
	return TickExpired
}

// finish records the round and shows its result.
func (e *Engine) finish(ctx context.Context) {
	e.disarm()

	summary := e.round.tracker.Summarize()
	rec := store.GameRecord{
		ID:        e.newID(),
		Timestamp: e.now(),
		Score:     summary.Score,
		Accuracy:  summary.Accuracy,
		Config:    e.round.config,
	}
	res := &Result{Record: rec, Summary: summary}
	if err := e.history.Append(ctx, rec); err != nil {
		res.SaveErr = err
		e.logger.Error("persist round", zap.String("id", rec.ID), zap.Error(err))
	}
	e.result = res
	e.phase = PhaseResult

	e.logger.Info("round finished",
		zap.String("id", rec.ID),
		zap.String("config", rec.Config.Key()),
		zap.Int("score", rec.Score),
		zap.Int("accuracy", rec.Accuracy),
		zap.Int("attempts", summary.Attempts))
}

// Submit scores raw against the active problem. It returns false when the
// input is not an integer, a feedback window is already open, or no round is
// in progress; none of those change any state.
func (e *Engine) Submit(raw string) (Submission, bool) {
	if e.phase != PhasePlaying {
		return Submission{}, false
	}
	out, ok := e.round.tracker.Submit(e.round.problem, raw)
	if !ok {
		return Submission{}, false
	}
	e.feedback = e.nextToken()
	return Submission{Outcome: out, Token: e.feedback}, true
}

// Advance closes the feedback window opened by the submission that issued
// tok and replaces the problem. Stale tokens are ignored.
func (e *Engine) Advance(tok Token) bool {
	if e.phase != PhasePlaying || tok == 0 || tok != e.feedback {
		return false
	}
	e.feedback = 0
	e.round.tracker.Release()
	e.round.problem = e.gen.Generate(e.round.config)
	return true
}

// Abandon ends the round early without recording it.
func (e *Engine) Abandon() error {
	if e.phase != PhasePlaying {
		return ErrInvalidTransition
	}
	e.disarm()
	e.logger.Info("round abandoned",
		zap.String("config", e.round.config.Key()),
		zap.Int("attempts", e.round.tracker.Attempts()))
	e.round = nil
	e.phase = PhaseMenu
	return nil
}

// Settings returns from the result screen to the menu.
func (e *Engine) Settings() error {
	if e.phase != PhaseResult {
		return ErrInvalidTransition
	}
	e.round = nil
	e.phase = PhaseMenu
	return nil
}

// ViewHistory opens the leaderboard from the menu.
func (e *Engine) ViewHistory() error {
	if e.phase != PhaseMenu {
		return ErrInvalidTransition
	}
	e.phase = PhaseHistory
	return nil
}

// Back returns from the leaderboard to the menu.
func (e *Engine) Back() error {
	if e.phase != PhaseHistory {
		return ErrInvalidTransition
	}
	e.phase = PhaseMenu
	return nil
}

// Leaderboard aggregates the persisted records.
func (e *Engine) Leaderboard() []leaderboard.Group {
	return leaderboard.Aggregate(e.history.List())
}

// Problem returns the active problem while a round is in progress.
func (e *Engine) Problem() (problemgen.Problem, bool) {
	if e.phase != PhasePlaying {
		return problemgen.Problem{}, false
	}
	return e.round.problem, true
}

// Score returns the current round's score.
func (e *Engine) Score() int {
	if e.round == nil {
		return 0
	}
	return e.round.tracker.Score()
}

// RoundHistory returns the current round's entries.
func (e *Engine) RoundHistory() []HistoryEntry {
	if e.round == nil {
		return nil
	}
	return e.round.tracker.History()
}

// Remaining returns the ticks left in the current round.
func (e *Engine) Remaining() int {
	if e.round == nil {
		return 0
	}
	return e.round.remaining
}

// RemainingTime returns the wall-clock time left in the current round.
func (e *Engine) RemainingTime() time.Duration {
	return time.Duration(e.Remaining()) * e.opts.TickInterval
}

// RemainingSeconds returns RemainingTime in whole seconds, rounded to the
// nearest second.
func (e *Engine) RemainingSeconds() int {
	return int(e.RemainingTime().Round(time.Second) / time.Second)
}

// RemainingFraction returns the remaining share of the round in [0, 1].
func (e *Engine) RemainingFraction() float64 {
	if e.round == nil || e.opts.RoundTicks <= 0 {
		return 0
	}
	return float64(e.round.remaining) / float64(e.opts.RoundTicks)
}

// Locked reports whether the active problem is waiting on its feedback delay.
func (e *Engine) Locked() bool {
	return e.phase == PhasePlaying && e.round.tracker.Locked()
}

// Failing reports whether the wrong-answer indication is active.
func (e *Engine) Failing() bool {
	return e.phase == PhasePlaying && e.round.tracker.Failing()
}

// Countdown returns the armed countdown token, or zero when no countdown
// is running.
func (e *Engine) Countdown() Token { return e.countdown }

// Result returns the most recently completed round, or nil.
func (e *Engine) Result() *Result { return e.result }

// disarm cancels the countdown and any pending feedback window.
func (e *Engine) disarm() {
	e.countdown = 0
	e.feedback = 0
}

func (e *Engine) nextToken() Token {
	e.lastToken++
	return e.lastToken
}

package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, high contrast on dark backgrounds
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Question = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// FlagOn and FlagOff render operator and modifier checkboxes.
	FlagOn = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	FlagOff = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Countdown
var (
	Timer = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	// TimerLow is used for the last few seconds of a round.
	TimerLow = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressLow = lipgloss.NewStyle().
			Background(Error)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Divider = lipgloss.NewStyle().
		Foreground(Border)
)

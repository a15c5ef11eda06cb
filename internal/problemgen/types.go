package problemgen

import (
	"errors"
	"strings"
)

// ErrNoOperator is returned by Config.Validate when every operator flag is off.
var ErrNoOperator = errors.New("at least one operator must be enabled")

// Problem is a single drill question shown to the player.
type Problem struct {
	// Question is the display text, e.g. "12 ÷ 3" or "(-4) × 7".
	Question string

	// Answer is the exact integer result of Question.
	Answer int
}

// Flag identifies one of the six configuration switches.
type Flag string

const (
	FlagAdd          Flag = "add"
	FlagSub          Flag = "sub"
	FlagMul          Flag = "mul"
	FlagDiv          Flag = "div"
	FlagNegatives    Flag = "negatives"
	FlagDoubleDigits Flag = "doubleDigits"
)

// Operators lists the operator flags in display order.
var Operators = []Flag{FlagAdd, FlagSub, FlagMul, FlagDiv}

// Modifiers lists the modifier flags in display order.
var Modifiers = []Flag{FlagNegatives, FlagDoubleDigits}

// IsOperator reports whether f selects an operator rather than a modifier.
func (f Flag) IsOperator() bool {
	switch f {
	case FlagAdd, FlagSub, FlagMul, FlagDiv:
		return true
	}
	return false
}

// Symbol returns the display glyph for an operator flag, or "" for modifiers.
func (f Flag) Symbol() string {
	switch f {
	case FlagAdd:
		return "+"
	case FlagSub:
		return "−"
	case FlagMul:
		return "×"
	case FlagDiv:
		return "÷"
	}
	return ""
}

// Tag returns the short signature tag for a modifier flag, or "" for operators.
func (f Flag) Tag() string {
	switch f {
	case FlagNegatives:
		return "neg"
	case FlagDoubleDigits:
		return "2x"
	}
	return ""
}

// DisplayName returns the menu label for the flag.
func (f Flag) DisplayName() string {
	switch f {
	case FlagAdd:
		return "Addition"
	case FlagSub:
		return "Subtraction"
	case FlagMul:
		return "Multiplication"
	case FlagDiv:
		return "Division"
	case FlagNegatives:
		return "Negative numbers"
	case FlagDoubleDigits:
		return "Double digits"
	}
	return string(f)
}

// Config selects which operators and modifiers a round draws from.
// At least one operator must stay enabled; Toggle enforces this.
type Config struct {
	Add          bool `json:"add" yaml:"add"`
	Sub          bool `json:"sub" yaml:"sub"`
	Mul          bool `json:"mul" yaml:"mul"`
	Div          bool `json:"div" yaml:"div"`
	Negatives    bool `json:"negatives" yaml:"negatives"`
	DoubleDigits bool `json:"doubleDigits" yaml:"double_digits"`
}

// DefaultConfig returns a Config with every operator enabled and no modifiers.
func DefaultConfig() Config {
	return Config{Add: true, Sub: true, Mul: true, Div: true}
}

// Enabled reports whether flag f is on.
func (c Config) Enabled(f Flag) bool {
	switch f {
	case FlagAdd:
		return c.Add
	case FlagSub:
		return c.Sub
	case FlagMul:
		return c.Mul
	case FlagDiv:
		return c.Div
	case FlagNegatives:
		return c.Negatives
	case FlagDoubleDigits:
		return c.DoubleDigits
	}
	return false
}

// activeOperators returns the enabled operator flags in display order.
func (c Config) activeOperators() []Flag {
	ops := make([]Flag, 0, len(Operators))
	for _, f := range Operators {
		if c.Enabled(f) {
			ops = append(ops, f)
		}
	}
	return ops
}

// Toggle flips flag f in place. Turning off the last enabled operator is a
// no-op. Returns true if the flag changed.
func (c *Config) Toggle(f Flag) bool {
	if f.IsOperator() && c.Enabled(f) && len(c.activeOperators()) == 1 {
		return false
	}
	switch f {
	case FlagAdd:
		c.Add = !c.Add
	case FlagSub:
		c.Sub = !c.Sub
	case FlagMul:
		c.Mul = !c.Mul
	case FlagDiv:
		c.Div = !c.Div
	case FlagNegatives:
		c.Negatives = !c.Negatives
	case FlagDoubleDigits:
		c.DoubleDigits = !c.DoubleDigits
	default:
		return false
	}
	return true
}

// Validate returns ErrNoOperator if no operator is enabled.
func (c Config) Validate() error {
	if len(c.activeOperators()) == 0 {
		return ErrNoOperator
	}
	return nil
}

// Key returns the configuration signature used to group leaderboard entries:
// the active operator symbols followed by a parenthesized modifier list,
// e.g. "+×(neg,2x)". Identical flags always yield the same key.
func (c Config) Key() string {
	var b strings.Builder
	for _, f := range c.activeOperators() {
		b.WriteString(f.Symbol())
	}

	var tags []string
	for _, f := range Modifiers {
		if c.Enabled(f) {
			tags = append(tags, f.Tag())
		}
	}
	if len(tags) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(tags, ","))
		b.WriteString(")")
	}
	return b.String()
}

// Label returns a longer human-readable description of the configuration.
func (c Config) Label() string {
	var parts []string
	for _, f := range c.activeOperators() {
		parts = append(parts, f.DisplayName())
	}
	label := strings.Join(parts, ", ")
	for _, f := range Modifiers {
		if c.Enabled(f) {
			label += " · " + strings.ToLower(f.DisplayName())
		}
	}
	return label
}

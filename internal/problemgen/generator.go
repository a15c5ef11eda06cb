package problemgen

import (
	"math/rand/v2"
	"strconv"
)

// Operand ranges, inclusive.
const (
	SingleMin = 1
	SingleMax = 12
	DoubleMin = 10
	DoubleMax = 99
)

// Source supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator produces arithmetic problems for a Config.
type Generator struct {
	src Source
}

// New creates a Generator backed by src. A nil src uses the process-wide
// random generator.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewSeeded creates a Generator with a deterministic PCG source.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate builds one problem from cfg. cfg must have at least one operator
// enabled; an invalid cfg falls back to addition.
func (g *Generator) Generate(cfg Config) Problem {
	ops := cfg.activeOperators()
	if len(ops) == 0 {
		ops = []Flag{FlagAdd}
	}
	op := ops[g.src.IntN(len(ops))]

	lo, hi := SingleMin, SingleMax
	if cfg.DoubleDigits {
		lo, hi = DoubleMin, DoubleMax
	}
	a := lo + g.src.IntN(hi-lo+1)
	b := lo + g.src.IntN(hi-lo+1)

	if cfg.Negatives {
		if g.src.IntN(2) == 0 {
			a = -a
		}
		if g.src.IntN(2) == 0 {
			b = -b
		}
	}

	var answer int
	switch op {
	case FlagAdd:
		answer = a + b
	case FlagSub:
		answer = a - b
	case FlagMul:
		answer = a * b
	case FlagDiv:
		// Display the product as the dividend so the quotient is exact.
		answer = a
		a = a * b
	}

	return Problem{
		Question: formatOperand(a) + " " + op.Symbol() + " " + formatOperand(b),
		Answer:   answer,
	}
}

// formatOperand parenthesizes negative numbers so the sign never reads as
// the operator.
func formatOperand(n int) string {
	if n < 0 {
		return "(" + strconv.Itoa(n) + ")"
	}
	return strconv.Itoa(n)
}

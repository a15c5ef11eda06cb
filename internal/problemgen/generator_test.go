package problemgen

import (
	"strconv"
	"strings"
	"testing"
)

// scriptedSource returns queued values for IntN in order, then zeros.
type scriptedSource struct {
	values []int
	calls  []int
}

func (s *scriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

// evaluate computes the value of a generated question string.
func evaluate(t *testing.T, question string) int {
	t.Helper()
	parts := strings.Split(question, " ")
	if len(parts) != 3 {
		t.Fatalf("question %q: expected 3 tokens, got %d", question, len(parts))
	}
	a := parseOperand(t, parts[0])
	b := parseOperand(t, parts[2])
	switch parts[1] {
	case "+":
		return a + b
	case "−":
		return a - b
	case "×":
		return a * b
	case "÷":
		if b == 0 {
			t.Fatalf("question %q: division by zero", question)
		}
		if a%b != 0 {
			t.Fatalf("question %q: inexact division", question)
		}
		return a / b
	}
	t.Fatalf("question %q: unknown operator %q", question, parts[1])
	return 0
}

func parseOperand(t *testing.T, s string) int {
	t.Helper()
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") || !strings.HasPrefix(s, "(-") {
			t.Fatalf("malformed parenthesized operand %q", s)
		}
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	} else if strings.HasPrefix(s, "-") {
		t.Fatalf("negative operand %q must be parenthesized", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("operand %q: %v", s, err)
	}
	return n
}

func TestGenerate_AdditionScenario(t *testing.T) {
	// Operator pick, then operands 7 and 5 (offsets from the range minimum 1).
	src := &scriptedSource{values: []int{0, 6, 4}}
	gen := New(src)

	p := gen.Generate(Config{Add: true})
	if p.Question != "7 + 5" {
		t.Errorf("Question = %q, want %q", p.Question, "7 + 5")
	}
	if p.Answer != 12 {
		t.Errorf("Answer = %d, want 12", p.Answer)
	}
}

func TestGenerate_DivisionScenario(t *testing.T) {
	src := &scriptedSource{values: []int{0, 3, 2}}
	gen := New(src)

	p := gen.Generate(Config{Div: true})
	if p.Question != "12 ÷ 3" {
		t.Errorf("Question = %q, want %q", p.Question, "12 ÷ 3")
	}
	if p.Answer != 4 {
		t.Errorf("Answer = %d, want 4", p.Answer)
	}
}

func TestGenerate_SymbolsAndOrder(t *testing.T) {
	all := DefaultConfig()
	tests := []struct {
		pick int
		want string
	}{
		{0, "+"},
		{1, "−"},
		{2, "×"},
		{3, "÷"},
	}
	for _, tc := range tests {
		src := &scriptedSource{values: []int{tc.pick, 1, 1}}
		p := New(src).Generate(all)
		parts := strings.Split(p.Question, " ")
		if parts[1] != tc.want {
			t.Errorf("pick %d: symbol = %q, want %q", tc.pick, parts[1], tc.want)
		}
	}
}

func TestGenerate_Subtraction(t *testing.T) {
	src := &scriptedSource{values: []int{0, 2, 8}}
	p := New(src).Generate(Config{Sub: true})
	if p.Question != "3 − 9" || p.Answer != -6 {
		t.Errorf("got %+v, want {3 − 9, -6}", p)
	}
}

func TestGenerate_NegativeFormatting(t *testing.T) {
	// Operands 4 and 7; negate the first only.
	src := &scriptedSource{values: []int{0, 3, 6, 0, 1}}
	p := New(src).Generate(Config{Mul: true, Negatives: true})
	if p.Question != "(-4) × 7" {
		t.Errorf("Question = %q, want %q", p.Question, "(-4) × 7")
	}
	if p.Answer != -28 {
		t.Errorf("Answer = %d, want -28", p.Answer)
	}
}

func TestGenerate_NegativeDivision(t *testing.T) {
	// Operands 4 and 3; negate the first only, so the dividend is -12.
	src := &scriptedSource{values: []int{0, 3, 2, 0, 1}}
	p := New(src).Generate(Config{Div: true, Negatives: true})
	if p.Question != "(-12) ÷ 3" {
		t.Errorf("Question = %q, want %q", p.Question, "(-12) ÷ 3")
	}
	if p.Answer != -4 {
		t.Errorf("Answer = %d, want -4", p.Answer)
	}
}

func TestGenerate_OperandRanges(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		lo, hi int
	}{
		{"single digits", Config{Add: true}, SingleMin, SingleMax},
		{"double digits", Config{Add: true, DoubleDigits: true}, DoubleMin, DoubleMax},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{}
			New(src).Generate(tc.cfg)
			// calls[0] is the operator pick; the operand draws follow.
			want := tc.hi - tc.lo + 1
			if len(src.calls) != 3 || src.calls[1] != want || src.calls[2] != want {
				t.Errorf("IntN calls = %v, want operand draws over %d values", src.calls, want)
			}
		})
	}
}

func TestGenerate_NoNegationDrawsWithoutModifier(t *testing.T) {
	src := &scriptedSource{}
	New(src).Generate(Config{Add: true, DoubleDigits: true})
	for _, n := range src.calls {
		if n == 2 {
			t.Errorf("unexpected coin flip without negatives: calls = %v", src.calls)
		}
	}
}

func allValidConfigs() []Config {
	var configs []Config
	for mask := 0; mask < 64; mask++ {
		cfg := Config{
			Add:          mask&1 != 0,
			Sub:          mask&2 != 0,
			Mul:          mask&4 != 0,
			Div:          mask&8 != 0,
			Negatives:    mask&16 != 0,
			DoubleDigits: mask&32 != 0,
		}
		if cfg.Validate() == nil {
			configs = append(configs, cfg)
		}
	}
	return configs
}

func TestGenerate_AnswerMatchesQuestion(t *testing.T) {
	for _, cfg := range allValidConfigs() {
		gen := NewSeeded(uint64(len(cfg.Key())) + 7)
		for i := 0; i < 200; i++ {
			p := gen.Generate(cfg)
			if got := evaluate(t, p.Question); got != p.Answer {
				t.Fatalf("config %s: %q evaluates to %d, answer is %d", cfg.Key(), p.Question, got, p.Answer)
			}
		}
	}
}

func TestGenerate_DivisionAlwaysExact(t *testing.T) {
	cfgs := []Config{
		{Div: true},
		{Div: true, Negatives: true},
		{Div: true, DoubleDigits: true},
		{Div: true, Negatives: true, DoubleDigits: true},
	}
	for seed := uint64(0); seed < 50; seed++ {
		gen := NewSeeded(seed)
		for _, cfg := range cfgs {
			for i := 0; i < 20; i++ {
				p := gen.Generate(cfg)
				// evaluate fails the test on a remainder or zero divisor.
				if got := evaluate(t, p.Question); got != p.Answer {
					t.Fatalf("seed %d: %q = %d, answer %d", seed, p.Question, got, p.Answer)
				}
			}
		}
	}
}

func TestGenerate_InvalidConfigFallsBackToAddition(t *testing.T) {
	p := New(&scriptedSource{}).Generate(Config{Negatives: true})
	if !strings.Contains(p.Question, " + ") {
		t.Errorf("Question = %q, want an addition problem", p.Question)
	}
}

package problemgen

import (
	"errors"
	"testing"
)

func TestToggle_LastOperatorIsNoop(t *testing.T) {
	cfg := Config{Add: true}
	if cfg.Toggle(FlagAdd) {
		t.Error("expected toggling the sole operator to report no change")
	}
	if !cfg.Add {
		t.Error("expected Add to remain enabled")
	}
}

func TestToggle_OperatorWithOthersEnabled(t *testing.T) {
	cfg := Config{Add: true, Mul: true}
	if !cfg.Toggle(FlagAdd) {
		t.Fatal("expected toggle to succeed")
	}
	if cfg.Add {
		t.Error("expected Add to be disabled")
	}
	// Mul is now the last operator.
	if cfg.Toggle(FlagMul) {
		t.Error("expected toggling the remaining operator to be a no-op")
	}
}

func TestToggle_EnablingIsNeverBlocked(t *testing.T) {
	cfg := Config{Div: true}
	for _, f := range []Flag{FlagAdd, FlagSub, FlagMul} {
		if !cfg.Toggle(f) {
			t.Errorf("expected enabling %s to succeed", f)
		}
	}
	if cfg != (Config{Add: true, Sub: true, Mul: true, Div: true}) {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestToggle_ModifiersNeverBlocked(t *testing.T) {
	cfg := Config{Add: true}
	for _, f := range Modifiers {
		for i := 0; i < 2; i++ {
			if !cfg.Toggle(f) {
				t.Errorf("toggle %s (pass %d) was blocked", f, i)
			}
		}
	}
	if cfg != (Config{Add: true}) {
		t.Errorf("double toggle should restore config, got %+v", cfg)
	}
}

func TestToggle_UnknownFlag(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Toggle(Flag("pow")) {
		t.Error("unknown flag should not change the config")
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{Negatives: true, DoubleDigits: true}).Validate(); !errors.Is(err, ErrNoOperator) {
		t.Errorf("Validate() = %v, want ErrNoOperator", err)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate(default) = %v, want nil", err)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Add: true}, "+"},
		{Config{Div: true, Add: true}, "+÷"},
		{DefaultConfig(), "+−×÷"},
		{Config{Sub: true, Negatives: true}, "−(neg)"},
		{Config{Mul: true, DoubleDigits: true}, "×(2x)"},
		{Config{Add: true, Mul: true, Negatives: true, DoubleDigits: true}, "+×(neg,2x)"},
	}
	for _, tc := range tests {
		if got := tc.cfg.Key(); got != tc.want {
			t.Errorf("Key(%+v) = %q, want %q", tc.cfg, got, tc.want)
		}
	}
}

func TestLabel(t *testing.T) {
	got := Config{Add: true, Div: true, Negatives: true}.Label()
	want := "Addition, Division · negative numbers"
	if got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}

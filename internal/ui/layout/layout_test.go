package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	header := "a\nb\nc"
	footer := "d\ne\nf"
	if got := ContentHeight(header, footer, 20); got != 14 {
		t.Errorf("ContentHeight = %d, want 14", got)
	}
	if got := ContentHeight(header, footer, 4); got != 0 {
		t.Errorf("ContentHeight with no room = %d, want 0", got)
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("Play", "42s", 80)
	footer := RenderFooter([]KeyHint{{Key: "esc", Description: "quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)

	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}
	for _, want := range []string{"MathSprint", "body", "esc"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestDividerNarrowWidth(t *testing.T) {
	for _, w := range []int{0, 3} {
		if got := strings.Count(Divider(w), "─"); got != 0 {
			t.Errorf("Divider(%d) has %d rule chars, want 0", w, got)
		}
	}
	if got := strings.Count(Divider(200), "─"); got != ContentWidth {
		t.Errorf("Divider(200) has %d rule chars, want %d", got, ContentWidth)
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	if !strings.Contains(msg, "Terminal too small!") {
		t.Error("expected too-small notice")
	}
	if !strings.Contains(msg, "Current: 40 x 10") {
		t.Error("expected current size in message")
	}
}

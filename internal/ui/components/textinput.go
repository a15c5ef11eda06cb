package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// Mark is the feedback glyph shown after the input.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// TextInput wraps bubbles/textinput with MathSprint styling.
type TextInput struct {
	Model textinput.Model

	// Integer restricts input to digits with an optional leading minus.
	Integer bool

	mark Mark
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, integer bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:   ti,
		Integer: integer,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Integer {
		if kmsg, ok := msg.(tea.KeyMsg); ok && !t.accepts(kmsg.String()) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// accepts reports whether a single-character key may be typed. Named keys
// (backspace, arrows) always pass through.
func (t TextInput) accepts(key string) bool {
	if len(key) != 1 {
		return true
	}
	c := key[0]
	if c >= '0' && c <= '9' {
		return true
	}
	if c == '-' {
		v := t.Model.Value()
		return t.Model.Position() == 0 && (len(v) == 0 || v[0] != '-')
	}
	return false
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	switch t.mark {
	case MarkCorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case MarkWrong:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetMark sets the feedback glyph.
func (t *TextInput) SetMark(m Mark) {
	t.mark = m
}

// Reset clears the value and the feedback glyph.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.mark = MarkNone
}

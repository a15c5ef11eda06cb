package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/leaderboard"
	"github.com/abhisek/mathsprint/internal/screen"
	sess "github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// collapsedEntries is how many scores a group shows until expanded.
const collapsedEntries = 3

// HistoryScreen displays the leaderboard, one group per configuration.
type HistoryScreen struct {
	engine   *sess.Engine
	groups   []leaderboard.Group
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(engine *sess.Engine) *HistoryScreen {
	return &HistoryScreen{
		engine:   engine,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	s.groups = s.engine.Leaderboard()
	s.selected = 0
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Expand"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "b":
			_ = s.engine.Back()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.groups)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.groups) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Start a sprint!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.groups {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary)
		}
		heading := fmt.Sprintf("%s%-12s %s", prefix, g.Key, g.Config.Label())
		b.WriteString(layout.Center(style.Render(heading), width))
		b.WriteString("\n")

		entries := g.Entries
		if !s.expanded[i] && len(entries) > collapsedEntries {
			entries = entries[:collapsedEntries]
		}
		for rank, rec := range entries {
			line := fmt.Sprintf("    %2d. %3d pts  %3d%%  %s",
				rank+1, rec.Score, rec.Accuracy, rec.Timestamp.Local().Format("Jan 02 15:04"))
			b.WriteString(layout.Center(theme.Body.Render(line), width))
			b.WriteString("\n")
		}
		if hidden := len(g.Entries) - len(entries); hidden > 0 {
			b.WriteString(layout.Center(theme.Hint.Render(fmt.Sprintf("    +%d more", hidden)), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

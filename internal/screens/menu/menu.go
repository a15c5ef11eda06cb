package menu

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/screen"
	sess "github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// modifierKeys maps modifier flags to their hotkeys.
var modifierKeys = map[problemgen.Flag]string{
	problemgen.FlagNegatives:    "n",
	problemgen.FlagDoubleDigits: "d",
}

// MenuScreen lets the player choose operators and modifiers before a round.
type MenuScreen struct {
	engine *sess.Engine
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

// New creates a MenuScreen with the Start item selected.
func New(engine *sess.Engine) *MenuScreen {
	s := &MenuScreen{engine: engine}
	s.menu = components.NewMenu(s.items())
	for i, item := range s.menu.Items {
		if item.Hotkey == "s" {
			s.menu.Selected = i
		}
	}
	return s
}

func (s *MenuScreen) Init() tea.Cmd {
	return nil
}

func (s *MenuScreen) Title() string {
	return "Menu"
}

func (s *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-4", Description: "Operators"},
		{Key: "N/D", Description: "Modifiers"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return s, nil
	}
	s.notice = ""

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	s.menu.SetItems(s.items())
	return s, cmd
}

func (s *MenuScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Center(renderBanner(width, height), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(theme.Dim.Render("How many can you solve before the clock runs out?"), width))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().Width(layout.ContentWidth).Render(s.menu.View())
	b.WriteString(layout.Center(menu, width))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width))
	b.WriteString("\n")
	b.WriteString(layout.Center(theme.Dim.Render(s.engine.Config().Label()), width))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(layout.Center(theme.Incorrect.Render(s.notice), width))
		b.WriteString("\n")
	}

	return b.String()
}

// items rebuilds the menu from the engine's current configuration.
func (s *MenuScreen) items() []components.MenuItem {
	cfg := s.engine.Config()
	items := make([]components.MenuItem, 0, len(problemgen.Operators)+len(problemgen.Modifiers)+3)

	for i, f := range problemgen.Operators {
		items = append(items, components.MenuItem{
			Label:  checkbox(cfg.Enabled(f)) + " " + f.Symbol() + "  " + f.DisplayName(),
			Hotkey: strconv.Itoa(i + 1),
			Action: s.toggle(f),
		})
	}
	for _, f := range problemgen.Modifiers {
		items = append(items, components.MenuItem{
			Label:  checkbox(cfg.Enabled(f)) + "    " + f.DisplayName(),
			Hotkey: modifierKeys[f],
			Action: s.toggle(f),
		})
	}

	items = append(items,
		components.MenuItem{Label: "Start", Hotkey: "s", Action: s.start},
		components.MenuItem{Label: "History", Hotkey: "h", Action: s.history},
		components.MenuItem{Label: "Quit", Hotkey: "q", Action: func() tea.Cmd { return tea.Quit }},
	)
	return items
}

func (s *MenuScreen) toggle(f problemgen.Flag) func() tea.Cmd {
	return func() tea.Cmd {
		changed, err := s.engine.Toggle(f)
		if err == nil && !changed && f.IsOperator() {
			s.notice = "Keep at least one operator enabled"
		}
		return nil
	}
}

// start begins a round. The app switches to the play screen once the
// engine reports the new phase.
func (s *MenuScreen) start() tea.Cmd {
	_, _ = s.engine.Start()
	return nil
}

func (s *MenuScreen) history() tea.Cmd {
	_ = s.engine.ViewHistory()
	return nil
}

func checkbox(on bool) string {
	if on {
		return theme.FlagOn.Render("[x]")
	}
	return theme.FlagOff.Render("[ ]")
}

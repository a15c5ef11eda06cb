package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/screens/history"
	"github.com/abhisek/mathsprint/internal/screens/menu"
	"github.com/abhisek/mathsprint/internal/screens/play"
	"github.com/abhisek/mathsprint/internal/screens/summary"
	sess "github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. The engine's phase decides which
// screen is active; screens only drive the engine.
type AppModel struct {
	ctx    context.Context
	engine *sess.Engine
	router *router.Router
	phase  sess.Phase
	width  int
	height int
}

// NewAppModel creates an AppModel showing the screen for the engine's
// current phase.
func NewAppModel(ctx context.Context, engine *sess.Engine) AppModel {
	m := AppModel{
		ctx:    ctx,
		engine: engine,
		phase:  engine.Phase(),
	}
	m.router = router.New(m.screenFor(m.phase))
	return m
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	sync := m.syncPhase()
	return m, tea.Batch(cmd, sync)
}

// syncPhase swaps the active screen when the engine has changed phase.
// The history view is stacked over the menu; every other change replaces
// the top screen.
func (m *AppModel) syncPhase() tea.Cmd {
	next := m.engine.Phase()
	if next == m.phase {
		return nil
	}
	prev := m.phase
	m.phase = next

	switch {
	case next == sess.PhaseHistory:
		return m.router.Push(m.screenFor(next))
	case prev == sess.PhaseHistory && next == sess.PhaseMenu && m.router.Depth() > 1:
		return m.router.Pop()
	default:
		return m.router.Replace(m.screenFor(next))
	}
}

func (m AppModel) screenFor(p sess.Phase) screen.Screen {
	switch p {
	case sess.PhasePlaying:
		return play.New(m.ctx, m.engine)
	case sess.PhaseResult:
		return summary.New(m.engine)
	case sess.PhaseHistory:
		return history.New(m.engine)
	default:
		return menu.New(m.engine)
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = append(hints, hp.KeyHints()...)
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := layout.ContentHeight(header, footer, m.height)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// status is the header's right-hand text for the current phase.
func (m AppModel) status() string {
	switch m.engine.Phase() {
	case sess.PhasePlaying:
		return fmt.Sprintf("✓ %d   ⏱ %ds", m.engine.Score(), m.engine.RemainingSeconds())
	case sess.PhaseResult:
		if res := m.engine.Result(); res != nil {
			return fmt.Sprintf("Score %d", res.Record.Score)
		}
	}
	return m.engine.Config().Key()
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, engine *sess.Engine) error {
	p := tea.NewProgram(NewAppModel(ctx, engine))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

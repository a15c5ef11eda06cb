package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label string

	// Hotkey triggers the item directly, e.g. "1" or "h". Optional.
	Hotkey string

	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.firstEnabled()
	return m
}

// SetItems replaces the items, keeping the selection when it is still valid.
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	if m.Selected < 0 || m.Selected >= len(items) || items[m.Selected].Disabled {
		m.Selected = m.firstEnabled()
	}
}

func (m Menu) firstEnabled() int {
	for i, item := range m.Items {
		if !item.Disabled {
			return i
		}
	}
	return 0
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and hotkeys.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
		return m, nil
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
		return m, nil
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			return m, m.activate(m.Selected)
		}
		return m, nil
	}

	for i, item := range m.Items {
		if item.Hotkey != "" && item.Hotkey == key {
			m.Selected = i
			return m, m.activate(i)
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	item := m.Items[i]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		label := item.Label
		if item.Hotkey != "" {
			label = "[" + item.Hotkey + "] " + label
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "    "
		switch {
		case item.Disabled:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "  ▸ "
		}
		s += style.Render(prefix+label) + "\n"
	}
	return s
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/nestview/internal/catalog"
	"github.com/nicobailon/nestview/internal/nested"
)

// wheelStep is how many lines one wheel notch scrolls the rows.
const wheelStep = 3

func handleKey(m *model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return *m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.Left):
		m.moveFocusItem(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocusItem(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocusRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocusRow(1)
	case key.Matches(msg, m.keys.First):
		m.focusEdge(false)
	case key.Matches(msg, m.keys.Last):
		m.focusEdge(true)
	case key.Matches(msg, m.keys.Select):
		return handleSelect(m)
	case key.Matches(msg, m.keys.Deselect):
		return handleDeselect(m)
	case key.Matches(msg, m.keys.Reload):
		return *m, loadCatalogCmd(m.src.cfg)
	}
	return *m, nil
}

func handleSelect(m *model) (tea.Model, tea.Cmd) {
	at, ok := m.coll.FocusedItem()
	if !ok || !m.coll.SelectItem(at) {
		return *m, nil
	}
	t, _ := catalog.Lookup(m.src.sections, at.Section, at.Item)
	if m.history != nil {
		m.history.Add(m.src.sections[at.Section].Title, t.Name, t.Year)
		if err := m.history.Save(); err != nil {
			m.src.logger.Printf("save history: %v", err)
			return *m, NewErrorCmd(err, "save history")
		}
	}
	return *m, NewSuccessCmd(fmt.Sprintf("Selected %s (%d)", t.Name, t.Year))
}

func handleDeselect(m *model) (tea.Model, tea.Cmd) {
	for _, at := range m.coll.SelectedItems() {
		m.coll.DeselectItem(at)
	}
	return *m, nil
}

func handleMouse(m *model, msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := msg.Y - m.bodyTop()
	if y < 0 || y >= m.coll.Size().Height {
		return *m, nil
	}
	step := m.src.cfg.ItemWidth + m.src.cfg.Spacing

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			m.scrollRowAt(y, -step)
		} else {
			m.coll.DragVertically(-wheelStep, nested.Velocity{})
		}
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			m.scrollRowAt(y, step)
		} else {
			m.coll.DragVertically(wheelStep, nested.Velocity{})
		}
	case tea.MouseButtonWheelLeft:
		m.scrollRowAt(y, -step)
	case tea.MouseButtonWheelRight:
		m.scrollRowAt(y, step)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		at, ok := m.coll.ItemAt(msg.X, y)
		if !ok {
			break
		}
		m.coll.SetFocusedItem(at)
		return handleSelect(m)
	}
	return *m, nil
}

package tui

import (
	"github.com/nicobailon/nestview/internal/nested"
)

// setFocus moves focus and scrolls it into view once the collection has a
// size to scroll in.
func (m *model) setFocus(at nested.Coordinate) {
	if m.coll.SetFocusedItem(at) && m.coll.Size().Height > 0 {
		m.coll.RevealItem(at)
	}
}

// focusEdge focuses the first item of the first or last non-empty section.
func (m *model) focusEdge(last bool) {
	n := m.coll.NumberOfSections()
	for i := 0; i < n; i++ {
		s := i
		if last {
			s = n - 1 - i
		}
		if m.coll.NumberOfItems(s) > 0 {
			m.setFocus(nested.Coordinate{Section: s})
			return
		}
	}
}

func (m *model) moveFocusItem(delta int) {
	at, ok := m.coll.FocusedItem()
	if !ok {
		m.focusEdge(false)
		return
	}
	n := m.coll.NumberOfItems(at.Section)
	if n == 0 {
		return
	}
	m.setFocus(nested.Coordinate{Section: at.Section, Item: min(max(at.Item+delta, 0), n-1)})
}

// moveFocusRow jumps to the next non-empty section in the given direction,
// keeping the item index where the new row allows it.
func (m *model) moveFocusRow(delta int) {
	at, ok := m.coll.FocusedItem()
	if !ok {
		m.focusEdge(false)
		return
	}
	for s := at.Section + delta; s >= 0 && s < m.coll.NumberOfSections(); s += delta {
		if n := m.coll.NumberOfItems(s); n > 0 {
			m.setFocus(nested.Coordinate{Section: s, Item: min(at.Item, n-1)})
			return
		}
	}
}

// scrollRowAt scrolls the row under line y of the body by dx columns.
func (m *model) scrollRowAt(y, dx int) bool {
	section, ok := m.coll.SectionAt(y)
	if !ok {
		return false
	}
	var v float64
	switch {
	case dx > 0:
		v = 1
	case dx < 0:
		v = -1
	}
	return m.coll.DragSection(section, dx, nested.Velocity{X: v})
}

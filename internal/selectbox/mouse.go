package selectbox

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// handleClick resolves a left click at screen cell (x, y). Badges, the clear
// button, the search box and option rows consume the click; anywhere else
// inside the component toggles the dropdown. A click outside blurs it.
func (m *Model) handleClick(x, y int) tea.Cmd {
	p := m.local(x, y)
	_, z := m.render()

	if !p.In(z.container) {
		if m.focused || m.open {
			m.Blur()
		}
		return nil
	}
	m.focused = true

	for i, r := range z.badges {
		if p.In(r) {
			m.SelectOption(m.Selected()[i])
			return nil
		}
	}
	if p.In(z.clear) {
		m.ClearOptions()
		return nil
	}

	if m.open {
		if p.In(z.search) {
			return m.focusSearch()
		}
		filtered := m.Filtered()
		for i, r := range z.rows {
			if p.In(r) {
				m.SelectOption(filtered[m.offset+i])
				m.setOpen(false)
				return nil
			}
		}
	}

	m.setOpen(!m.open)
	return nil
}

// handleWheel scrolls the highlight when the wheel turns over the open list.
func (m *Model) handleWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if !m.open {
		return nil
	}
	_, z := m.render()
	if !m.local(msg.X, msg.Y).In(z.list) {
		return nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.move(-1)
	case tea.MouseWheelDown:
		m.move(1)
	}
	return nil
}

// local converts screen coordinates to component coordinates.
func (m *Model) local(x, y int) uv.Position {
	return uv.Position{X: x - m.origin.X, Y: y - m.origin.Y}
}

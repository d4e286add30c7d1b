package selectbox

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/selectr/internal/logger"
)

// Update handles keyboard, mouse and paste input. Key presses are ignored
// unless the component has focus.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		return m.handleClick(msg.X, msg.Y)

	case tea.MouseWheelMsg:
		return m.handleWheel(msg)

	case tea.PasteMsg:
		if !m.focused || !m.open {
			return nil
		}
		return tea.Batch(m.focusSearch(), m.updateSearch(msg))
	}

	// Cursor blink and other textinput internals.
	if m.open && m.searchFocused {
		return m.updateSearch(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	k := m.keyMap

	if !m.open {
		switch {
		case key.Matches(msg, k.Confirm, k.Toggle, k.Up, k.Down):
			m.setOpen(true)
		case key.Matches(msg, k.Clear):
			m.ClearOptions()
		}
		return nil
	}

	switch {
	case key.Matches(msg, k.Close):
		m.setOpen(false)
	case key.Matches(msg, k.Up):
		m.move(-1)
	case key.Matches(msg, k.Down):
		m.move(1)
	case key.Matches(msg, k.PageUp):
		m.move(-m.visibleRows())
	case key.Matches(msg, k.PageDown):
		m.move(m.visibleRows())
	case !m.searchFocused && key.Matches(msg, k.Home):
		m.moveTo(0)
	case !m.searchFocused && key.Matches(msg, k.End):
		m.moveTo(len(m.Filtered()) - 1)
	case key.Matches(msg, k.SwitchFocus):
		if m.searchFocused {
			m.blurSearch()
			return nil
		}
		return m.focusSearch()
	case key.Matches(msg, k.Clear):
		m.ClearOptions()
	case key.Matches(msg, k.Confirm):
		m.selectHighlighted()
	case !m.searchFocused && key.Matches(msg, k.Toggle):
		m.selectHighlighted()
	default:
		if m.searchFocused {
			return m.updateSearch(msg)
		}
		// Typing a printable character starts a search.
		if msg.Text == "" {
			return nil
		}
		return tea.Batch(m.focusSearch(), m.updateSearch(msg))
	}
	return nil
}

// selectHighlighted activates the highlighted filtered option, if any, and
// closes the dropdown.
func (m *Model) selectHighlighted() {
	filtered := m.Filtered()
	if m.highlighted >= 0 && m.highlighted < len(filtered) {
		m.SelectOption(filtered[m.highlighted])
	}
	m.setOpen(false)
}

// updateSearch forwards msg to the search box. A changed search term
// invalidates the highlight, which indexes the filtered list.
func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.highlighted = 0
		m.offset = 0
		logger.Debug("search %q matches %d options", after, len(m.Filtered()))
	}
	return cmd
}

func (m *Model) focusSearch() tea.Cmd {
	m.searchFocused = true
	return m.search.Focus()
}

func (m *Model) blurSearch() {
	m.searchFocused = false
	m.search.Blur()
}

package selectbox

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

const (
	avatarMarker = "◉ "
	rowMarker    = "› "
	clearGlyph   = "×"
	caretClosed  = "▾"
	caretOpen    = "▴"
	searchIcon   = "⌕ "
	noMatches    = "No matches"
)

// zones holds the click targets of one render, in component coordinates.
type zones struct {
	container uv.Rectangle
	badges    []uv.Rectangle // Parallel to Selected()
	clear     uv.Rectangle
	search    uv.Rectangle
	rows      []uv.Rectangle // Parallel to the visible window of Filtered()
	list      uv.Rectangle
}

// View renders the component.
func (m *Model) View() string {
	s, _ := m.render()
	return s
}

// render draws the component and computes its click targets from the same
// layout, so what is hit-tested is exactly what was drawn.
func (m *Model) render() (string, zones) {
	var z zones
	w := m.width
	avail := w - 4 // Header tail is " × " plus the caret.

	value, badges := m.renderValue(avail)
	z.badges = badges

	caret, caretStyle := caretClosed, m.styles.Caret
	if m.open {
		caret = caretOpen
	}
	if m.focused {
		caretStyle = m.styles.CaretFocused
	}
	header := pad(value, avail) + " " + m.styles.Clear.Render(clearGlyph) + " " + caretStyle.Render(caret)
	z.clear = uv.Rect(avail, 0, 2, 1)

	lines := []string{header}
	if !m.open {
		z.container = uv.Rect(0, 0, w, len(lines))
		return strings.Join(lines, "\n"), z
	}

	lines = append(lines, pad(m.styles.SearchIcon.Render(searchIcon)+m.search.View(), w))
	z.search = uv.Rect(0, 1, w, 1)

	filtered := m.Filtered()
	top := len(lines)
	if len(filtered) == 0 {
		lines = append(lines, pad(m.styles.Empty.Render(noMatches), w))
	} else {
		end := min(m.offset+m.visibleRows(), len(filtered))
		for i := m.offset; i < end; i++ {
			z.rows = append(z.rows, uv.Rect(0, len(lines), w, 1))
			lines = append(lines, m.renderRow(filtered[i], i == m.highlighted, w))
		}
	}
	z.list = uv.Rect(0, top, w, len(lines)-top)
	z.container = uv.Rect(0, 0, w, len(lines))
	return strings.Join(lines, "\n"), z
}

// renderValue draws the value area. In Multiple mode every selected option
// becomes a badge; badges that do not fit collapse into a "+N" marker.
func (m *Model) renderValue(avail int) (string, []uv.Rectangle) {
	selected := m.Selected()
	if len(selected) == 0 {
		return m.styles.Placeholder.Render(ansi.Truncate(m.placeholder, avail, "…")), nil
	}

	if !m.IsMultiple() {
		o := selected[0]
		label := o.Label
		if o.AvatarImg != "" {
			label = avatarMarker + label
		}
		return m.styles.Value.Render(ansi.Truncate(label, avail, "…")), nil
	}

	var (
		b     strings.Builder
		rects []uv.Rectangle
		x     int
	)
	for i, o := range selected {
		badge := m.renderBadge(o, avail)
		bw := lipgloss.Width(badge)
		gap := 0
		if i > 0 {
			gap = 1
		}
		reserve := 0
		if rest := len(selected) - i - 1; rest > 0 {
			reserve = len(fmt.Sprintf(" +%d", rest))
		}
		if x+gap+bw+reserve > avail {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(m.styles.Overflow.Render(fmt.Sprintf("+%d", len(selected)-i)))
			break
		}
		if gap > 0 {
			b.WriteString(" ")
		}
		x += gap
		rects = append(rects, uv.Rect(x, 0, bw, 1))
		b.WriteString(badge)
		x += bw
	}
	return b.String(), rects
}

func (m *Model) renderBadge(o Option, avail int) string {
	label := o.Label
	if o.AvatarImg != "" {
		label = avatarMarker + label
	}
	// Padding (2) plus "× " (2).
	label = ansi.Truncate(label, max(avail-4, 1), "…")
	return m.styles.Badge.Render(label) + m.styles.BadgeRemove.Render(clearGlyph+" ")
}

func (m *Model) renderRow(o Option, highlighted bool, w int) string {
	marker := "  "
	if highlighted {
		marker = rowMarker
	}
	avatar := "  "
	if o.AvatarImg != "" {
		avatar = avatarMarker
	}
	check, checkStyle := "[ ]", m.styles.Check
	if m.IsOptionSelected(o) {
		check, checkStyle = "[x]", m.styles.CheckSelected
	}

	// marker + avatar + label + " " + check
	labelWidth := max(w-8, 1)
	label := pad(ansi.Truncate(o.Label, labelWidth, "…"), labelWidth)

	if highlighted {
		return m.styles.RowHighlighted.Render(marker + avatar + label + " " + check)
	}
	return m.styles.Row.Render(marker) + m.styles.Avatar.Render(avatar) +
		m.styles.Row.Render(label) + " " + checkStyle.Render(check)
}

// pad truncates or right-pads s to exactly w cells.
func pad(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if n := lipgloss.Width(s); n < w {
		s += strings.Repeat(" ", w-n)
	}
	return s
}

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/aymanbagabas/go-udiff"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/selectr/internal/selectbox"
	"github.com/mark3labs/selectr/internal/tui/theme"
)

const (
	defaultHistoryLimit = 100
	noChange            = "(no change)"
)

// Entry is one value change reported by the select component.
type Entry struct {
	At     time.Time
	Before []selectbox.Option
	After  []selectbox.Option
	Diff   string // Unified diff of the option lines, empty when equal
}

// Changes lists the added and removed labels in diff order, e.g.
// ["-Marj", "+Bart"].
func (e Entry) Changes() []string {
	lines := strings.Split(e.Diff, "\n")
	// The first two lines are the --- and +++ file headers.
	if len(lines) >= 2 && strings.HasPrefix(lines[0], "--- ") && strings.HasPrefix(lines[1], "+++ ") {
		lines = lines[2:]
	}
	var out []string
	for _, line := range lines {
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			out = append(out, line[:1]+labelOf(line[1:]))
		}
	}
	return out
}

// Summary joins Changes with spaces.
func (e Entry) Summary() string {
	changes := e.Changes()
	if len(changes) == 0 {
		return noChange
	}
	return strings.Join(changes, " ")
}

// History records value changes and draws the most recent ones.
type History struct {
	entries []Entry
	limit   int
	now     func() time.Time
}

// NewHistory creates a history keeping at most limit entries.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &History{limit: limit, now: time.Now}
}

// Record appends a change from before to after.
func (h *History) Record(before, after []selectbox.Option) Entry {
	e := Entry{
		At:     h.now(),
		Before: before,
		After:  after,
		Diff:   udiff.Unified("before", "after", optionLines(before), optionLines(after)),
	}
	h.entries = append(h.entries, e)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	return e
}

// Entries returns the recorded changes, oldest first.
func (h *History) Entries() []Entry {
	return h.entries
}

// Len returns the number of recorded changes.
func (h *History) Len() int {
	return len(h.entries)
}

// Draw renders the newest entries first.
func (h *History) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 1 {
		return nil
	}
	DrawStyled(scr, area, lipgloss.NewStyle(), h.render(area.Dy()))
	return nil
}

func (h *History) render(height int) string {
	s := theme.Current().S()
	lines := []string{s.ModalLabel.Render(fmt.Sprintf("History (%d)", len(h.entries)))}
	for i := len(h.entries) - 1; i >= 0 && len(lines) < height; i-- {
		e := h.entries[i]
		lines = append(lines, s.Subtle.Render(e.At.Format(time.TimeOnly))+"  "+colorChanges(e.Changes()))
	}
	return strings.Join(lines, "\n")
}

func colorChanges(changes []string) string {
	s := theme.Current().S()
	if len(changes) == 0 {
		return s.Muted.Render(noChange)
	}
	parts := make([]string, len(changes))
	for i, c := range changes {
		if strings.HasPrefix(c, "+") {
			parts[i] = s.Success.Render(c)
		} else {
			parts[i] = s.Error.Render(c)
		}
	}
	return strings.Join(parts, " ")
}

// SetSize is a no-op; the history fills whatever area it is drawn into.
func (h *History) SetSize(width, height int) {}

// Update handles messages. History only changes through Record.
func (h *History) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// optionLines renders one "label\tkey" line per option so the diff can be
// mapped back to labels.
func optionLines(opts []selectbox.Option) string {
	var b strings.Builder
	for _, o := range opts {
		b.WriteString(o.Label + "\t" + o.Key() + "\n")
	}
	return b.String()
}

func labelOf(line string) string {
	label, _, _ := strings.Cut(line, "\t")
	return label
}

var _ Component = (*History)(nil)

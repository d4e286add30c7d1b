package selectbox

import (
	"slices"

	"github.com/mark3labs/selectr/internal/logger"
)

// SelectOption applies a user activation of o.
//
// In Single mode OnChange receives o unless it is already the value. In
// Multiple mode o is removed if selected (order of the rest preserved) and
// appended otherwise, and OnChange receives the full new sequence.
func (m *Model) SelectOption(o Option) {
	switch md := m.mode.(type) {
	case Single:
		if md.Value != nil && Same(*md.Value, o) {
			return
		}
		logger.Debug("select: single value -> %s", o.Key())
		if md.OnChange != nil {
			v := o
			md.OnChange(&v)
		}
	case Multiple:
		next := toggle(md.Value, o)
		logger.Debug("select: multiple toggle %s (%d -> %d selected)", o.Key(), len(md.Value), len(next))
		if md.OnChange != nil {
			md.OnChange(next)
		}
	}
}

// ClearOptions asks the host to drop the whole selection.
func (m *Model) ClearOptions() {
	logger.Debug("select: clear")
	switch md := m.mode.(type) {
	case Single:
		if md.OnChange != nil {
			md.OnChange(nil)
		}
	case Multiple:
		if md.OnChange != nil {
			md.OnChange([]Option{})
		}
	}
}

// IsOptionSelected reports whether o is part of the current value.
func (m *Model) IsOptionSelected(o Option) bool {
	switch md := m.mode.(type) {
	case Single:
		return md.Value != nil && Same(*md.Value, o)
	case Multiple:
		return indexOf(md.Value, o) >= 0
	}
	return false
}

// toggle returns a new slice with o removed if present, appended otherwise.
func toggle(value []Option, o Option) []Option {
	if i := indexOf(value, o); i >= 0 {
		return slices.Delete(slices.Clone(value), i, i+1)
	}
	next := make([]Option, 0, len(value)+1)
	next = append(next, value...)
	return append(next, o)
}

func indexOf(value []Option, o Option) int {
	return slices.IndexFunc(value, func(v Option) bool { return Same(v, o) })
}

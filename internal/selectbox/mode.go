package selectbox

import "slices"

// Mode is the selection mode. It is sealed: Single and Multiple are the only
// implementations, and each carries a value and callback of matching shape.
type Mode interface {
	isMode()
}

// Single selects at most one option. A nil Value means nothing is selected.
type Single struct {
	Value    *Option
	OnChange func(*Option)
}

// Multiple selects any number of options. Value is kept in selection order.
type Multiple struct {
	Value    []Option
	OnChange func([]Option)
}

func (Single) isMode()   {}
func (Multiple) isMode() {}

// clone copies the mode's value so the component never aliases host memory.
func clone(m Mode) Mode {
	switch m := m.(type) {
	case Single:
		if m.Value != nil {
			v := *m.Value
			m.Value = &v
		}
		return m
	case Multiple:
		m.Value = slices.Clone(m.Value)
		return m
	}
	return nil
}

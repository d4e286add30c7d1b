package selectbox

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

var (
	marj   = Option{Label: "Marj", Value: 1, AvatarImg: "photos/marj.jpg"}
	bart   = Option{Label: "Bart", Value: 2, AvatarImg: "photos/bart.jpg"}
	lisa   = Option{Label: "Lisa", Value: 3, AvatarImg: "photos/lisa.jpg"}
	maggie = Option{Label: "Maggie", Value: 4, AvatarImg: "photos/maggie.jpg"}
	homer  = Option{Label: "Homer", Value: 5, AvatarImg: "photos/homer.jpg"}

	family = []Option{marj, bart, lisa, maggie, homer}
)

// newMultiple builds a controlled Multiple-mode component that writes every
// change back into itself and records it in changes.
func newMultiple(t *testing.T, value []Option, opts ...ModelOption) (*Model, *[][]Option) {
	t.Helper()
	var (
		m       *Model
		err     error
		changes [][]Option
	)
	m, err = New(family, Multiple{
		Value: value,
		OnChange: func(v []Option) {
			changes = append(changes, v)
			require.NoError(t, m.SetMultipleValue(v))
		},
	}, opts...)
	require.NoError(t, err)
	m.Focus()
	return m, &changes
}

// newSingle builds a controlled Single-mode component.
func newSingle(t *testing.T, value *Option, opts ...ModelOption) (*Model, *[]*Option) {
	t.Helper()
	var (
		m       *Model
		err     error
		changes []*Option
	)
	m, err = New(family, Single{
		Value: value,
		OnChange: func(v *Option) {
			changes = append(changes, v)
			require.NoError(t, m.SetSingleValue(v))
		},
	}, opts...)
	require.NoError(t, err)
	m.Focus()
	return m, &changes
}

func press(m *Model, code rune) {
	m.Update(tea.KeyPressMsg{Code: code})
}

func ctrl(m *Model, r rune) {
	m.Update(tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl})
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func click(m *Model, x, y int) {
	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func labels(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Label
	}
	return out
}

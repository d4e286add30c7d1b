package selectbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOptionMultipleToggles(t *testing.T) {
	m, changes := newMultiple(t, []Option{marj})

	m.SelectOption(lisa)
	assert.Equal(t, []string{"Marj", "Lisa"}, labels(m.Selected()))

	m.SelectOption(marj)
	assert.Equal(t, []string{"Lisa"}, labels(m.Selected()))

	require.Len(t, *changes, 2)
	assert.Equal(t, []string{"Marj", "Lisa"}, labels((*changes)[0]))
}

func TestSelectOptionMultipleRoundTrip(t *testing.T) {
	starts := [][]Option{nil, {marj}, {homer, bart, lisa}}
	for _, start := range starts {
		m, _ := newMultiple(t, start)
		for _, o := range family {
			if m.IsOptionSelected(o) {
				continue
			}
			before := labels(m.Selected())
			m.SelectOption(o)
			assert.True(t, m.IsOptionSelected(o))
			m.SelectOption(o)
			assert.Equal(t, before, labels(m.Selected()), "toggling %s twice", o.Label)
		}
	}
}

func TestSelectOptionRemovalPreservesOrder(t *testing.T) {
	m, _ := newMultiple(t, []Option{homer, bart, lisa, marj})
	m.SelectOption(lisa)
	assert.Equal(t, []string{"Homer", "Bart", "Marj"}, labels(m.Selected()))
}

func TestSelectOptionMatchesByKey(t *testing.T) {
	m, _ := newMultiple(t, []Option{marj})

	// A rebuilt record with the same key is the same option.
	m.SelectOption(Option{Label: "Marjorie", Value: 1})
	assert.Empty(t, m.Selected())
}

func TestSelectOptionDoesNotAliasHostValue(t *testing.T) {
	host := []Option{marj, bart}
	m, changes := newMultiple(t, host)
	m.SelectOption(marj)

	assert.Equal(t, []string{"Marj", "Bart"}, labels(host))
	assert.Equal(t, []string{"Bart"}, labels((*changes)[0]))
}

func TestSelectOptionSingle(t *testing.T) {
	m, changes := newSingle(t, &bart)

	m.SelectOption(bart)
	assert.Empty(t, *changes, "reselecting the current value is a no-op")

	m.SelectOption(lisa)
	require.Len(t, *changes, 1)
	assert.Equal(t, "Lisa", (*changes)[0].Label)
	assert.True(t, m.IsOptionSelected(lisa))
	assert.False(t, m.IsOptionSelected(bart))
}

func TestClearOptions(t *testing.T) {
	t.Run("multiple always empty", func(t *testing.T) {
		for _, start := range [][]Option{nil, {}, {marj}, family} {
			m, changes := newMultiple(t, start)
			m.ClearOptions()
			require.Len(t, *changes, 1)
			assert.NotNil(t, (*changes)[0])
			assert.Empty(t, (*changes)[0])
		}
	})

	t.Run("single yields nil", func(t *testing.T) {
		m, changes := newSingle(t, &homer)
		m.ClearOptions()
		require.Len(t, *changes, 1)
		assert.Nil(t, (*changes)[0])
		assert.Empty(t, m.Selected())
	})
}

func TestNilCallbacksAreTolerated(t *testing.T) {
	m, err := New(family, Multiple{})
	require.NoError(t, err)
	m.SelectOption(marj)
	m.ClearOptions()
	assert.Empty(t, m.Selected(), "uncontrolled value never changes")

	s, err := New(family, Single{})
	require.NoError(t, err)
	s.SelectOption(marj)
	s.ClearOptions()
	assert.Empty(t, s.Selected())
}

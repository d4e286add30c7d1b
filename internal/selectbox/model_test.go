package selectbox

import (
	"errors"
	"testing"

	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil mode", func(t *testing.T) {
		_, err := New(family, nil)
		assert.True(t, errors.Is(err, apperrors.ErrModeMismatch))
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := New([]Option{marj, marj}, Multiple{})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("initial state", func(t *testing.T) {
		m, err := New(family, Single{})
		require.NoError(t, err)
		assert.False(t, m.IsOpen())
		assert.False(t, m.Focused())
		assert.Equal(t, 0, m.Highlighted())
		assert.Equal(t, "", m.SearchTerm())
		assert.False(t, m.IsMultiple())
		assert.Nil(t, m.Init())
	})
}

func TestSetValueModeMismatch(t *testing.T) {
	single, err := New(family, Single{})
	require.NoError(t, err)
	err = single.SetMultipleValue([]Option{marj})
	assert.True(t, errors.Is(err, apperrors.ErrModeMismatch))

	multi, err := New(family, Multiple{})
	require.NoError(t, err)
	err = multi.SetSingleValue(&marj)
	assert.True(t, errors.Is(err, apperrors.ErrModeMismatch))

	assert.NoError(t, single.SetSingleValue(&marj))
	assert.Equal(t, []string{"Marj"}, labels(single.Selected()))
}

func TestMultipleValueRejectsRepeatedOption(t *testing.T) {
	_, err := New(family, Multiple{Value: []Option{bart, bart}})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	m, err := New(family, Multiple{Value: []Option{bart}})
	require.NoError(t, err)
	err = m.SetMultipleValue([]Option{marj, bart, marj})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicates value[0]")
	assert.Equal(t, []string{"Bart"}, labels(m.Selected()), "rejected value leaves the selection unchanged")
}

func TestSetOptionsClampsHighlight(t *testing.T) {
	m, _ := newMultiple(t, nil)
	m.setOpen(true)
	m.moveTo(4)
	require.Equal(t, 4, m.Highlighted())

	require.NoError(t, m.SetOptions([]Option{marj, bart}))
	assert.Equal(t, 1, m.Highlighted())

	assert.Error(t, m.SetOptions([]Option{{Label: "", Value: 1}}))
	assert.Len(t, m.Options(), 2, "rejected options leave the list unchanged")
}

func TestBlurCloses(t *testing.T) {
	m, _ := newMultiple(t, nil)
	m.setOpen(true)
	m.Blur()
	assert.False(t, m.IsOpen())
	assert.False(t, m.Focused())
}

func TestPreferredHeight(t *testing.T) {
	m, _ := newMultiple(t, nil, WithMaxVisible(3))
	assert.Equal(t, 1, m.PreferredHeight())

	m.setOpen(true)
	assert.Equal(t, 5, m.PreferredHeight(), "header, search and three rows")

	typeText(m, "zz")
	assert.Equal(t, 3, m.PreferredHeight(), "header, search and the empty line")
}

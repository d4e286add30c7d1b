package selectbox

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionKey(t *testing.T) {
	assert.Equal(t, "1", marj.Key())
	assert.Equal(t, "abc", Option{Value: "abc"}.Key())
	assert.True(t, Same(Option{Label: "a", Value: 2}, Option{Label: "b", Value: 2}))
	assert.True(t, Same(Option{Value: 2}, Option{Value: float64(2)}), "JSON numbers match integers")
	assert.False(t, Same(marj, bart))
}

func TestValidateOptions(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateOptions(family))
		assert.NoError(t, ValidateOptions(nil))
	})

	t.Run("duplicate key", func(t *testing.T) {
		err := ValidateOptions([]Option{marj, {Label: "Marge", Value: 1}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "duplicates options[0]")
	})

	t.Run("string and integer collide", func(t *testing.T) {
		err := ValidateOptions([]Option{{Label: "a", Value: 7}, {Label: "b", Value: "7"}})
		assert.Error(t, err)
	})

	t.Run("all problems reported", func(t *testing.T) {
		err := ValidateOptions([]Option{
			{Label: "", Value: 1},
			{Label: "x", Value: math.NaN()},
			{Label: "y", Value: nil},
			{Label: "z", Value: []string{"a"}},
		})
		require.Error(t, err)

		var multi *apperrors.MultiError
		require.True(t, errors.As(err, &multi))
		assert.Len(t, multi.Errors, 4)
	})
}

func TestValidateOptionValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"string", "abc", true},
		{"empty string", "", true},
		{"int", 7, true},
		{"negative int", int64(-3), true},
		{"uint", uint8(4), true},
		{"fraction", 1.5, true},
		{"float32", float32(0.25), true},
		{"negative zero", math.Copysign(0, -1), true},
		{"NaN", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", float32(math.Inf(-1)), false},
		{"nil", nil, false},
		{"bool", true, false},
		{"slice", []int{1}, false},
		{"map", map[string]int{"a": 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions([]Option{{Label: "x", Value: tt.value}})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
			}
		})
	}
}

func TestNewAcceptsFractionalAndEmptyKeys(t *testing.T) {
	half := Option{Label: "Half", Value: 1.5}
	none := Option{Label: "None", Value: ""}
	var got []Option
	m, err := New([]Option{half, none, marj}, Multiple{OnChange: func(v []Option) { got = v }})
	require.NoError(t, err)

	m.SelectOption(half)
	require.Len(t, got, 1)
	assert.Equal(t, "1.5", got[0].Key())

	require.NoError(t, m.SetMultipleValue(got))
	m.SelectOption(none)
	assert.Equal(t, []Option{half, none}, got)
	assert.False(t, Same(none, marj))
}

package selectbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term keeps everything", term: "", want: []string{"Marj", "Bart", "Lisa", "Maggie", "Homer"}},
		{name: "case insensitive", term: "MA", want: []string{"Marj", "Maggie"}},
		{name: "substring anywhere", term: "ar", want: []string{"Marj", "Bart"}},
		{name: "order preserved", term: "r", want: []string{"Marj", "Bart", "Homer"}},
		{name: "no match", term: "ned", want: []string{}},
		{name: "whitespace is literal", term: " ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(family, tt.term)
			assert.Equal(t, tt.want, labels(got))
		})
	}
}

func TestFilterIsSubsequenceOfInput(t *testing.T) {
	for _, term := range []string{"a", "g", "is", "o", "zz"} {
		got := Filter(family, term)
		j := 0
		for _, o := range family {
			if j < len(got) && Same(got[j], o) {
				j++
			}
		}
		assert.Equal(t, len(got), j, "filter(%q) must keep input order", term)
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	in := []Option{bart, marj}
	Filter(in, "b")
	assert.Equal(t, []Option{bart, marj}, in)
}

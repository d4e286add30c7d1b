package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent("mocha") })

	assert.Equal(t, "mocha", Current().Name)
	assert.True(t, SetCurrent("latte"))
	assert.Equal(t, "latte", Current().Name)

	assert.False(t, SetCurrent("neon"))
	assert.Equal(t, "latte", Current().Name, "unknown theme must not change the active one")
}

func TestStylesAreCached(t *testing.T) {
	s1 := Mocha.S()
	s2 := Mocha.S()
	assert.Same(t, s1, s2)
}

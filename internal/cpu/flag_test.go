package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	c := NewCPU(nil)

	c.setFlag(FlagZero)
	c.setFlag(FlagCarry)
	assert.True(t, c.isFlagSet(FlagZero))
	assert.True(t, c.isFlagSet(FlagCarry))
	assert.False(t, c.isFlagSet(FlagSubtract))
	assert.False(t, c.isFlagSet(FlagHalfCarry))
	assert.Equal(t, fZ|fC, c.F)

	c.clearFlag(FlagZero)
	assert.False(t, c.isFlagSet(FlagZero))
	assert.Equal(t, fC, c.F)

	c.clearFlags()
	assert.Equal(t, uint8(0), c.F)
}

func TestFlagBits(t *testing.T) {
	assert.Equal(t, uint8(0), flagBits(false, false, false, false))
	assert.Equal(t, fZ, flagBits(true, false, false, false))
	assert.Equal(t, fN, flagBits(false, true, false, false))
	assert.Equal(t, fH, flagBits(false, false, true, false))
	assert.Equal(t, fC, flagBits(false, false, false, true))
	assert.Equal(t, fZ|fN|fH|fC, flagBits(true, true, true, true))
}

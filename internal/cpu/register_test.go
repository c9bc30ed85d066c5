package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterPair(t *testing.T) {
	var high, low Register
	pair := &RegisterPair{High: &high, Low: &low}

	// the pair is a view over its halves, in both directions
	high, low = 0xF0, 0x0F
	assert.Equal(t, uint16(0xF00F), pair.Uint16())

	pair.SetUint16(0x1234)
	assert.Equal(t, Register(0x12), high)
	assert.Equal(t, Register(0x34), low)
}

func TestRegisterPairWiring(t *testing.T) {
	c := NewCPU(nil)

	c.B, c.C = 0x12, 0x34
	c.D, c.E = 0x56, 0x78
	c.H, c.L = 0x9A, 0xBC
	assert.Equal(t, uint16(0x1234), c.BC.Uint16())
	assert.Equal(t, uint16(0x5678), c.DE.Uint16())
	assert.Equal(t, uint16(0x9ABC), c.HL.Uint16())

	c.HL.SetUint16(0xFFFF)
	assert.Equal(t, Register(0xFF), c.H)
	assert.Equal(t, Register(0xFF), c.L)
}

package cpu

import (
	"github.com/nicholasrighi/GameboyEmulator/pkg/bits"
)

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlags zeroes the F register.
func (c *CPU) clearFlags() {
	c.F = 0
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F = bits.Set(c.F, flag)
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = bits.Reset(c.F, flag)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// flagBits builds an F register value from the four flag states. Every
// ALU operation rebuilds the register from scratch through here.
func flagBits(zero, subtract, halfCarry, carry bool) uint8 {
	var f uint8
	if zero {
		f = bits.Set(f, FlagZero)
	}
	if subtract {
		f = bits.Set(f, FlagSubtract)
	}
	if halfCarry {
		f = bits.Set(f, FlagHalfCarry)
	}
	if carry {
		f = bits.Set(f, FlagCarry)
	}
	return f
}

package cpu

// incrementRegister increments an 8-bit register with plain
// wraparound.
//
//	INC n
//	n = A, B, C, D, E, H, L
//
// Flags are untouched in this subset; full INC r semantics (Z and H
// recomputed, N cleared, C preserved) are a known gap to close when
// the opcode map grows.
func (c *CPU) incrementRegister(reg *Register) {
	*reg++
}

// incrementRegisterPair enqueues the writeback of nn+1, wrapping at
// 0xFFFF. The sum is computed now; the pair is written when the entry
// drains on the next step.
//
//	INC nn
//	nn = BC, DE, HL
//
// Flags affected: none.
func (c *CPU) incrementRegisterPair(reg *RegisterPair) {
	c.enqueue(microOp{kind: microWritePair, pair: reg, value: reg.Uint16() + 1})
}

func init() {
	DefineInstruction(0x03, "INC BC", func(c *CPU) { c.incrementRegisterPair(c.BC) })
	DefineInstruction(0x04, "INC B", func(c *CPU) { c.incrementRegister(&c.B) })
	DefineInstruction(0x0C, "INC C", func(c *CPU) { c.incrementRegister(&c.C) })
	DefineInstruction(0x13, "INC DE", func(c *CPU) { c.incrementRegisterPair(c.DE) })
	DefineInstruction(0x14, "INC D", func(c *CPU) { c.incrementRegister(&c.D) })
	DefineInstruction(0x1C, "INC E", func(c *CPU) { c.incrementRegister(&c.E) })
	DefineInstruction(0x23, "INC HL", func(c *CPU) { c.incrementRegisterPair(c.HL) })
	DefineInstruction(0x24, "INC H", func(c *CPU) { c.incrementRegister(&c.H) })
	DefineInstruction(0x2C, "INC L", func(c *CPU) { c.incrementRegister(&c.L) })
	DefineInstruction(0x3C, "INC A", func(c *CPU) { c.incrementRegister(&c.A) })

	DefineInstruction(0x80, "ADD A, B", func(c *CPU) { c.A, c.F = add(c.A, c.B) })
	DefineInstruction(0x81, "ADD A, C", func(c *CPU) { c.A, c.F = add(c.A, c.C) })
	DefineInstruction(0x82, "ADD A, D", func(c *CPU) { c.A, c.F = add(c.A, c.D) })
	DefineInstruction(0x83, "ADD A, E", func(c *CPU) { c.A, c.F = add(c.A, c.E) })
	DefineInstruction(0x84, "ADD A, H", func(c *CPU) { c.A, c.F = add(c.A, c.H) })
	DefineInstruction(0x85, "ADD A, L", func(c *CPU) { c.A, c.F = add(c.A, c.L) })
	DefineInstruction(0x87, "ADD A, A", func(c *CPU) { c.A, c.F = add(c.A, c.A) })

	DefineInstruction(0x88, "ADC A, B", func(c *CPU) { c.A, c.F = adc(c.A, c.B, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x89, "ADC A, C", func(c *CPU) { c.A, c.F = adc(c.A, c.C, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x8A, "ADC A, D", func(c *CPU) { c.A, c.F = adc(c.A, c.D, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x8B, "ADC A, E", func(c *CPU) { c.A, c.F = adc(c.A, c.E, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x8C, "ADC A, H", func(c *CPU) { c.A, c.F = adc(c.A, c.H, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x8D, "ADC A, L", func(c *CPU) { c.A, c.F = adc(c.A, c.L, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x8F, "ADC A, A", func(c *CPU) { c.A, c.F = adc(c.A, c.A, c.isFlagSet(FlagCarry)) })

	DefineInstruction(0x90, "SUB A, B", func(c *CPU) { c.A, c.F = sub(c.A, c.B) })
	DefineInstruction(0x91, "SUB A, C", func(c *CPU) { c.A, c.F = sub(c.A, c.C) })
	DefineInstruction(0x92, "SUB A, D", func(c *CPU) { c.A, c.F = sub(c.A, c.D) })
	DefineInstruction(0x93, "SUB A, E", func(c *CPU) { c.A, c.F = sub(c.A, c.E) })
	DefineInstruction(0x94, "SUB A, H", func(c *CPU) { c.A, c.F = sub(c.A, c.H) })
	DefineInstruction(0x95, "SUB A, L", func(c *CPU) { c.A, c.F = sub(c.A, c.L) })
	DefineInstruction(0x97, "SUB A, A", func(c *CPU) { c.A, c.F = sub(c.A, c.A) })

	DefineInstruction(0x98, "SBC A, B", func(c *CPU) { c.A, c.F = sbc(c.A, c.B, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x99, "SBC A, C", func(c *CPU) { c.A, c.F = sbc(c.A, c.C, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x9A, "SBC A, D", func(c *CPU) { c.A, c.F = sbc(c.A, c.D, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x9B, "SBC A, E", func(c *CPU) { c.A, c.F = sbc(c.A, c.E, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x9C, "SBC A, H", func(c *CPU) { c.A, c.F = sbc(c.A, c.H, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x9D, "SBC A, L", func(c *CPU) { c.A, c.F = sbc(c.A, c.L, c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x9F, "SBC A, A", func(c *CPU) { c.A, c.F = sbc(c.A, c.A, c.isFlagSet(FlagCarry)) })
}

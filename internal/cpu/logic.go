package cpu

func init() {
	DefineInstruction(0xA0, "AND A, B", func(c *CPU) { c.A, c.F = and(c.A, c.B) })
	DefineInstruction(0xA1, "AND A, C", func(c *CPU) { c.A, c.F = and(c.A, c.C) })
	DefineInstruction(0xA2, "AND A, D", func(c *CPU) { c.A, c.F = and(c.A, c.D) })
	DefineInstruction(0xA3, "AND A, E", func(c *CPU) { c.A, c.F = and(c.A, c.E) })
	DefineInstruction(0xA4, "AND A, H", func(c *CPU) { c.A, c.F = and(c.A, c.H) })
	DefineInstruction(0xA5, "AND A, L", func(c *CPU) { c.A, c.F = and(c.A, c.L) })
	DefineInstruction(0xA7, "AND A, A", func(c *CPU) { c.A, c.F = and(c.A, c.A) })

	DefineInstruction(0xA8, "XOR A, B", func(c *CPU) { c.A, c.F = xor(c.A, c.B) })
	DefineInstruction(0xA9, "XOR A, C", func(c *CPU) { c.A, c.F = xor(c.A, c.C) })
	DefineInstruction(0xAA, "XOR A, D", func(c *CPU) { c.A, c.F = xor(c.A, c.D) })
	DefineInstruction(0xAB, "XOR A, E", func(c *CPU) { c.A, c.F = xor(c.A, c.E) })
	DefineInstruction(0xAC, "XOR A, H", func(c *CPU) { c.A, c.F = xor(c.A, c.H) })
	DefineInstruction(0xAD, "XOR A, L", func(c *CPU) { c.A, c.F = xor(c.A, c.L) })
	DefineInstruction(0xAF, "XOR A, A", func(c *CPU) { c.A, c.F = xor(c.A, c.A) })

	DefineInstruction(0xB0, "OR A, B", func(c *CPU) { c.A, c.F = or(c.A, c.B) })
	DefineInstruction(0xB1, "OR A, C", func(c *CPU) { c.A, c.F = or(c.A, c.C) })
	DefineInstruction(0xB2, "OR A, D", func(c *CPU) { c.A, c.F = or(c.A, c.D) })
	DefineInstruction(0xB3, "OR A, E", func(c *CPU) { c.A, c.F = or(c.A, c.E) })
	DefineInstruction(0xB4, "OR A, H", func(c *CPU) { c.A, c.F = or(c.A, c.H) })
	DefineInstruction(0xB5, "OR A, L", func(c *CPU) { c.A, c.F = or(c.A, c.L) })
	DefineInstruction(0xB7, "OR A, A", func(c *CPU) { c.A, c.F = or(c.A, c.A) })

	DefineInstruction(0xB8, "CP A, B", func(c *CPU) { c.F = compare(c.A, c.B) })
	DefineInstruction(0xB9, "CP A, C", func(c *CPU) { c.F = compare(c.A, c.C) })
	DefineInstruction(0xBA, "CP A, D", func(c *CPU) { c.F = compare(c.A, c.D) })
	DefineInstruction(0xBB, "CP A, E", func(c *CPU) { c.F = compare(c.A, c.E) })
	DefineInstruction(0xBC, "CP A, H", func(c *CPU) { c.F = compare(c.A, c.H) })
	DefineInstruction(0xBD, "CP A, L", func(c *CPU) { c.F = compare(c.A, c.L) })
	DefineInstruction(0xBF, "CP A, A", func(c *CPU) { c.F = compare(c.A, c.A) })
}

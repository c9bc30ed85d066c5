package cpu

// loadRegisterToRegister loads the value of the given Register into
// the given Register.
//
//	LD n, n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToRegister(register *Register, value *Register) {
	*register = *value
}

// loadRegisterPair16 enqueues the two immediate fetches of a 16-bit
// load, low byte first. Each fetch drains on a later step, reading the
// operand byte the PC points at by then.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegisterPair16(reg *RegisterPair) {
	c.enqueue(
		microOp{kind: microLoadImmediate, dest: reg.Low},
		microOp{kind: microLoadImmediate, dest: reg.High},
	)
}

// storeRegisterToMemory enqueues a single store of the given Register
// to the given memory address. Address and value are captured now;
// mutating the pair the address came from must not affect the deferred
// write.
//
//	LD (nn), r
//	nn = BC, DE, HL
func (c *CPU) storeRegisterToMemory(reg Register, address uint16) {
	c.enqueue(microOp{kind: microStoreByte, addr: address, value: uint16(reg)})
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) { c.loadRegisterPair16(c.BC) })
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.storeRegisterToMemory(c.A, c.BC.Uint16()) })
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) { c.loadRegisterPair16(c.DE) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.storeRegisterToMemory(c.A, c.DE.Uint16()) })
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) { c.loadRegisterPair16(c.HL) })
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		// the address is captured before the pair mutates; the write
		// itself drains a step later against the captured address
		address := c.HL.Uint16()
		c.storeRegisterToMemory(c.A, address)
		c.HL.SetUint16(address + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		address := c.HL.Uint16()
		c.storeRegisterToMemory(c.A, address)
		c.HL.SetUint16(address - 1)
	})

	DefineInstruction(0x40, "LD B, B", func(c *CPU) {
		// LD B, B is often used as a debug breakpoint
		if c.Debug {
			c.DebugBreakpoint = true
		}
	})
	DefineInstruction(0x41, "LD B, C", func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.C) })
	DefineInstruction(0x42, "LD B, D", func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.D) })
	DefineInstruction(0x43, "LD B, E", func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.E) })
	DefineInstruction(0x44, "LD B, H", func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.H) })
	DefineInstruction(0x45, "LD B, L", func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.L) })
	DefineInstruction(0x47, "LD B, A", func(c *CPU) { c.loadRegisterToRegister(&c.B, &c.A) })
	DefineInstruction(0x48, "LD C, B", func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.B) })
	DefineInstruction(0x49, "LD C, C", func(c *CPU) {})
	DefineInstruction(0x4A, "LD C, D", func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.D) })
	DefineInstruction(0x4B, "LD C, E", func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.E) })
	DefineInstruction(0x4C, "LD C, H", func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.H) })
	DefineInstruction(0x4D, "LD C, L", func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.L) })
	DefineInstruction(0x4F, "LD C, A", func(c *CPU) { c.loadRegisterToRegister(&c.C, &c.A) })
	DefineInstruction(0x50, "LD D, B", func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.B) })
	DefineInstruction(0x51, "LD D, C", func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.C) })
	DefineInstruction(0x52, "LD D, D", func(c *CPU) {})
	DefineInstruction(0x53, "LD D, E", func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.E) })
	DefineInstruction(0x54, "LD D, H", func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.H) })
	DefineInstruction(0x55, "LD D, L", func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.L) })
	DefineInstruction(0x57, "LD D, A", func(c *CPU) { c.loadRegisterToRegister(&c.D, &c.A) })
	DefineInstruction(0x58, "LD E, B", func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.B) })
	DefineInstruction(0x59, "LD E, C", func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.C) })
	DefineInstruction(0x5A, "LD E, D", func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.D) })
	DefineInstruction(0x5B, "LD E, E", func(c *CPU) {})
	DefineInstruction(0x5C, "LD E, H", func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.H) })
	DefineInstruction(0x5D, "LD E, L", func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.L) })
	DefineInstruction(0x5F, "LD E, A", func(c *CPU) { c.loadRegisterToRegister(&c.E, &c.A) })
	DefineInstruction(0x60, "LD H, B", func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.B) })
	DefineInstruction(0x61, "LD H, C", func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.C) })
	DefineInstruction(0x62, "LD H, D", func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.D) })
	DefineInstruction(0x63, "LD H, E", func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.E) })
	DefineInstruction(0x64, "LD H, H", func(c *CPU) {})
	DefineInstruction(0x65, "LD H, L", func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.L) })
	DefineInstruction(0x67, "LD H, A", func(c *CPU) { c.loadRegisterToRegister(&c.H, &c.A) })
	DefineInstruction(0x68, "LD L, B", func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.B) })
	DefineInstruction(0x69, "LD L, C", func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.C) })
	DefineInstruction(0x6A, "LD L, D", func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.D) })
	DefineInstruction(0x6B, "LD L, E", func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.E) })
	DefineInstruction(0x6C, "LD L, H", func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.H) })
	DefineInstruction(0x6D, "LD L, L", func(c *CPU) {})
	DefineInstruction(0x6F, "LD L, A", func(c *CPU) { c.loadRegisterToRegister(&c.L, &c.A) })
	DefineInstruction(0x78, "LD A, B", func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.B) })
	DefineInstruction(0x79, "LD A, C", func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.C) })
	DefineInstruction(0x7A, "LD A, D", func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.D) })
	DefineInstruction(0x7B, "LD A, E", func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.E) })
	DefineInstruction(0x7C, "LD A, H", func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.H) })
	DefineInstruction(0x7D, "LD A, L", func(c *CPU) { c.loadRegisterToRegister(&c.A, &c.L) })
	DefineInstruction(0x7F, "LD A, A", func(c *CPU) {})
}

package cpu

// A microOp is one atomic sub-step of a multi-cycle instruction,
// corresponding to a single bus cycle. Dispatching an opcode may push
// micro-ops onto the pending queue; each later Step drains exactly one.
type microOp struct {
	kind  microOpKind
	dest  *Register     // microLoadImmediate
	pair  *RegisterPair // microWritePair
	addr  uint16        // microStoreByte
	value uint16
}

type microOpKind uint8

const (
	// microLoadImmediate reads the byte at PC into an 8-bit register.
	microLoadImmediate microOpKind = iota
	// microStoreByte writes a value to an address, both captured at
	// dispatch time.
	microStoreByte
	// microWritePair writes a pre-computed 16-bit value into a
	// register pair.
	microWritePair
)

// runState tracks whether the next Step fetches an opcode or drains a
// pending micro-op.
type runState uint8

const (
	stateFetch runState = iota
	stateDrain
)

// enqueue appends ops to the pending queue, moving the core into the
// draining state.
func (c *CPU) enqueue(ops ...microOp) {
	c.pending = append(c.pending, ops...)
	c.state = stateDrain
}

// runMicroOp consumes exactly one pending entry, in enqueue order. PC
// advances once per consumed entry, mirroring one byte fetched from
// the instruction stream; immediate loads read the operand at PC
// before the advance. The PC advance applies to every entry kind, so
// queue draining and instruction byte consumption stay conflated the
// way the rest of the core expects.
func (c *CPU) runMicroOp() error {
	op := c.pending[0]
	c.pending = c.pending[1:]

	switch op.kind {
	case microLoadImmediate:
		value, err := c.bus.Read(c.PC)
		if err != nil {
			return err
		}
		*op.dest = value
	case microStoreByte:
		if err := c.bus.Write(op.addr, uint8(op.value)); err != nil {
			return err
		}
	case microWritePair:
		op.pair.SetUint16(op.value)
	}
	c.PC++

	if len(c.pending) == 0 {
		c.pending = nil
		c.state = stateFetch
	}
	return nil
}

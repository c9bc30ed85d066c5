package cpu

import (
	"fmt"
)

// Bus is the addressable byte store the CPU executes against. The core
// treats it as a flat 64 KiB array; any region decoding is the store's
// responsibility. Read and Write report a typed error for addresses
// the store cannot serve.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// CPU represents the Gameboy CPU. It is responsible for executing
// instructions one bus cycle at a time: each Step either drains one
// pending micro-op or fetches and dispatches one opcode.
type CPU struct {
	// PC is the program counter, it points to the next byte to fetch.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit
	// register pairs.
	Registers

	// Debug arms DebugBreakpoint on LD B, B, which games and test ROMs
	// use as a software breakpoint.
	Debug           bool
	DebugBreakpoint bool

	bus     Bus
	pending []microOp
	state   runState
}

// NewCPU creates a new CPU instance executing against the given bus.
// Registers and flags start at the documented post-boot-ROM defaults:
// PC at 0x0100, SP at 0xFFFE, everything else zero.
func NewCPU(bus Bus) *CPU {
	c := &CPU{
		Registers: Registers{},
		bus:       bus,
		PC:        0x0100,
		SP:        0xFFFE,
	}
	// create register pairs
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}

	return c
}

// Step performs exactly one bus cycle of work. If micro-ops are
// pending from an earlier dispatch, exactly one is drained; otherwise
// the opcode at PC is fetched and dispatched, which may in turn
// enqueue micro-ops for future steps.
//
// The two fatal conditions, an opcode absent from the InstructionSet
// and a bus rejecting an address, are returned as typed errors so the
// host can decide between halting and logging. The core retries
// nothing.
func (c *CPU) Step() error {
	if c.state == stateDrain {
		return c.runMicroOp()
	}

	opcodeAddr := c.PC
	opcode, err := c.bus.Read(opcodeAddr)
	if err != nil {
		return err
	}
	c.PC++

	instruction := InstructionSet[opcode]
	if instruction.fn == nil {
		return OpcodeError{Opcode: opcode, Address: opcodeAddr}
	}
	instruction.fn(c)
	return nil
}

// String returns a register dump in the conventional trace order.
func (c *CPU) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x SP: %04x PC: %04x",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
}

// OpcodeError reports an opcode byte with no entry in the
// InstructionSet. Execution cannot safely continue past it.
type OpcodeError struct {
	Opcode  uint8
	Address uint16
}

func (e OpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode %#02x at %#04x", e.Opcode, e.Address)
}

package cpu

import (
	"fmt"
)

// Instruction represents a single instruction of the CPU. Instructions
// are stateless descriptions of behavior; the set is built once when
// the package initializes.
type Instruction struct {
	name string     // name of the instruction
	fn   func(*CPU) // fn called when executing the instruction
}

// InstructionSet holds the instruction for every defined opcode.
// Opcodes without an entry are decode failures surfaced by Step as an
// OpcodeError.
var InstructionSet [256]Instruction

// DefineInstruction registers an instruction in the InstructionSet
// with the provided opcode. Defining an opcode twice is a programmer
// error and panics during package initialization, so a misbuilt table
// fails before any instruction runs.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	if InstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("opcode %#02x defined twice (%s, %s)", opcode, InstructionSet[opcode].name, name))
	}
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
}

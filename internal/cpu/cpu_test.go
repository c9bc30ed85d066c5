package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBus is a flat 64 KiB store with no region decoding. Addresses
// marked bad reject every access, standing in for a store that cannot
// serve them.
type testBus struct {
	data [0x10000]uint8
	bad  map[uint16]bool
}

// newTestBus places the program at 0x0100, where the CPU starts
// fetching.
func newTestBus(program ...uint8) *testBus {
	b := &testBus{bad: map[uint16]bool{}}
	copy(b.data[0x0100:], program)
	return b
}

type testBusError struct {
	addr uint16
}

func (e testBusError) Error() string {
	return fmt.Sprintf("test bus: bad address %#04x", e.addr)
}

func (b *testBus) Read(address uint16) (uint8, error) {
	if b.bad[address] {
		return 0, testBusError{addr: address}
	}
	return b.data[address], nil
}

func (b *testBus) Write(address uint16, value uint8) error {
	if b.bad[address] {
		return testBusError{addr: address}
	}
	b.data[address] = value
	return nil
}

func TestNewCPU(t *testing.T) {
	c := NewCPU(newTestBus())

	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, Register(0), c.A)
	assert.Equal(t, Register(0), c.F)
	assert.Equal(t, uint16(0), c.BC.Uint16())
	assert.Equal(t, uint16(0), c.DE.Uint16())
	assert.Equal(t, uint16(0), c.HL.Uint16())
}

func TestStep_LoadRegisterToRegister(t *testing.T) {
	c := NewCPU(newTestBus(0x41)) // LD B, C
	c.C = 0x42

	require.NoError(t, c.Step())

	assert.Equal(t, Register(0x42), c.B)
	assert.Equal(t, uint16(0x0101), c.PC)
	assert.Equal(t, Register(0), c.F)
}

func TestStep_LoadBBLeavesStateUntouched(t *testing.T) {
	c := NewCPU(newTestBus(0x40)) // LD B, B
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 1, 2, 3, 4, 5, 6, 7
	c.F = fZ | fC

	require.NoError(t, c.Step())

	assert.Equal(t, Register(1), c.A)
	assert.Equal(t, Register(2), c.B)
	assert.Equal(t, Register(3), c.C)
	assert.Equal(t, Register(4), c.D)
	assert.Equal(t, Register(5), c.E)
	assert.Equal(t, Register(6), c.H)
	assert.Equal(t, Register(7), c.L)
	assert.Equal(t, fZ|fC, c.F)
	assert.Equal(t, uint16(0x0101), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.False(t, c.DebugBreakpoint)
}

func TestStep_DebugBreakpoint(t *testing.T) {
	c := NewCPU(newTestBus(0x40)) // LD B, B
	c.Debug = true

	require.NoError(t, c.Step())

	assert.True(t, c.DebugBreakpoint)
}

func TestStep_LoadRegisterPairImmediate(t *testing.T) {
	// LD BC, d16 drains over three steps: opcode fetch, low byte
	// fetch, high byte fetch
	c := NewCPU(newTestBus(0x01, 0x0F, 0xF0))

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0101), c.PC)
	assert.Equal(t, uint16(0), c.BC.Uint16())

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0102), c.PC)
	assert.Equal(t, Register(0x0F), c.C)

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0103), c.PC)
	assert.Equal(t, uint16(0xF00F), c.BC.Uint16())
}

func TestStep_StoreAccumulatorIndirect(t *testing.T) {
	// draining the store entry advances PC like a fetched byte, so a
	// one-byte store occupies two bytes of the instruction stream; the
	// padding byte after each store is never dispatched
	b := newTestBus(0x02, 0xFF, 0x12) // LD (BC), A then LD (DE), A
	c := NewCPU(b)
	c.A = 0x42
	c.BC.SetUint16(0xC000)
	c.DE.SetUint16(0xC001)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0x42), b.data[0xC000])
	assert.Equal(t, uint16(0xC000), c.BC.Uint16())
	assert.Equal(t, uint16(0x0102), c.PC)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0x42), b.data[0xC001])
	assert.Equal(t, uint16(0xC001), c.DE.Uint16())
	assert.Equal(t, uint16(0x0104), c.PC)
}

func TestStep_StoreAccumulatorHLIncrement(t *testing.T) {
	b := newTestBus(0x22) // LD (HL+), A
	c := NewCPU(b)
	c.A = 0x42
	c.HL.SetUint16(0xC123)

	// dispatch captures the address and bumps the pair; the write has
	// not happened yet
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0xC124), c.HL.Uint16())
	assert.Equal(t, uint8(0), b.data[0xC123])

	// the drained store uses the captured address, not the new HL
	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0x42), b.data[0xC123])
	assert.Equal(t, uint8(0), b.data[0xC124])
}

func TestStep_StoreAccumulatorHLIncrementWraps(t *testing.T) {
	b := newTestBus(0x22) // LD (HL+), A
	c := NewCPU(b)
	c.A = 0x99
	c.HL.SetUint16(0xFFFF)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())

	assert.Equal(t, uint16(0x0000), c.HL.Uint16())
	assert.Equal(t, uint8(0x99), b.data[0xFFFF])
}

func TestStep_StoreAccumulatorHLDecrement(t *testing.T) {
	b := newTestBus(0x32) // LD (HL-), A
	c := NewCPU(b)
	c.A = 0x42
	c.HL.SetUint16(0xC123)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())

	assert.Equal(t, uint8(0x42), b.data[0xC123])
	assert.Equal(t, uint16(0xC122), c.HL.Uint16())
}

func TestStep_IncrementRegisterPair(t *testing.T) {
	c := NewCPU(newTestBus(0x03)) // INC BC
	c.BC.SetUint16(0xFFFF)
	c.F = fZ | fN | fH | fC

	// dispatch enqueues the writeback; the pair changes on the next
	// step
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0xFFFF), c.BC.Uint16())

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0000), c.BC.Uint16())
	assert.Equal(t, fZ|fN|fH|fC, c.F)
}

func TestStep_IncrementRegister(t *testing.T) {
	c := NewCPU(newTestBus(0x3C)) // INC A
	c.A = 0xFF
	c.F = fC

	require.NoError(t, c.Step())

	// plain wraparound, no flag side effects in this subset
	assert.Equal(t, Register(0x00), c.A)
	assert.Equal(t, fC, c.F)
	assert.Equal(t, uint16(0x0101), c.PC)
}

func TestStep_ALUDispatch(t *testing.T) {
	c := NewCPU(newTestBus(0x80, 0xB8)) // ADD A, B then CP A, B
	c.A, c.B = 0x0F, 0x01

	require.NoError(t, c.Step())
	assert.Equal(t, Register(0x10), c.A)
	assert.Equal(t, fH, c.F)

	require.NoError(t, c.Step())
	// compare keeps the accumulator and replaces the flags
	assert.Equal(t, Register(0x10), c.A)
	assert.Equal(t, fN, c.F)
}

func TestStep_ADCUsesIncomingCarry(t *testing.T) {
	c := NewCPU(newTestBus(0x88)) // ADC A, B
	c.A, c.B = 0x80, 0x80
	c.setFlag(FlagCarry)

	require.NoError(t, c.Step())

	assert.Equal(t, Register(0x01), c.A)
	assert.Equal(t, fC, c.F)
}

func TestStep_UnknownOpcode(t *testing.T) {
	c := NewCPU(newTestBus(0xFD))

	err := c.Step()

	var opcodeErr OpcodeError
	require.ErrorAs(t, err, &opcodeErr)
	assert.Equal(t, uint8(0xFD), opcodeErr.Opcode)
	assert.Equal(t, uint16(0x0100), opcodeErr.Address)
}

func TestStep_BusReadError(t *testing.T) {
	b := newTestBus()
	b.bad[0x0100] = true
	c := NewCPU(b)

	err := c.Step()

	var busErr testBusError
	require.ErrorAs(t, err, &busErr)
	assert.Equal(t, uint16(0x0100), busErr.addr)
}

func TestStep_BusWriteError(t *testing.T) {
	b := newTestBus(0x22) // LD (HL+), A
	b.bad[0xD000] = true
	c := NewCPU(b)
	c.HL.SetUint16(0xD000)

	require.NoError(t, c.Step())
	err := c.Step()

	var busErr testBusError
	require.ErrorAs(t, err, &busErr)
	assert.Equal(t, uint16(0xD000), busErr.addr)
}

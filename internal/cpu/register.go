package cpu

// Register represents a single 8-bit CPU register. The CPU has 8
// registers: A, B, C, D, E, H, L and F. The F register is special in
// that it holds the flags.
type Register = uint8

// RegisterPair is a 16-bit view over two 8-bit registers, high byte
// first. Pairs are views, not storage: writing a pair writes both
// halves.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the 8-bit registers of the CPU, along with the
// 16-bit pair views composed from them. The pair views are wired up
// once by NewCPU.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

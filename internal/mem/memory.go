// Package mem implements the flat addressable byte store the CPU
// executes against. The 64 KiB address space is split into the
// conventional gameboy regions; the store performs the region decoding
// so the CPU core never has to.
package mem

import (
	"fmt"
)

// Offsets for the various pieces of gameboy memory.
const (
	ROMBank0Start           uint16 = 0x0000
	ROMBankNStart           uint16 = 0x4000
	TileRAMStart            uint16 = 0x8000
	BackgroundMapStart      uint16 = 0x9800
	CartridgeRAMStart       uint16 = 0xA000
	WorkingRAMStart         uint16 = 0xC000
	EchoRAMStart            uint16 = 0xE000
	OAMStart                uint16 = 0xFE00
	UnusedStart             uint16 = 0xFEA0
	IORegistersStart        uint16 = 0xFF00
	HighRAMStart            uint16 = 0xFF80
	InterruptEnableRegister uint16 = 0xFFFF
)

// Memory holds all of the data that exists in the gameboy, one array
// per region. The 0xFEA0-0xFEFF hole is not usable and rejects every
// access with an AddressError.
type Memory struct {
	romBank0        [ROMBankNStart - ROMBank0Start]uint8
	romBankN        [TileRAMStart - ROMBankNStart]uint8
	tileRAM         [BackgroundMapStart - TileRAMStart]uint8
	backgroundMap   [CartridgeRAMStart - BackgroundMapStart]uint8
	cartridgeRAM    [WorkingRAMStart - CartridgeRAMStart]uint8
	workingRAM      [EchoRAMStart - WorkingRAMStart]uint8
	echoRAM         [OAMStart - EchoRAMStart]uint8
	oam             [UnusedStart - OAMStart]uint8
	ioRegisters     [HighRAMStart - IORegistersStart]uint8
	highRAM         [InterruptEnableRegister - HighRAMStart]uint8
	interruptEnable uint8
}

// NewMemory creates a zeroed Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// slot resolves an address to the byte backing it.
func (m *Memory) slot(address uint16) (*uint8, error) {
	switch {
	case address < ROMBankNStart:
		return &m.romBank0[address], nil
	case address < TileRAMStart:
		return &m.romBankN[address-ROMBankNStart], nil
	case address < BackgroundMapStart:
		return &m.tileRAM[address-TileRAMStart], nil
	case address < CartridgeRAMStart:
		return &m.backgroundMap[address-BackgroundMapStart], nil
	case address < WorkingRAMStart:
		return &m.cartridgeRAM[address-CartridgeRAMStart], nil
	case address < EchoRAMStart:
		return &m.workingRAM[address-WorkingRAMStart], nil
	case address < OAMStart:
		return &m.echoRAM[address-EchoRAMStart], nil
	case address < UnusedStart:
		return &m.oam[address-OAMStart], nil
	case address < IORegistersStart:
		return nil, AddressError{Address: address}
	case address < HighRAMStart:
		return &m.ioRegisters[address-IORegistersStart], nil
	case address < InterruptEnableRegister:
		return &m.highRAM[address-HighRAMStart], nil
	default:
		return &m.interruptEnable, nil
	}
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (uint8, error) {
	slot, err := m.slot(address)
	if err != nil {
		return 0, err
	}
	return *slot, nil
}

// Write stores value at the given address.
func (m *Memory) Write(address uint16, value uint8) error {
	slot, err := m.slot(address)
	if err != nil {
		return err
	}
	*slot = value
	return nil
}

// LoadROM copies a program image into the ROM banks, starting at
// address 0. Images larger than the two banks are rejected.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > len(m.romBank0)+len(m.romBankN) {
		return fmt.Errorf("mem: rom of %d bytes exceeds the %d byte rom area", len(rom), len(m.romBank0)+len(m.romBankN))
	}
	n := copy(m.romBank0[:], rom)
	copy(m.romBankN[:], rom[n:])
	return nil
}

// AddressError reports an access to an address outside the mapped
// regions.
type AddressError struct {
	Address uint16
}

func (e AddressError) Error() string {
	return fmt.Sprintf("mem: address %#04x outside mapped regions", e.Address)
}

package main

import (
	"errors"
	"flag"

	"github.com/nicholasrighi/GameboyEmulator/internal/cpu"
	"github.com/nicholasrighi/GameboyEmulator/internal/mem"
	"github.com/nicholasrighi/GameboyEmulator/pkg/log"
	"github.com/nicholasrighi/GameboyEmulator/pkg/utils"
)

var (
	_ cpu.Bus = (*mem.Memory)(nil)
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	steps := flag.Int("steps", 0, "Stop after this many bus cycles (0 runs until a fatal error)")
	debug := flag.Bool("debug", false, "Treat LD B, B as a breakpoint")
	flag.Parse()

	logger := log.New()

	if *romFile == "" {
		logger.Fatal("no rom file provided")
	}
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatal(err.Error())
	}

	memory := mem.NewMemory()
	if err := memory.LoadROM(rom); err != nil {
		logger.Fatal(err.Error())
	}
	logger.Infof("loaded %d byte rom from %s", len(rom), *romFile)

	c := cpu.NewCPU(memory)
	c.Debug = *debug

	for cycle := 0; *steps == 0 || cycle < *steps; cycle++ {
		if err := c.Step(); err != nil {
			var opcodeErr cpu.OpcodeError
			var addressErr mem.AddressError
			switch {
			case errors.As(err, &opcodeErr):
				logger.Errorf("decode failure: %v", opcodeErr)
			case errors.As(err, &addressErr):
				logger.Errorf("bus failure: %v", addressErr)
			default:
				logger.Errorf("%v", err)
			}
			logger.Fatal(c.String())
		}
		if c.DebugBreakpoint {
			logger.Infof("breakpoint at %#04x", c.PC)
			break
		}
	}
	logger.Infof("%s", c)
}

package main

import (
	"os"
	"runtime"

	"github.com/retroenv/retrogolib/log"

	"github.com/hexaflex/c8/arch"
	"github.com/hexaflex/c8/devices/cpu"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config := parseArgs()
	logger := createLogger(config.Debug, config.Quiet)

	if err := run(config, logger); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

// run loads the program and drives the selected front end until it exits.
func run(config *Config, logger *log.Logger) error {
	logger.Info(Version())

	machine := cpu.DefaultConfig()
	machine.Seed = config.Seed

	program, err := loadROM(config.ROM, machine)
	if err != nil {
		return err
	}

	var trace cpu.TraceFunc
	if config.Trace {
		trace = func(addr int, instr arch.Instruction) {
			logger.Debug("trace",
				log.Hex("pc", addr),
				log.Hex("opcode", instr.Opcode),
				log.String("instr", instr.String()))
		}
	}

	ctl, err := NewCPUController(machine, config.Hz, logger, trace)
	if err != nil {
		return err
	}

	defer func() {
		if err := ctl.Shutdown(); err != nil {
			logger.Error("Shutdown failed", log.Err(err))
		}
	}()

	if err := ctl.Load(program); err != nil {
		return err
	}

	var frontend Frontend
	switch config.Frontend {
	case FrontendTerminal:
		frontend = NewTerminal(logger, ctl)
	default:
		frontend = NewWindow(config, logger, ctl)
	}

	return frontend.Run()
}

package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"

	"github.com/hexaflex/c8/devices/cpu"
)

// TimerInterval is the period of the delay and sound timer tick.
const TimerInterval = time.Second / 60

// maxCatchUp bounds the amount of emulated time run in a single update,
// so a stalled host does not execute a burst of instructions afterwards.
const maxCatchUp = time.Second / 4

// CPUController controls the execution of a CPU. It converts wall clock
// time into instruction steps and timer ticks.
type CPUController struct {
	cpu        *cpu.CPU
	logger     *log.Logger
	program    []byte        // Program image written on every reset.
	interval   time.Duration // Time per instruction.
	lastUpdate time.Time     // Time of the previous Update call.
	stepDebt   time.Duration // Emulated time not yet spent on instructions.
	timerDebt  time.Duration // Emulated time not yet spent on timer ticks.
	start      time.Time
	cycleCount uint64
	running    bool
}

// NewCPUController creates a new CPU controller.
func NewCPUController(config cpu.Config, hz int, logger *log.Logger, trace cpu.TraceFunc) (*CPUController, error) {
	c, err := cpu.New(config, logger, trace)
	if err != nil {
		return nil, errors.Wrapf(err, "creating cpu")
	}

	return &CPUController{
		cpu:      c,
		logger:   logger,
		interval: time.Second / time.Duration(hz),
	}, nil
}

// CPU returns the controlled cpu.
func (c *CPUController) CPU() *cpu.CPU {
	return c.cpu
}

// Running returns true if the CPU is currently running.
func (c *CPUController) Running() bool {
	return c.running
}

// Frequency returns the measured instruction rate in herz.
func (c *CPUController) Frequency() float64 {
	if !c.running {
		return 0
	}
	return float64(c.cycleCount) / time.Since(c.start).Seconds()
}

// ToggleRun starts or stops program execution.
func (c *CPUController) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *CPUController) Start() {
	c.setRunning(true)
}

// Stop pauses execution of the program.
func (c *CPUController) Stop() {
	c.setRunning(false)
}

// Step performs a single execution step.
func (c *CPUController) Step() {
	c.cycleCount++
	c.cpu.Step()
}

// Update runs all instructions and timer ticks which became due since
// the previous call. Nothing happens while the cpu is paused.
func (c *CPUController) Update() {
	now := time.Now()
	elapsed := now.Sub(c.lastUpdate)
	c.lastUpdate = now

	if !c.running {
		return
	}

	if elapsed > maxCatchUp {
		elapsed = maxCatchUp
	}

	c.stepDebt += elapsed
	for c.stepDebt >= c.interval {
		c.stepDebt -= c.interval
		c.Step()
	}

	c.timerDebt += elapsed
	for c.timerDebt >= TimerInterval {
		c.timerDebt -= TimerInterval
		c.cpu.TickTimers()
	}
}

// Load resets the machine and writes the given program image at the
// configured start address.
func (c *CPUController) Load(program []byte) error {
	c.program = program
	return c.Reset()
}

// Reset powers the machine back on and reloads the current program.
func (c *CPUController) Reset() error {
	if err := c.cpu.Startup(); err != nil {
		return errors.Wrapf(err, "resetting cpu")
	}

	start := c.cpu.Config().StartAddress
	if err := c.cpu.Write(start, c.program); err != nil {
		return errors.Wrapf(err, "loading program")
	}

	c.logger.Info("program loaded", log.Int("size", len(c.program)), log.Hex("start", start))
	c.setRunning(c.running)
	return nil
}

// Shutdown disposes of CPU and peripheral resources.
func (c *CPUController) Shutdown() error {
	return c.cpu.Shutdown()
}

// setRunning determines if the CPU is running or is paused.
func (c *CPUController) setRunning(v bool) {
	c.running = v
	c.start = time.Now()
	c.lastUpdate = c.start
	c.cycleCount = 0
	c.stepDebt = 0
	c.timerDebt = 0
}

// Package cpu implements the CHIP-8 interpreter.
package cpu

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"

	"github.com/hexaflex/c8/arch"
	"github.com/hexaflex/c8/devices"
	"github.com/hexaflex/c8/devices/display"
	"github.com/hexaflex/c8/devices/keypad"
	"github.com/hexaflex/c8/devices/timer"
)

// TraceFunc represents a callback handler for debug trace output.
// It receives the address and decoded form of every executed instruction.
type TraceFunc func(addr int, instr arch.Instruction)

// CPU implements the runtime.
type CPU struct {
	config  Config           // Machine configuration.
	logger  *log.Logger      // Device lifecycle logging.
	trace   TraceFunc        // Handler for debug trace output.
	devices devices.Map      // Connected peripherals.
	timer   *timer.Device    // Delay and sound timers.
	keypad  *keypad.Device   // Hexadecimal keypad.
	display *display.Device  // Framebuffer.
	memory  Memory           // System memory.
	rng     *rand.Rand       // Random number generator.
	instr   arch.Instruction // Most recently decoded instruction.

	v       [arch.RegisterCount]byte // General purpose registers V0-VF.
	i       uint16                   // Address register.
	pc      uint16                   // Program counter.
	sp      uint16                   // Stack pointer.
	waiting bool                     // Is an FX0A instruction awaiting a key release?
	waitReg int                      // Destination register of the pending FX0A.
	under   int                      // Number of stack bytes below address 0.
}

var _ devices.Device = &CPU{}

// New creates a new CPU for the given configuration and powers it on.
// The logger and debug trace handler are optional.
func New(config Config, logger *log.Logger, trace TraceFunc) (*CPU, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		logger = log.NewWithConfig(cfg)
	}

	if trace == nil {
		trace = func(int, arch.Instruction) { /* nop */ }
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &CPU{
		config:  config,
		logger:  logger,
		trace:   trace,
		timer:   timer.New(),
		keypad:  keypad.New(config.Layout),
		display: display.New(),
		memory:  make(Memory, config.MemorySize),
		rng:     rand.New(rand.NewSource(seed)),
	}

	c.devices.Connect(c.timer)
	c.devices.Connect(c.keypad)
	c.devices.Connect(c.display)

	if err := c.Startup(); err != nil {
		return nil, err
	}

	return c, nil
}

// ID returns the cpu's device ID.
func (c *CPU) ID() devices.ID {
	return devices.NewID(devices.ClassCPU, 0)
}

// Startup resets the machine to its power-on state: memory is cleared,
// the font is loaded and all registers and peripherals are reset.
func (c *CPU) Startup() error {
	c.logger.Debug("cpu startup",
		log.Hex("start", c.config.StartAddress),
		log.Hex("font", c.config.FontAddress),
		log.Int("memory", c.config.MemorySize))

	c.memory.clear()
	c.memory.Write(c.config.FontAddress, font[:])

	c.v = [arch.RegisterCount]byte{}
	c.i = 0
	c.pc = uint16(c.config.StartAddress)
	c.sp = uint16(c.config.StartAddress - 1)
	c.waiting = false
	c.waitReg = 0
	c.under = 0

	return c.devices.Startup(c.logger)
}

// Shutdown cleans up internal resources.
func (c *CPU) Shutdown() error {
	c.logger.Debug("cpu shutdown")
	return c.devices.Shutdown(c.logger)
}

// Write copies p into memory at the given address.
// The write is rejected as a whole if it does not fit.
func (c *CPU) Write(address int, p []byte) error {
	if !c.memory.Write(address, p) {
		return errors.Wrapf(ErrAddressRange, "write of %d bytes at %#04x", len(p), address)
	}
	return nil
}

// SetProgramCounter sets the address of the next instruction to execute.
// A pending FX0A wait is abandoned.
func (c *CPU) SetProgramCounter(addr int) error {
	if addr < 0 || addr > len(c.memory)-arch.InstructionSize {
		return errors.Wrapf(ErrAddressRange, "program counter %#04x", addr)
	}
	c.pc = uint16(addr)
	c.waiting = false
	c.waitReg = 0
	return nil
}

// Step performs a single execution step. While an FX0A instruction is
// pending, the step only re-checks the keypad.
func (c *CPU) Step() {
	if c.waiting {
		c.awaitKey()
		return
	}

	addr := int(c.pc)
	c.instr = arch.Decode(c.memory.U8(addr), c.memory.U8(addr+1))
	c.trace(addr, c.instr)

	c.pc += arch.InstructionSize
	c.exec(&c.instr)
}

// TickTimers decrements the delay and sound timers.
func (c *CPU) TickTimers() {
	c.timer.Tick()
}

// KeyDown marks the key bound to the given physical code as pressed.
// Returns false if the code is not mapped.
func (c *CPU) KeyDown(code rune) bool {
	return c.keypad.KeyDown(code)
}

// KeyUp marks the key bound to the given physical code as released.
// Returns false if the code is not mapped.
func (c *CPU) KeyUp(code rune) bool {
	return c.keypad.KeyUp(code)
}

// ReadDisplay copies framebuffer pixels into buf, starting at the wrapped
// row-major offset of (x, y). Returns the number of pixels copied.
func (c *CPU) ReadDisplay(x, y int, buf []byte) int {
	return c.display.Read(x, y, buf)
}

// Dirty returns true if the framebuffer changed since the last call to Dirty.
func (c *CPU) Dirty() bool {
	dirty := c.display.Dirty()
	c.display.ClearDirty()
	return dirty
}

// Config returns the machine configuration.
func (c *CPU) Config() Config { return c.config }

// Memory returns the cpu's internal memory bank.
func (c *CPU) Memory() devices.Memory { return c.memory }

// V returns the value of register i. The index is masked to 4 bits.
func (c *CPU) V(i int) byte { return c.v[i&0xf] }

// I returns the address register.
func (c *CPU) I() uint16 { return c.i }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// SP returns the stack pointer.
func (c *CPU) SP() uint16 { return c.sp }

// DelayTimer returns the delay timer value.
func (c *CPU) DelayTimer() uint8 { return c.timer.Delay() }

// SoundTimer returns the sound timer value.
func (c *CPU) SoundTimer() uint8 { return c.timer.Sound() }

// Sounding returns true while the sound timer is active.
func (c *CPU) Sounding() bool { return c.timer.Sounding() }

// Waiting returns true while an FX0A instruction awaits a key release.
func (c *CPU) Waiting() bool { return c.waiting }

// awaitKey completes a pending FX0A once the keypad reports a release.
func (c *CPU) awaitKey() {
	k, ok := c.keypad.Resolve()
	if !ok {
		return
	}

	c.v[c.waitReg] = byte(k)
	c.waiting = false
	c.pc += arch.InstructionSize
}

// push pushes the given value onto the callstack, low byte first.
func (c *CPU) push(value uint16) {
	c.pushByte(byte(value))
	c.pushByte(byte(value >> 8))
}

// pop returns the top value from the callstack.
func (c *CPU) pop() uint16 {
	msb := c.popByte()
	lsb := c.popByte()
	return uint16(msb)<<8 | uint16(lsb)
}

// pushByte stores b at the stack pointer and moves it down. Once the
// stack grows past address 0, bytes are dropped instead of wrapping
// around to the top of memory.
func (c *CPU) pushByte(b byte) {
	if c.under == 0 {
		c.memory.SetU8(int(c.sp), b)
	}
	if c.under > 0 || c.sp == 0 {
		c.under++
	}
	c.sp--
}

// popByte moves the stack pointer up and returns the byte it lands on.
// Bytes dropped by pushByte read as 0.
func (c *CPU) popByte() byte {
	c.sp++
	if c.under > 0 {
		c.under--
		if c.under > 0 {
			return 0
		}
	}
	return c.memory.U8(int(c.sp))
}

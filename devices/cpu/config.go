package cpu

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/c8/devices/keypad"
)

// Address space limits.
const (
	MinMemorySize = 0x200
	MaxMemorySize = 0x10000
)

// Config defines the machine configuration. It is copied into the CPU
// on construction and never changes afterwards.
type Config struct {
	MemorySize   int           // Size of the address space in bytes.
	StartAddress int           // Initial program counter. The stack grows down from StartAddress-1.
	FontAddress  int           // Base address of the built-in font.
	Layout       keypad.Layout // Physical to logical key mapping.
	Seed         int64         // Random source seed. Zero seeds from the current time.
}

// DefaultConfig returns the canonical machine configuration.
func DefaultConfig() Config {
	return Config{
		MemorySize:   0x1000,
		StartAddress: 0x200,
		FontAddress:  0x000,
		Layout:       keypad.DefaultLayout,
	}
}

// Validate returns an error if the configuration describes an unusable machine.
func (c Config) Validate() error {
	if c.MemorySize < MinMemorySize || c.MemorySize > MaxMemorySize {
		return errors.Wrapf(ErrInvalidConfig, "memory size %#x not in [%#x, %#x]",
			c.MemorySize, MinMemorySize, MaxMemorySize)
	}

	if c.StartAddress < 1 || c.StartAddress > c.MemorySize-2 {
		return errors.Wrapf(ErrInvalidConfig, "start address %#x outside memory", c.StartAddress)
	}

	if c.FontAddress < 0 || c.FontAddress > c.MemorySize-FontSize {
		return errors.Wrapf(ErrInvalidConfig, "font at %#x does not fit in memory", c.FontAddress)
	}

	if err := c.Layout.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "key layout: %v", err)
	}

	return nil
}

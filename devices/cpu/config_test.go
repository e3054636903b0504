package cpu

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 4096, cfg.MemorySize)
	assert.Equal(t, 0x200, cfg.StartAddress)
	assert.Equal(t, 0, cfg.FontAddress)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"memory too small", func(c *Config) { c.MemorySize = MinMemorySize - 1 }, false},
		{"memory too large", func(c *Config) { c.MemorySize = MaxMemorySize + 1 }, false},
		{"full address space", func(c *Config) { c.MemorySize = MaxMemorySize }, true},
		{"start address at end", func(c *Config) { c.StartAddress = c.MemorySize - 2 }, true},
		{"start address past end", func(c *Config) { c.StartAddress = c.MemorySize - 1 }, false},
		{"start address zero", func(c *Config) { c.StartAddress = 0 }, false},
		{"font at end", func(c *Config) { c.FontAddress = c.MemorySize - FontSize }, true},
		{"font past end", func(c *Config) { c.FontAddress = c.MemorySize - FontSize + 1 }, false},
		{"negative font address", func(c *Config) { c.FontAddress = -1 }, false},
		{"duplicate key", func(c *Config) { c.Layout[0] = c.Layout[1] }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			}
		})
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"

	"github.com/hexaflex/c8/devices/cpu"
)

func TestReadROM(t *testing.T) {
	data, err := readROM(bytes.NewReader([]byte{0x60, 0x05, 0x70, 0x03}), 4)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x05, 0x70, 0x03}, data)

	_, err = readROM(bytes.NewReader([]byte{1, 2, 3, 4, 5}), 4)
	assert.True(t, errors.Is(err, ErrROMTooLarge))

	_, err = readROM(bytes.NewReader(nil), 4)
	assert.True(t, errors.Is(err, ErrROMEmpty))
}

func TestLoadROM(t *testing.T) {
	config := cpu.DefaultConfig()
	limit := config.MemorySize - config.StartAddress
	dir := t.TempDir()

	fits := filepath.Join(dir, "fits.ch8")
	assert.NoError(t, os.WriteFile(fits, make([]byte, limit), 0o600))
	data, err := loadROM(fits, config)
	assert.NoError(t, err)
	assert.Len(t, data, limit)

	large := filepath.Join(dir, "large.ch8")
	assert.NoError(t, os.WriteFile(large, make([]byte, limit+1), 0o600))
	_, err = loadROM(large, config)
	assert.True(t, errors.Is(err, ErrROMTooLarge))
	assert.ErrorContains(t, err, "large.ch8")

	_, err = loadROM(filepath.Join(dir, "missing.ch8"), config)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	c := defaultConfig()
	assert.NoError(t, c.validate())

	c.Frontend = FrontendTerminal
	assert.NoError(t, c.validate())

	c.Frontend = "tv"
	assert.ErrorContains(t, c.validate(), "tv")

	c = defaultConfig()
	c.Hz = 0
	assert.Error(t, c.validate())

	c = defaultConfig()
	c.ScaleFactor = 0
	assert.Error(t, c.validate())
}

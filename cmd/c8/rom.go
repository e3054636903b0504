package main

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8/devices/cpu"
)

// ROM loading errors.
var (
	ErrROMTooLarge = errors.New("program does not fit in memory")
	ErrROMEmpty    = errors.New("program is empty")
)

// loadROM reads the program image at path and checks that it fits
// between the start address and the end of memory.
func loadROM(path string, config cpu.Config) ([]byte, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	defer fd.Close()

	data, err := readROM(fd, config.MemorySize-config.StartAddress)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return data, nil
}

// readROM reads a program image of at most limit bytes from r.
func readROM(r io.Reader, limit int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading program")
	}

	if len(data) == 0 {
		return nil, ErrROMEmpty
	}

	if len(data) > limit {
		return nil, errors.Wrapf(ErrROMTooLarge, "limit is %d bytes", limit)
	}

	return data, nil
}

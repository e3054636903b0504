package cpu

import "github.com/pkg/errors"

// Errors returned by the cpu.
var (
	ErrAddressRange  = errors.New("address out of range")
	ErrInvalidConfig = errors.New("invalid configuration")
)

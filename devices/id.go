package devices

import "fmt"

// ID identifies a device.
// The upper 16 bits hold the device class.
// The lower 16 bits hold the unit number within that class.
type ID uint32

// Known device classes.
const (
	ClassCPU     = 0xc800
	ClassTimer   = 0xc801
	ClassKeypad  = 0xc802
	ClassDisplay = 0xc803
)

// NewID creates a new id with the given components.
func NewID(class, unit int) ID {
	return ID(class&0xffff)<<16 | ID(unit&0xffff)
}

// Class returns the class component of the ID.
func (id ID) Class() int {
	return int(id>>16) & 0xffff
}

// Unit returns the unit number component of the ID.
func (id ID) Unit() int {
	return int(id) & 0xffff
}

func (id ID) String() string {
	return fmt.Sprintf("%04x:%04x", id.Class(), id.Unit())
}

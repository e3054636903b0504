// Package keypad implements the 16-key hexadecimal keypad.
package keypad

import "github.com/hexaflex/c8/devices"

// Latch records the direction of the most recent key transition.
type Latch byte

// Known latch states.
const (
	Idle Latch = iota // No transition since the latch was last consumed.
	Down              // Last transition was a key press.
	Up                // Last transition was a key release.
)

// Device defines the keypad state.
type Device struct {
	layout   Layout         // Physical to logical key mapping.
	pressed  [KeyCount]bool // Current key states.
	released uint16         // Keys released since the latch was last consumed.
	latch    Latch          // Activity latch.
}

var _ devices.Device = &Device{}

// New creates a new keypad using the given layout.
func New(layout Layout) *Device {
	return &Device{layout: layout}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.ClassKeypad, 0)
}

// Startup releases all keys and clears the activity latch.
func (d *Device) Startup() error {
	d.pressed = [KeyCount]bool{}
	d.released = 0
	d.latch = Idle
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	return nil
}

// KeyDown marks the key bound to the given physical code as pressed.
// Returns false if the code is not mapped.
func (d *Device) KeyDown(code rune) bool {
	k, ok := d.layout.Lookup(code)
	if !ok {
		return false
	}

	d.pressed[k] = true
	d.latch = Down
	return true
}

// KeyUp marks the key bound to the given physical code as released.
// Returns false if the code is not mapped.
func (d *Device) KeyUp(code rune) bool {
	k, ok := d.layout.Lookup(code)
	if !ok {
		return false
	}

	d.pressed[k] = false
	d.released |= 1 << uint(k)
	d.latch = Up
	return true
}

// Pressed returns true if logical key k is held down.
// The key index is masked to 4 bits.
func (d *Device) Pressed(k int) bool {
	return d.pressed[k&0xf]
}

// Latch returns the state of the activity latch.
func (d *Device) Latch() Latch {
	return d.latch
}

// Resolve completes a wait for a key release. It succeeds when the last
// transition was a release, yielding the lowest-indexed key that is up
// and was released since the latch was last consumed. A successful
// resolve consumes the latch.
func (d *Device) Resolve() (int, bool) {
	if d.latch != Up {
		return 0, false
	}

	for k := 0; k < KeyCount; k++ {
		if !d.pressed[k] && d.released&(1<<uint(k)) != 0 {
			d.latch = Idle
			d.released = 0
			return k, true
		}
	}

	return 0, false
}

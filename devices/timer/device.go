// Package timer implements the delay and sound countdown timers.
package timer

import "github.com/hexaflex/c8/devices"

// Device holds the two 8-bit countdown timers. Neither counter decays on
// its own; the host drives both through Tick at a fixed cadence.
type Device struct {
	delay uint8 // Delay timer, readable by programs.
	sound uint8 // Sound timer, a tone plays while non-zero.
}

var _ devices.Device = &Device{}

// New creates a new device.
func New() *Device {
	return &Device{}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.ClassTimer, 0)
}

// Startup resets both timers.
func (d *Device) Startup() error {
	d.delay = 0
	d.sound = 0
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	return nil
}

// Tick decrements each non-zero timer by one.
func (d *Device) Tick() {
	if d.delay > 0 {
		d.delay--
	}
	if d.sound > 0 {
		d.sound--
	}
}

// Delay returns the delay timer value.
func (d *Device) Delay() uint8 { return d.delay }

// SetDelay sets the delay timer value.
func (d *Device) SetDelay(v uint8) { d.delay = v }

// Sound returns the sound timer value.
func (d *Device) Sound() uint8 { return d.sound }

// SetSound sets the sound timer value.
func (d *Device) SetSound(v uint8) { d.sound = v }

// Sounding returns true while the sound timer is active.
func (d *Device) Sounding() bool {
	return d.sound > 0
}

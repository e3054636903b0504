// Package display implements the monochrome framebuffer and sprite drawing.
package display

import "github.com/hexaflex/c8/devices"

// Display properties.
const (
	Width       = 64             // Display width in pixels.
	Height      = 32             // Display height in pixels.
	PixelCount  = Width * Height // Total number of pixels.
	SpriteWidth = 8              // Width in pixels of a single sprite row.
)

// Device holds the framebuffer. Each pixel is stored as one byte
// with a value of 0 or 1, row-major.
type Device struct {
	pixels [PixelCount]byte
	dirty  bool
}

var _ devices.Device = &Device{}

// New creates a new device.
func New() *Device {
	return &Device{}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.ClassDisplay, 0)
}

// Startup clears the framebuffer.
func (d *Device) Startup() error {
	d.Clear()
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	return nil
}

// Clear unsets all pixels.
func (d *Device) Clear() {
	d.pixels = [PixelCount]byte{}
	d.dirty = true
}

// Draw XORs an n-row sprite read from mem at addr onto the framebuffer.
// The origin wraps around the display edges, the sprite itself is clipped.
// Returns true if any set pixel was cleared.
func (d *Device) Draw(mem devices.Memory, addr, x, y, n int) bool {
	x %= Width
	y %= Height
	collision := false

	for row := 0; row < n; row++ {
		py := y + row
		if py >= Height {
			break
		}

		bits := mem.U8(addr + row)
		line := d.pixels[py*Width:]

		for col := 0; col < SpriteWidth; col++ {
			px := x + col
			if px >= Width {
				break
			}

			if bits&(0x80>>uint(col)) == 0 {
				continue
			}

			if line[px] == 1 {
				collision = true
			}
			line[px] ^= 1
		}
	}

	if n > 0 {
		d.dirty = true
	}

	return collision
}

// Pixel returns the pixel value at the given coordinates,
// which wrap around the display edges.
func (d *Device) Pixel(x, y int) byte {
	return d.pixels[wrap(y, Height)*Width+wrap(x, Width)]
}

// Read copies pixels into buf starting at the row-major offset of (x, y),
// with both coordinates wrapped. The copy stops at the end of the
// framebuffer. Returns the number of pixels copied.
func (d *Device) Read(x, y int, buf []byte) int {
	start := wrap(y, Height)*Width + wrap(x, Width)
	return copy(buf, d.pixels[start:])
}

// Dirty returns true if the framebuffer changed since the flag was last cleared.
func (d *Device) Dirty() bool {
	return d.dirty
}

// ClearDirty resets the change flag.
func (d *Device) ClearDirty() {
	d.dirty = false
}

// wrap returns v modulo n in the range [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

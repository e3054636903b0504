package display

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// testMemory is a flat, bounds-checked memory used to feed sprite data.
type testMemory []byte

func (m testMemory) Len() int { return len(m) }

func (m testMemory) U8(addr int) byte {
	if addr < 0 || addr >= len(m) {
		return 0
	}
	return m[addr]
}

func (m testMemory) SetU8(addr int, v byte) bool {
	if addr < 0 || addr >= len(m) {
		return false
	}
	m[addr] = v
	return true
}

func (m testMemory) Read(addr int, p []byte) bool {
	if addr < 0 || addr+len(p) > len(m) {
		return false
	}
	copy(p, m[addr:])
	return true
}

func (m testMemory) Write(addr int, p []byte) bool {
	if addr < 0 || addr+len(p) > len(m) {
		return false
	}
	copy(m[addr:], p)
	return true
}

func newTestDisplay(t *testing.T) *Device {
	t.Helper()
	d := New()
	assert.NoError(t, d.Startup())
	d.ClearDirty()
	return d
}

func TestDrawRow(t *testing.T) {
	d := newTestDisplay(t)
	mem := testMemory{0xa5}

	collision := d.Draw(mem, 0, 3, 2, 1)
	assert.False(t, collision)
	assert.True(t, d.Dirty())

	want := []byte{1, 0, 1, 0, 0, 1, 0, 1}
	for i, v := range want {
		assert.Equal(t, v, d.Pixel(3+i, 2))
	}
	assert.Equal(t, byte(0), d.Pixel(2, 2))
	assert.Equal(t, byte(0), d.Pixel(11, 2))
}

func TestDrawTwiceRestores(t *testing.T) {
	d := newTestDisplay(t)
	mem := testMemory{0xf0, 0x90, 0xf0}

	var before [PixelCount]byte
	d.Read(0, 0, before[:])

	assert.False(t, d.Draw(mem, 0, 10, 10, 3))
	assert.True(t, d.Draw(mem, 0, 10, 10, 3))

	var after [PixelCount]byte
	d.Read(0, 0, after[:])
	assert.Equal(t, before, after)
}

func TestDrawCollisionAcrossRows(t *testing.T) {
	d := newTestDisplay(t)
	assert.False(t, d.Draw(testMemory{0x80}, 0, 0, 1, 1))

	// Second row overlaps, first does not.
	assert.True(t, d.Draw(testMemory{0x01, 0x80}, 0, 0, 0, 2))
	assert.Equal(t, byte(0), d.Pixel(0, 1))
	assert.Equal(t, byte(1), d.Pixel(7, 0))
}

func TestDrawClipsRight(t *testing.T) {
	d := newTestDisplay(t)
	d.Draw(testMemory{0xff}, 0, Width-1, 0, 1)

	assert.Equal(t, byte(1), d.Pixel(Width-1, 0))
	for x := 0; x < 7; x++ {
		assert.Equal(t, byte(0), d.Pixel(x, 0))
		assert.Equal(t, byte(0), d.Pixel(x, 1))
	}
}

func TestDrawClipsBottom(t *testing.T) {
	d := newTestDisplay(t)
	d.Draw(testMemory{0x80, 0x80, 0x80}, 0, 0, Height-1, 3)

	assert.Equal(t, byte(1), d.Pixel(0, Height-1))
	assert.Equal(t, byte(0), d.Pixel(0, 0))
	assert.Equal(t, byte(0), d.Pixel(0, 1))
}

func TestDrawOriginWraps(t *testing.T) {
	d := newTestDisplay(t)
	d.Draw(testMemory{0x80}, 0, Width+2, Height+3, 1)
	assert.Equal(t, byte(1), d.Pixel(2, 3))
}

func TestDrawZeroRows(t *testing.T) {
	d := newTestDisplay(t)
	d.Draw(testMemory{0xff}, 0, 0, 0, 1)
	d.ClearDirty()

	assert.False(t, d.Draw(testMemory{0xff}, 0, 0, 0, 0))
	assert.False(t, d.Dirty())
	assert.Equal(t, byte(1), d.Pixel(0, 0))
}

func TestDrawOutOfRangeSpriteData(t *testing.T) {
	d := newTestDisplay(t)
	assert.False(t, d.Draw(testMemory{0xff}, 0, 0, 0, 2))
	assert.Equal(t, byte(1), d.Pixel(0, 0))
	assert.Equal(t, byte(0), d.Pixel(0, 1))
}

func TestClear(t *testing.T) {
	d := newTestDisplay(t)
	d.Draw(testMemory{0xff}, 0, 0, 0, 1)
	d.ClearDirty()

	d.Clear()
	assert.True(t, d.Dirty())
	assert.Equal(t, byte(0), d.Pixel(0, 0))
}

func TestRead(t *testing.T) {
	d := newTestDisplay(t)
	d.Draw(testMemory{0x80}, 0, 5, 1, 1)

	buf := make([]byte, 4)
	assert.Equal(t, 4, d.Read(4, 1, buf))
	assert.Equal(t, []byte{0, 1, 0, 0}, buf)

	// Offsets wrap around the grid.
	buf = make([]byte, 1)
	assert.Equal(t, 1, d.Read(5+Width, 1+Height, buf))
	assert.Equal(t, byte(1), buf[0])
}

func TestReadClamps(t *testing.T) {
	d := newTestDisplay(t)

	buf := make([]byte, PixelCount+100)
	assert.Equal(t, PixelCount, d.Read(0, 0, buf))

	buf = make([]byte, 10)
	assert.Equal(t, 3, d.Read(Width-3, Height-1, buf))
}

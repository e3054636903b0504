package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryBounds(t *testing.T) {
	m := make(Memory, 16)

	assert.True(t, m.SetU8(15, 0xab))
	assert.Equal(t, byte(0xab), m.U8(15))

	assert.False(t, m.SetU8(16, 1))
	assert.False(t, m.SetU8(-1, 1))
	assert.Equal(t, byte(0), m.U8(16))
	assert.Equal(t, byte(0), m.U8(-1))
}

func TestMemoryWriteRejectsWithoutPartialCopy(t *testing.T) {
	m := make(Memory, 16)

	assert.True(t, m.Write(12, []byte{1, 2, 3, 4}))
	assert.False(t, m.Write(13, []byte{9, 9, 9, 9}))
	assert.Equal(t, Memory{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4}, m)

	assert.False(t, m.Write(-1, []byte{9}))
	assert.Equal(t, byte(0), m.U8(0))
}

func TestMemoryRead(t *testing.T) {
	m := Memory{1, 2, 3, 4}

	p := make([]byte, 2)
	assert.True(t, m.Read(2, p))
	assert.Equal(t, []byte{3, 4}, p)

	p = []byte{7, 7}
	assert.False(t, m.Read(3, p))
	assert.Equal(t, []byte{7, 7}, p)
}

func TestMemoryClear(t *testing.T) {
	m := Memory{1, 2, 3}
	m.clear()
	assert.Equal(t, Memory{0, 0, 0}, m)
	assert.Equal(t, 3, m.Len())
}

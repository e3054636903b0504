package keypad

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultLayout(t *testing.T) {
	assert.NoError(t, DefaultLayout.Validate())

	want := map[rune]int{
		'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
		'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
		'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
		'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
	}

	for code, key := range want {
		k, ok := DefaultLayout.Lookup(code)
		assert.True(t, ok, string(code))
		assert.Equal(t, key, k, string(code))
	}

	_, ok := DefaultLayout.Lookup('p')
	assert.False(t, ok)
	_, ok = DefaultLayout.Lookup(0)
	assert.False(t, ok)
}

func TestLayoutValidate(t *testing.T) {
	l := DefaultLayout
	l[0x3] = 'q'

	err := l.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	var sparse Layout
	sparse[0x5] = 'k'
	assert.NoError(t, sparse.Validate())
}

func TestKeyEvents(t *testing.T) {
	d := New(DefaultLayout)
	assert.NoError(t, d.Startup())
	assert.Equal(t, Idle, d.Latch())

	assert.True(t, d.KeyDown('w'))
	assert.True(t, d.Pressed(0x5))
	assert.Equal(t, Down, d.Latch())

	assert.True(t, d.KeyUp('w'))
	assert.False(t, d.Pressed(0x5))
	assert.Equal(t, Up, d.Latch())
}

func TestUnmappedKey(t *testing.T) {
	d := New(DefaultLayout)
	assert.NoError(t, d.Startup())

	assert.False(t, d.KeyDown('p'))
	assert.False(t, d.KeyUp('p'))
	assert.Equal(t, Idle, d.Latch())
	for k := 0; k < KeyCount; k++ {
		assert.False(t, d.Pressed(k))
	}
}

func TestResolve(t *testing.T) {
	d := New(DefaultLayout)
	assert.NoError(t, d.Startup())

	_, ok := d.Resolve()
	assert.False(t, ok)

	d.KeyDown('a')
	_, ok = d.Resolve()
	assert.False(t, ok)

	d.KeyUp('a')
	k, ok := d.Resolve()
	assert.True(t, ok)
	assert.Equal(t, 0x7, k)
	assert.Equal(t, Idle, d.Latch())

	_, ok = d.Resolve()
	assert.False(t, ok)
}

func TestResolveLowestReleased(t *testing.T) {
	d := New(DefaultLayout)
	assert.NoError(t, d.Startup())

	d.KeyDown('v')
	d.KeyDown('s')
	d.KeyUp('v')
	d.KeyUp('s')

	k, ok := d.Resolve()
	assert.True(t, ok)
	assert.Equal(t, 0x8, k)
}

func TestResolveIgnoresHeldKeys(t *testing.T) {
	d := New(DefaultLayout)
	assert.NoError(t, d.Startup())

	d.KeyDown('x')
	d.KeyDown('1')
	d.KeyUp('1')

	k, ok := d.Resolve()
	assert.True(t, ok)
	assert.Equal(t, 0x1, k)
	assert.True(t, d.Pressed(0x0))
}

func TestCustomLayout(t *testing.T) {
	var l Layout
	l[0xb] = 'k'

	d := New(l)
	assert.NoError(t, d.Startup())
	assert.False(t, d.KeyDown('c'))
	assert.True(t, d.KeyDown('k'))
	assert.True(t, d.Pressed(0xb))
}

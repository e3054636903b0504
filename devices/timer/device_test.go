package timer

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTickSaturates(t *testing.T) {
	d := New()
	assert.NoError(t, d.Startup())

	for i := 0; i < 300; i++ {
		d.Tick()
	}
	assert.Equal(t, uint8(0), d.Delay())
	assert.Equal(t, uint8(0), d.Sound())
	assert.False(t, d.Sounding())
}

func TestTickIndependent(t *testing.T) {
	d := New()
	d.SetDelay(3)
	d.SetSound(1)
	assert.True(t, d.Sounding())

	d.Tick()
	assert.Equal(t, uint8(2), d.Delay())
	assert.Equal(t, uint8(0), d.Sound())
	assert.False(t, d.Sounding())

	d.Tick()
	d.Tick()
	d.Tick()
	assert.Equal(t, uint8(0), d.Delay())
}

func TestStartupResets(t *testing.T) {
	d := New()
	d.SetDelay(0xff)
	d.SetSound(0xff)

	assert.NoError(t, d.Startup())
	assert.Equal(t, uint8(0), d.Delay())
	assert.Equal(t, uint8(0), d.Sound())
}

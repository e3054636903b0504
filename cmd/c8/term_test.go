package main

import (
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/hexaflex/c8/devices/display"
)

func TestFrameText(t *testing.T) {
	pixels := make([]byte, display.PixelCount)
	pixels[0] = 1
	pixels[display.Width+1] = 1
	pixels[2] = 1
	pixels[display.Width+2] = 1

	lines := strings.Split(frameText(pixels), "\r\n")
	assert.Len(t, lines, display.Height/2+1)
	assert.True(t, strings.HasPrefix(lines[0], "▀▄█ "))
	assert.Equal(t, strings.Repeat(" ", display.Width), lines[1])
}

func TestTerminalInput(t *testing.T) {
	ctl := newTestController(t, 0xf0, 0x0a)
	term := NewTerminal(log.NewTestLogger(t), ctl)
	c := ctl.CPU()

	c.Step()
	assert.True(t, c.Waiting())

	term.input <- 'A'
	assert.True(t, term.pollInput())
	assert.Equal(t, keyHoldFrames, term.held['a'])

	// Unmapped keys are not held.
	term.input <- 'p'
	assert.True(t, term.pollInput())
	_, held := term.held['p']
	assert.False(t, held)

	// The first frame was spent by the previous poll.
	for n := 1; n < keyHoldFrames; n++ {
		c.Step()
		assert.True(t, c.Waiting())
		assert.True(t, term.pollInput())
	}

	c.Step()
	assert.False(t, c.Waiting())
	assert.Equal(t, byte(0x7), c.V(0))

	term.input <- keyEscape
	assert.False(t, term.pollInput())
}

func TestReadInputStopsWhenDone(t *testing.T) {
	ctl := newTestController(t, 0x12, 0x00)
	term := NewTerminal(log.NewTestLogger(t), ctl)

	stopped := make(chan struct{})
	go func() {
		term.readInput(strings.NewReader(strings.Repeat("a", 64)))
		close(stopped)
	}()

	b := <-term.input
	assert.Equal(t, byte('a'), b)
	close(term.done)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("input reader did not stop")
	}
}

func TestReadInputClosesOnEOF(t *testing.T) {
	ctl := newTestController(t, 0x12, 0x00)
	term := NewTerminal(log.NewTestLogger(t), ctl)

	term.readInput(strings.NewReader("x"))
	b, ok := <-term.input
	assert.True(t, ok)
	assert.Equal(t, byte('x'), b)
	_, ok = <-term.input
	assert.False(t, ok)
}

package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/retroenv/retrogolib/assert"
)

func TestGamepadTracks(t *testing.T) {
	g := &Gamepad{}
	assert.True(t, g.tracks(glfw.Joystick2, glfw.Connected))
	assert.False(t, g.tracks(glfw.Joystick2, glfw.Disconnected))

	g.connected = true
	g.joy = glfw.Joystick1
	assert.True(t, g.tracks(glfw.Joystick1, glfw.Disconnected))
	assert.False(t, g.tracks(glfw.Joystick2, glfw.Disconnected))
	assert.False(t, g.tracks(glfw.Joystick2, glfw.Connected))
}

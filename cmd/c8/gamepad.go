package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/retroenv/retrogolib/log"

	"github.com/hexaflex/c8/devices/cpu"
)

// gamepadKeys binds gamepad buttons to logical keypad keys. The d-pad
// follows the 2/4/6/8 movement convention most programs use.
var gamepadKeys = map[glfw.GamepadButton]int{
	glfw.ButtonDpadUp:      0x2,
	glfw.ButtonDpadLeft:    0x4,
	glfw.ButtonDpadRight:   0x6,
	glfw.ButtonDpadDown:    0x8,
	glfw.ButtonA:           0x5,
	glfw.ButtonB:           0x0,
	glfw.ButtonX:           0x7,
	glfw.ButtonY:           0x9,
	glfw.ButtonBack:        0xa,
	glfw.ButtonStart:       0xb,
	glfw.ButtonLeftBumper:  0x1,
	glfw.ButtonRightBumper: 0x3,
	glfw.ButtonLeftThumb:   0xc,
	glfw.ButtonRightThumb:  0xd,
}

// Gamepad forwards button transitions of a connected gamepad to the
// keypad, as if the bound keyboard keys were used.
type Gamepad struct {
	logger    *log.Logger
	joy       glfw.Joystick
	pressed   [glfw.ButtonLast + 1]bool
	connected bool
}

// NewGamepad creates a new gamepad and detects any connected device.
func NewGamepad(logger *log.Logger) *Gamepad {
	g := &Gamepad{logger: logger}
	glfw.SetJoystickCallback(g.configure)

	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() && joy.IsGamepad() {
			g.configure(joy, glfw.Connected)
			break
		}
	}

	return g
}

// Update polls the gamepad and forwards button transitions to c.
func (g *Gamepad) Update(c *cpu.CPU) {
	if !g.connected {
		return
	}

	state := g.joy.GetGamepadState()
	if state == nil {
		return
	}

	layout := c.Config().Layout

	for btn, action := range state.Buttons {
		pressed := action == glfw.Press
		if pressed == g.pressed[btn] {
			continue
		}
		g.pressed[btn] = pressed

		key, ok := gamepadKeys[glfw.GamepadButton(btn)]
		if !ok || layout[key] == 0 {
			continue
		}

		if pressed {
			c.KeyDown(layout[key])
		} else {
			c.KeyUp(layout[key])
		}
	}
}

// Release detaches the joystick callback.
func (g *Gamepad) Release() {
	glfw.SetJoystickCallback(nil)
}

// configure is called whenever a joystick is connected or disconnected from the system.
func (g *Gamepad) configure(joy glfw.Joystick, event glfw.PeripheralEvent) {
	if !g.tracks(joy, event) {
		return
	}
	if event == glfw.Connected && !joy.IsGamepad() {
		return
	}

	g.connected = event == glfw.Connected
	g.joy = joy
	g.pressed = [glfw.ButtonLast + 1]bool{}

	if g.connected {
		g.logger.Info("gamepad connected", log.String("name", joy.GetGamepadName()))
	} else {
		g.logger.Info("gamepad disconnected")
	}
}

// tracks returns true if the event concerns the active gamepad, or
// connects a new one while none is active.
func (g *Gamepad) tracks(joy glfw.Joystick, event glfw.PeripheralEvent) bool {
	if g.connected {
		return joy == g.joy
	}
	return event == glfw.Connected
}

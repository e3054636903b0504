package main

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"

	"github.com/hexaflex/c8/devices/display"
)

// Window is the glfw/OpenGL front end.
type Window struct {
	config       *Config        // Application configuration.
	logger       *log.Logger    // Application logger.
	window       *glfw.Window   // OpenGL/GLFW context.
	cpu          *CPUController // VM with program to be run.
	screen       *Screen        // Framebuffer renderer.
	gamepad      *Gamepad       // Optional gamepad input.
	titleUpdated time.Time      // Value used to periodically update window title.
	lastRendered time.Time      // Last time a frame was rendered.
}

var _ Frontend = &Window{}

// NewWindow creates a new window front end for the given controller.
func NewWindow(config *Config, logger *log.Logger, cpu *CPUController) *Window {
	return &Window{
		config: config,
		logger: logger,
		cpu:    cpu,
	}
}

// Run runs the front end and does not return until the window is closed
// or an error occurred during initialization.
func (w *Window) Run() error {
	if err := w.initGL(); err != nil {
		return err
	}

	defer w.dispose()

	var err error
	w.screen, err = NewScreen()
	if err != nil {
		return err
	}

	w.gamepad = NewGamepad(w.logger)
	w.printHelp()
	w.cpu.Start()

	for !w.window.ShouldClose() {
		w.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations.
func (w *Window) mainLoop() {
	glfw.PollEvents()
	w.gamepad.Update(w.cpu.CPU())
	w.cpu.Update()

	// Periodically render display contents.
	if time.Since(w.lastRendered) >= TimerInterval {
		w.lastRendered = time.Now()
		w.screen.Update(w.cpu.CPU())
		gl.Clear(gl.COLOR_BUFFER_BIT)
		w.screen.Draw()
		w.window.SwapBuffers()
	} else {
		time.Sleep(time.Millisecond)
	}

	// Periodically update the window title to show the current instruction rate.
	if time.Since(w.titleUpdated) >= time.Second*2 {
		w.titleUpdated = time.Now()
		freq := prettyFrequency(w.cpu.Frequency())
		w.window.SetTitle(fmt.Sprintf("%s %s - %s", AppName, AppVersion, freq))
	}
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (w *Window) dispose() {
	w.cpu.Stop()

	if w.gamepad != nil {
		w.gamepad.Release()
		w.gamepad = nil
	}

	if w.screen != nil {
		w.screen.Release()
		w.screen = nil
	}

	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}

	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}

	if code, ok := keyCode(key); ok {
		if action == glfw.Press {
			w.cpu.CPU().KeyDown(code)
		} else {
			w.cpu.CPU().KeyUp(code)
		}
		return
	}

	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.window.SetShouldClose(true)
	case glfw.KeyF1:
		w.printHelp()
	case glfw.KeyF5:
		if err := w.cpu.Reset(); err != nil {
			w.logger.Error("Reset failed", log.Err(err))
		}
	case glfw.KeyF6:
		w.cpu.ToggleRun()
	case glfw.KeyF7:
		if !w.cpu.Running() {
			w.cpu.Step()
		}
	}
}

// keyCode translates printable glfw keys into the physical key codes
// used by the keypad layout.
func keyCode(key glfw.Key) (rune, bool) {
	if key < glfw.KeySpace || key > glfw.KeyGraveAccent {
		return 0, false
	}
	return unicode.ToLower(rune(key)), true
}

// initGL initializes GLFW and openGL.
func (w *Window) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := display.Width * w.config.ScaleFactor
	height := display.Height * w.config.ScaleFactor

	if w.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	w.window, err = glfw.CreateWindow(width, height, AppName, monitor, nil)
	if err != nil {
		w.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	w.window.MakeContextCurrent()
	w.window.SetKeyCallback(w.keyCallback)

	glfw.SwapInterval(1)

	err = gl.Init()
	if err != nil {
		w.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return nil
}

// printHelp writes a short overview of supported shortcut keys to the log.
func (w *Window) printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F5       Reset the machine and reload the program.\n")
	sb.WriteString(" F6       Pause/Resume program execution.\n")
	sb.WriteString(" F7       Perform a single execution step while paused.\n")
	sb.WriteString(keypadHelp(w.cpu.CPU().Config().Layout))
	w.logger.Info(sb.String())
}

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}

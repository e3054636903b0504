package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	tm "github.com/buger/goterm"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"

	"github.com/hexaflex/c8/devices/display"
)

// keyHoldFrames is the number of frames a key stays down after its byte
// was read. Terminals report presses only, so the release is synthesized.
const keyHoldFrames = 6

// Terminal control bytes.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// Terminal is the raw tty front end. It renders the framebuffer with
// half block characters, two pixel rows per text line.
type Terminal struct {
	logger *log.Logger
	cpu    *CPUController
	input  chan byte
	done   chan struct{}
	held   map[rune]int // Remaining frames per held key.
	pixels [display.PixelCount]byte
}

var _ Frontend = &Terminal{}

// NewTerminal creates a new terminal front end for the given controller.
func NewTerminal(logger *log.Logger, cpu *CPUController) *Terminal {
	return &Terminal{
		logger: logger,
		cpu:    cpu,
		input:  make(chan byte, 16),
		done:   make(chan struct{}),
		held:   make(map[rune]int),
	}
}

// Run runs the front end until ESC or Ctrl-C is pressed.
func (t *Terminal) Run() error {
	if err := enterRawTerm(); err != nil {
		return errors.Wrapf(err, "entering raw terminal mode")
	}

	defer func() {
		if err := exitRawTerm(); err != nil {
			t.logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	defer close(t.done)
	go t.readInput(os.Stdin)

	frame := time.NewTicker(TimerInterval)
	defer frame.Stop()

	t.cpu.Start()
	defer t.cpu.Stop()

	t.render()

	for range frame.C {
		if !t.pollInput() {
			return nil
		}

		t.cpu.Update()

		if t.cpu.CPU().Dirty() {
			t.render()
		}
	}

	return nil
}

// readInput forwards bytes from rd to the input channel until rd fails
// or Run returns.
func (t *Terminal) readInput(rd io.Reader) {
	r := bufio.NewReader(rd)
	for {
		b, err := r.ReadByte()
		if err != nil {
			close(t.input)
			return
		}

		select {
		case t.input <- b:
		case <-t.done:
			return
		}
	}
}

// pollInput applies pending key bytes and releases keys whose hold time
// ran out. Returns false when the user asked to quit.
func (t *Terminal) pollInput() bool {
	c := t.cpu.CPU()

	for code, frames := range t.held {
		if frames <= 1 {
			delete(t.held, code)
			c.KeyUp(code)
		} else {
			t.held[code] = frames - 1
		}
	}

	for {
		select {
		case b, ok := <-t.input:
			if !ok || b == keyEscape || b == keyCtrlC {
				return false
			}

			code := unicode.ToLower(rune(b))
			if _, down := t.held[code]; !down && !c.KeyDown(code) {
				continue
			}
			t.held[code] = keyHoldFrames
		default:
			return true
		}
	}
}

// render draws the framebuffer and a status line.
func (t *Terminal) render() {
	c := t.cpu.CPU()
	c.ReadDisplay(0, 0, t.pixels[:])

	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Print(frameText(t.pixels[:]))

	status := "     "
	if c.Sounding() {
		status = "BEEP "
	}
	tm.Print(status, AppName, " - ESC to quit\r\n")
	tm.Flush()
}

// frameText converts the framebuffer into half block text lines.
func frameText(pixels []byte) string {
	var sb strings.Builder
	sb.Grow((display.Width*3 + 2) * display.Height / 2)

	for y := 0; y < display.Height; y += 2 {
		top := pixels[y*display.Width:]
		bottom := pixels[(y+1)*display.Width:]

		for x := 0; x < display.Width; x++ {
			switch {
			case top[x] != 0 && bottom[x] != 0:
				sb.WriteRune('█')
			case top[x] != 0:
				sb.WriteRune('▀')
			case bottom[x] != 0:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}

	return sb.String()
}

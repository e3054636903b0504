package main

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/c8/devices/display"
)

// Display colors as RGBA.
var (
	colorBackground = [4]float32{0.05, 0.05, 0.08, 1}
	colorForeground = [4]float32{0.75, 0.95, 0.75, 1}
	colorSounding   = [4]float32{1.00, 0.75, 0.30, 1}
)

// Screen renders the framebuffer as a texture on a full window quad.
type Screen struct {
	pixels      [display.PixelCount]byte
	shader      uint32
	vao         uint32
	vbo         uint32
	texture     uint32
	foreground  int32 // Location of the foreground color uniform.
	background  int32 // Location of the background color uniform.
	sounding    bool
	initialized bool
}

// NewScreen creates a new screen. The GL context must be current.
func NewScreen() (*Screen, error) {
	var s Screen
	var err error

	s.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(s.shader)

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(s.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(s.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	s.foreground = gl.GetUniformLocation(s.shader, glStr("foreground"))
	s.background = gl.GetUniformLocation(s.shader, glStr("background"))
	gl.Uniform4fv(s.background, 1, &colorBackground[0])
	gl.Uniform4fv(s.foreground, 1, &colorForeground[0])

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	s.texture = makeTexture()
	uploadTexture(s.texture, gl.RED, display.Width, display.Height, gl.RED, gl.UNSIGNED_BYTE, s.pixels[:])

	s.initialized = true
	return &s, nil
}

// Update copies the framebuffer into the screen texture if it changed,
// and switches the pixel color while the sound timer runs.
func (s *Screen) Update(src Framebuffer) {
	if !s.initialized {
		return
	}

	if src.Dirty() {
		src.ReadDisplay(0, 0, s.pixels[:])
		uploadTexture(s.texture, gl.RED, display.Width, display.Height, gl.RED, gl.UNSIGNED_BYTE, s.pixels[:])
	}

	if sounding := src.Sounding(); sounding != s.sounding {
		s.sounding = sounding
		color := colorForeground
		if sounding {
			color = colorSounding
		}
		gl.UseProgram(s.shader)
		gl.Uniform4fv(s.foreground, 1, &color[0])
	}
}

// Draw renders the screen contents.
func (s *Screen) Draw() {
	if !s.initialized {
		return
	}

	gl.UseProgram(s.shader)
	gl.BindVertexArray(s.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Release clears up GL resources.
func (s *Screen) Release() {
	if !s.initialized {
		return
	}

	s.initialized = false
	gl.DeleteTextures(1, &s.texture)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.shader)
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}

// Package opengl implements the display, compiler and program ports on
// GLFW and OpenGL 3.3 core.
package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/zerr"
)

// PositionAttrib is the attribute location of the vertex position.
const PositionAttrib = 0

// triangle is drawn with every program, in clip space.
var triangle = []float32{
	0.0, -0.5, 0.0,
	-0.5, 0.5, 0.0,
	0.5, 0.5, 0.0,
}

var _ ports.Display = (*Display)(nil)

// Display is a GLFW window with an OpenGL 3.3 core context.
// All methods must run on the locked main thread.
type Display struct {
	window *glfw.Window
	vao    uint32
	vbo    uint32
	input  domain.InputState
	// cursor position in window coordinates.
	cursorX, cursorY float64
}

// NewDisplay creates a Display. The window is created by Open.
func NewDisplay() *Display {
	return &Display{}
}

// Open creates the window, makes its context current and uploads the triangle.
func (d *Display) Open(opts domain.WindowOptions) error {
	if err := glfw.Init(); err != nil {
		return zerr.Wrap(err, domain.ErrWindowCreateFailed.Error())
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		err = zerr.Wrap(err, domain.ErrWindowCreateFailed.Error())
		return zerr.With(err, "title", opts.Title)
	}
	d.window = window
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		d.destroy()
		return zerr.Wrap(err, domain.ErrWindowCreateFailed.Error())
	}
	glfw.SwapInterval(1)

	width, height := window.GetFramebufferSize()
	d.resize(width, height)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		d.resize(width, height)
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		d.cursorX, d.cursorY = x, y
		d.input.MouseX, d.input.MouseY = d.toFramebuffer(x, y)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			d.input.MouseDown = true
			d.input.ClickX, d.input.ClickY = d.toFramebuffer(d.cursorX, d.cursorY)
		case glfw.Release:
			d.input.MouseDown = false
		}
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	d.upload()
	return nil
}

// PollEvents processes window events.
func (d *Display) PollEvents() domain.InputState {
	glfw.PollEvents()
	d.input.Quit = d.window.ShouldClose()
	return d.input
}

// Draw clears to black, draws the triangle with program and swaps buffers.
// A nil program draws an empty frame.
func (d *Display) Draw(program ports.Program, u domain.Uniforms) error {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if program != nil {
		program.Use()
		program.Apply(u)
		gl.BindVertexArray(d.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(triangle)/3))
		gl.BindVertexArray(0)
	}

	d.window.SwapBuffers()
	return nil
}

// Close releases the geometry and destroys the window.
func (d *Display) Close() error {
	if d.window == nil {
		return nil
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	d.destroy()
	return nil
}

func (d *Display) destroy() {
	d.window.Destroy()
	d.window = nil
	glfw.Terminate()
}

func (d *Display) upload() {
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangle)*4, gl.Ptr(triangle), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(PositionAttrib)
	gl.VertexAttribPointerWithOffset(PositionAttrib, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (d *Display) resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	d.input.FramebufferWidth = width
	d.input.FramebufferHeight = height
}

func (d *Display) toFramebuffer(x, y float64) (float32, float32) {
	winW, winH := d.window.GetSize()
	return cursorToPixels(x, y, winW, winH, d.input.FramebufferWidth, d.input.FramebufferHeight)
}

// cursorToPixels maps window coordinates (origin top left) to framebuffer
// pixels (origin bottom left).
func cursorToPixels(x, y float64, winW, winH, fbW, fbH int) (float32, float32) {
	if winW <= 0 || winH <= 0 {
		return 0, 0
	}
	sx := float64(fbW) / float64(winW)
	sy := float64(fbH) / float64(winH)
	return float32(x * sx), float32(float64(fbH) - y*sy)
}

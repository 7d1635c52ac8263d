package domain

import "github.com/go-gl/mathgl/mgl32"

// InputState is the window state the render loop reads once per frame.
type InputState struct {
	// FramebufferWidth and FramebufferHeight are in pixels.
	FramebufferWidth  int
	FramebufferHeight int
	// MouseX and MouseY are the cursor position in pixels, origin bottom left.
	MouseX, MouseY float32
	// ClickX and ClickY are the position of the last button press, origin bottom left.
	ClickX, ClickY float32
	// MouseDown reports whether the primary button is held.
	MouseDown bool
	// Quit is set once the window was closed or Escape was pressed.
	Quit bool
}

// Uniforms is the Shadertoy-style input set uploaded to the active program every frame.
type Uniforms struct {
	Time       float32
	TimeDelta  float32
	FrameRate  float32
	Frame      int32
	SampleRate float32
	Resolution mgl32.Vec3
	Mouse      mgl32.Vec4
	Date       mgl32.Vec4
	Rotation   mgl32.Mat4
}

// Uniform names as they appear in shader sources.
const (
	UniformTime       = "iTime"
	UniformTimeDelta  = "iTimeDelta"
	UniformFrameRate  = "iFrameRate"
	UniformFrame      = "iFrame"
	UniformSampleRate = "iSampleRate"
	UniformResolution = "iResolution"
	UniformMouse      = "iMouse"
	UniformDate       = "iDate"
	UniformRotation   = "rotation"
)

package ports

import "go.trai.ch/vis/internal/core/domain"

// Display is the window and graphics context the render loop draws into.
// Every method must be called from the goroutine that called Open.
//
//go:generate mockgen -source=display.go -destination=mocks/mock_display.go -package=mocks
type Display interface {
	// Open creates the window, makes its context current and uploads the geometry.
	Open(opts domain.WindowOptions) error
	// PollEvents processes pending window events and returns the resulting input state.
	PollEvents() domain.InputState
	// Draw clears the framebuffer, draws the primitive with the program and presents the frame.
	Draw(program Program, u domain.Uniforms) error
	// Close destroys the window and releases the context.
	Close() error
}

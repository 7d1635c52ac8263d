package ports

import "go.trai.ch/vis/internal/core/domain"

// Program is a compiled, linked shader program owned by the render goroutine.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Program interface {
	// Use binds the program for the following draw calls.
	Use()
	// Apply uploads the per-frame uniforms. Uniforms the program does not declare are skipped.
	Apply(u domain.Uniforms)
	// Release frees the program. It must not be used afterwards.
	Release()
}

// Compiler turns a shader bundle into a program.
// It must only be called on the goroutine that owns the graphics context.
type Compiler interface {
	// Compile builds a program from the bundle's vertex and fragment text, and
	// its geometry text when present. A failure is reported as *domain.CompileError.
	Compile(bundle domain.ShaderBundle) (Program, error)
}

package domain

import "fmt"

// CompileError is the diagnostic returned by a shader compiler.
type CompileError struct {
	// Stage is the shader stage that failed, or empty when linking failed.
	Stage string
	// Log is the compiler or linker output.
	Log string
}

func (e *CompileError) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("program link failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compile failed: %s", e.Stage, e.Log)
}

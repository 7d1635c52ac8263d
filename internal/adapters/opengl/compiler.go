package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler builds GLSL programs in the current context.
type Compiler struct{}

// NewCompiler creates a Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile compiles every present stage and links them.
func (c *Compiler) Compile(bundle domain.ShaderBundle) (ports.Program, error) {
	if !bundle.Drawable() {
		return nil, domain.ErrIncompleteBundle
	}

	shaders := make([]uint32, 0, bundle.Len())
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, role := range bundle.Roles() {
		text, _ := bundle.Source(role)
		shader, err := compileShader(stageOf(role), text)
		if err != nil {
			err.Stage = role.String()
			return nil, err
		}
		shaders = append(shaders, shader)
	}

	id := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(id, s)
	}
	gl.BindAttribLocation(id, PositionAttrib, gl.Str("position\x00"))
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, &domain.CompileError{Log: trimLog(log)}
	}

	for _, s := range shaders {
		gl.DetachShader(id, s)
	}
	return newProgram(id), nil
}

func compileShader(shaderType uint32, source string) (uint32, *domain.CompileError) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &domain.CompileError{Log: trimLog(log)}
	}
	return shader, nil
}

func stageOf(role domain.Role) uint32 {
	switch role {
	case domain.RoleVertex:
		return gl.VERTEX_SHADER
	case domain.RoleGeometry:
		return gl.GEOMETRY_SHADER
	default:
		return gl.FRAGMENT_SHADER
	}
}

// trimLog drops the NUL padding and trailing whitespace of an info log.
func trimLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}

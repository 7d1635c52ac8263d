package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
)

var _ ports.Program = (*Program)(nil)

// Program is a linked GL program with a cache of uniform locations.
type Program struct {
	id        uint32
	locations map[string]int32
}

func newProgram(id uint32) *Program {
	return &Program{id: id, locations: make(map[string]int32)}
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Apply uploads the uniforms the program declares.
func (p *Program) Apply(u domain.Uniforms) {
	if loc := p.location(domain.UniformTime); loc >= 0 {
		gl.Uniform1f(loc, u.Time)
	}
	if loc := p.location(domain.UniformTimeDelta); loc >= 0 {
		gl.Uniform1f(loc, u.TimeDelta)
	}
	if loc := p.location(domain.UniformFrameRate); loc >= 0 {
		gl.Uniform1f(loc, u.FrameRate)
	}
	if loc := p.location(domain.UniformFrame); loc >= 0 {
		gl.Uniform1i(loc, u.Frame)
	}
	if loc := p.location(domain.UniformSampleRate); loc >= 0 {
		gl.Uniform1f(loc, u.SampleRate)
	}
	if loc := p.location(domain.UniformResolution); loc >= 0 {
		gl.Uniform3fv(loc, 1, &u.Resolution[0])
	}
	if loc := p.location(domain.UniformMouse); loc >= 0 {
		gl.Uniform4fv(loc, 1, &u.Mouse[0])
	}
	if loc := p.location(domain.UniformDate); loc >= 0 {
		gl.Uniform4fv(loc, 1, &u.Date[0])
	}
	if loc := p.location(domain.UniformRotation); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &u.Rotation[0])
	}
}

// Release deletes the program.
func (p *Program) Release() {
	gl.DeleteProgram(p.id)
	p.id = 0
}

// location returns the cached uniform location, -1 when the program does not use it.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

package opengl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vis/internal/core/ports"
)

const (
	// DisplayNodeID is the unique identifier for the display Graft node.
	DisplayNodeID graft.ID = "adapter.opengl.display"
	// CompilerNodeID is the unique identifier for the shader compiler Graft node.
	CompilerNodeID graft.ID = "adapter.opengl.compiler"
)

func init() {
	graft.Register(graft.Node[ports.Display]{
		ID:        DisplayNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Display, error) {
			return NewDisplay(), nil
		},
	})

	graft.Register(graft.Node[ports.Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Compiler, error) {
			return NewCompiler(), nil
		},
	})
}

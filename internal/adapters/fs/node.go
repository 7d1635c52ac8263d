package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vis/internal/core/ports"
)

const (
	// OpenerNodeID is the unique identifier for the source opener Graft node.
	OpenerNodeID graft.ID = "adapter.fs.opener"
	// ScaffolderNodeID is the unique identifier for the scaffolder Graft node.
	ScaffolderNodeID graft.ID = "adapter.fs.scaffolder"
)

func init() {
	graft.Register(graft.Node[ports.SourceOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceOpener, error) {
			return NewOpener(), nil
		},
	})

	graft.Register(graft.Node[ports.Scaffolder]{
		ID:        ScaffolderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Scaffolder, error) {
			return NewScaffolder(), nil
		},
	})
}

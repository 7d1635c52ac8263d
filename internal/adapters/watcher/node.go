package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vis/internal/adapters/logger"
	"go.trai.ch/vis/internal/core/ports"
)

// NotifierNodeID is the unique identifier for the change notifier Graft node.
const NotifierNodeID graft.ID = "adapter.watcher.notifier"

func init() {
	graft.Register(graft.Node[ports.ChangeNotifier]{
		ID:        NotifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ChangeNotifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewNotifier(log, DefaultDebounceWindow), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vis/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vis/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/vis/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vis/internal/adapters/opengl"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vis/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/vis/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/vis/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.OpenerNodeID,
			fs.ScaffolderNodeID,
			opengl.DisplayNodeID,
			opengl.CompilerNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.NotifierNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.SourceOpener](ctx)
	if err != nil {
		return nil, err
	}

	scaffolder, err := graft.Dep[ports.Scaffolder](ctx)
	if err != nil {
		return nil, err
	}

	display, err := graft.Dep[ports.Display](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[ports.ChangeNotifier](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, display, compiler, log, tracer, notifier, scaffolder), nil
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vis/internal/adapters/config"
	_ "go.trai.ch/vis/internal/adapters/fs"
	_ "go.trai.ch/vis/internal/adapters/logger"
	_ "go.trai.ch/vis/internal/adapters/opengl"
	_ "go.trai.ch/vis/internal/adapters/telemetry"
	_ "go.trai.ch/vis/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/vis/internal/app"
)

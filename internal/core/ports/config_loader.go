package ports

import "go.trai.ch/vis/internal/core/domain"

// ConfigLoader defines the interface for loading the viewer configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file from the working directory, falling
	// back to defaults when there is none.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration from an explicit path. A missing file is an error.
	LoadFile(path string) (*domain.Config, error)
}

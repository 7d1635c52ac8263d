// Package config provides the configuration loader for vis.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the config schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches cwd and its parents for vis.yaml. Without one the built-in
// defaults apply, with shader paths relative to cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, ok := findConfiguration(cwd)
	if !ok {
		cfg := domain.DefaultConfig()
		cfg.Sources = domain.ResolveSources(cwd, cfg.Sources)
		return cfg, nil
	}
	return l.LoadFile(path)
}

// LoadFile reads the configuration at path. Shader paths are relative to
// the directory holding the file.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if errors.Is(err, os.ErrNotExist) {
		return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var visfile Visfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&visfile); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if visfile.Version != "" && visfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, visfile.Version, SupportedVersion))
	}

	cfg, err := toDomain(&visfile, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// toDomain overlays the file on the defaults.
func toDomain(v *Visfile, root string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v.Window.Title != "" {
		cfg.Window.Title = v.Window.Title
	}
	if v.Window.Width != 0 {
		cfg.Window.Width = v.Window.Width
	}
	if v.Window.Height != 0 {
		cfg.Window.Height = v.Window.Height
	}

	if len(v.Shaders) > 0 {
		sources := make([]domain.TrackedSource, 0, len(v.Shaders))
		for _, s := range v.Shaders {
			role, err := domain.ParseRole(s.Role)
			if err != nil {
				return nil, zerr.With(err, "shader", s.Path)
			}
			sources = append(sources, domain.TrackedSource{Path: s.Path, Role: role})
		}
		cfg.Sources = sources
	}
	cfg.Sources = domain.ResolveSources(root, cfg.Sources)

	if v.PollInterval != "" {
		d, err := time.ParseDuration(v.PollInterval)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "pollInterval", v.PollInterval)
		}
		cfg.PollInterval = d
	}
	if v.FrameBudget != "" {
		d, err := time.ParseDuration(v.FrameBudget)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "frameBudget", v.FrameBudget)
		}
		cfg.FrameBudget = d
	}

	if v.SampleRate != nil {
		cfg.SampleRate = *v.SampleRate
	}

	policy, err := domain.ParseMissingRolePolicy(v.MissingRole)
	if err != nil {
		return nil, err
	}
	cfg.MissingRole = policy
	cfg.Notify = v.Notify

	return cfg, nil
}

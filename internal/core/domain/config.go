package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// MissingRolePolicy decides what a bundle carries for a role whose source
// could not be opened or read during a cycle.
type MissingRolePolicy string

const (
	// MissingRoleRetain carries the last text successfully read for a required
	// role. An optional stage that cannot be read is left out, so deleting it
	// removes it from the program.
	MissingRoleRetain MissingRolePolicy = "retain"
	// MissingRoleOmit leaves the role out of the bundle.
	MissingRoleOmit MissingRolePolicy = "omit"
)

// ParseMissingRolePolicy validates a policy name. An empty name selects retain.
func ParseMissingRolePolicy(s string) (MissingRolePolicy, error) {
	switch MissingRolePolicy(s) {
	case "", MissingRoleRetain:
		return MissingRoleRetain, nil
	case MissingRoleOmit:
		return MissingRoleOmit, nil
	default:
		return "", zerr.With(ErrInvalidMissingRolePolicy, "policy", s)
	}
}

// WindowOptions describes the viewer window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
}

// Config is the resolved viewer configuration.
type Config struct {
	Window       WindowOptions
	Sources      []TrackedSource
	PollInterval time.Duration
	// FrameBudget is the minimum frame duration. Zero disables pacing.
	FrameBudget time.Duration
	SampleRate  float32
	MissingRole MissingRolePolicy
	// Notify enables filesystem notifications that trigger early scans.
	Notify bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowOptions{
			Title:  DefaultWindowTitle,
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Sources:      DefaultSources(),
		PollInterval: DefaultPollInterval,
		SampleRate:   DefaultSampleRate,
		MissingRole:  MissingRoleRetain,
	}
}

// Validate checks the invariants the watcher and renderer rely on.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return zerr.With(ErrInvalidConfig, "reason", "no shader sources configured")
	}
	for _, src := range c.Sources {
		if src.Path == "" {
			return zerr.With(ErrInvalidConfig, "reason", "shader source with empty path")
		}
	}
	if c.PollInterval <= 0 {
		return zerr.With(ErrInvalidConfig, "poll_interval", c.PollInterval.String())
	}
	if c.FrameBudget < 0 {
		return zerr.With(ErrInvalidConfig, "frame_budget", c.FrameBudget.String())
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err := zerr.With(ErrInvalidConfig, "width", c.Window.Width)
		return zerr.With(err, "height", c.Window.Height)
	}
	if _, err := ParseMissingRolePolicy(string(c.MissingRole)); err != nil {
		return err
	}
	return nil
}

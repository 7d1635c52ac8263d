// Package watch implements the shader source poller that detects changes by
// modification time and hands complete bundles to the renderer.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options tunes a Poller.
type Options struct {
	// Interval is the wait between two scans. Zero selects domain.DefaultPollInterval.
	Interval time.Duration
	// MissingRole decides what a bundle carries for a role that could not be read.
	MissingRole domain.MissingRolePolicy
	// Nudges ends the wait early when it receives. Nil disables nudging.
	Nudges <-chan struct{}
}

// Poller scans tracked sources and reports bundles whose sources changed.
// A Poller is owned by a single goroutine.
type Poller struct {
	sources []domain.TrackedSource
	opener  ports.SourceOpener
	logger  ports.Logger
	opts    Options

	ledger *domain.ModificationLedger
	// lastGood holds the latest text read per role, used by MissingRoleRetain.
	lastGood map[domain.Role]string
	// failing holds the paths whose last open or read failed.
	failing map[string]bool
}

// NewPoller creates a Poller over sources.
func NewPoller(sources []domain.TrackedSource, opener ports.SourceOpener, logger ports.Logger, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = domain.DefaultPollInterval
	}
	if opts.MissingRole == "" {
		opts.MissingRole = domain.MissingRoleRetain
	}

	return &Poller{
		sources:  sources,
		opener:   opener,
		logger:   logger,
		opts:     opts,
		ledger:   domain.NewModificationLedger(),
		lastGood: make(map[domain.Role]string, len(domain.Roles)),
		failing:  make(map[string]bool),
	}
}

// Sources returns the tracked sources in scan order.
func (p *Poller) Sources() []domain.TrackedSource {
	return p.sources
}

// Run scans, sends changed bundles to sink and waits, until ctx is done.
// It closes sink on return.
func (p *Poller) Run(ctx context.Context, sink ports.BundleSink) error {
	defer sink.Close()

	timer := time.NewTimer(p.opts.Interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if bundle, changed := p.Scan(); changed {
			sink.Send(bundle)
		}

		timer.Reset(p.opts.Interval)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		case <-p.opts.Nudges:
		}
	}
}

// Scan performs one cycle over every tracked source. changed is true when
// any source was seen for the first time or has a newer modification time.
func (p *Poller) Scan() (domain.ShaderBundle, bool) {
	bundle := domain.NewShaderBundle()
	changed := false

	for _, src := range p.sources {
		text, modified, ok := p.visit(src)
		if modified {
			changed = true
		}
		if ok {
			bundle.Set(src.Role, text)
		}
	}

	for _, role := range domain.Roles {
		if text, ok := bundle.Source(role); ok {
			p.lastGood[role] = text
			continue
		}
		if p.opts.MissingRole != domain.MissingRoleRetain || !role.Required() {
			continue
		}
		if text, ok := p.lastGood[role]; ok {
			bundle.Set(role, text)
		}
	}

	return bundle, changed
}

// visit reads one source. modified reports a ledger change; ok reports
// whether text holds the full content.
func (p *Poller) visit(src domain.TrackedSource) (text string, modified, ok bool) {
	f, err := p.opener.Open(src.Path)
	if err != nil {
		p.unavailable(src, err)
		return "", false, false
	}
	defer f.Close() //nolint:errcheck // Read-only file

	info, err := f.Stat()
	if err != nil {
		p.unavailable(src, err)
		return "", false, false
	}

	modified = p.ledger.Observe(src.Path, info.ModTime().Unix())

	data, err := io.ReadAll(f)
	if err != nil {
		p.readFailed(src, modified, zerr.Wrap(err, domain.ErrSourceReadFailed.Error()))
		return "", modified, false
	}
	if !utf8.Valid(data) {
		p.readFailed(src, modified, domain.ErrSourceNotUTF8)
		return "", modified, false
	}

	if p.failing[src.Path] {
		delete(p.failing, src.Path)
		p.logger.Info(fmt.Sprintf("%s is readable again", src.Path))
	}

	return string(data), modified, true
}

func (p *Poller) unavailable(src domain.TrackedSource, err error) {
	if p.failing[src.Path] {
		return
	}
	p.failing[src.Path] = true
	p.logger.Warn(fmt.Sprintf("%s: %s (%s): %v", domain.ErrSourceUnavailable.Error(), src.Path, src.Role, err))
}

// readFailed reports a read failure on the first failure and on every
// modification that still fails.
func (p *Poller) readFailed(src domain.TrackedSource, modified bool, err error) {
	if p.failing[src.Path] && !modified {
		return
	}
	p.failing[src.Path] = true
	err = zerr.With(err, "path", src.Path)
	p.logger.Error(zerr.With(err, "role", src.Role.String()))
}

package reload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/zerr"
)

// SpanName is the name of the span recorded for every compile attempt.
const SpanName = "shader.reload"

// Reloader owns the active program. It is used from the render goroutine only.
type Reloader struct {
	source   ports.BundleSource
	compiler ports.Compiler
	logger   ports.Logger
	tracer   ports.Tracer

	active ports.Program
	digest uint64
}

// New creates a Reloader reading bundles from source.
func New(source ports.BundleSource, compiler ports.Compiler, logger ports.Logger, tracer ports.Tracer) *Reloader {
	return &Reloader{
		source:   source,
		compiler: compiler,
		logger:   logger,
		tracer:   tracer,
	}
}

// Active returns the program in use, or nil before Load succeeded.
func (r *Reloader) Active() ports.Program {
	return r.active
}

// Digest returns the digest of the bundle behind the active program.
func (r *Reloader) Digest() uint64 {
	return r.digest
}

// Load blocks for the first bundle and activates it. Any failure is fatal
// for the caller: domain.ErrWatcherGone when the watcher stopped, an error
// wrapping domain.ErrInitialLoadFailed when the bundle cannot be used.
func (r *Reloader) Load(ctx context.Context) error {
	bundle, err := r.source.Recv(ctx)
	if err != nil {
		return err
	}
	bundle = r.drain(bundle)

	if !bundle.Drawable() {
		err := zerr.Wrap(domain.ErrIncompleteBundle, domain.ErrInitialLoadFailed.Error())
		return zerr.With(err, "roles", rolesOf(bundle))
	}

	outcome, err := r.apply(ctx, bundle)
	if outcome.Status == domain.ReloadFailed {
		return zerr.Wrap(err, domain.ErrInitialLoadFailed.Error())
	}
	return nil
}

// PollAndApply takes the latest pending bundle without blocking and tries
// to activate it. A failed compile keeps the current program and is
// reported through the outcome, never as an error. The only error is
// domain.ErrWatcherGone.
func (r *Reloader) PollAndApply(ctx context.Context) (domain.ReloadOutcome, error) {
	bundle, ok, err := r.source.TryRecv()
	if err != nil {
		return domain.Unchanged, err
	}
	if !ok {
		return domain.Unchanged, nil
	}
	bundle = r.drain(bundle)

	if !bundle.Drawable() {
		r.logger.Warn(fmt.Sprintf("%s (have: %s), keeping the current program",
			domain.ErrIncompleteBundle.Error(), rolesOf(bundle)))
		return domain.Unchanged, nil
	}

	outcome, err := r.apply(ctx, bundle)
	if err != nil {
		failure := zerr.Wrap(err, domain.ErrShaderCompileFailed.Error())
		r.logger.Error(zerr.With(failure, "digest", fmt.Sprintf("%016x", outcome.Digest)))
	}
	return outcome, nil
}

// Close releases the active program.
func (r *Reloader) Close() {
	if r.active != nil {
		r.active.Release()
		r.active = nil
	}
}

// drain keeps only the newest pending bundle. A closed source is left for
// the next poll to report.
func (r *Reloader) drain(latest domain.ShaderBundle) domain.ShaderBundle {
	for {
		next, ok, err := r.source.TryRecv()
		if err != nil || !ok {
			return latest
		}
		latest = next
	}
}

func (r *Reloader) apply(ctx context.Context, bundle domain.ShaderBundle) (domain.ReloadOutcome, error) {
	digest := bundle.Digest()

	_, span := r.tracer.Start(ctx, SpanName)
	defer span.End()
	span.SetAttribute("digest", fmt.Sprintf("%016x", digest))
	span.SetAttribute("roles", rolesOf(bundle))

	program, err := r.compiler.Compile(bundle)
	if err != nil {
		span.RecordError(err)
		span.SetAttribute("status", domain.ReloadFailed.String())

		return domain.ReloadOutcome{
			Status:     domain.ReloadFailed,
			Diagnostic: diagnostic(err),
			Digest:     digest,
		}, err
	}

	old := r.active
	r.active = program
	r.digest = digest
	if old != nil {
		old.Release()
	}

	span.SetAttribute("status", domain.ReloadApplied.String())
	r.logger.Info(fmt.Sprintf("shader program loaded (%s)", rolesOf(bundle)))

	return domain.ReloadOutcome{Status: domain.ReloadApplied, Digest: digest}, nil
}

func diagnostic(err error) string {
	var compileErr *domain.CompileError
	if errors.As(err, &compileErr) {
		return compileErr.Error()
	}
	return err.Error()
}

func rolesOf(bundle domain.ShaderBundle) string {
	roles := bundle.Roles()
	if len(roles) == 0 {
		return "none"
	}
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.String()
	}
	return strings.Join(names, ", ")
}

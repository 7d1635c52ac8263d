// Package app implements the application layer for vis.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/vis/internal/adapters/telemetry"
	"go.trai.ch/vis/internal/assets"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/vis/internal/engine/frame"
	"go.trai.ch/vis/internal/engine/reload"
	"go.trai.ch/vis/internal/engine/render"
	"go.trai.ch/vis/internal/engine/watch"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.SourceOpener
	display      ports.Display
	compiler     ports.Compiler
	logger       ports.Logger
	tracer       ports.Tracer
	notifier     ports.ChangeNotifier
	scaffolder   ports.Scaffolder
	now          func() time.Time
	setupTracing func(*telemetry.LogBridge) func(context.Context) error
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.SourceOpener,
	display ports.Display,
	compiler ports.Compiler,
	log ports.Logger,
	tracer ports.Tracer,
	notifier ports.ChangeNotifier,
	scaffolder ports.Scaffolder,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		display:      display,
		compiler:     compiler,
		logger:       log,
		tracer:       tracer,
		notifier:     notifier,
		scaffolder:   scaffolder,
		now:          time.Now,
		setupTracing: telemetry.Setup,
	}
}

// WithoutGlobalTracing keeps Run from installing the global TracerProvider.
// This is primarily used for testing.
func (a *App) WithoutGlobalTracing() *App {
	a.setupTracing = func(*telemetry.LogBridge) func(context.Context) error {
		return func(context.Context) error { return nil }
	}
	return a
}

// SetJSON switches the logger to JSON output when it supports it.
func (a *App) SetJSON(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// Overrides are command line values that take precedence over the config file.
type Overrides struct {
	// ConfigPath selects an explicit config file. Empty searches the working directory.
	ConfigPath string
	// PollInterval replaces the configured interval when positive.
	PollInterval time.Duration
	// FrameBudget replaces the configured frame budget when set.
	FrameBudget *time.Duration
	// Notify enables change nudges regardless of the config file.
	Notify bool
	// MissingRole replaces the configured policy when not empty.
	MissingRole string
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Overrides
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Overrides
}

// InitOptions configuration for the Init method.
type InitOptions struct {
	// Dir is the project directory. Empty means the working directory.
	Dir string
}

// Run opens the viewer window and hot-reloads the configured shaders until
// the window is closed or ctx is done.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the configuration
	cfg, err := a.loadConfig(opts.Overrides)
	if err != nil {
		return err
	}

	// 2. Initialize telemetry
	shutdown := a.setupTracing(telemetry.NewLogBridge(a.logger, telemetry.DefaultSlowThreshold))
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	// 3. Open the window on this goroutine; it owns the graphics context from now on
	if err := a.display.Open(cfg.Window); err != nil {
		return err
	}
	defer func() {
		if err := a.display.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	// 4. Start the watcher
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	mailbox := reload.NewMailbox()
	poller, stop := a.newPoller(watchCtx, cfg)
	defer stop()

	g, gctx := errgroup.WithContext(watchCtx)
	g.Go(func() error {
		return poller.Run(gctx, mailbox)
	})

	// 5. Render until quit
	reloader := reload.New(mailbox, a.compiler, a.logger, a.tracer)
	err = a.render(ctx, cfg, reloader)
	reloader.Close()

	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}

	if ctx.Err() != nil {
		// Shutdown was requested; whatever failed on the way out is a consequence of it.
		return nil
	}
	return err
}

// WaitHintDelay is how long the first load may block before the user is told what it waits for.
const WaitHintDelay = 2 * time.Second

func (a *App) render(ctx context.Context, cfg *domain.Config, reloader *reload.Reloader) error {
	// The window cannot process events until the first program is loaded.
	hint := time.AfterFunc(WaitHintDelay, func() {
		a.logger.Warn(fmt.Sprintf("waiting for shader sources (%s), run `vis init` to create them",
			sourceList(cfg.Sources)))
	})
	err := reloader.Load(ctx)
	hint.Stop()
	if err != nil {
		return err
	}

	loop := render.NewLoop(
		a.display,
		reloader,
		frame.NewStats(a.now(), cfg.SampleRate),
		frame.NewPacer(cfg.FrameBudget),
	)
	return loop.Run(ctx)
}

// Watch runs the watcher without a window and logs every bundle it reports.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.loadConfig(opts.Overrides)
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	mailbox := reload.NewMailbox()
	poller, stop := a.newPoller(watchCtx, cfg)
	defer stop()

	g, gctx := errgroup.WithContext(watchCtx)
	g.Go(func() error {
		return poller.Run(gctx, mailbox)
	})

	for _, src := range poller.Sources() {
		a.logger.Info(fmt.Sprintf("watching %s (%s)", src.Path, src.Role))
	}

	for {
		bundle, err := mailbox.Recv(ctx)
		if err != nil {
			cancel()
			_ = g.Wait()
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		a.logger.Info(describe(bundle))
	}
}

// Init writes a starter vis.yaml and default shaders into the project
// directory. Existing files are never overwritten.
func (a *App) Init(_ context.Context, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	files, err := assets.Starter()
	if err != nil {
		return zerr.Wrap(err, domain.ErrScaffoldFailed.Error())
	}

	var errs error
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		created, err := a.scaffolder.WriteFile(path, f.Data)
		switch {
		case err != nil:
			errs = errors.Join(errs, err)
		case created:
			a.logger.Info("created " + path)
		default:
			a.logger.Info(path + " already exists, skipped")
		}
	}
	return errs
}

func (a *App) loadConfig(o Overrides) (*domain.Config, error) {
	var (
		cfg *domain.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = a.configLoader.LoadFile(o.ConfigPath)
	} else {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return nil, zerr.Wrap(cwdErr, "failed to get working directory")
		}
		cfg, err = a.configLoader.Load(cwd)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if err := o.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o Overrides) apply(cfg *domain.Config) error {
	if o.PollInterval > 0 {
		cfg.PollInterval = o.PollInterval
	}
	if o.FrameBudget != nil {
		cfg.FrameBudget = *o.FrameBudget
	}
	if o.Notify {
		cfg.Notify = true
	}
	if o.MissingRole != "" {
		policy, err := domain.ParseMissingRolePolicy(o.MissingRole)
		if err != nil {
			return err
		}
		cfg.MissingRole = policy
	}
	return cfg.Validate()
}

// newPoller creates the poller for cfg. With notifications enabled the
// notifier is started and its nudges shorten the poll wait. The returned
// function stops the notifier.
func (a *App) newPoller(ctx context.Context, cfg *domain.Config) (*watch.Poller, func()) {
	opts := watch.Options{
		Interval:    cfg.PollInterval,
		MissingRole: cfg.MissingRole,
	}
	stop := func() {}

	if cfg.Notify && a.notifier != nil {
		paths := make([]string, 0, len(cfg.Sources))
		for _, src := range cfg.Sources {
			paths = append(paths, src.Path)
		}
		if err := a.notifier.Start(ctx, paths); err != nil {
			a.logger.Warn("change notifications disabled: " + err.Error())
		} else {
			opts.Nudges = a.notifier.Nudges()
			stop = func() {
				if err := a.notifier.Stop(); err != nil {
					a.logger.Warn("failed to stop change notifications: " + err.Error())
				}
			}
		}
	}

	return watch.NewPoller(cfg.Sources, a.opener, a.logger, opts), stop
}

func sourceList(sources []domain.TrackedSource) string {
	paths := make([]string, 0, len(sources))
	for _, src := range sources {
		paths = append(paths, src.Path)
	}
	return strings.Join(paths, ", ")
}

func describe(bundle domain.ShaderBundle) string {
	roles := bundle.Roles()
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	if len(names) == 0 {
		names = append(names, "none")
	}

	status := "drawable"
	if !bundle.Drawable() {
		status = "incomplete"
	}
	return fmt.Sprintf("bundle %016x: %s (%s)", bundle.Digest(), strings.Join(names, ", "), status)
}

package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vis/internal/adapters/telemetry"
	"go.trai.ch/vis/internal/app"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader     *mocks.MockConfigLoader
	display    *mocks.MockDisplay
	compiler   *mocks.MockCompiler
	logger     *mocks.MockLogger
	notifier   *mocks.MockChangeNotifier
	scaffolder *mocks.MockScaffolder
	sources    fstest.MapFS
}

func newFixture(ctrl *gomock.Controller) *fixture {
	return &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		display:    mocks.NewMockDisplay(ctrl),
		compiler:   mocks.NewMockCompiler(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		notifier:   mocks.NewMockChangeNotifier(ctrl),
		scaffolder: mocks.NewMockScaffolder(ctrl),
		sources: fstest.MapFS{
			"a.vert": {Data: []byte("void main() { gl_Position = vec4(0); }"), ModTime: time.Unix(100, 0)},
			"a.frag": {Data: []byte("void main() {}"), ModTime: time.Unix(100, 0)},
		},
	}
}

func (f *fixture) app() *app.App {
	return app.New(
		f.loader,
		f.sources,
		f.display,
		f.compiler,
		f.logger,
		telemetry.NewNoOpTracer(),
		f.notifier,
		f.scaffolder,
	).WithoutGlobalTracing()
}

func testConfig() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Sources = []domain.TrackedSource{
		{Path: "a.vert", Role: domain.RoleVertex},
		{Path: "a.frag", Role: domain.RoleFragment},
	}
	return cfg
}

func TestApp_Run_InitialCompileFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.display.EXPECT().Open(gomock.Any()).Return(nil)
	f.display.EXPECT().Close().Return(nil)
	f.compiler.EXPECT().Compile(gomock.Any()).
		Return(nil, &domain.CompileError{Stage: "fragment", Log: "0:1: syntax error"})

	// No PollEvents and no Draw: a failed first compile never reaches the render loop.
	err := f.app().Run(context.Background(), app.RunOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInitialLoadFailed.Error())
	assert.Contains(t, err.Error(), "syntax error")
}

func TestApp_Run_DrawsUntilQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	program := mocks.NewMockProgram(ctrl)

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.compiler.EXPECT().Compile(gomock.Any()).Return(program, nil)

	gomock.InOrder(
		f.display.EXPECT().Open(domain.WindowOptions{
			Title:  domain.DefaultWindowTitle,
			Width:  domain.DefaultWindowWidth,
			Height: domain.DefaultWindowHeight,
		}).Return(nil),
		f.display.EXPECT().PollEvents().Return(domain.InputState{FramebufferWidth: 640, FramebufferHeight: 480}),
		f.display.EXPECT().Draw(program, gomock.Any()).Return(nil),
		f.display.EXPECT().PollEvents().Return(domain.InputState{Quit: true}),
		program.EXPECT().Release(),
		f.display.EXPECT().Close().Return(nil),
	)

	err := f.app().Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_CancelledBeforeFirstBundle(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.display.EXPECT().Open(gomock.Any()).Return(nil)
	f.display.EXPECT().Close().Return(nil)
	f.compiler.EXPECT().Compile(gomock.Any()).AnyTimes().Return(nil, errors.New("context lost"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app().Run(ctx, app.RunOptions{})
	assert.NoError(t, err)
}

func TestApp_Run_HintsWhileWaitingForSources(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		f.sources = fstest.MapFS{}

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		var (
			mu    sync.Mutex
			hints []string
		)
		f.logger.EXPECT().Warn(gomock.Any()).DoAndReturn(func(msg string) {
			if !strings.HasPrefix(msg, "waiting for shader sources") {
				return
			}
			mu.Lock()
			hints = append(hints, msg)
			mu.Unlock()
			cancel()
		}).AnyTimes()
		f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
		f.display.EXPECT().Open(gomock.Any()).Return(nil)
		f.display.EXPECT().Close().Return(nil)

		start := time.Now()
		err := f.app().Run(ctx, app.RunOptions{})
		require.NoError(t, err)

		assert.Equal(t, app.WaitHintDelay, time.Since(start))
		mu.Lock()
		defer mu.Unlock()
		require.Len(t, hints, 1)
		assert.Contains(t, hints[0], "a.vert, a.frag")
		assert.Contains(t, hints[0], "vis init")
	})
}

func TestApp_Run_NoHintWhenSourcesArrive(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		program := mocks.NewMockProgram(ctrl)
		f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
		f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
		f.compiler.EXPECT().Compile(gomock.Any()).Return(program, nil)
		f.display.EXPECT().Open(gomock.Any()).Return(nil)
		f.display.EXPECT().PollEvents().Return(domain.InputState{Quit: true})
		program.EXPECT().Release()
		f.display.EXPECT().Close().Return(nil)

		require.NoError(t, f.app().Run(t.Context(), app.RunOptions{}))

		// A stopped hint never fires later.
		time.Sleep(2 * app.WaitHintDelay)
		synctest.Wait()
	})
}

func TestApp_Run_WindowFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.display.EXPECT().Open(gomock.Any()).Return(domain.ErrWindowCreateFailed)

	err := f.app().Run(context.Background(), app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrWindowCreateFailed)
}

func TestApp_Run_ConfigErrors(t *testing.T) {
	t.Run("explicit file is loaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		f.loader.EXPECT().LoadFile("custom.yaml").Return(nil, domain.ErrConfigNotFound)

		err := f.app().Run(context.Background(), app.RunOptions{
			Overrides: app.Overrides{ConfigPath: "custom.yaml"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("invalid missing role override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)

		err := f.app().Run(context.Background(), app.RunOptions{
			Overrides: app.Overrides{MissingRole: "ignore"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInvalidMissingRolePolicy.Error())
	})

	t.Run("negative frame budget override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)

		budget := -time.Millisecond
		err := f.app().Run(context.Background(), app.RunOptions{
			Overrides: app.Overrides{FrameBudget: &budget},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInvalidConfig.Error())
	})
}

func TestApp_Watch_LogsBundles(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	cfg := testConfig()
	cfg.Notify = true

	nudges := make(chan struct{})
	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	f.notifier.EXPECT().Start(gomock.Any(), []string{"a.vert", "a.frag"}).Return(nil)
	f.notifier.EXPECT().Nudges().Return(nudges)
	f.notifier.EXPECT().Stop().Return(nil)
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bundles := make(chan string, 1)
	f.logger.EXPECT().Info(gomock.Any()).DoAndReturn(func(msg string) {
		if strings.HasPrefix(msg, "bundle ") {
			select {
			case bundles <- msg:
			default:
			}
		}
	}).AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- f.app().Watch(ctx, app.WatchOptions{})
	}()

	select {
	case msg := <-bundles:
		assert.Contains(t, msg, "vertex, fragment (drawable)")
	case <-time.After(2 * time.Second):
		t.Fatal("no bundle logged")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

func TestApp_Watch_NotifierFailureFallsBackToPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)

	cfg := testConfig()
	cfg.Notify = true

	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	f.notifier.EXPECT().Start(gomock.Any(), gomock.Any()).Return(errors.New("too many open files"))
	f.logger.EXPECT().Warn("change notifications disabled: too many open files")
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, f.app().Watch(ctx, app.WatchOptions{}))
}

func TestApp_Init(t *testing.T) {
	dir := filepath.Join("projects", "demo")

	t.Run("writes missing files and skips existing ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		f.scaffolder.EXPECT().WriteFile(filepath.Join(dir, "shaders", "default.frag"), gomock.Any()).Return(true, nil)
		f.scaffolder.EXPECT().WriteFile(filepath.Join(dir, "shaders", "default.vert"), gomock.Any()).Return(true, nil)
		f.scaffolder.EXPECT().WriteFile(filepath.Join(dir, "vis.yaml"), gomock.Any()).Return(false, nil)

		f.logger.EXPECT().Info("created " + filepath.Join(dir, "shaders", "default.frag"))
		f.logger.EXPECT().Info("created " + filepath.Join(dir, "shaders", "default.vert"))
		f.logger.EXPECT().Info(filepath.Join(dir, "vis.yaml") + " already exists, skipped")

		require.NoError(t, f.app().Init(context.Background(), app.InitOptions{Dir: dir}))
	})

	t.Run("reports every failed write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		f.scaffolder.EXPECT().WriteFile(gomock.Any(), gomock.Any()).
			Return(false, domain.ErrScaffoldFailed).Times(3)

		err := f.app().Init(context.Background(), app.InitOptions{Dir: dir})
		require.ErrorIs(t, err, domain.ErrScaffoldFailed)
	})
}

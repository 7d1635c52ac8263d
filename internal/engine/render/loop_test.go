package render_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/vis/internal/core/ports/mocks"
	"go.trai.ch/vis/internal/engine/frame"
	"go.trai.ch/vis/internal/engine/render"
	"go.uber.org/mock/gomock"
)

// scriptedSource replays outcomes, one per frame.
type scriptedSource struct {
	program ports.Program
	errAt   int
	polls   int
}

func (s *scriptedSource) PollAndApply(context.Context) (domain.ReloadOutcome, error) {
	s.polls++
	if s.errAt > 0 && s.polls == s.errAt {
		return domain.Unchanged, domain.ErrWatcherGone
	}
	return domain.Unchanged, nil
}

func (s *scriptedSource) Active() ports.Program { return s.program }

func TestLoop_Run_QuitsOnWindowClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDisplay(ctrl)
	program := mocks.NewMockProgram(ctrl)
	source := &scriptedSource{program: program}

	input := domain.InputState{FramebufferWidth: 640, FramebufferHeight: 480}
	var frames []int32
	gomock.InOrder(
		display.EXPECT().PollEvents().Return(input),
		display.EXPECT().Draw(program, gomock.Any()).DoAndReturn(func(_ ports.Program, u domain.Uniforms) error {
			frames = append(frames, u.Frame)
			return nil
		}),
		display.EXPECT().PollEvents().Return(input),
		display.EXPECT().Draw(program, gomock.Any()).DoAndReturn(func(_ ports.Program, u domain.Uniforms) error {
			frames = append(frames, u.Frame)
			assert.InDelta(t, 640, u.Resolution.X(), 1e-6)
			return nil
		}),
		display.EXPECT().PollEvents().Return(domain.InputState{Quit: true}),
	)

	loop := render.NewLoop(display, source, frame.NewStats(time.Now(), 44100), frame.NewPacer(0))
	require.NoError(t, loop.Run(t.Context()))
	assert.Equal(t, []int32{0, 1}, frames)
	assert.Equal(t, 2, source.polls)
}

func TestLoop_Run_WatcherGoneIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDisplay(ctrl)
	source := &scriptedSource{program: mocks.NewMockProgram(ctrl), errAt: 2}

	display.EXPECT().PollEvents().Return(domain.InputState{}).Times(2)
	display.EXPECT().Draw(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	loop := render.NewLoop(display, source, frame.NewStats(time.Now(), 44100), frame.NewPacer(0))
	require.ErrorIs(t, loop.Run(t.Context()), domain.ErrWatcherGone)
}

func TestLoop_Run_DrawError(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDisplay(ctrl)
	source := &scriptedSource{program: mocks.NewMockProgram(ctrl)}
	drawErr := errors.New("context lost")

	display.EXPECT().PollEvents().Return(domain.InputState{})
	display.EXPECT().Draw(gomock.Any(), gomock.Any()).Return(drawErr)

	loop := render.NewLoop(display, source, frame.NewStats(time.Now(), 44100), frame.NewPacer(0))
	require.ErrorIs(t, loop.Run(t.Context()), drawErr)
}

func TestLoop_Run_Cancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		display := mocks.NewMockDisplay(ctrl)
		source := &scriptedSource{program: mocks.NewMockProgram(ctrl)}

		display.EXPECT().PollEvents().Return(domain.InputState{}).MinTimes(1)
		display.EXPECT().Draw(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1)

		ctx, cancel := context.WithTimeout(t.Context(), 95*time.Millisecond)
		defer cancel()

		start := time.Now()
		loop := render.NewLoop(display, source, frame.NewStats(start, 44100), frame.NewPacer(10*time.Millisecond))
		require.NoError(t, loop.Run(ctx))
		assert.Equal(t, 100*time.Millisecond, time.Since(start))
		assert.Equal(t, 10, source.polls, "the pacer holds frames to the budget")
	})
}

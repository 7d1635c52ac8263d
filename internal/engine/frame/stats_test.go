package frame_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/engine/frame"
)

func TestStats_Advance_Timing(t *testing.T) {
	start := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
	s := frame.NewStats(start, 44100)
	in := domain.InputState{FramebufferWidth: 800, FramebufferHeight: 600}

	u := s.Advance(start, in)
	assert.Equal(t, int32(0), u.Frame)
	assert.InDelta(t, 0, u.Time, 1e-6)
	assert.InDelta(t, 0, u.TimeDelta, 1e-6)
	assert.InDelta(t, 0, u.FrameRate, 1e-6)
	assert.InDelta(t, 44100, u.SampleRate, 1e-6)
	assert.Equal(t, mgl32.Vec3{800, 600, 1}, u.Resolution)

	now := start
	for range 10 {
		now = now.Add(20 * time.Millisecond)
		u = s.Advance(now, in)
	}

	assert.Equal(t, int32(10), u.Frame)
	assert.Equal(t, int32(11), s.Frame())
	assert.InDelta(t, 0.2, u.Time, 1e-4)
	assert.InDelta(t, 0.02, u.TimeDelta, 1e-4)
	assert.InDelta(t, 50, u.FrameRate, 0.01)
}

func TestStats_Advance_AverageSmoothsSpikes(t *testing.T) {
	start := time.Unix(0, 0)
	s := frame.NewStats(start, 44100)

	now := start
	s.Advance(now, domain.InputState{})
	for range 100 {
		now = now.Add(10 * time.Millisecond)
		s.Advance(now, domain.InputState{})
	}
	assert.InDelta(t, 100, s.FPS(), 0.5)

	now = now.Add(time.Second)
	u := s.Advance(now, domain.InputState{})
	assert.InDelta(t, 1, u.TimeDelta, 1e-4)
	assert.Greater(t, u.FrameRate, float32(30), "one slow frame does not collapse the estimate")
}

func TestStats_Advance_Mouse(t *testing.T) {
	s := frame.NewStats(time.Unix(0, 0), 44100)

	u := s.Advance(time.Unix(0, 0), domain.InputState{MouseX: 10, MouseY: 20, ClickX: 3, ClickY: 4, MouseDown: true})
	assert.Equal(t, mgl32.Vec4{10, 20, 3, 4}, u.Mouse)

	u = s.Advance(time.Unix(1, 0), domain.InputState{MouseX: 10, MouseY: 20, ClickX: 3, ClickY: 4})
	assert.Equal(t, mgl32.Vec4{10, 20, -3, -4}, u.Mouse)
}

func TestStats_Advance_Date(t *testing.T) {
	now := time.Date(2024, time.December, 31, 1, 2, 3, 500_000_000, time.UTC)
	s := frame.NewStats(now, 44100)

	u := s.Advance(now, domain.InputState{})
	assert.Equal(t, mgl32.Vec4{2024, 11, 31, 3723.5}, u.Date)
}

func TestStats_Advance_Rotation(t *testing.T) {
	start := time.Unix(0, 0)
	s := frame.NewStats(start, 44100)

	u := s.Advance(start, domain.InputState{})
	assert.True(t, u.Rotation.ApproxEqual(mgl32.Ident4()))

	u = s.Advance(start.Add(2*time.Second), domain.InputState{})
	assert.True(t, u.Rotation.ApproxEqual(mgl32.HomogRotate3DZ(2*frame.RotationSpeed)))
}

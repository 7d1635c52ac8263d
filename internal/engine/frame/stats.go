// Package frame computes the per-frame shader inputs and paces the render loop.
package frame

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.trai.ch/vis/internal/core/domain"
)

const (
	// AverageWindow is the number of frames the frame time average spans.
	AverageWindow = 60

	// RotationSpeed is the angular speed of the rotation uniform in radians per second.
	RotationSpeed = 0.5
)

// Stats tracks frame timing. It belongs to the render loop.
type Stats struct {
	start      time.Time
	last       time.Time
	frame      int32
	sampleRate float32
	// average is the running frame time average in seconds.
	average float64
}

// NewStats starts the clock at start.
func NewStats(start time.Time, sampleRate float32) *Stats {
	return &Stats{start: start, last: start, sampleRate: sampleRate}
}

// Frame returns the number of frames advanced so far.
func (s *Stats) Frame() int32 {
	return s.frame
}

// FPS returns the frame rate estimated from the running average.
func (s *Stats) FPS() float32 {
	if s.average <= 0 {
		return 0
	}
	return float32(1 / s.average)
}

// Advance closes the previous frame at now and returns the uniforms for the next one.
func (s *Stats) Advance(now time.Time, in domain.InputState) domain.Uniforms {
	delta := now.Sub(s.last).Seconds()
	if delta < 0 {
		delta = 0
	}
	elapsed := now.Sub(s.start).Seconds()

	if s.frame > 0 {
		if s.average == 0 {
			s.average = delta
		} else {
			s.average += (delta - s.average) / AverageWindow
		}
	}

	u := domain.Uniforms{
		Time:       float32(elapsed),
		TimeDelta:  float32(delta),
		FrameRate:  s.FPS(),
		Frame:      s.frame,
		SampleRate: s.sampleRate,
		Resolution: mgl32.Vec3{float32(in.FramebufferWidth), float32(in.FramebufferHeight), 1},
		Mouse:      mouse(in),
		Date:       date(now),
		Rotation:   mgl32.HomogRotate3DZ(float32(elapsed) * RotationSpeed),
	}

	s.last = now
	s.frame++
	return u
}

// mouse packs the cursor as xy and the last click as zw. zw is negated
// while the button is up.
func mouse(in domain.InputState) mgl32.Vec4 {
	if in.MouseDown {
		return mgl32.Vec4{in.MouseX, in.MouseY, in.ClickX, in.ClickY}
	}
	return mgl32.Vec4{in.MouseX, in.MouseY, -in.ClickX, -in.ClickY}
}

// date returns year, month (0-11), day of month and seconds since midnight.
func date(now time.Time) mgl32.Vec4 {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return mgl32.Vec4{
		float32(now.Year()),
		float32(now.Month() - 1),
		float32(now.Day()),
		float32(now.Sub(midnight).Seconds()),
	}
}

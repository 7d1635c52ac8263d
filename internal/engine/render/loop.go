// Package render drives the per-frame cycle: events, reload, uniforms, draw.
package render

import (
	"context"
	"time"

	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/vis/internal/engine/frame"
)

// ProgramSource hands the render loop the program to draw with.
type ProgramSource interface {
	PollAndApply(ctx context.Context) (domain.ReloadOutcome, error)
	Active() ports.Program
}

// Loop renders frames until the window asks to quit or ctx is done.
// It must run on the goroutine that opened the display.
type Loop struct {
	display ports.Display
	source  ProgramSource
	stats   *frame.Stats
	pacer   *frame.Pacer
}

// NewLoop creates a Loop.
func NewLoop(display ports.Display, source ProgramSource, stats *frame.Stats, pacer *frame.Pacer) *Loop {
	return &Loop{display: display, source: source, stats: stats, pacer: pacer}
}

// Run draws frames. It returns nil when the user closes the window or ctx
// is cancelled, and the error when the program source or the display fails.
func (l *Loop) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		start := time.Now()

		input := l.display.PollEvents()
		if input.Quit {
			return nil
		}

		if _, err := l.source.PollAndApply(ctx); err != nil {
			return err
		}

		u := l.stats.Advance(start, input)
		if err := l.display.Draw(l.source.Active(), u); err != nil {
			return err
		}

		l.pacer.Wait(start)
	}
	return nil
}

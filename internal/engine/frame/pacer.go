package frame

import "time"

// Pacer holds each frame to a minimum duration.
type Pacer struct {
	budget time.Duration
}

// NewPacer creates a Pacer. A zero budget disables pacing.
func NewPacer(budget time.Duration) *Pacer {
	return &Pacer{budget: budget}
}

// Wait sleeps for whatever is left of the budget since frameStart.
func (p *Pacer) Wait(frameStart time.Time) {
	if p.budget <= 0 {
		return
	}
	if left := p.budget - time.Since(frameStart); left > 0 {
		time.Sleep(left)
	}
}

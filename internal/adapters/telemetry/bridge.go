package telemetry

import (
	"context"
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vis/internal/core/ports"
)

// DefaultSlowThreshold is the span duration above which LogBridge warns.
const DefaultSlowThreshold = 250 * time.Millisecond

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge implements sdktrace.SpanProcessor and warns through the logger
// about spans that ran longer than a threshold. Failures are logged by the
// code that records them.
type LogBridge struct {
	logger    ports.Logger
	threshold time.Duration
}

// NewLogBridge returns a new LogBridge. A non-positive threshold selects DefaultSlowThreshold.
func NewLogBridge(logger ports.Logger, threshold time.Duration) *LogBridge {
	if threshold <= 0 {
		threshold = DefaultSlowThreshold
	}
	return &LogBridge{logger: logger, threshold: threshold}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd warns when the span exceeded the threshold.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	took := s.EndTime().Sub(s.StartTime())
	if took <= b.threshold {
		return
	}
	b.logger.Warn(fmt.Sprintf("%s took %s", s.Name(), took.Round(time.Millisecond)))
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

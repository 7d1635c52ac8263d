package ports

import (
	"context"

	"go.trai.ch/vis/internal/core/domain"
)

// BundleSink is the producer side of the hand-off between the watcher and the renderer.
type BundleSink interface {
	// Send hands the bundle over without blocking. A bundle that was not yet
	// received may be replaced.
	Send(bundle domain.ShaderBundle)
	// Close signals that no more bundles will be sent.
	Close()
}

// BundleSource is the consumer side of the hand-off.
//
//go:generate mockgen -source=bundle.go -destination=mocks/mock_bundle.go -package=mocks
type BundleSource interface {
	// TryRecv returns a pending bundle without blocking. ok is false when
	// nothing is pending. It returns domain.ErrWatcherGone once the sink is
	// closed and drained.
	TryRecv() (bundle domain.ShaderBundle, ok bool, err error)
	// Recv blocks until a bundle arrives, the sink is closed, or ctx is done.
	Recv(ctx context.Context) (domain.ShaderBundle, error)
}

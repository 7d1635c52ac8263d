package ports

import "context"

// ChangeNotifier reports that tracked sources may have changed so the watcher
// can scan before its next tick. It is a hint only; the watcher still decides
// by modification time.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type ChangeNotifier interface {
	// Start begins watching the given paths.
	Start(ctx context.Context, paths []string) error
	// Nudges returns a channel that receives a value after a burst of changes.
	Nudges() <-chan struct{}
	// Stop releases the underlying watches.
	Stop() error
}

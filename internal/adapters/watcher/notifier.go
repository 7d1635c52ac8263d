package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/vis/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeNotifier = (*Notifier)(nil)

// relevantOps are the operations that may change what a tracked path reads as.
const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove | fsnotify.Chmod

// Notifier watches the directories holding tracked sources and emits a nudge
// after each burst of changes to a tracked path.
//
// Directories are watched instead of the files themselves so that editors
// replacing a file through rename keep producing events.
type Notifier struct {
	logger ports.Logger
	window time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	done      chan struct{}

	nudges chan struct{}
}

// NewNotifier creates a Notifier. Nothing is watched until Start.
func NewNotifier(logger ports.Logger, window time.Duration) *Notifier {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Notifier{
		logger: logger,
		window: window,
		nudges: make(chan struct{}, 1),
	}
}

// Start watches the parent directories of paths. Events stop when ctx is done or Stop is called.
func (n *Notifier) Start(ctx context.Context, paths []string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.fsWatcher != nil {
		return zerr.New("notifier already started")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create filesystem watcher")
	}

	tracked := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return zerr.With(zerr.Wrap(err, "failed to resolve tracked path"), "path", p)
		}
		tracked[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			// A missing directory only loses the early scan; polling still sees it.
			n.logger.Warn("cannot watch " + dir + ": " + err.Error())
		}
	}

	n.fsWatcher = w
	n.done = make(chan struct{})
	n.debouncer = NewDebouncer(n.window, func([]string) { n.nudge() })

	go n.processEvents(ctx, w, tracked, n.debouncer, n.done)
	return nil
}

// Nudges returns the channel that receives after a burst of changes.
// At most one nudge is pending at a time.
func (n *Notifier) Nudges() <-chan struct{} {
	return n.nudges
}

// Stop closes the filesystem watcher and drops pending events.
func (n *Notifier) Stop() error {
	n.mu.Lock()
	w, d, done := n.fsWatcher, n.debouncer, n.done
	n.fsWatcher, n.debouncer = nil, nil
	n.mu.Unlock()

	if w == nil {
		return nil
	}
	err := w.Close()
	<-done
	d.Stop()
	return err
}

func (n *Notifier) processEvents(
	ctx context.Context,
	w *fsnotify.Watcher,
	tracked map[string]struct{},
	debouncer *Debouncer,
	done chan struct{},
) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			if isTracked(tracked, event.Name) {
				debouncer.Add(event.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			n.logger.Warn("filesystem watcher: " + err.Error())
		}
	}
}

func isTracked(tracked map[string]struct{}, name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	_, ok := tracked[abs]
	return ok
}

func (n *Notifier) nudge() {
	select {
	case n.nudges <- struct{}{}:
	default:
	}
}

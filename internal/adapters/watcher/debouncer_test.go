package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vis/internal/adapters/watcher"
)

type callRecorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *callRecorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *callRecorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &callRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("shaders/a.frag")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"shaders/a.frag"}}, rec.snapshot())
	})
}

func TestDebouncer_BurstIsCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &callRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("shaders/b.vert")
		d.Add("shaders/a.frag")
		d.Add("shaders/a.frag")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"shaders/a.frag", "shaders/b.vert"}, calls[0])
	})
}

func TestDebouncer_QuietPeriodRestarts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &callRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("shaders/a.frag")
		time.Sleep(30 * time.Millisecond)
		d.Add("shaders/a.frag")
		time.Sleep(30 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())

		time.Sleep(30 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &callRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("shaders/a.frag")
		time.Sleep(100 * time.Millisecond)
		d.Add("shaders/a.vert")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"shaders/a.frag"}, {"shaders/a.vert"}}, rec.snapshot())
	})
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &callRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("shaders/a.frag")
		d.Stop()

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("shaders/a.frag")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
	})
}

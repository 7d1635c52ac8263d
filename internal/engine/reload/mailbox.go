// Package reload moves shader bundles from the watcher to the render loop
// and swaps the active program when a bundle compiles.
package reload

import (
	"context"

	"go.trai.ch/vis/internal/core/domain"
	"go.trai.ch/vis/internal/core/ports"
)

var (
	_ ports.BundleSink   = (*Mailbox)(nil)
	_ ports.BundleSource = (*Mailbox)(nil)
)

// Mailbox is a single-slot, replace-latest hand-off between one producer and
// one consumer. Send never blocks; an unread bundle is replaced.
type Mailbox struct {
	slot chan domain.ShaderBundle
}

// NewMailbox creates an empty Mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{slot: make(chan domain.ShaderBundle, 1)}
}

// Send stores bundle, discarding any bundle the consumer has not taken yet.
// It must not be called after Close.
func (m *Mailbox) Send(bundle domain.ShaderBundle) {
	for {
		select {
		case m.slot <- bundle:
			return
		default:
		}

		select {
		case <-m.slot:
		default:
		}
	}
}

// Close marks the producer as gone. A pending bundle can still be received.
func (m *Mailbox) Close() {
	close(m.slot)
}

// TryRecv takes the pending bundle if there is one.
func (m *Mailbox) TryRecv() (domain.ShaderBundle, bool, error) {
	select {
	case bundle, ok := <-m.slot:
		if !ok {
			return domain.ShaderBundle{}, false, domain.ErrWatcherGone
		}
		return bundle, true, nil
	default:
		return domain.ShaderBundle{}, false, nil
	}
}

// Recv waits for a bundle.
func (m *Mailbox) Recv(ctx context.Context) (domain.ShaderBundle, error) {
	select {
	case <-ctx.Done():
		return domain.ShaderBundle{}, ctx.Err()
	case bundle, ok := <-m.slot:
		if !ok {
			return domain.ShaderBundle{}, domain.ErrWatcherGone
		}
		return bundle, nil
	}
}

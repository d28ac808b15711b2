// Package notify provides a wake-all notification primitive. A call to
// Notify wakes every goroutine currently blocked in Wait; there is no
// queueing, a notification with no waiters is dropped.
package notify

import (
	"context"
	"sync"
)

type Notifier struct {
	mtx sync.Mutex
	ch  chan struct{}
}

func New() *Notifier {
	return &Notifier{
		ch: make(chan struct{}),
	}
}

// Notify wakes all goroutines currently blocked in Wait. Waiters that
// arrive after Notify returns block until the next call.
func (n *Notifier) Notify() {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	close(n.ch)
	n.ch = make(chan struct{})
}

// Notified returns a channel closed by the next Notify. Grab it before
// re-checking the guarded condition so a concurrent Notify cannot be
// missed.
func (n *Notifier) Notified() <-chan struct{} {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	return n.ch
}

// Wait blocks until the next Notify or until ctx is done, whichever comes
// first. Returns ctx.Err() in the latter case.
func (n *Notifier) Wait(ctx context.Context) error {
	select {
	case <-n.Notified():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestNotifyWakesAllWaiters(t *testing.T) {
	n := New()

	var (
		woken   atomic.Int32
		started sync.WaitGroup
		done    sync.WaitGroup
	)

	for i := 0; i < 5; i++ {
		started.Add(1)
		done.Add(1)
		go func() {
			ch := n.Notified()
			started.Done()
			<-ch
			woken.Inc()
			done.Done()
		}()
	}

	started.Wait()
	n.Notify()
	done.Wait()

	require.Equal(t, int32(5), woken.Load())
}

func TestNotifyWithoutWaitersIsDropped(t *testing.T) {
	n := New()
	n.Notify()

	// a waiter arriving after the notification must block
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := n.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitReturnsOnContextCancel(t *testing.T) {
	n := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWaitReturnsNilOnNotify(t *testing.T) {
	n := New()

	errCh := make(chan error, 1)
	ch := n.Notified()
	go func() {
		<-ch
		errCh <- nil
	}()

	n.Notify()
	require.NoError(t, <-errCh)
}

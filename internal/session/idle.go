package session

import (
	"context"
	"sync"
	"time"
)

// IdleWatcher locks a KeySession after a period without user activity.
type IdleWatcher struct {
	session KeySession
	timeout time.Duration
	now     func() time.Time

	mu           sync.Mutex
	lastActivity time.Time
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewIdleWatcher creates an IdleWatcher that clears session with
// ReasonInactivity once timeout elapses after the last Touch. The watcher
// is idle until Start is called. A non-positive timeout disables it.
func NewIdleWatcher(session KeySession, timeout time.Duration) *IdleWatcher {
	return &IdleWatcher{session: session, timeout: timeout, now: time.Now}
}

// Touch records user activity.
func (w *IdleWatcher) Touch() {
	w.mu.Lock()
	w.lastActivity = w.now()
	w.mu.Unlock()
}

// Start stops any previously running watcher, then launches a background
// goroutine that checks for inactivity. The goroutine exits when ctx is
// cancelled or Stop is called.
func (w *IdleWatcher) Start(ctx context.Context) {
	if w.timeout <= 0 {
		return
	}

	w.Stop()
	w.Touch()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(checkInterval(w.timeout))
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check()
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the watcher is not running.
func (w *IdleWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *IdleWatcher) check() {
	w.mu.Lock()
	idle := w.now().Sub(w.lastActivity)
	w.mu.Unlock()

	if idle < w.timeout {
		return
	}
	key, ok := w.session.GetKey()
	key.Zero()
	if !ok {
		return
	}
	w.session.ClearKey(ReasonInactivity)
}

// checkInterval polls often enough to lock within ~10% of timeout, but no
// more than once a second.
func checkInterval(timeout time.Duration) time.Duration {
	interval := timeout / 10
	if interval > time.Second {
		interval = time.Second
	}
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

package debounce

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the settle window for search-as-you-type.
const DefaultSearchDelay = 300 * time.Millisecond

// Debouncer holds at most one pending invocation. Each Trigger
// cancels whatever is pending and schedules the new function on the
// trailing edge of the delay; earlier calls are discarded, never
// queued.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, replacing any
// pending invocation.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending invocation, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package catalog

import (
	"sync"
	"time"
)

// DefaultDebounce matches the search screen's keystroke quiescence window.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer delays a function until its trigger has been quiet for the
// configured interval. Trailing edge only: each Trigger cancels the pending
// run and schedules a fresh one, so a burst of calls fires exactly once,
// with the last function.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending run, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Package debounce coalesces bursts of events into a single callback.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiet period used when none is configured. It is
// short enough that a breakpoint change feels immediate but long enough to
// swallow the event storm of a continuous window drag.
const DefaultWindow = 100 * time.Millisecond

// Debouncer runs the most recently scheduled callback once no new trigger
// has arrived for a full window. At most one timer is pending at a time.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	gen    uint64
}

// New creates a Debouncer. A non-positive window falls back to DefaultWindow.
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the window elapses, cancelling any
// previously scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A timer can fire concurrently with a newer Trigger or with
		// Cancel; the generation check keeps stale callbacks from
		// running in that race.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops any pending callback, including one whose timer has already
// fired but not yet run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the configured quiet period.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

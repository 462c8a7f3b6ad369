package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of identical changes with per-key timers.
// Keys are full (kind, path) pairs so a run of Modified events cannot
// swallow a pending Deleted for the same file.
type Debouncer struct {
	delay  time.Duration
	timers map[Change]*time.Timer
	mu     sync.Mutex
}

// NewDebouncer creates a new debouncer with the specified delay
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[Change]*time.Timer),
	}
}

// Process schedules fn for the change after the delay. A repeat of the
// same change within the window resets its timer, so the burst fires
// fn exactly once.
func (d *Debouncer) Process(c Change, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, exists := d.timers[c]; exists {
		timer.Stop()
	}

	d.timers[c] = time.AfterFunc(d.delay, func() {
		fn()
		d.mu.Lock()
		delete(d.timers, c)
		d.mu.Unlock()
	})
}

// Stop stops all pending timers
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, timer := range d.timers {
		timer.Stop()
	}
	d.timers = make(map[Change]*time.Timer)
}

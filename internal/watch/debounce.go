// Package watch contains the two asynchronous observers of shared state:
// the document watcher, which reloads the folder store when another
// instance writes it, and the reconciler, which repairs stored file
// references after workspace deletes and renames.
package watch

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of triggers into one delayed action.
// Arm replaces any pending timer, so only the last action within a burst
// runs; replacing a superseded timer is the only cancellation mechanism
// the watchers have.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Arm schedules fn to run after delay, replacing any pending action.
func (d *Debouncer) Arm(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, fn)
}

// Stop cancels any pending action.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

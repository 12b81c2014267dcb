package browse

import (
	"sync"
	"time"
)

// Debouncer delays calls so that only the last one within the window runs.
// A new Call discards whatever call is still pending.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	seq     uint64
}

// NewDebouncer returns a Debouncer with the given window. A non-positive
// delay makes Call run synchronously.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn, superseding any pending call.
func (d *Debouncer) Call(fn func()) {
	if fn == nil {
		return
	}
	if d.delay <= 0 {
		d.Stop()
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		if run := d.take(seq); run != nil {
			run()
		}
	})
}

// Flush runs the pending call immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	run := d.pending
	d.clearLocked()
	d.mu.Unlock()
	if run != nil {
		run()
	}
}

// Stop discards the pending call without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.clearLocked()
	d.mu.Unlock()
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) take(seq uint64) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq || d.pending == nil {
		return nil
	}
	run := d.pending
	d.pending = nil
	d.timer = nil
	return run
}

func (d *Debouncer) clearLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.seq++
}

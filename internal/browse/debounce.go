// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package browse

import (
	"sync"
	"time"
)

// Debouncer collapses rapid query edits into at most one intent emission per
// quiet period.
//
// Each Submit restarts the timer; the sink fires only once input has been
// still for the full quiet period, and only when the resolved intent differs
// from the previously emitted one. Submitting "S", "Sw", "Swi", "Swift" in
// quick succession therefore yields a single search for "Swift".
//
// The sink runs on the timer's goroutine, so it must be safe to call off the
// submitting goroutine. Debouncer never drops a distinct final value: the
// last submitted text always resolves and reaches the sink (unless it
// duplicates the previous emission).
type Debouncer struct {
	quiet time.Duration
	sink  func(Intent)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	emitted *Intent
	closed  bool
}

// NewDebouncer returns a debouncer that delivers resolved intents to sink
// after quiet of input stillness.
func NewDebouncer(quiet time.Duration, sink func(Intent)) *Debouncer {
	return &Debouncer{quiet: quiet, sink: sink}
}

// Submit records the latest raw query text and restarts the quiet-period
// timer. It never blocks and never invokes the sink directly.
func (d *Debouncer) Submit(rawQuery string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.pending = rawQuery
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// fire resolves the pending text and emits it unless it duplicates the last
// emission. Runs on the timer goroutine.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	intent := ResolveIntent(d.pending)
	if d.emitted != nil && intent.Equal(*d.emitted) {
		d.mu.Unlock()
		return
	}
	d.emitted = &intent
	d.mu.Unlock()

	d.sink(intent)
}

// ResetLast forgets the previously emitted intent so a later Submit of the
// same text fires again. The session calls this when an emission's load
// fails; without it, duplicate suppression would swallow every retry of the
// failed query.
func (d *Debouncer) ResetLast() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.emitted = nil
}

// Close stops any armed timer and makes all future Submits no-ops. A fire
// racing with Close may still deliver one final intent.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

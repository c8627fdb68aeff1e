package stream

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// DefaultDebounce is the quiescence window used by the identity resolvers.
// A tuning parameter, not a correctness constraint.
const DefaultDebounce = 120 * time.Millisecond

// Debouncer coalesces bursts of triggers per stream: each Trigger resets the
// stream's timer, so only the action scheduled last within the window runs.
type Debouncer struct {
	timers *xsync.MapOf[string, *time.Timer]
}

// NewDebouncer creates an empty debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{timers: xsync.NewMapOf[string, *time.Timer]()}
}

// Trigger schedules action to run after delay, replacing any action already
// pending on the stream. The action runs on its own goroutine once the stream
// has been quiet for the full delay.
func (d *Debouncer) Trigger(stream string, delay time.Duration, action func()) {
	timer := time.AfterFunc(delay, func() {
		d.timers.Delete(stream)
		action()
	})
	if prev, ok := d.timers.LoadAndStore(stream, timer); ok {
		prev.Stop()
	}
}

// Cancel drops the stream's pending action, if any.
func (d *Debouncer) Cancel(stream string) {
	if timer, ok := d.timers.LoadAndDelete(stream); ok {
		timer.Stop()
	}
}

// Stop drops every pending action. Used on session teardown.
func (d *Debouncer) Stop() {
	d.timers.Range(func(stream string, _ *time.Timer) bool {
		d.Cancel(stream)
		return true
	})
}

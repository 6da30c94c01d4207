package core

import "time"

// Interval gates an update so it runs at most once per period. Callers pass
// the frame timestamp, which keeps the gate testable without a real clock.
type Interval struct {
	period time.Duration
	last   time.Time
}

// NewInterval constructs a gate that opens every period. A non-positive
// period opens on every call.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// Ready reports whether at least one period has elapsed since the last time
// the gate opened, and if so records now as the new reference point. The very
// first call always opens.
func (i *Interval) Ready(now time.Time) bool {
	if !i.last.IsZero() && now.Sub(i.last) < i.period {
		return false
	}
	i.last = now
	return true
}

// Reset forgets the last run so the next Ready call opens.
func (i *Interval) Reset() { i.last = time.Time{} }

// Debounce collapses a burst of triggers into a single firing once the burst
// has been quiet for the configured delay. It is polled from the frame loop
// rather than driven by its own goroutine.
type Debounce struct {
	delay    time.Duration
	deadline time.Time
	armed    bool
}

// NewDebounce constructs a debounce with the given quiet period.
func NewDebounce(delay time.Duration) *Debounce {
	return &Debounce{delay: delay}
}

// Trigger (re)arms the debounce, pushing the deadline out to now+delay.
func (d *Debounce) Trigger(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.armed = true
}

// Pending reports whether a firing is outstanding.
func (d *Debounce) Pending() bool { return d.armed }

// Due reports whether the deadline has passed, disarming the debounce when it
// has.
func (d *Debounce) Due(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	return true
}

// Cancel disarms the debounce without firing.
func (d *Debounce) Cancel() { d.armed = false }

// Package scheduler provides the cadence bookkeeping for the cooperative
// control loop. There is no sleeping and no goroutine per cadence: the loop
// calls Due on every iteration and a cadence fires when enough of the
// wrapping millisecond timebase has elapsed since its last fire.
package scheduler

import "github.com/smartroom/controller/internal/clock"

// SenseIntervalMs is the fixed sensor/evaluation cadence.
const SenseIntervalMs = 250

// Cadence fires at a fixed interval measured against the wrapping timebase.
type Cadence struct {
	intervalMs uint64
	lastFireMs uint64
}

func NewCadence(intervalMs, nowMs uint64) *Cadence {
	return &Cadence{intervalMs: intervalMs, lastFireMs: nowMs}
}

// Due reports whether the interval has elapsed since the last fire.
func (c *Cadence) Due(nowMs uint64) bool {
	return clock.Elapsed(nowMs, c.lastFireMs) >= c.intervalMs
}

// Fire rebases the cadence to now. Rebasing (rather than adding the
// interval) means a stalled loop fires once and resumes on schedule instead
// of bursting to catch up.
func (c *Cadence) Fire(nowMs uint64) {
	c.lastFireMs = nowMs
}

// TickDue combines Due and Fire for the common loop shape.
func (c *Cadence) TickDue(nowMs uint64) bool {
	if !c.Due(nowMs) {
		return false
	}
	c.Fire(nowMs)
	return true
}

func (c *Cadence) IntervalMs() uint64 {
	return c.intervalMs
}

// SetInterval changes the cadence interval without disturbing the last-fire
// anchor; the next fire is measured from the previous one.
func (c *Cadence) SetInterval(intervalMs uint64) {
	c.intervalMs = intervalMs
}

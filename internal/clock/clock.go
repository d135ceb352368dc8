// Package clock provides the monotonic millisecond timebase every other
// component compares against. The counter wraps at the uint64 boundary;
// Elapsed stays correct across the wrap because unsigned subtraction wraps
// the same way.
package clock

import "time"

// Millis returns the current timebase value in milliseconds.
type Millis func() uint64

// System returns a Millis backed by the Go runtime's monotonic clock,
// rebased to zero at the time of the call.
func System() Millis {
	start := time.Now()
	return func() uint64 {
		return uint64(time.Since(start).Milliseconds())
	}
}

// Elapsed returns now - since on the wrapping timebase.
func Elapsed(now, since uint64) uint64 {
	return now - since
}

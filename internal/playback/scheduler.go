package playback

import (
	"math"
	"time"
)

// Scheduler runs fn once after delay, on the next frame boundary, on the
// goroutine that owns the controller.
type Scheduler interface {
	Schedule(delay time.Duration, fn func() error) Handle
}

// Handle identifies a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. It reports whether the
	// callback was still pending.
	Cancel() bool
}

// Delay converts a rate in steps per second into the wait before the next
// tick. Non-positive and NaN rates, and delays too large for a 32-bit
// millisecond timer, collapse to zero.
func Delay(rate float64) time.Duration {
	if math.IsNaN(rate) || rate <= 0 {
		return 0
	}
	ms := 1000 / rate
	if ms > float64(math.MaxInt32) {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

package bird

import "math"

// Clock converts variable frame durations into a fixed physics cadence.
// Elapsed time accumulates until it exceeds the step; the step then fires
// once and the accumulator restarts from zero. At most one step fires per
// Advance call, whatever the elapsed time.
type Clock struct {
	stepMs float64
	acc    float64
}

// NewClock creates a clock that fires every stepMs milliseconds.
func NewClock(stepMs float64) Clock {
	return Clock{stepMs: stepMs}
}

// Advance adds elapsed milliseconds and reports whether a physics step is due.
// Negative, NaN and +Inf durations count as zero.
func (c *Clock) Advance(elapsedMs float64) bool {
	if elapsedMs > 0 && !math.IsInf(elapsedMs, 1) {
		c.acc += elapsedMs
	}
	if c.acc > c.stepMs {
		c.acc = 0
		return true
	}
	return false
}

package timing

import "time"

// IntervalForRate converts a tick rate in Hz to a whole-millisecond tick
// interval, truncating like 1000/rate. A 30 Hz rate gives 33ms.
func IntervalForRate(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(1000/rate) * time.Millisecond
}

// Gate lets a fixed-rate step through at most once per interval while the
// caller is free to poll it as often as it likes.
type Gate struct {
	interval time.Duration
	previous time.Duration
}

// NewGate creates a gate whose first interval starts at now.
func NewGate(interval time.Duration, now time.Duration) *Gate {
	return &Gate{interval: interval, previous: now}
}

// Interval returns the configured tick interval.
func (g *Gate) Interval() time.Duration { return g.interval }

// Elapsed returns the time since the last tick passed the gate.
func (g *Gate) Elapsed(now time.Duration) time.Duration {
	return now - g.previous
}

// Ready reports whether a full interval has passed since the previous
// tick. When it has, now becomes the new previous tick.
func (g *Gate) Ready(now time.Duration) bool {
	if g.Elapsed(now) < g.interval {
		return false
	}
	g.previous = now
	return true
}

// Reset restarts the current interval at now.
func (g *Gate) Reset(now time.Duration) {
	g.previous = now
}

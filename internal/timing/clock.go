package timing

import "time"

// Clock reports monotonic time elapsed since some fixed origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures time since it was created using the monotonic
// reading carried by time.Time.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

package clock

import "time"

// Clock abstracts the current time so the mastery window and snapshot
// timestamps can be driven deterministically in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

var _ Clock = (*RealClock)(nil)

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

package clock

import "time"

// Clock abstracts time.Now so slot windows and charging progress can be
// computed against a pinned instant in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock reports a preset instant and only moves when told to.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}

func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

package sim

import "sync/atomic"

// Clock is a monotonic logical clock for ordering day snapshots.
// Safe for concurrent use.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0. The first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock starting at start, for appending to an
// existing log.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next increments and returns the sequence number.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

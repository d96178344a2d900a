package core

import "time"

// TimeSource returns the current time. Clocks are built on top of one so that
// tests can freeze time.
type TimeSource func() time.Time

type Clock struct {
	source    TimeSource
	startTime time.Time
	elapsed   time.Duration
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

func NewClockWithSource(source TimeSource) *Clock {
	if source == nil {
		source = time.Now
	}
	return &Clock{source: source}
}

// Now returns the current time of the clock's source. Works on stopped clocks.
func (c *Clock) Now() time.Time {
	return c.source()
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if !c.startTime.IsZero() {
		c.elapsed = c.source().Sub(c.startTime)
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.source()
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = time.Time{}
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

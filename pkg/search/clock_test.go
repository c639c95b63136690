package search_test

import "time"

// clockStub is a deterministic Clock: every call to Now() advances the
// simulated clock by Step, letting tests force a time cutoff without
// sleeping or depending on machine speed.
type clockStub struct {
	now  time.Time
	Step time.Duration
}

func (c *clockStub) Now() time.Time {
	c.now = c.now.Add(c.Step)
	return c.now
}

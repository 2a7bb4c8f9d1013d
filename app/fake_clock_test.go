package app_test

import "time"

// fakeClock advances only when slept on or stepped.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
	onNow func(c *fakeClock)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	if c.onNow != nil {
		c.onNow(c)
	}
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Step(d time.Duration) {
	c.now = c.now.Add(d)
}

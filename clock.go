package choreo

import "time"

// A Clock supplies the elapsed interval between scene ticks. The scene
// treats it as an opaque monotonic duration provider; the frame interval is
// the minimum tick size the clock must report.
type Clock interface {
	// Tick returns the seconds elapsed since the previous tick, never less
	// than the configured frame interval.
	Tick() float64

	// SetFrameInterval configures the minimum tick size.
	SetFrameInterval(d time.Duration)
}

// wallClock paces against real time: when a tick arrives before the frame
// interval has passed it sleeps out the remainder, then reports the true
// elapsed time. Reported intervals are therefore always at least the frame
// interval.
type wallClock struct {
	last     time.Time
	interval time.Duration
}

func newWallClock(interval time.Duration) *wallClock {
	return &wallClock{last: time.Now(), interval: interval}
}

func (c *wallClock) SetFrameInterval(d time.Duration) {
	c.interval = d
}

func (c *wallClock) Tick() float64 {
	now := time.Now()
	elapsed := now.Sub(c.last)
	if remaining := c.interval - elapsed; remaining > 0 {
		time.Sleep(remaining)
		now = time.Now()
		elapsed = now.Sub(c.last)
	}
	c.last = now
	return elapsed.Seconds()
}

// A ScriptedClock replays a fixed sequence of tick intervals, making scene
// ticks fully deterministic. After the script runs out it keeps returning
// the last interval. Intended for tests and offline frame sampling.
type ScriptedClock struct {
	Intervals []float64

	next     int
	interval time.Duration
}

func (c *ScriptedClock) SetFrameInterval(d time.Duration) {
	c.interval = d
}

func (c *ScriptedClock) Tick() float64 {
	var dt float64
	switch {
	case c.next < len(c.Intervals):
		dt = c.Intervals[c.next]
		c.next++
	case len(c.Intervals) > 0:
		dt = c.Intervals[len(c.Intervals)-1]
	}
	if floor := c.interval.Seconds(); dt < floor {
		dt = floor
	}
	return dt
}

package core

import "math"

// Clock measures the time between frames and keeps a per-second frame rate.
// The time source returns monotonic seconds.
type Clock struct {
	source   func() float64
	lastTime float64

	frames      uint32
	accumulator float64
	fps         float64
	rolled      bool

	metrics *Metrics
}

func NewClock(source func() float64) *Clock {
	if source == nil {
		panic("core: clock requires a time source")
	}
	return &Clock{
		source:   source,
		lastTime: source(),
		metrics:  NewMetrics(),
	}
}

// Tick returns the seconds elapsed since the previous tick, or since the
// clock was created for the first tick.
func (c *Clock) Tick() float64 {
	now := c.source()
	delta := now - c.lastTime
	if delta < 0 || math.IsNaN(delta) {
		delta = 0
	}
	c.lastTime = now

	c.frames++
	c.accumulator += delta
	c.rolled = false
	if c.accumulator >= 1.0 {
		c.fps = float64(c.frames) / c.accumulator
		c.frames = 0
		c.accumulator = 0
		c.rolled = true
	}

	c.metrics.Update(delta)
	return delta
}

// Rolled reports whether the last Tick completed an averaging window.
func (c *Clock) Rolled() bool {
	return c.rolled
}

func (c *Clock) FPS() float64 {
	return c.fps
}

func (c *Clock) Frames() uint32 {
	return c.frames
}

func (c *Clock) Accumulated() float64 {
	return c.accumulator
}

// FrameTime is the average frame time in milliseconds over the metrics window.
func (c *Clock) FrameTime() float64 {
	return c.metrics.FrameTime()
}

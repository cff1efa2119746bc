package engine

import (
	"fmt"
	"time"
)

// DefaultSmoothingAlpha is the EMA factor applied to frame time when the
// config does not override it
const DefaultSmoothingAlpha = 0.2

// FrameClock samples the monotonic clock once per frame and derives delta
// time, smoothed frame time and FPS, and the time-scaled delta consumed by
// simulation. One clock per engine context; reset only at engine start.
type FrameClock struct {
	provider TimeProvider

	last  time.Time
	delta time.Duration

	timeScale float64

	alpha       float64
	frameTimeMs float64
	avgFrameMs  float64
	fps         float64

	frameCount uint64
}

// NewFrameClock creates a clock reading from the given provider
func NewFrameClock(provider TimeProvider, smoothingAlpha float64) *FrameClock {
	if smoothingAlpha <= 0 || smoothingAlpha > 1 {
		smoothingAlpha = DefaultSmoothingAlpha
	}
	return &FrameClock{
		provider:  provider,
		last:      provider.Now(),
		timeScale: 1.0,
		alpha:     smoothingAlpha,
	}
}

// Tick samples the clock and returns the unscaled delta since the previous
// tick. Negative deltas (clock adjustment) clamp to zero so downstream
// divisions stay safe.
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	c.delta = delta

	c.frameTimeMs = delta.Seconds() * 1000
	if c.frameCount == 0 {
		c.avgFrameMs = c.frameTimeMs
	} else {
		c.avgFrameMs = c.alpha*c.frameTimeMs + (1-c.alpha)*c.avgFrameMs
	}
	if c.avgFrameMs > 0 {
		c.fps = 1000 / c.avgFrameMs
	}

	c.frameCount++
	return delta
}

// Delta returns the unscaled delta of the last tick
func (c *FrameClock) Delta() time.Duration {
	return c.delta
}

// ScaledDelta returns the last delta multiplied by the time scale
func (c *FrameClock) ScaledDelta() time.Duration {
	return time.Duration(float64(c.delta) * c.timeScale)
}

// SetTimeScale updates the simulation speed multiplier. Zero freezes
// simulation; negative values are rejected and the previous scale kept.
func (c *FrameClock) SetTimeScale(scale float64) error {
	if scale < 0 {
		return fmt.Errorf("time scale must not be negative, got %g", scale)
	}
	c.timeScale = scale
	return nil
}

// TimeScale returns the current simulation speed multiplier
func (c *FrameClock) TimeScale() float64 {
	return c.timeScale
}

// FPS returns frames per second derived from the smoothed frame time
func (c *FrameClock) FPS() float64 {
	return c.fps
}

// AvgFrameMs returns the exponentially smoothed frame time in milliseconds
func (c *FrameClock) AvgFrameMs() float64 {
	return c.avgFrameMs
}

// FrameCount returns the number of ticks since engine start
func (c *FrameClock) FrameCount() uint64 {
	return c.frameCount
}

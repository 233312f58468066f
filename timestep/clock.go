// Package timestep implements the fixed-timestep accumulator clock that
// decouples simulation ticks from render frames.
package timestep

import "time"

// Clock accumulates real elapsed time and converts it into whole fixed
// simulation steps. The fractional remainder is exposed as the render
// interpolation alpha and never reaches the simulation. Determinism
// contract: given the same sequence of step counts and inputs, the
// simulation result is independent of frame rate.
type Clock struct {
	step        float64 // fixed step, seconds
	maxDelta    float64 // cap on one frame's real delta, seconds
	accumulator float64
	last        time.Time
	started     bool
	paused      bool
}

// New creates a clock with the given tick rate (ticks per second) and a
// cap on the real time folded in per frame (guards against runaway
// catch-up after a stall).
func New(tickRate, maxFrameDelta float64) *Clock {
	return &Clock{
		step:     1.0 / tickRate,
		maxDelta: maxFrameDelta,
	}
}

// Step returns the fixed step in seconds.
func (c *Clock) Step() float64 { return c.step }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Advance folds the real time elapsed since the previous call into the
// accumulator and returns the number of fixed steps to simulate plus the
// interpolation alpha in [0,1). While paused it returns (0, alpha) and
// keeps re-basing the reference time so resuming injects no catch-up.
func (c *Clock) Advance(now time.Time) (steps int, alpha float64) {
	if !c.started {
		c.started = true
		c.last = now
	}

	delta := now.Sub(c.last).Seconds()
	c.last = now

	if c.paused {
		return 0, c.accumulator / c.step
	}

	if delta > c.maxDelta {
		delta = c.maxDelta
	}
	if delta < 0 {
		delta = 0
	}

	c.accumulator += delta
	for c.accumulator >= c.step {
		c.accumulator -= c.step
		steps++
	}
	return steps, c.accumulator / c.step
}

// Pause freezes tick production. The reference time keeps following
// Advance calls, so the pause duration never enters the accumulator.
func (c *Clock) Pause() { c.paused = true }

// Resume re-enables tick production.
func (c *Clock) Resume() { c.paused = false }

// Package simclock converts irregular wall-clock frame deltas into a whole
// number of fixed-size physics steps via an accumulator, so the simulation
// advances in constant increments regardless of render frame rate.
package simclock

import "errors"

var (
	// ErrNonPositiveTimestep indicates a clock with timestep <= 0.
	ErrNonPositiveTimestep = errors.New("simclock: timestep must be positive")

	// ErrNonPositiveScale indicates a clock with scale <= 0.
	ErrNonPositiveScale = errors.New("simclock: scale must be positive")
)

// Clock accumulates elapsed wall time and pays it out in fixed steps. The
// accumulator only grows while unpaused and is only ever decremented in units
// of exactly one timestep; it never goes negative.
type Clock struct {
	accumulator float64
	timestep    float64
	scale       float64
	paused      bool
}

// New returns a clock with the given fixed wall-clock step size (seconds) and
// simulation-time scale factor.
func New(timestep, scale float64) (*Clock, error) {
	if timestep <= 0 {
		return nil, ErrNonPositiveTimestep
	}
	if scale <= 0 {
		return nil, ErrNonPositiveScale
	}
	return &Clock{timestep: timestep, scale: scale}, nil
}

// Update adds elapsed wall-clock seconds to the accumulator unless paused.
func (c *Clock) Update(elapsed float64) {
	if !c.paused {
		c.accumulator += elapsed
	}
}

// Step consumes one fixed timestep from the accumulator if one is available.
// On success it returns the simulation-time increment timestep*scale and true.
// Callers drain the clock by looping until ok is false, integrating once per
// successful call.
func (c *Clock) Step() (dt float64, ok bool) {
	if !c.paused && c.accumulator > c.timestep {
		c.accumulator -= c.timestep
		return c.timestep * c.scale, true
	}
	return 0, false
}

func (c *Clock) SetPaused(paused bool) { c.paused = paused }
func (c *Clock) Paused() bool          { return c.paused }
func (c *Clock) Accumulator() float64  { return c.accumulator }
func (c *Clock) Timestep() float64     { return c.timestep }
func (c *Clock) Scale() float64        { return c.scale }

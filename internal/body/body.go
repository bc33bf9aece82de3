// Package body holds the per-body physical state for the simulation. It is
// storage only; all mutation happens in the integrator and force passes.
package body

import (
	"errors"
	"math/rand"

	"github.com/san-kum/orbitsim/internal/vec"
)

var (
	// ErrNoBodies indicates a spawn request for zero or fewer bodies.
	ErrNoBodies = errors.New("body: at least one body required")

	// ErrNonPositiveMass indicates a spawn request with mass <= 0.
	ErrNonPositiveMass = errors.New("body: mass must be positive")

	// ErrNonPositiveBound indicates a spawn cube with no extent.
	ErrNonPositiveBound = errors.New("body: spawn bound must be positive")
)

// Body is one simulated point mass. Acceleration is per-substep scratch: the
// force pass fully recomputes it before the velocity update reads it, so it
// carries no state between substeps.
type Body struct {
	Mass         float64
	Position     vec.Vec3
	Velocity     vec.Vec3
	Acceleration vec.Vec3
}

// SpawnCube creates n bodies of equal mass uniformly distributed inside the
// cube [-bound, bound]^3, at rest.
func SpawnCube(n int, mass, bound float64, rng *rand.Rand) ([]Body, error) {
	if n <= 0 {
		return nil, ErrNoBodies
	}
	if mass <= 0 {
		return nil, ErrNonPositiveMass
	}
	if bound <= 0 {
		return nil, ErrNonPositiveBound
	}

	bodies := make([]Body, n)
	for i := range bodies {
		bodies[i] = Body{
			Mass: mass,
			Position: vec.Vec3{
				X: (rng.Float64()*2 - 1) * bound,
				Y: (rng.Float64()*2 - 1) * bound,
				Z: (rng.Float64()*2 - 1) * bound,
			},
		}
	}
	return bodies, nil
}

// Clone returns an independent copy of the body slice.
func Clone(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}

// Valid reports whether every body still holds finite state.
func Valid(bodies []Body) bool {
	for i := range bodies {
		if !bodies[i].Position.IsValid() || !bodies[i].Velocity.IsValid() {
			return false
		}
	}
	return true
}

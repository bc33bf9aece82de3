package integrator

import (
	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/gravity"
)

// Euler is the naive first-order scheme: positions and velocities are both
// advanced from the state at the start of the step. Its energy drifts
// unboundedly on orbits, which is exactly why it exists here as the contrast
// case for the symplectic scheme.
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(bodies []body.Body, dt float64) {
	gravity.Accumulate(bodies)

	for i := range bodies {
		bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Scale(dt))
		bodies[i].Velocity = bodies[i].Velocity.Add(bodies[i].Acceleration.Scale(dt))
	}
}

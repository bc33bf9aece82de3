// Package gravity evaluates pairwise gravitational accelerations over a body
// slice, with numerical softening to bound the force at short range.
package gravity

import (
	"math"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/vec"
)

const (
	// G is the gravitational constant.
	G = 6.67430e-11

	// Epsilon is the softening constant added to the squared distance before
	// dividing, so two approaching bodies never divide by zero. Exactly
	// coincident bodies still produce an undefined direction (0/sqrt(0)); that
	// degeneracy is left to surface rather than clamped.
	Epsilon = 1.0
)

// Accumulate resets every body's acceleration and then adds the net
// gravitational acceleration induced by every other body. Each unordered pair
// is evaluated once: the contribution on i is reused negated (scaled by the
// mass ratio) for j, which enforces Newton's third law exactly and halves the
// pair loop.
func Accumulate(bodies []body.Body) {
	for i := range bodies {
		bodies[i].Acceleration = vec.Vec3{}
	}

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			offset := bodies[j].Position.Sub(bodies[i].Position)
			d2 := offset.LengthSquared()
			unit := offset.Scale(1 / math.Sqrt(d2))

			accel := unit.Scale(G / (d2 + Epsilon))
			bodies[i].Acceleration = bodies[i].Acceleration.Add(accel.Scale(bodies[j].Mass))
			bodies[j].Acceleration = bodies[j].Acceleration.Sub(accel.Scale(bodies[i].Mass))
		}
	}
}

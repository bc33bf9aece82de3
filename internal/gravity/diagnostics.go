package gravity

import (
	"math"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Energy returns total mechanical energy: kinetic plus the softened pair
// potential -G*mi*mj/sqrt(r^2+Epsilon), matching the softening in the force
// pass.
func Energy(bodies []body.Body) float64 {
	ke := 0.0
	pe := 0.0

	for i := range bodies {
		ke += 0.5 * bodies[i].Mass * bodies[i].Velocity.LengthSquared()

		for j := i + 1; j < len(bodies); j++ {
			r2 := bodies[j].Position.Sub(bodies[i].Position).LengthSquared()
			pe -= G * bodies[i].Mass * bodies[j].Mass / math.Sqrt(r2+Epsilon)
		}
	}

	return ke + pe
}

// Momentum returns total linear momentum.
func Momentum(bodies []body.Body) vec.Vec3 {
	var p vec.Vec3
	for i := range bodies {
		p = p.Add(bodies[i].Velocity.Scale(bodies[i].Mass))
	}
	return p
}

// AngularMomentum returns total angular momentum about the origin.
func AngularMomentum(bodies []body.Body) vec.Vec3 {
	var l vec.Vec3
	for i := range bodies {
		l = l.Add(bodies[i].Position.Cross(bodies[i].Velocity).Scale(bodies[i].Mass))
	}
	return l
}

// PairOrbit places two bodies of the given mass on the x axis, separated by
// the given distance, with velocities for a circular orbit about their common
// center under the softened force law. Useful for presets and stability
// checks.
func PairOrbit(mass, separation float64) []body.Body {
	d2 := separation * separation
	accel := G * mass / (d2 + Epsilon)
	speed := math.Sqrt(accel * separation / 2)

	half := separation / 2
	return []body.Body{
		{Mass: mass, Position: vec.Vec3{X: -half}, Velocity: vec.Vec3{Y: -speed}},
		{Mass: mass, Position: vec.Vec3{X: half}, Velocity: vec.Vec3{Y: speed}},
	}
}

// Ring places n bodies of equal mass evenly on a circle in the xy plane with
// tangential velocities sized for the combined mass at the center, giving a
// loosely bound rotating ring.
func Ring(n int, mass, radius float64) []body.Body {
	bodies := make([]body.Body, n)
	speed := math.Sqrt(G * mass * float64(n-1) / (radius + Epsilon))

	for i := range bodies {
		angle := 2 * math.Pi * float64(i) / float64(n)
		c, s := math.Cos(angle), math.Sin(angle)
		bodies[i] = body.Body{
			Mass:     mass,
			Position: vec.Vec3{X: radius * c, Y: radius * s},
			Velocity: vec.Vec3{X: -speed * s, Y: speed * c},
		}
	}
	return bodies
}

// Package integrator advances body state by one fixed physics step. The
// primary scheme is a 4th-order Yoshida composition of leapfrog substeps; an
// explicit Euler stepper is kept as a drift baseline for comparisons.
package integrator

import (
	"math"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/gravity"
)

// Coefficients holds the Yoshida position (C) and velocity (D) substep
// weights. Computed once at startup and immutable thereafter.
type Coefficients struct {
	C [4]float64
	D [3]float64
}

// NewCoefficients derives the 4th-order weights from the standard w0/w1
// splitting constants.
func NewCoefficients() Coefficients {
	cbrt2 := math.Cbrt(2)
	w0 := -cbrt2 / (2 - cbrt2)
	w1 := 1 / (2 - cbrt2)

	c1 := w1 / 2
	c2 := (w0 + w1) / 2

	return Coefficients{
		C: [4]float64{c1, c2, c2, c1},
		D: [3]float64{w1, w0, w1},
	}
}

// Yoshida runs three drift-force-kick substeps per fixed step, with one extra
// terminal drift, per the 4th-order composition schedule. Reordering the
// stages breaks the accuracy guarantee.
type Yoshida struct {
	coeff Coefficients
}

func NewYoshida() *Yoshida {
	return &Yoshida{coeff: NewCoefficients()}
}

func (y *Yoshida) Name() string { return "yoshida4" }

// Step advances all bodies by the simulation-time increment dt. Within each
// substep every position is drifted before any acceleration is computed, and
// every acceleration is computed before any velocity is kicked.
func (y *Yoshida) Step(bodies []body.Body, dt float64) {
	for substep := 0; substep < 3; substep++ {
		c := y.coeff.C[substep]
		for i := range bodies {
			bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Scale(c * dt))
		}

		gravity.Accumulate(bodies)

		d := y.coeff.D[substep]
		for i := range bodies {
			bodies[i].Velocity = bodies[i].Velocity.Add(bodies[i].Acceleration.Scale(d * dt))
			if substep == 2 {
				bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Scale(y.coeff.C[3] * dt))
			}
		}
	}
}

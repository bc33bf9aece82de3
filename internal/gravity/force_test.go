package gravity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/vec"
)

func TestTwoBodyAcceleration(t *testing.T) {
	bodies := []body.Body{
		{Mass: 1000, Position: vec.Vec3{}},
		{Mass: 1000, Position: vec.Vec3{X: 10}},
	}

	Accumulate(bodies)

	want := G * 1000 / (100 + Epsilon)

	a := bodies[0].Acceleration
	if a.X <= 0 {
		t.Errorf("body A must accelerate toward B (+x), got %+v", a)
	}
	if math.Abs(a.X-want) > want*1e-12 {
		t.Errorf("expected |a| = %.6e on A, got %.6e", want, a.X)
	}
	if a.Y != 0 || a.Z != 0 {
		t.Errorf("expected acceleration along x only, got %+v", a)
	}

	b := bodies[1].Acceleration
	if b.X != -a.X || b.Y != -a.Y || b.Z != -a.Z {
		t.Errorf("expected equal and opposite accelerations, got %+v and %+v", a, b)
	}
}

func TestAccumulateResetsScratch(t *testing.T) {
	bodies := []body.Body{
		{Mass: 10, Position: vec.Vec3{}, Acceleration: vec.Vec3{X: 5, Y: 5, Z: 5}},
		{Mass: 10, Position: vec.Vec3{X: 4}, Acceleration: vec.Vec3{X: -9}},
	}

	Accumulate(bodies)
	first := bodies[0].Acceleration

	// A second pass from the same positions must give identical results:
	// stale accelerations never leak across passes.
	Accumulate(bodies)
	if bodies[0].Acceleration != first {
		t.Error("acceleration depends on scratch left from a previous pass")
	}
}

func TestMomentumConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bodies, err := body.SpawnCube(20, 1000, 100, rng)
	if err != nil {
		t.Fatalf("spawn failed: %v", err)
	}

	// Mass-weighted accelerations must sum to zero by construction.
	Accumulate(bodies)
	var f vec.Vec3
	for i := range bodies {
		f = f.Add(bodies[i].Acceleration.Scale(bodies[i].Mass))
	}
	if f.Length() > 1e-18 {
		t.Errorf("net force on the system should vanish, got %+v", f)
	}

	// Kick all velocities with those accelerations; momentum stays zero.
	dt := (1.0 / 30.0) * 1e5
	for i := range bodies {
		bodies[i].Velocity = bodies[i].Velocity.Add(bodies[i].Acceleration.Scale(dt))
	}
	if p := Momentum(bodies); p.Length() > 1e-12 {
		t.Errorf("momentum not conserved over a kick: %+v", p)
	}
}

func TestEnergyOfRestingPair(t *testing.T) {
	bodies := []body.Body{
		{Mass: 1000, Position: vec.Vec3{}},
		{Mass: 1000, Position: vec.Vec3{X: 10}},
	}

	want := -G * 1000 * 1000 / math.Sqrt(100+Epsilon)
	if e := Energy(bodies); math.Abs(e-want) > math.Abs(want)*1e-12 {
		t.Errorf("expected potential-only energy %.6e, got %.6e", want, e)
	}
}

func TestPairOrbitIsBalanced(t *testing.T) {
	bodies := PairOrbit(1000, 10)

	if p := Momentum(bodies); p.Length() > 1e-15 {
		t.Errorf("pair orbit must have zero net momentum, got %+v", p)
	}

	Accumulate(bodies)
	// Centripetal balance: a = v^2 / r with r = separation/2.
	a := bodies[0].Acceleration.Length()
	v2 := bodies[0].Velocity.LengthSquared()
	if math.Abs(a-v2/5) > a*1e-9 {
		t.Errorf("orbit not circular: accel %.6e vs v^2/r %.6e", a, v2/5)
	}
}

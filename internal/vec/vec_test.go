package vec

import (
	"math"
	"testing"
)

func TestCrossOrthogonal(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	c := a.Cross(b)
	if c != (Vec3{0, 0, 1}) {
		t.Errorf("expected +z, got %+v", c)
	}

	if c.Dot(a) != 0 || c.Dot(b) != 0 {
		t.Error("cross product not orthogonal to operands")
	}
}

func TestLength(t *testing.T) {
	v := Vec3{3, 4, 12}
	if math.Abs(v.Length()-13) > 1e-12 {
		t.Errorf("expected length 13, got %f", v.Length())
	}
	if math.Abs(v.LengthSquared()-169) > 1e-12 {
		t.Errorf("expected squared length 169, got %f", v.LengthSquared())
	}
}

func TestIsValid(t *testing.T) {
	if !(Vec3{1, -2, 0}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vec3{math.NaN(), 0, 0}).IsValid() {
		t.Error("NaN component reported valid")
	}
	if (Vec3{0, math.Inf(1), 0}).IsValid() {
		t.Error("Inf component reported valid")
	}
}

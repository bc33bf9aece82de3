package viz

import (
	"math"

	"github.com/san-kum/orbitsim/internal/vec"
)

// Camera projects world space onto the dot raster: yaw/pitch rotation around
// the origin followed by a simple perspective divide. AutoRotate mirrors the
// slow orbiting camera of the original demo.
type Camera struct {
	Yaw, Pitch float64
	Distance   float64
	Zoom       float64
	Auto       bool
}

// autoRotateRate is one fifth of a turn per second.
const autoRotateRate = 4 * math.Pi / 20

func NewCamera(distance float64) *Camera {
	return &Camera{Distance: distance, Zoom: 1.0, Auto: true}
}

func (c *Camera) AutoRotate(elapsed float64) {
	if c.Auto {
		c.Yaw += autoRotateRate * elapsed
	}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(16, c.Zoom*1.25) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(1.0/16, c.Zoom/1.25) }

func (c *Camera) rotate(p vec.Vec3) vec.Vec3 {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy

	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	p.Y, p.Z = p.Y*cp-p.Z*sp, p.Y*sp+p.Z*cp
	return p
}

// Project returns dot-raster coordinates for p on a w x h dot grid, and
// whether the point lands on the grid.
func (c *Camera) Project(p vec.Vec3, w, h int) (int, int, bool) {
	r := c.rotate(p)
	if r.Z >= c.Distance {
		return 0, 0, false
	}

	persp := c.Distance / (c.Distance - r.Z)
	scale := c.Zoom * persp * float64(min(w, h)) / (2 * c.Distance)

	x := w/2 + int(r.X*scale)
	y := h/2 - int(r.Y*scale)
	return x, y, x >= 0 && x < w && y >= 0 && y < h
}

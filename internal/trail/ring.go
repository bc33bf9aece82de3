// Package trail records bounded per-body position history for polyline
// rendering: a fixed-capacity ring per body, fed at a decimated wall-clock
// rate independent of the physics step cadence.
package trail

import (
	"errors"

	"github.com/san-kum/orbitsim/internal/vec"
)

var (
	// ErrNonPositiveCapacity indicates a ring with no room for samples.
	ErrNonPositiveCapacity = errors.New("trail: capacity must be positive")

	// ErrNonPositiveInterval indicates a recorder that could never fire.
	ErrNonPositiveInterval = errors.New("trail: sample interval must be positive")
)

// Ring is a fixed-capacity circular buffer of positions. Once full, each push
// overwrites the oldest entry. Memory is allocated once at creation.
type Ring struct {
	buf  []vec.Vec3
	next int
	size int
}

func NewRing(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	return &Ring{buf: make([]vec.Vec3, capacity)}, nil
}

func (r *Ring) Push(p vec.Vec3) {
	r.buf[r.next] = p
	r.next = (r.next + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

func (r *Ring) Len() int { return r.size }
func (r *Ring) Cap() int { return len(r.buf) }

// Positions returns the recorded positions oldest first. The slice is a copy;
// callers may hold it across pushes.
func (r *Ring) Positions() []vec.Vec3 {
	out := make([]vec.Vec3, 0, r.size)
	start := r.next - r.size
	if start < 0 {
		start += len(r.buf)
	}
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(start+i)%len(r.buf)])
	}
	return out
}

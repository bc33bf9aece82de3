// Package metrics provides run-level diagnostics observed at trail sample
// ticks.
package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/gravity"
)

// EnergyDrift tracks the maximum relative deviation of total mechanical
// energy from its first observed value.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []body.Body, t float64) {
	energy := gravity.Energy(bodies)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumError tracks the maximum magnitude of total linear momentum
// deviation from its first observed value. For a closed system this should
// stay near zero.
type MomentumError struct {
	initialSet bool
	initial    [3]float64
	maxError   float64
}

func NewMomentumError() *MomentumError { return &MomentumError{} }

func (m *MomentumError) Name() string { return "momentum_error" }

func (m *MomentumError) Observe(bodies []body.Body, t float64) {
	p := gravity.Momentum(bodies)

	if !m.initialSet {
		m.initial = [3]float64{p.X, p.Y, p.Z}
		m.initialSet = true
		return
	}

	dx := p.X - m.initial[0]
	dy := p.Y - m.initial[1]
	dz := p.Z - m.initial[2]
	m.maxError = math.Max(m.maxError, math.Sqrt(dx*dx+dy*dy+dz*dz))
}

func (m *MomentumError) Value() float64 { return m.maxError }

func (m *MomentumError) Reset() {
	m.initialSet = false
	m.maxError = 0
}

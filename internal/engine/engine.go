// Package engine drives the simulation core once per external render frame:
// the clock accumulator pays out fixed steps, the integrator consumes each
// one, and the trail recorder decimates positions into per-body rings.
// Everything is single-threaded and synchronous; no locking, strict ordering.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/simclock"
	"github.com/san-kum/orbitsim/internal/trail"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Stepper advances all bodies by one simulation-time increment.
type Stepper interface {
	Name() string
	Step(bodies []body.Body, dt float64)
}

// Metric observes body state at sample ticks and reduces it to one number.
type Metric interface {
	Name() string
	Observe(bodies []body.Body, t float64)
	Value() float64
	Reset()
}

// SampleFunc receives each trail sample: elapsed wall time and the current
// positions, in body order. Positions are valid only for the duration of the
// call.
type SampleFunc func(t float64, positions []vec.Vec3)

// Config is the spawn-time configuration of a run.
type Config struct {
	NumBodies     int
	BodyMass      float64
	SpawnBound    float64 // half-extent of the spawn cube
	Timestep      float64 // fixed wall-clock step size, seconds
	Scale         float64 // simulation-time units per wall-clock second
	TrailLength   int
	TrailInterval float64 // trail sample interval, seconds
	Seed          int64
}

// DefaultConfig mirrors the canonical demo: 100 bodies of mass 1000 in a
// ±100 cube, 30Hz fixed step at 1e5x time scale, 128-sample trails at 25ms.
func DefaultConfig() Config {
	return Config{
		NumBodies:     100,
		BodyMass:      1000,
		SpawnBound:    100,
		Timestep:      1.0 / 30.0,
		Scale:         1e5,
		TrailLength:   128,
		TrailInterval: 0.025,
	}
}

// Engine owns the body store, the clock, and the trail state for one run.
type Engine struct {
	clock    *simclock.Clock
	recorder *trail.Recorder
	stepper  Stepper

	bodies  []body.Body
	initial []body.Body
	trails  []*trail.Ring

	metrics   []Metric
	onSample  []SampleFunc
	scratch   []vec.Vec3
	elapsed   float64
	stepCount uint64
	cfg       Config
}

// New builds an engine from cfg, spawning bodies at random inside the
// configured cube. Malformed configuration is rejected here, never tolerated
// mid-simulation.
func New(cfg Config, stepper Stepper) (*Engine, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	bodies, err := body.SpawnCube(cfg.NumBodies, cfg.BodyMass, cfg.SpawnBound, rng)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return NewWithBodies(cfg, bodies, stepper)
}

// NewWithBodies builds an engine around caller-supplied initial bodies, for
// deterministic placements such as orbit pairs and rings. cfg.NumBodies,
// BodyMass, and SpawnBound are ignored.
func NewWithBodies(cfg Config, bodies []body.Body, stepper Stepper) (*Engine, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("engine: %w", body.ErrNoBodies)
	}
	for i := range bodies {
		if bodies[i].Mass <= 0 {
			return nil, fmt.Errorf("engine: %w", body.ErrNonPositiveMass)
		}
	}

	clock, err := simclock.New(cfg.Timestep, cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	recorder, err := trail.NewRecorder(cfg.TrailInterval)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	trails := make([]*trail.Ring, len(bodies))
	for i := range trails {
		ring, err := trail.NewRing(cfg.TrailLength)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		trails[i] = ring
	}

	return &Engine{
		clock:    clock,
		recorder: recorder,
		stepper:  stepper,
		bodies:   bodies,
		initial:  body.Clone(bodies),
		trails:   trails,
		scratch:  make([]vec.Vec3, len(bodies)),
		cfg:      cfg,
	}, nil
}

// Advance consumes one external frame's elapsed wall time. It runs every
// fixed step that became due, then lets the trail recorder decide whether to
// sample. Returns the number of physics steps executed this frame.
func (e *Engine) Advance(frameElapsed float64) int {
	e.clock.Update(frameElapsed)

	steps := 0
	for dt, ok := e.clock.Step(); ok; dt, ok = e.clock.Step() {
		e.stepper.Step(e.bodies, dt)
		steps++
	}
	e.stepCount += uint64(steps)
	e.elapsed += frameElapsed

	if e.recorder.Tick(frameElapsed) {
		e.sample()
	}
	return steps
}

func (e *Engine) sample() {
	for i := range e.bodies {
		e.scratch[i] = e.bodies[i].Position
		e.trails[i].Push(e.bodies[i].Position)
	}
	for _, m := range e.metrics {
		m.Observe(e.bodies, e.elapsed)
	}
	for _, fn := range e.onSample {
		fn(e.elapsed, e.scratch)
	}
}

// AddMetric registers a metric observed on every trail sample.
func (e *Engine) AddMetric(m Metric) { e.metrics = append(e.metrics, m) }

// OnSample registers a callback invoked on every trail sample.
func (e *Engine) OnSample(fn SampleFunc) { e.onSample = append(e.onSample, fn) }

// Bodies returns the live body slice. Read-only by contract: the integrator
// owns all mutation.
func (e *Engine) Bodies() []body.Body { return e.bodies }

// Trail returns body i's recorded positions, oldest first.
func (e *Engine) Trail(i int) []vec.Vec3 { return e.trails[i].Positions() }

func (e *Engine) NumBodies() int     { return len(e.bodies) }
func (e *Engine) SetPaused(p bool)   { e.clock.SetPaused(p) }
func (e *Engine) Paused() bool       { return e.clock.Paused() }
func (e *Engine) Steps() uint64      { return e.stepCount }
func (e *Engine) Elapsed() float64   { return e.elapsed }
func (e *Engine) Integrator() string { return e.stepper.Name() }
func (e *Engine) Settings() Config   { return e.cfg }

// Metrics returns the current value of every registered metric.
func (e *Engine) Metrics() map[string]float64 {
	out := make(map[string]float64, len(e.metrics))
	for _, m := range e.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Reset restores the initial bodies, clears trails and metrics, and unpauses.
func (e *Engine) Reset() {
	copy(e.bodies, e.initial)
	for i := range e.trails {
		ring, _ := trail.NewRing(e.trails[i].Cap())
		e.trails[i] = ring
	}
	for _, m := range e.metrics {
		m.Reset()
	}
	clock, _ := simclock.New(e.cfg.Timestep, e.cfg.Scale)
	e.clock = clock
	recorder, _ := trail.NewRecorder(e.cfg.TrailInterval)
	e.recorder = recorder
	e.elapsed = 0
	e.stepCount = 0
}

package simclock

import (
	"errors"
	"testing"
)

func drain(c *Clock) int {
	steps := 0
	for _, ok := c.Step(); ok; _, ok = c.Step() {
		steps++
	}
	return steps
}

func TestStepFixedIncrements(t *testing.T) {
	c, err := New(1.0/30.0, 1e5)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	// One 100ms frame holds three full 1/30s steps.
	c.Update(0.1)

	dt, ok := c.Step()
	if !ok {
		t.Fatal("expected a step")
	}
	if dt != (1.0/30.0)*1e5 {
		t.Errorf("expected dt=timestep*scale, got %f", dt)
	}

	if steps := drain(c); steps != 2 {
		t.Errorf("expected 2 remaining steps, got %d", steps)
	}

	if acc := c.Accumulator(); acc < 0 || acc >= c.Timestep() {
		t.Errorf("residual accumulator out of range: %f", acc)
	}
}

func TestStepAcrossManyFrames(t *testing.T) {
	c, _ := New(1.0/30.0, 1.0)

	total := 0
	// Irregular frame durations; step count must depend only on summed time.
	for _, frame := range []float64{0.005, 0.07, 0.011, 0.19, 0.0, 0.033} {
		c.Update(frame)
		total += drain(c)
	}

	// 0.319s of wall time at 1/30s per step.
	if total != 9 {
		t.Errorf("expected 9 steps over all frames, got %d", total)
	}
	if acc := c.Accumulator(); acc < 0 || acc >= c.Timestep() {
		t.Errorf("residual accumulator out of range: %f", acc)
	}
}

func TestPausedClockHoldsState(t *testing.T) {
	c, _ := New(0.05, 2.0)
	c.Update(0.3)
	c.SetPaused(true)

	before := c.Accumulator()
	if _, ok := c.Step(); ok {
		t.Error("paused clock must not step")
	}
	if c.Accumulator() != before {
		t.Error("paused Step modified the accumulator")
	}

	// Wall time does not accumulate while paused.
	c.Update(10.0)
	if c.Accumulator() != before {
		t.Error("paused Update modified the accumulator")
	}

	c.SetPaused(false)
	if steps := drain(c); steps != 5 {
		t.Errorf("expected 5 steps after unpause, got %d", steps)
	}
}

func TestZeroLengthFrame(t *testing.T) {
	c, _ := New(1.0/30.0, 1e5)

	for i := 0; i < 10; i++ {
		c.Update(0.0)
		if _, ok := c.Step(); ok {
			t.Fatal("zero-duration frames must never produce a step")
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(0, 1); !errors.Is(err, ErrNonPositiveTimestep) {
		t.Errorf("expected ErrNonPositiveTimestep, got %v", err)
	}
	if _, err := New(-0.1, 1); !errors.Is(err, ErrNonPositiveTimestep) {
		t.Errorf("expected ErrNonPositiveTimestep, got %v", err)
	}
	if _, err := New(0.1, 0); !errors.Is(err, ErrNonPositiveScale) {
		t.Errorf("expected ErrNonPositiveScale, got %v", err)
	}
}

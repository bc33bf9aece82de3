package trail

import "math"

// Recorder is a repeating wall-clock timer that decides when to sample
// positions into trail rings. It deliberately runs off wall time, not the
// physics step count: at high time scales one sample can cover many physics
// steps of motion.
type Recorder struct {
	interval float64
	elapsed  float64
}

// NewRecorder returns a recorder firing once per interval seconds.
func NewRecorder(interval float64) (*Recorder, error) {
	if interval <= 0 {
		return nil, ErrNonPositiveInterval
	}
	return &Recorder{interval: interval}, nil
}

// Tick advances the timer by elapsed seconds and reports whether a sample is
// due. A frame longer than several intervals still fires a single sample; the
// remainder carries into the next frame.
func (r *Recorder) Tick(elapsed float64) bool {
	r.elapsed += elapsed
	if r.elapsed < r.interval {
		return false
	}
	r.elapsed = math.Mod(r.elapsed, r.interval)
	return true
}

func (r *Recorder) Interval() float64 { return r.interval }

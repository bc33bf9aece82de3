package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/orbitsim/internal/vec"
)

type ExportData struct {
	ID         string             `json:"id"`
	Bodies     int                `json:"bodies"`
	Timestep   float64            `json:"timestep"`
	Scale      float64            `json:"scale"`
	Integrator string             `json:"integrator"`
	Samples    int                `json:"samples"`
	Times      []float64          `json:"times"`
	Positions  [][]vec.Vec3       `json:"positions"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as a single JSON document: per-sample times and
// positions plus the run metadata.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []Sample) error {
	data := ExportData{
		ID:         meta.ID,
		Bodies:     meta.Bodies,
		Timestep:   meta.Timestep,
		Scale:      meta.Scale,
		Integrator: meta.Integrator,
		Samples:    len(samples),
		Times:      make([]float64, len(samples)),
		Positions:  make([][]vec.Vec3, len(samples)),
		Metrics:    meta.Metrics,
	}

	for i, s := range samples {
		data.Times[i] = s.Time
		data.Positions[i] = s.Positions
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

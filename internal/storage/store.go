// Package storage persists completed runs: one directory per run holding
// metadata.json and the decimated trail samples as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/vec"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Sample is one trail tick: elapsed wall time and every body's position.
type Sample struct {
	Time      float64
	Positions []vec.Vec3
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Bodies     int                `json:"bodies"`
	Mass       float64            `json:"mass"`
	Placement  string             `json:"placement"`
	Timestep   float64            `json:"timestep"`
	Scale      float64            `json:"scale"`
	Integrator string             `json:"integrator"`
	Seed       int64              `json:"seed"`
	Samples    int                `json:"samples"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg *config.Config, metrics map[string]float64, samples []Sample) (string, error) {
	runID := fmt.Sprintf("nbody_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Bodies:     cfg.Bodies,
		Mass:       cfg.Mass,
		Placement:  cfg.Placement,
		Timestep:   cfg.Timestep,
		Scale:      cfg.Scale,
		Integrator: cfg.Integrator,
		Seed:       cfg.Seed,
		Samples:    len(samples),
		Metrics:    metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(samples) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range samples[0].Positions {
		header = append(header,
			fmt.Sprintf("b%dx", i), fmt.Sprintf("b%dy", i), fmt.Sprintf("b%dz", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, sample := range samples {
		row := []string{strconv.FormatFloat(sample.Time, 'f', 6, 64)}
		for _, p := range sample.Positions {
			row = append(row,
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
				strconv.FormatFloat(p.Z, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 || (len(record)-1)%3 != 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		n := (len(record) - 1) / 3
		positions := make([]vec.Vec3, n)
		for i := 0; i < n; i++ {
			x, errX := strconv.ParseFloat(record[1+i*3], 64)
			y, errY := strconv.ParseFloat(record[2+i*3], 64)
			z, errZ := strconv.ParseFloat(record[3+i*3], 64)
			if errX != nil || errY != nil || errZ != nil {
				continue
			}
			positions[i] = vec.Vec3{X: x, Y: y, Z: z}
		}
		samples = append(samples, Sample{Time: t, Positions: positions})
	}

	return samples, nil
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/engine"
)

const (
	DefaultBodies          = 100
	DefaultMass            = 1000.0
	DefaultSpawnBound      = 100.0
	DefaultScale           = 1e5
	DefaultTimestep        = 1.0 / 30.0
	DefaultTrailLength     = 128
	DefaultTrailIntervalMS = 25.0
)

// Config is the yaml-facing run configuration.
type Config struct {
	Bodies          int     `yaml:"bodies"`
	Mass            float64 `yaml:"mass"`
	SpawnBound      float64 `yaml:"spawn_bound"`
	Placement       string  `yaml:"placement"` // cube, pair, ring
	Separation      float64 `yaml:"separation"`
	Timestep        float64 `yaml:"timestep"`
	Scale           float64 `yaml:"scale"`
	TrailLength     int     `yaml:"trail_length"`
	TrailIntervalMS float64 `yaml:"trail_interval_ms"`
	Integrator      string  `yaml:"integrator"`
	Seed            int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Bodies:          DefaultBodies,
		Mass:            DefaultMass,
		SpawnBound:      DefaultSpawnBound,
		Placement:       "cube",
		Timestep:        DefaultTimestep,
		Scale:           DefaultScale,
		TrailLength:     DefaultTrailLength,
		TrailIntervalMS: DefaultTrailIntervalMS,
		Integrator:      "yoshida4",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Engine converts to the engine's spawn-time configuration.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		NumBodies:     c.Bodies,
		BodyMass:      c.Mass,
		SpawnBound:    c.SpawnBound,
		Timestep:      c.Timestep,
		Scale:         c.Scale,
		TrailLength:   c.TrailLength,
		TrailInterval: c.TrailIntervalMS / 1000.0,
		Seed:          c.Seed,
	}
}

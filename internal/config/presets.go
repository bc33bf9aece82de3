package config

var Presets = map[string]*Config{
	"cluster": {
		Bodies: 100, Mass: 1000, SpawnBound: 100, Placement: "cube",
		Timestep: DefaultTimestep, Scale: DefaultScale,
		TrailLength: 128, TrailIntervalMS: 25, Integrator: "yoshida4",
	},
	"binary": {
		Bodies: 2, Mass: 1000, Placement: "pair", Separation: 10,
		Timestep: DefaultTimestep, Scale: DefaultScale,
		TrailLength: 256, TrailIntervalMS: 25, Integrator: "yoshida4",
	},
	"ring": {
		Bodies: 24, Mass: 1000, Placement: "ring", Separation: 80,
		Timestep: DefaultTimestep, Scale: DefaultScale,
		TrailLength: 128, TrailIntervalMS: 25, Integrator: "yoshida4",
	},
	"swarm": {
		Bodies: 400, Mass: 500, SpawnBound: 150, Placement: "cube",
		Timestep: DefaultTimestep, Scale: DefaultScale,
		TrailLength: 64, TrailIntervalMS: 50, Integrator: "yoshida4",
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

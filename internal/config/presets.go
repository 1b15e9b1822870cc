package config

import "sort"

var Presets = map[string]*Config{
	"ball": {
		Scheme: "euler", Dt: 0.005,
		Launch:      LaunchConfig{Speed: 30, Angle: 45},
		Body:        BodyConfig{Mass: 1, Area: 0.05, DragCoefficient: 0.5},
		Environment: EnvironmentConfig{Density: 1.225, Gravity: 9.8},
		Sweep:       SweepConfig{Start: 25, Step: 0.001, Count: 350},
	},
	"vacuum": {
		Scheme: "euler", Dt: 0.005,
		Launch:      LaunchConfig{Speed: 30, Angle: 45},
		Body:        BodyConfig{Mass: 1, Area: 0.05, DragCoefficient: 0},
		Environment: EnvironmentConfig{Density: 1.225, Gravity: 9.8},
		Sweep:       SweepConfig{Start: 25, Step: 0.001, Count: 350},
	},
	"heavy": {
		Scheme: "euler", Dt: 0.01,
		Launch:      LaunchConfig{Speed: 30, Angle: 25},
		Body:        BodyConfig{Mass: 1, Area: 1, DragCoefficient: 0.5},
		Environment: EnvironmentConfig{Density: 1.225, Gravity: 9.8},
		Sweep:       SweepConfig{Start: 25, Step: 0.001, Count: 350},
	},
	"horizontal": {
		Scheme: "analytic", Dt: 0.005,
		Launch:      LaunchConfig{Speed: 30, Angle: 0},
		Body:        BodyConfig{Mass: 1, Area: 0.05, DragCoefficient: 0.5},
		Environment: EnvironmentConfig{Density: 1.225, Gravity: 9.8},
		Sweep:       SweepConfig{Start: 25, Step: 0.001, Count: 350},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

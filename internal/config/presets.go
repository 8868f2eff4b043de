package config

import (
	"sort"

	"github.com/san-kum/kinecalc/internal/kinematics"
)

var presets = map[string]kinematics.Params{
	DefaultPreset: Defaults(),
	"coast": {
		Velocity: 10000, Acceleration: 0, ElapsedTime: 3600,
		InitialDistance: 0, InitialFuel: 5000, FuelBurnRate: 0,
	},
	"short-burn": {
		Velocity: 10000, Acceleration: 3, ElapsedTime: 60,
		InitialDistance: 0, InitialFuel: 5000, FuelBurnRate: 0.5,
	},
	"long-haul": {
		Velocity: 25000, Acceleration: 0.2, ElapsedTime: 10800,
		InitialDistance: 1200, InitialFuel: 8000, FuelBurnRate: 0.25,
	},
	"dry": {
		Velocity: 10000, Acceleration: 3, ElapsedTime: 200,
		InitialDistance: 0, InitialFuel: 100, FuelBurnRate: 1,
	},
}

// GetPreset returns a copy of the named parameter set.
func GetPreset(name string) (kinematics.Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

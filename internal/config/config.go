package config

import (
	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinecalc/internal/kinematics"
)

// The given parameters the calculator runs with when nothing else is chosen.
const (
	DefaultVelocity        = 10000.0 // km/h
	DefaultAcceleration    = 3.0     // m/s²
	DefaultElapsedTime     = 3600.0  // s
	DefaultInitialDistance = 0.0     // km
	DefaultInitialFuel     = 5000.0  // kg
	DefaultFuelBurnRate    = 0.5     // kg/s
)

// DefaultPreset is the preset name that maps to Defaults.
const DefaultPreset = "nominal"

func Defaults() kinematics.Params {
	return kinematics.Params{
		Velocity:        DefaultVelocity,
		Acceleration:    DefaultAcceleration,
		ElapsedTime:     DefaultElapsedTime,
		InitialDistance: DefaultInitialDistance,
		InitialFuel:     DefaultInitialFuel,
		FuelBurnRate:    DefaultFuelBurnRate,
	}
}

// Marshal renders a parameter set as YAML.
func Marshal(p kinematics.Params) ([]byte, error) {
	return yaml.Marshal(p)
}

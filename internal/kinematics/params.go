package kinematics

import "math"

// Parameter names used in errors and rendered output.
const (
	ParamVelocity        = "velocity"
	ParamAcceleration    = "acceleration"
	ParamElapsedTime     = "elapsed_time"
	ParamInitialDistance = "initial_distance"
	ParamInitialFuel     = "initial_fuel"
	ParamFuelBurnRate    = "fuel_burn_rate"
)

// Params is one set of calculator inputs. It is a value type; copies are
// independent.
type Params struct {
	Velocity        float64 `yaml:"velocity_kmh" json:"velocity_kmh"`
	Acceleration    float64 `yaml:"acceleration_ms2" json:"acceleration_ms2"`
	ElapsedTime     float64 `yaml:"elapsed_time_s" json:"elapsed_time_s"`
	InitialDistance float64 `yaml:"initial_distance_km" json:"initial_distance_km"`
	InitialFuel     float64 `yaml:"initial_fuel_kg" json:"initial_fuel_kg"`
	FuelBurnRate    float64 `yaml:"fuel_burn_rate_kgs" json:"fuel_burn_rate_kgs"`
}

// Result holds the derived quantities of one computation pass.
type Result struct {
	Velocity float64 `yaml:"velocity_kmh" json:"velocity_kmh"`
	Distance float64 `yaml:"distance_km" json:"distance_km"`
	Fuel     float64 `yaml:"remaining_fuel_kg" json:"remaining_fuel_kg"`
}

// WithElapsedTime returns a copy of p with the elapsed time replaced.
func (p Params) WithElapsedTime(seconds float64) Params {
	p.ElapsedTime = seconds
	return p
}

// Validate reports the first invalid field of p.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{ParamVelocity, p.Velocity},
		{ParamAcceleration, p.Acceleration},
		{ParamElapsedTime, p.ElapsedTime},
		{ParamInitialDistance, p.InitialDistance},
		{ParamInitialFuel, p.InitialFuel},
		{ParamFuelBurnRate, p.FuelBurnRate},
	}
	for _, c := range checks {
		if err := checkMagnitude(c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

// checkMagnitude rejects values that cannot be a physical magnitude.
func checkMagnitude(name string, v float64) error {
	switch {
	case math.IsNaN(v):
		return &InvalidParameterError{Param: name, Value: v, Reason: "not a number"}
	case math.IsInf(v, 0):
		return &InvalidParameterError{Param: name, Value: v, Reason: "must be finite"}
	case v < 0:
		return &InvalidParameterError{Param: name, Value: v, Reason: "cannot be negative"}
	}
	return nil
}

// checkResult rejects a non-finite result and folds -0 into 0.
func checkResult(quantity string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &OutOfRangeError{Quantity: quantity, Value: v}
	}
	return v + 0, nil
}

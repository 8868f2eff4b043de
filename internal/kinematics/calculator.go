package kinematics

import "fmt"

// NewVelocity returns the velocity in km/h after accelerating from velocity
// (km/h) at acceleration (m/s²) for elapsedTime seconds. Finite inputs whose
// result overflows fail with *OutOfRangeError.
func NewVelocity(velocity, acceleration, elapsedTime float64) (float64, error) {
	if err := checkMagnitude(ParamVelocity, velocity); err != nil {
		return 0, err
	}
	if err := checkMagnitude(ParamAcceleration, acceleration); err != nil {
		return 0, err
	}
	if err := checkMagnitude(ParamElapsedTime, elapsedTime); err != nil {
		return 0, err
	}

	return checkResult(ParamVelocity, velocity+AccelerationToKmH2(acceleration)*SecondsToHours(elapsedTime))
}

// NewDistance returns the position in km after travelling at velocity (km/h)
// for elapsedTime seconds, starting from initialDistance (km).
//
// Velocity is held constant over the interval: acceleration during the burn
// is not integrated into the distance. Callers that need d = v₀t + ½at² must
// not use this function.
func NewDistance(initialDistance, velocity, elapsedTime float64) (float64, error) {
	if err := checkMagnitude(ParamInitialDistance, initialDistance); err != nil {
		return 0, err
	}
	if err := checkMagnitude(ParamVelocity, velocity); err != nil {
		return 0, err
	}
	if err := checkMagnitude(ParamElapsedTime, elapsedTime); err != nil {
		return 0, err
	}

	return checkResult("distance", initialDistance+velocity*SecondsToHours(elapsedTime))
}

// RemainingFuel returns the fuel mass in kg left after burning at
// fuelBurnRate (kg/s) for elapsedTime seconds. A burn larger than
// initialFuelMass fails with *InsufficientFuelError; the result is never
// clamped.
func RemainingFuel(initialFuelMass, fuelBurnRate, elapsedTime float64) (float64, error) {
	if err := checkMagnitude(ParamInitialFuel, initialFuelMass); err != nil {
		return 0, err
	}
	if err := checkMagnitude(ParamFuelBurnRate, fuelBurnRate); err != nil {
		return 0, err
	}
	if err := checkMagnitude(ParamElapsedTime, elapsedTime); err != nil {
		return 0, err
	}

	burned, err := checkResult("burned fuel", fuelBurnRate*elapsedTime)
	if err != nil {
		return 0, err
	}
	remaining := initialFuelMass - burned
	if remaining < 0 {
		return 0, &InsufficientFuelError{Initial: initialFuelMass, Burned: burned}
	}
	return checkResult("remaining fuel", remaining)
}

// Compute runs all three operations over p. It stops at the first error.
func Compute(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	velocity, err := NewVelocity(p.Velocity, p.Acceleration, p.ElapsedTime)
	if err != nil {
		return Result{}, fmt.Errorf("velocity: %w", err)
	}
	distance, err := NewDistance(p.InitialDistance, p.Velocity, p.ElapsedTime)
	if err != nil {
		return Result{}, fmt.Errorf("distance: %w", err)
	}
	fuel, err := RemainingFuel(p.InitialFuel, p.FuelBurnRate, p.ElapsedTime)
	if err != nil {
		return Result{}, fmt.Errorf("fuel: %w", err)
	}

	return Result{Velocity: velocity, Distance: distance, Fuel: fuel}, nil
}

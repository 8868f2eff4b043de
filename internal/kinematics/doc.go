// Package kinematics computes motion quantities for a simplified vehicle under
// a constant-acceleration model.
//
// The package exposes three validated operations over scalar inputs:
//
//   - [NewVelocity]: velocity after accelerating for an elapsed time
//   - [NewDistance]: distance covered at the initial velocity
//   - [RemainingFuel]: fuel left after burning at a fixed rate
//
// [Compute] runs all three over a [Params] value and returns a [Result].
//
// # Units
//
// Velocities are km/h, distances km, acceleration m/s², time s, fuel kg and
// burn rate kg/s. Acceleration is converted to km/h² with [MS2ToKmH2], which is
// derived from [SecondsPerHour] and [MetersPerKilometer].
//
// # Errors
//
// Negative or non-finite inputs fail with [*InvalidParameterError]. A burn that
// would leave negative fuel fails with [*InsufficientFuelError]. Both unwrap to
// package sentinels for use with errors.Is.
//
// # Example
//
//	p := kinematics.Params{Velocity: 10000, Acceleration: 3, ElapsedTime: 3600}
//	res, err := kinematics.Compute(p)
package kinematics

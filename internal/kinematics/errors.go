package kinematics

import (
	"errors"
	"fmt"
	"strconv"
)

// Domain errors for calculator operations.
var (
	// ErrInvalidParameter indicates a negative, NaN or infinite input.
	ErrInvalidParameter = errors.New("kinematics: invalid parameter")

	// ErrInsufficientFuel indicates a burn larger than the fuel aboard.
	ErrInsufficientFuel = errors.New("kinematics: insufficient fuel")

	// ErrOutOfRange indicates a result that does not fit in a float64.
	ErrOutOfRange = errors.New("kinematics: result out of range")
)

// InvalidParameterError names the offending input.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("kinematics: invalid parameter %s=%s: %s",
		e.Param, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// OutOfRangeError reports finite inputs whose result overflows.
type OutOfRangeError struct {
	Quantity string
	Value    float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("kinematics: %s overflows float64 (got %s)",
		e.Quantity, strconv.FormatFloat(e.Value, 'g', -1, 64))
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// InsufficientFuelError reports a burn that exceeds the initial fuel mass.
type InsufficientFuelError struct {
	Initial float64 // kg aboard at t=0
	Burned  float64 // kg the burn would consume
}

// Deficit is the mass missing to complete the burn, in kg.
func (e *InsufficientFuelError) Deficit() float64 {
	return e.Burned - e.Initial
}

func (e *InsufficientFuelError) Error() string {
	return fmt.Sprintf("kinematics: insufficient fuel: burn needs %s kg but only %s kg aboard (short %s kg)",
		formatKg(e.Burned), formatKg(e.Initial), formatKg(e.Deficit()))
}

func (e *InsufficientFuelError) Unwrap() error {
	return ErrInsufficientFuel
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package kinematics

const (
	SecondsPerHour     = 3600.0
	MetersPerKilometer = 1000.0

	// MS2ToKmH2 converts m/s² to km/h²: 1 m/s² = (3600 s/h)² / (1000 m/km) km/h² = 12960 km/h².
	MS2ToKmH2 = SecondsPerHour * SecondsPerHour / MetersPerKilometer
)

// AccelerationToKmH2 converts an acceleration in m/s² to km/h².
func AccelerationToKmH2(ms2 float64) float64 {
	return ms2 * MS2ToKmH2
}

// SecondsToHours converts a duration in seconds to hours.
func SecondsToHours(s float64) float64 {
	return s / SecondsPerHour
}

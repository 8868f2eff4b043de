// Package profile evaluates the calculator across a maneuver's elapsed time.
package profile

import (
	"fmt"

	"github.com/san-kum/kinecalc/internal/kinematics"
)

const (
	DefaultSamples = 60
	MaxSamples     = 10000
)

// Point is one sample of the maneuver.
type Point struct {
	Time     float64 // s
	Velocity float64 // km/h
	Distance float64 // km
	Fuel     float64 // kg
}

// Sample evaluates p at samples evenly spaced elapsed times from 0 to
// p.ElapsedTime inclusive.
func Sample(p kinematics.Params, samples int) ([]Point, error) {
	if samples < 2 || samples > MaxSamples {
		return nil, &kinematics.InvalidParameterError{
			Param:  "samples",
			Value:  float64(samples),
			Reason: fmt.Sprintf("must be between 2 and %d", MaxSamples),
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	step := p.ElapsedTime / float64(samples-1)
	points := make([]Point, 0, samples)
	for i := 0; i < samples; i++ {
		t := step * float64(i)
		if i == samples-1 {
			t = p.ElapsedTime
		}

		res, err := kinematics.Compute(p.WithElapsedTime(t))
		if err != nil {
			return nil, fmt.Errorf("t=%gs: %w", t, err)
		}
		points = append(points, Point{Time: t, Velocity: res.Velocity, Distance: res.Distance, Fuel: res.Fuel})
	}
	return points, nil
}

func Velocities(pts []Point) []float64 {
	return series(pts, func(p Point) float64 { return p.Velocity })
}

func Distances(pts []Point) []float64 {
	return series(pts, func(p Point) float64 { return p.Distance })
}

func Fuels(pts []Point) []float64 {
	return series(pts, func(p Point) float64 { return p.Fuel })
}

func series(pts []Point, get func(Point) float64) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = get(p)
	}
	return out
}

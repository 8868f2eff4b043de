package profile

import (
	"errors"
	"testing"

	"github.com/san-kum/kinecalc/internal/config"
	"github.com/san-kum/kinecalc/internal/kinematics"
)

func TestSample(t *testing.T) {
	pts, err := Sample(config.Defaults(), 5)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}

	first, last := pts[0], pts[len(pts)-1]
	if first.Time != 0 || first.Velocity != config.DefaultVelocity || first.Fuel != config.DefaultInitialFuel {
		t.Errorf("first point should be the initial state, got %+v", first)
	}
	if last.Time != 3600 || last.Velocity != 48880 || last.Distance != 10000 || last.Fuel != 3200 {
		t.Errorf("last point should match the full computation, got %+v", last)
	}

	for i := 1; i < len(pts); i++ {
		if pts[i].Velocity < pts[i-1].Velocity {
			t.Errorf("velocity decreased at sample %d", i)
		}
		if pts[i].Fuel > pts[i-1].Fuel {
			t.Errorf("fuel increased at sample %d", i)
		}
	}
}

func TestSample_SampleBounds(t *testing.T) {
	for _, n := range []int{-1, 0, 1, MaxSamples + 1, 2000000000} {
		_, err := Sample(config.Defaults(), n)
		if !errors.Is(err, kinematics.ErrInvalidParameter) {
			t.Errorf("samples=%d: expected ErrInvalidParameter, got %v", n, err)
		}
	}

	pts, err := Sample(config.Defaults(), MaxSamples)
	if err != nil {
		t.Fatalf("samples=%d: unexpected error: %v", MaxSamples, err)
	}
	if len(pts) != MaxSamples {
		t.Errorf("expected %d points, got %d", MaxSamples, len(pts))
	}
}

func TestSample_FuelExhausted(t *testing.T) {
	p, _ := config.GetPreset("dry")
	_, err := Sample(p, 10)
	if !errors.Is(err, kinematics.ErrInsufficientFuel) {
		t.Errorf("expected ErrInsufficientFuel, got %v", err)
	}
}

func TestSeries(t *testing.T) {
	pts := []Point{
		{Time: 0, Velocity: 1, Distance: 2, Fuel: 3},
		{Time: 1, Velocity: 4, Distance: 5, Fuel: 6},
	}

	v, d, f := Velocities(pts), Distances(pts), Fuels(pts)
	if v[1] != 4 || d[1] != 5 || f[1] != 6 {
		t.Errorf("unexpected series: %v %v %v", v, d, f)
	}
}

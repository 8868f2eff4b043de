package report

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kinecalc/internal/profile"
)

type Series string

const (
	SeriesVelocity Series = "velocity"
	SeriesDistance Series = "distance"
	SeriesFuel     Series = "fuel"
)

func ParseSeries(s string) (Series, error) {
	switch Series(s) {
	case SeriesVelocity, SeriesDistance, SeriesFuel:
		return Series(s), nil
	}
	return "", fmt.Errorf("unknown series: %s (available: velocity, distance, fuel)", s)
}

// Chart plots one series of a time profile.
func Chart(w io.Writer, pts []profile.Point, s Series) error {
	if len(pts) == 0 {
		return fmt.Errorf("no data to plot")
	}

	var data []float64
	var caption string
	switch s {
	case SeriesVelocity:
		data, caption = profile.Velocities(pts), "velocity (km/h)"
	case SeriesDistance:
		data, caption = profile.Distances(pts), "distance (km)"
	case SeriesFuel:
		data, caption = profile.Fuels(pts), "remaining fuel (kg)"
	default:
		return fmt.Errorf("unknown series: %s", s)
	}

	end := pts[len(pts)-1].Time
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s over %ss", caption, FormatValue(end))),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}

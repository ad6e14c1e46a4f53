package telemetry

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// WriteGrowthChart renders population over time as a PNG line chart.
// Needs at least two data points; fewer is a no-op.
func WriteGrowthChart(path string, ticks, particles []float64) error {
	if len(ticks) < 2 || len(ticks) != len(particles) {
		return nil
	}

	graph := chart.Chart{
		Title: "Ring growth",
		XAxis: chart.XAxis{
			Name: "tick",
		},
		YAxis: chart.YAxis{
			Name: "particles",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "particles",
				XValues: ticks,
				YValues: particles,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating growth chart: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering growth chart: %w", err)
	}

	return nil
}

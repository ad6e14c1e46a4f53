// Package telemetry aggregates per-window simulation statistics and writes
// structured experiment output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FieldStats summarizes one per-particle scalar field over the population.
type FieldStats struct {
	Mean float64
	Std  float64
	P90  float64
}

// ComputeFieldStats calculates mean, standard deviation and the 90th
// percentile of the given values. Returns zeros for an empty slice.
func ComputeFieldStats(values []float64) FieldStats {
	if len(values) == 0 {
		return FieldStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	fs := FieldStats{
		Mean: stat.Mean(sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		fs.Std = stat.StdDev(sorted, nil)
	}
	return fs
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Particles int `csv:"particles"`

	// Growth during the window
	Splits    int     `csv:"splits"`
	SplitRate float64 `csv:"split_rate"` // splits per sim second

	// Ring geometry at window end
	Perimeter float64 `csv:"perimeter"`

	// Force diagnostics at window end
	PressureMean   float64 `csv:"pressure_mean"`
	PressureStd    float64 `csv:"pressure_std"`
	PressureP90    float64 `csv:"pressure_p90"`
	AttractionMean float64 `csv:"attraction_mean"`
	AttractionStd  float64 `csv:"attraction_std"`
	AttractionP90  float64 `csv:"attraction_p90"`
	NeighborsMean  float64 `csv:"neighbors_mean"`
	NeighborsMax   int     `csv:"neighbors_max"`

	// Visual layer
	Sparks int `csv:"sparks"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("particles", s.Particles),
		slog.Int("splits", s.Splits),
		slog.Float64("split_rate", s.SplitRate),
		slog.Float64("perimeter", s.Perimeter),
		slog.Float64("pressure_mean", s.PressureMean),
		slog.Float64("pressure_std", s.PressureStd),
		slog.Float64("pressure_p90", s.PressureP90),
		slog.Float64("attraction_mean", s.AttractionMean),
		slog.Float64("attraction_std", s.AttractionStd),
		slog.Float64("attraction_p90", s.AttractionP90),
		slog.Float64("neighbors_mean", s.NeighborsMean),
		slog.Int("neighbors_max", s.NeighborsMax),
		slog.Int("sparks", s.Sparks),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

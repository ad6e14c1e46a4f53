package telemetry

// Sample holds point-in-time measurements of the ring taken at window end.
// The host builds it from the particle system's diagnostics; the collector
// never touches the simulation directly.
type Sample struct {
	Particles      int
	Perimeter      float64
	PressureMags   []float64
	AttractionMags []float64
	NeighborCounts []float64
	Sparks         int
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for the current window
	splits int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
	}
}

// RecordSplits records edge subdivisions performed in one step.
func (c *Collector) RecordSplits(n int) {
	c.splits += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the window's events and the given
// end-of-window sample, then resets counters for the next window.
func (c *Collector) Flush(windowEnd int32, sample Sample) WindowStats {
	pressure := ComputeFieldStats(sample.PressureMags)
	attraction := ComputeFieldStats(sample.AttractionMags)
	neighbors := ComputeFieldStats(sample.NeighborCounts)

	maxN := 0
	for _, n := range sample.NeighborCounts {
		if int(n) > maxN {
			maxN = int(n)
		}
	}

	windowSec := float64(windowEnd-c.windowStartTick) * c.dt
	splitRate := 0.0
	if windowSec > 0 {
		splitRate = float64(c.splits) / windowSec
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   windowEnd,
		SimTimeSec:      float64(windowEnd) * c.dt,
		Particles:       sample.Particles,
		Splits:          c.splits,
		SplitRate:       splitRate,
		Perimeter:       sample.Perimeter,
		PressureMean:    pressure.Mean,
		PressureStd:     pressure.Std,
		PressureP90:     pressure.P90,
		AttractionMean:  attraction.Mean,
		AttractionStd:   attraction.Std,
		AttractionP90:   attraction.P90,
		NeighborsMean:   neighbors.Mean,
		NeighborsMax:    maxN,
		Sparks:          sample.Sparks,
	}

	c.splits = 0
	c.windowStartTick = windowEnd

	return stats
}

package telemetry

import (
	"math"
	"testing"
)

func TestCollectorShouldFlush(t *testing.T) {
	// 5 second window at 60fps = 300 ticks
	c := NewCollector(5.0, 1.0/60.0)

	if c.ShouldFlush(299) {
		t.Error("should not flush before window elapses")
	}
	if !c.ShouldFlush(300) {
		t.Error("should flush at window boundary")
	}
}

func TestCollectorFlushResetsWindow(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	c.RecordSplits(3)
	stats := c.Flush(60, Sample{Particles: 103})

	if stats.Splits != 3 {
		t.Errorf("splits = %d, want 3", stats.Splits)
	}
	if stats.Particles != 103 {
		t.Errorf("particles = %d, want 103", stats.Particles)
	}

	// Window restarts: counters clear, next flush is another 60 ticks out
	if c.ShouldFlush(119) {
		t.Error("window did not restart after flush")
	}
	stats = c.Flush(120, Sample{Particles: 103})
	if stats.Splits != 0 {
		t.Errorf("splits not reset, got %d", stats.Splits)
	}
}

func TestCollectorSplitRate(t *testing.T) {
	// 2 second window
	c := NewCollector(2.0, 1.0/60.0)

	c.RecordSplits(4)
	c.RecordSplits(2)
	stats := c.Flush(120, Sample{})

	// 6 splits over 2 seconds
	if math.Abs(stats.SplitRate-3.0) > 0.001 {
		t.Errorf("split rate = %v, want 3.0", stats.SplitRate)
	}
}

func TestCollectorFieldStats(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	sample := Sample{
		Particles:      4,
		Perimeter:      40,
		PressureMags:   []float64{0.5, 1.0, 1.5, 2.0},
		AttractionMags: []float64{1, 1, 1, 1},
		NeighborCounts: []float64{2, 3, 5, 2},
		Sparks:         7,
	}
	stats := c.Flush(60, sample)

	if math.Abs(stats.PressureMean-1.25) > 0.001 {
		t.Errorf("pressure mean = %v, want 1.25", stats.PressureMean)
	}
	if stats.AttractionStd != 0 {
		t.Errorf("attraction std = %v, want 0 for constant field", stats.AttractionStd)
	}
	if stats.NeighborsMax != 5 {
		t.Errorf("neighbors max = %d, want 5", stats.NeighborsMax)
	}
	if stats.Perimeter != 40 {
		t.Errorf("perimeter = %v, want 40", stats.Perimeter)
	}
	if stats.Sparks != 7 {
		t.Errorf("sparks = %d, want 7", stats.Sparks)
	}
}

func TestCollectorSimTime(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	stats := c.Flush(180, Sample{})
	if math.Abs(stats.SimTimeSec-3.0) > 0.001 {
		t.Errorf("sim time = %v, want 3.0", stats.SimTimeSec)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// Degenerate window durations still flush every tick
	c := NewCollector(0, 1.0/60.0)

	if !c.ShouldFlush(1) {
		t.Error("degenerate window should flush after one tick")
	}
}

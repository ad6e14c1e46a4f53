package game

import (
	"log/slog"

	"github.com/pthm-cable/filament/telemetry"
)

// Update runs input handling and one or more simulation steps.
// Call once per frame in graphical mode.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}

	if g.followRing && g.camera != nil {
		min, max := g.ring.Bounds()
		g.camera.FitBounds(min.X, min.Y, max.X, max.Y, 40)
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs a single tick: forces, splits, sparks, telemetry.
func (g *Game) step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseStep)
	g.ring.Step()

	g.perfCollector.StartPhase(telemetry.PhaseEffects)
	splits := g.ring.SplitsLastStep()
	if g.sparks != nil {
		for _, ev := range splits {
			g.sparks.EmitBurst(ev.Pos.X, ev.Pos.Y)
		}
		g.sparks.Update()
	}
	g.collector.RecordSplits(len(splits))

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	g.tick++
}

// flushTelemetry flushes the stats window when it has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleRing())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleRing collects per-particle diagnostics for a stats window.
func (g *Game) sampleRing() telemetry.Sample {
	n := g.ring.Count()
	sample := telemetry.Sample{
		Particles:      n,
		PressureMags:   make([]float64, n),
		AttractionMags: make([]float64, n),
		NeighborCounts: make([]float64, n),
	}

	var perimeter float64
	for i := 0; i < n; i++ {
		sample.PressureMags[i] = float64(g.ring.Pressure(i).Mag())
		sample.AttractionMags[i] = float64(g.ring.Attraction(i).Mag())
		sample.NeighborCounts[i] = float64(g.ring.NeighborCount(i))

		// Walking every Next edge covers each ring edge exactly once.
		next := g.ring.Links(i).Next
		perimeter += float64(g.ring.Position(next).Sub(g.ring.Position(i)).Mag())
	}
	sample.Perimeter = perimeter

	if g.sparks != nil {
		sample.Sparks = g.sparks.Count()
	}

	return sample
}

package game

import "log/slog"

// logWorldState logs a summary of the current ring state.
func (g *Game) logWorldState() {
	min, max := g.ring.Bounds()

	sparks := 0
	if g.sparks != nil {
		sparks = g.sparks.Count()
	}

	slog.Info("world state",
		"tick", g.tick,
		"particles", g.ring.Count(),
		"sparks", sparks,
		"bounds_w", max.X-min.X,
		"bounds_h", max.Y-min.Y,
		"seed", g.rngSeed,
	)
}

package ring

// Step advances the simulation by one tick.
//
// All reads use a frozen snapshot of the positions taken at the start of the
// step: neighbor discovery, the attraction midpoint and every pressure term
// see the same pre-step state, so the result does not depend on iteration
// order. Writes go to the live position arrays. After integration the display
// colors are recomputed from this step's diagnostics, then the splitting rule
// runs over the edges that existed when the pass started.
func (s *System) Step() {
	n := len(s.positions)
	s.lastSplits = s.lastSplits[:0]
	if n == 0 {
		return
	}

	// Freeze pre-step positions and index them.
	s.old = append(s.old[:0], s.positions...)
	s.grid.rebuild(s.old)

	for i := 0; i < n; i++ {
		s.nbScratch = s.neighborsInto(s.nbScratch[:0], i, s.old)
		s.neighborCounts[i] = len(s.nbScratch)

		// Pull toward the midpoint of the two linked neighbors.
		link := s.links[i]
		att := s.old[link.Prev].Add(s.old[link.Next]).Scale(0.5).Sub(s.old[i])
		att = att.Limit(s.params.AttractionLimit)
		s.attractions[i] = att

		// Radius-normalized repulsion from crowding non-linked neighbors.
		var pressure Vec2
		inv := 1 / (s.params.InfluenceRadius * s.params.PressureScale)
		for _, j := range s.nbScratch {
			pressure = pressure.Add(s.old[i].Sub(s.old[j]).Scale(inv))
		}
		pressure = pressure.Limit(s.params.PressureLimit)
		s.pressures[i] = pressure

		s.positions[i] = s.positions[i].
			Add(att.Scale(s.params.AttractionGain)).
			Add(pressure.Scale(s.params.PressureGain))
	}

	s.recolor()

	if s.params.SplitEnabled {
		s.maybeSplit(n)
	}
}

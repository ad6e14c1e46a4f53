package ring

// maybeSplit evaluates the splitting rule for each directed edge
// (i, next(i)) in id order. The edge count is frozen at pass start, so
// particles inserted this pass are not re-examined until the next step.
//
// Rule: an edge qualifies when the combined neighbor count of its endpoints
// is below the configured threshold (the ring is locally sparse there), and
// each qualifying edge then splits with an independent probability so growth
// stays gradual.
func (s *System) maybeSplit(edgeCount int) {
	for i := 0; i < edgeCount; i++ {
		p1 := s.links[i].Next
		if s.neighborCounts[i]+s.neighborCounts[p1] >= s.params.NeighborThreshold {
			continue
		}
		if s.rng.Float32() >= s.params.SplitProbability {
			continue
		}
		s.SplitAt(i, p1)
	}
}

// SplitAt subdivides the edge (p0, p1), which must satisfy next(p0) == p1.
// The new particle is inserted at the edge midpoint, offset outward by both
// endpoints' pressure vectors, with the endpoints' average color. Rewiring is
// local: next(p0) and prev(p1) both become the new id, and the new particle
// links (p0, p1), preserving cycle closure. Returns the new particle's id.
func (s *System) SplitAt(p0, p1 int) int {
	pos := s.positions[p0].Add(s.positions[p1]).Scale(0.5).
		Add(s.pressures[p0]).
		Add(s.pressures[p1])
	col := averageColor(s.colors[p0], s.colors[p1])

	newID := s.addParticle(pos, col, Link{Prev: p0, Next: p1})
	s.links[p0].Next = newID
	s.links[p1].Prev = newID

	s.lastSplits = append(s.lastSplits, SplitEvent{
		P0:    p0,
		P1:    p1,
		NewID: newID,
		Pos:   pos,
	})
	return newID
}

package ring

// recolor derives each particle's display color from this step's diagnostics,
// normalized by the current population maxima. Red encodes pressure, green
// encodes attraction, blue their product, and alpha fades with local crowding
// (sparse stretches of the ring render more opaque). Purely derived; no
// feedback into the physics.
func (s *System) recolor() {
	var maxP, maxA float32
	maxN := 0
	for i := range s.positions {
		if m := s.pressures[i].Mag(); m > maxP {
			maxP = m
		}
		if m := s.attractions[i].Mag(); m > maxA {
			maxA = m
		}
		if s.neighborCounts[i] > maxN {
			maxN = s.neighborCounts[i]
		}
	}

	for i := range s.positions {
		var p, a, n float32
		if maxP > 0 {
			p = s.pressures[i].Mag() / maxP
		}
		if maxA > 0 {
			a = s.attractions[i].Mag() / maxA
		}
		if maxN > 0 {
			n = float32(s.neighborCounts[i]) / float32(maxN)
		}
		s.colors[i] = Color{
			R: clamp01(p),
			G: clamp01(a),
			B: clamp01(p*a + 0.1),
			A: 0.55 + 0.45*(1-n),
		}
	}
}

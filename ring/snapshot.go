package ring

// Snapshot is a point-in-time, read-only copy of the renderable state.
// Renderers own the copy outright; it never aliases the live arrays, so it
// stays valid (and stale) across later steps.
type Snapshot struct {
	Positions []Vec2
	Colors    []Color
	Links     []Link
	Count     int
}

// Snapshot exports the current positions, colors and links as deep copies.
func (s *System) Snapshot() Snapshot {
	n := len(s.positions)
	snap := Snapshot{
		Positions: make([]Vec2, n),
		Colors:    make([]Color, n),
		Links:     make([]Link, n),
		Count:     n,
	}
	copy(snap.Positions, s.positions)
	copy(snap.Colors, s.colors)
	copy(snap.Links, s.links)
	return snap
}

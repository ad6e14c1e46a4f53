package ring

// NeighborsOf returns the ids of all particles within the influence radius of
// particle i, excluding i itself and both of its direct links. This is the
// brute-force reference scan over current positions; Step uses the cell grid
// below, which returns the identical set.
func (s *System) NeighborsOf(i int) []int {
	return s.neighborsBrute(nil, i, s.positions)
}

// neighborsBrute appends qualifying neighbor ids to dst, scanning every
// particle in the given position snapshot.
func (s *System) neighborsBrute(dst []int, i int, pos []Vec2) []int {
	radiusSq := s.params.InfluenceRadius * s.params.InfluenceRadius
	link := s.links[i]
	for j := range pos {
		if j == i || j == link.Prev || j == link.Next {
			continue
		}
		if pos[i].Sub(pos[j]).MagSq() <= radiusSq {
			dst = append(dst, j)
		}
	}
	return dst
}

// cellKey identifies one grid cell. The particle plane is unbounded, so
// cells live in a hash map rather than a fixed array.
type cellKey struct {
	cx, cy int32
}

// cellGrid is a cell-hash spatial index over one frozen position snapshot.
// It only accelerates the per-step neighbor scan; results match the brute
// force scan exactly.
type cellGrid struct {
	cellSize float32
	cells    map[cellKey][]int
}

func newCellGrid(cellSize float32) cellGrid {
	return cellGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

func (g *cellGrid) keyFor(p Vec2) cellKey {
	return cellKey{
		cx: int32(floorDiv(p.X, g.cellSize)),
		cy: int32(floorDiv(p.Y, g.cellSize)),
	}
}

// floorDiv returns floor(v / cell) as an int, stable across negative
// coordinates (plain int conversion truncates toward zero).
func floorDiv(v, cell float32) int {
	q := v / cell
	i := int(q)
	if q < 0 && float32(i) != q {
		i--
	}
	return i
}

// rebuild reindexes the grid from the given position snapshot.
func (g *cellGrid) rebuild(pos []Vec2) {
	for k := range g.cells {
		delete(g.cells, k)
	}
	for id, p := range pos {
		k := g.keyFor(p)
		g.cells[k] = append(g.cells[k], id)
	}
}

// neighborsInto appends the ids of particles within radius of pos[i] to dst,
// excluding i and its direct links. The snapshot pos must be the one the grid
// was rebuilt from.
func (s *System) neighborsInto(dst []int, i int, pos []Vec2) []int {
	radius := s.params.InfluenceRadius
	radiusSq := radius * radius
	link := s.links[i]

	center := s.grid.keyFor(pos[i])
	reach := int32(radius/s.grid.cellSize) + 1

	for cx := center.cx - reach; cx <= center.cx+reach; cx++ {
		for cy := center.cy - reach; cy <= center.cy+reach; cy++ {
			for _, j := range s.grid.cells[cellKey{cx, cy}] {
				if j == i || j == link.Prev || j == link.Next {
					continue
				}
				if pos[i].Sub(pos[j]).MagSq() <= radiusSq {
					dst = append(dst, j)
				}
			}
		}
	}
	return dst
}

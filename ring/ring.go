package ring

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidArgument is returned when an operation is called with arguments
// outside its contract.
var ErrInvalidArgument = errors.New("invalid argument")

// Link holds the ids of a particle's two structural ring neighbors.
// The relation is symmetric: if links[i].Prev == p then links[p].Next == i.
type Link struct {
	Prev, Next int
}

// Params holds all tuning constants for a System. Zero limits mean unlimited.
type Params struct {
	InfluenceRadius float32 // Repulsion range; must be > 0
	ParticleRadius  float32 // Draw radius, no physical effect

	AttractionGain  float32 // Fraction of link-midpoint pull applied per step
	AttractionLimit float32 // Max attraction magnitude (0 = unlimited)
	PressureGain    float32 // Fraction of repulsion applied per step
	PressureScale   float32 // Divisor k in (InfluenceRadius * k); must be > 0
	PressureLimit   float32 // Max pressure magnitude (0 = unlimited)

	SplitEnabled      bool    // Evaluate the splitting rule each step
	NeighborThreshold int     // Split when n(p0)+n(p1) is below this
	SplitProbability  float32 // Per qualifying edge per step

	GridCellSize float32 // Neighbor grid cell size (0 = InfluenceRadius)

	Wobble WobbleFunc // Seeding radius perturbation (nil = none)
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		InfluenceRadius:   12.0,
		ParticleRadius:    4.0,
		AttractionGain:    0.6,
		PressureGain:      0.2,
		PressureScale:     0.5,
		PressureLimit:     2.0,
		SplitEnabled:      true,
		NeighborThreshold: 16,
		SplitProbability:  0.05,
		Wobble:            SineWobble(50.0, 6.2),
	}
}

// SplitEvent records one edge subdivision performed during a step.
type SplitEvent struct {
	P0, P1 int  // The edge endpoints that were rewired
	NewID  int  // Id of the inserted particle
	Pos    Vec2 // Position the new particle was inserted at
}

// System is a growing ring of particles stored as parallel arrays indexed by
// dense, monotonically increasing ids. Ids are never reused; storage is
// append-only. Not safe for concurrent use: the host calls Spawn once, then
// Step once per tick from a single goroutine.
type System struct {
	params Params
	rng    *rand.Rand

	positions      []Vec2
	colors         []Color
	links          []Link
	pressures      []Vec2
	attractions    []Vec2
	neighborCounts []int

	// Per-step scratch state
	old        []Vec2 // Frozen positions from the start of the current step
	grid       cellGrid
	nbScratch  []int
	lastSplits []SplitEvent
}

// New creates an empty system with the given tuning. The random source drives
// seeding colors and split gating; callers wanting reproducible runs pass a
// fixed-seed rand.Rand.
func New(params Params, rng *rand.Rand) *System {
	if params.InfluenceRadius <= 0 {
		panic("ring: InfluenceRadius must be > 0")
	}
	if params.PressureScale <= 0 {
		panic("ring: PressureScale must be > 0")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	cell := params.GridCellSize
	if cell <= 0 {
		cell = params.InfluenceRadius
	}
	return &System{
		params: params,
		rng:    rng,
		grid:   newCellGrid(cell),
	}
}

// Spawn places count particles evenly around a circle of the given radius and
// links them into a single cycle. Must be called before the first Step.
// Returns an error wrapping ErrInvalidArgument for count < 3 or radius <= 0.
func (s *System) Spawn(count int, radius float32) error {
	if count < 3 {
		return fmt.Errorf("%w: spawn count %d < 3", ErrInvalidArgument, count)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: spawn radius %g <= 0", ErrInvalidArgument, radius)
	}

	deltaPhi := 2 * math.Pi / float64(count)
	base := len(s.positions)

	for i := 0; i < count; i++ {
		phi := float64(i) * deltaPhi
		r := radius
		if s.params.Wobble != nil {
			r += s.params.Wobble(float32(phi))
		}
		pos := Vec2{
			X: float32(math.Cos(phi)) * r,
			Y: float32(math.Sin(phi)) * r,
		}

		// Random luminance-band color; cosmetic only.
		l := s.rng.Float32()*0.8 + 0.1
		col := Color{
			R: l,
			G: clamp01(l - s.rng.Float32()*0.2),
			B: clamp01(l - s.rng.Float32()*0.1),
			A: 1,
		}

		link := Link{
			Prev: base + wrap(i-1, count),
			Next: base + wrap(i+1, count),
		}
		s.addParticle(pos, col, link)
	}
	return nil
}

// addParticle appends one particle to every parallel array and returns its id.
// New ids are always len(positions) at insertion time, keeping ids dense.
func (s *System) addParticle(pos Vec2, col Color, link Link) int {
	id := len(s.positions)
	s.positions = append(s.positions, pos)
	s.colors = append(s.colors, col)
	s.links = append(s.links, link)
	s.pressures = append(s.pressures, Vec2{})
	s.attractions = append(s.attractions, Vec2{})
	s.neighborCounts = append(s.neighborCounts, 0)
	return id
}

// wrap maps i into [0, max) with single-step wraparound, matching circular
// index arithmetic at seeding.
func wrap(i, max int) int {
	if i < 0 {
		return max - 1
	}
	if i == max {
		return 0
	}
	return i
}

// Count returns the current particle population.
func (s *System) Count() int {
	return len(s.positions)
}

// Position returns particle i's current position.
func (s *System) Position(i int) Vec2 {
	return s.positions[i]
}

// Links returns particle i's ring neighbors.
func (s *System) Links(i int) Link {
	return s.links[i]
}

// Pressure returns the repulsion sum recorded for particle i at the last step.
func (s *System) Pressure(i int) Vec2 {
	return s.pressures[i]
}

// Attraction returns the link-midpoint pull recorded for particle i at the
// last step.
func (s *System) Attraction(i int) Vec2 {
	return s.attractions[i]
}

// NeighborCount returns the number of non-linked particles within the
// influence radius of particle i at the last step.
func (s *System) NeighborCount(i int) int {
	return s.neighborCounts[i]
}

// Color returns particle i's display color.
func (s *System) Color(i int) Color {
	return s.colors[i]
}

// Params returns the system's tuning constants.
func (s *System) Params() Params {
	return s.params
}

// SetParams replaces the tuning constants. Intended for interactive tools;
// takes effect at the next Step.
func (s *System) SetParams(p Params) {
	if p.InfluenceRadius <= 0 || p.PressureScale <= 0 {
		return
	}
	s.params = p
	cell := p.GridCellSize
	if cell <= 0 {
		cell = p.InfluenceRadius
	}
	s.grid.cellSize = cell
}

// SplitsLastStep returns the splits performed by the most recent Step.
// The slice is reused across steps; callers must not retain it.
func (s *System) SplitsLastStep() []SplitEvent {
	return s.lastSplits
}

// Bounds returns the axis-aligned bounding box of all particle positions.
// Returns zero vectors for an empty system.
func (s *System) Bounds() (min, max Vec2) {
	if len(s.positions) == 0 {
		return Vec2{}, Vec2{}
	}
	min = s.positions[0]
	max = s.positions[0]
	for _, p := range s.positions[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

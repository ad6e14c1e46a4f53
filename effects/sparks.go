// Package effects provides the visual feedback layer: short-lived spark
// particles emitted where the ring subdivides. Sparks live in their own ECS
// world, fully separate from the simulation core, and have no effect on it.
package effects

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
)

// Position is a spark's world-space position component.
type Position struct {
	X, Y float32
}

// Spark holds a spark's motion and lifetime state.
type Spark struct {
	VelX, VelY float32
	Life       int32 // Remaining ticks
	MaxLife    int32
	Size       float32
}

// System manages spark entities.
type System struct {
	world  *ecs.World
	mapper *ecs.Map2[Position, Spark]
	filter *ecs.Filter2[Position, Spark]
	rng    *rand.Rand

	maxSparks int
	count     int

	// Reused between updates to collect expired entities
	expired []ecs.Entity
}

// NewSystem creates a spark system capped at maxSparks live entities.
func NewSystem(rng *rand.Rand, maxSparks int) *System {
	if maxSparks < 1 {
		maxSparks = 500
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	world := ecs.NewWorld()
	return &System{
		world:     world,
		mapper:    ecs.NewMap2[Position, Spark](world),
		filter:    ecs.NewFilter2[Position, Spark](world),
		rng:       rng,
		maxSparks: maxSparks,
	}
}

// EmitBurst spawns a radial burst of 8-14 sparks at the given position.
// Emission is dropped silently once the spark cap is reached.
func (s *System) EmitBurst(x, y float32) {
	n := 8 + s.rng.Intn(7)
	for i := 0; i < n; i++ {
		if s.count >= s.maxSparks {
			return
		}
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 0.5 + s.rng.Float32()*1.5
		pos := Position{X: x, Y: y}
		spark := Spark{
			VelX: float32(math.Cos(angle)) * speed,
			VelY: float32(math.Sin(angle)) * speed,
			Life: 30 + s.rng.Int31n(30),
			Size: 1 + s.rng.Float32()*2,
		}
		spark.MaxLife = spark.Life
		s.mapper.NewEntity(&pos, &spark)
		s.count++
	}
}

// Update ages, moves and culls all sparks. Call once per tick.
func (s *System) Update() {
	s.expired = s.expired[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, spark := query.Get()

		spark.Life--
		if spark.Life <= 0 {
			s.expired = append(s.expired, query.Entity())
			continue
		}

		// Drag, then drift
		spark.VelX *= 0.92
		spark.VelY *= 0.92
		pos.X += spark.VelX
		pos.Y += spark.VelY
	}

	// Removal happens outside the query; the world is locked during iteration.
	for _, e := range s.expired {
		s.world.RemoveEntity(e)
		s.count--
	}
}

// Count returns the number of live sparks.
func (s *System) Count() int {
	return s.count
}

// Each calls fn for every live spark with its position, size, and remaining
// life fraction in (0, 1]. Rendering iterates without importing this
// package's ECS types.
func (s *System) Each(fn func(x, y, size, fade float32)) {
	query := s.filter.Query()
	for query.Next() {
		pos, spark := query.Get()
		fade := float32(spark.Life) / float32(spark.MaxLife)
		fn(pos.X, pos.Y, spark.Size, fade)
	}
}

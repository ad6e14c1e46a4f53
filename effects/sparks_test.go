package effects

import (
	"math/rand"
	"testing"
)

func TestEmitBurstSpawnsSparks(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(1)), 500)

	s.EmitBurst(10, 20)

	if s.Count() < 8 || s.Count() > 14 {
		t.Errorf("expected 8-14 sparks, got %d", s.Count())
	}

	seen := 0
	s.Each(func(x, y, size, fade float32) {
		seen++
		if x != 10 || y != 20 {
			t.Errorf("spark spawned at (%g, %g), want (10, 20)", x, y)
		}
		if fade != 1 {
			t.Errorf("fresh spark fade %g, want 1", fade)
		}
	})
	if seen != s.Count() {
		t.Errorf("Each visited %d sparks, Count reports %d", seen, s.Count())
	}
}

func TestUpdateMovesAndCulls(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(2)), 500)
	s.EmitBurst(0, 0)
	initial := s.Count()

	// One tick: everything still alive, positions drifted
	s.Update()
	if s.Count() != initial {
		t.Fatalf("sparks died after one tick: %d -> %d", initial, s.Count())
	}
	moved := 0
	s.Each(func(x, y, size, fade float32) {
		if x != 0 || y != 0 {
			moved++
		}
	})
	if moved == 0 {
		t.Error("no spark moved after update")
	}

	// Max lifetime is 59 ticks; all sparks must be culled by then
	for i := 0; i < 60; i++ {
		s.Update()
	}
	if s.Count() != 0 {
		t.Errorf("expected all sparks culled, %d remain", s.Count())
	}
}

func TestSparkCap(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(3)), 20)

	for i := 0; i < 10; i++ {
		s.EmitBurst(0, 0)
	}
	if s.Count() > 20 {
		t.Errorf("spark cap exceeded: %d > 20", s.Count())
	}
}

func TestCountTracksWorld(t *testing.T) {
	s := NewSystem(rand.New(rand.NewSource(4)), 500)
	s.EmitBurst(5, 5)

	for i := 0; i < 80; i++ {
		s.Update()
		live := 0
		s.Each(func(x, y, size, fade float32) { live++ })
		if live != s.Count() {
			t.Fatalf("tick %d: Count=%d but world holds %d", i, s.Count(), live)
		}
	}
}

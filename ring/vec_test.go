package ring

import (
	"math"
	"testing"
)

func TestNormalizedZeroSafe(t *testing.T) {
	cases := []struct {
		name string
		v    Vec2
	}{
		{"zero", Vec2{0, 0}},
		{"tiny", Vec2{1e-20, -1e-20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalized()
			if n != (Vec2{}) {
				t.Errorf("expected zero vector, got (%g, %g)", n.X, n.Y)
			}
			if !n.IsFinite() {
				t.Error("normalized vector is not finite")
			}
		})
	}
}

func TestNormalizedUnit(t *testing.T) {
	n := Vec2{3, 4}.Normalized()
	if math.Abs(float64(n.Mag()-1)) > 1e-6 {
		t.Errorf("expected unit magnitude, got %g", n.Mag())
	}
	if math.Abs(float64(n.X-0.6)) > 1e-6 || math.Abs(float64(n.Y-0.8)) > 1e-6 {
		t.Errorf("expected (0.6, 0.8), got (%g, %g)", n.X, n.Y)
	}
}

func TestLimit(t *testing.T) {
	v := Vec2{3, 4} // magnitude 5

	capped := v.Limit(2)
	if math.Abs(float64(capped.Mag()-2)) > 1e-6 {
		t.Errorf("expected magnitude 2, got %g", capped.Mag())
	}

	// Under the cap: unchanged
	if got := v.Limit(10); got != v {
		t.Errorf("expected unchanged vector, got (%g, %g)", got.X, got.Y)
	}

	// Zero cap means unlimited
	if got := v.Limit(0); got != v {
		t.Errorf("expected unchanged vector with zero cap, got (%g, %g)", got.X, got.Y)
	}

	// Zero vector never divides by zero
	z := Vec2{}.Limit(2)
	if !z.IsFinite() || z != (Vec2{}) {
		t.Errorf("expected finite zero vector, got (%g, %g)", z.X, z.Y)
	}
}

func TestAverageColor(t *testing.T) {
	a := Color{R: 1, G: 0, B: 0.5, A: 1}
	b := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	avg := averageColor(a, b)
	want := Color{R: 0.5, G: 0.5, B: 0.5, A: 0.75}
	if avg != want {
		t.Errorf("expected %+v, got %+v", want, avg)
	}
}

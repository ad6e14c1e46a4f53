package ring

import (
	"math"
	"testing"
)

func TestSineWobble(t *testing.T) {
	w := SineWobble(50, 6.2)

	if got := w(0); got != 0 {
		t.Errorf("expected zero wobble at phi=0, got %g", got)
	}

	// Peak of sin at phi*6.2 = pi/2
	phi := float32(math.Pi / 2 / 6.2)
	if got := w(phi); math.Abs(float64(got-50)) > 0.01 {
		t.Errorf("expected peak 50, got %g", got)
	}

	// Amplitude bound over a full revolution
	for i := 0; i < 256; i++ {
		phi := float32(i) * 2 * math.Pi / 256
		if v := w(phi); v < -50-1e-3 || v > 50+1e-3 {
			t.Errorf("wobble %g at phi=%g outside [-50, 50]", v, phi)
		}
	}
}

func TestNoiseWobbleDeterministicPerSeed(t *testing.T) {
	a := NoiseWobble(30, 9)
	b := NoiseWobble(30, 9)
	c := NoiseWobble(30, 10)

	same, diff := true, false
	for i := 0; i < 64; i++ {
		phi := float32(i) * 2 * math.Pi / 64
		if a(phi) != b(phi) {
			same = false
		}
		if a(phi) != c(phi) {
			diff = true
		}
	}
	if !same {
		t.Error("identical seeds produced different wobble")
	}
	if !diff {
		t.Error("different seeds produced identical wobble")
	}
}

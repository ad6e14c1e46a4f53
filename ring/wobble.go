package ring

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// WobbleFunc perturbs the seeding radius as a function of the angular
// position phi in [0, 2*pi). Purely cosmetic.
type WobbleFunc func(phi float32) float32

// SineWobble returns a periodic radial wobble: amplitude * sin(phi * frequency).
func SineWobble(amplitude, frequency float32) WobbleFunc {
	return func(phi float32) float32 {
		return amplitude * float32(math.Sin(float64(phi*frequency)))
	}
}

// NoiseWobble returns a Perlin-noise radial wobble. Unlike SineWobble the
// offsets are not periodic in phi, so the seam at phi=0 can show a small jump.
func NoiseWobble(amplitude float32, seed int64) WobbleFunc {
	p := perlin.NewPerlin(2, 2, 3, seed)
	return func(phi float32) float32 {
		return amplitude * float32(p.Noise1D(float64(phi)))
	}
}

// Package ring implements a self-organizing ring of particles joined in a
// doubly-linked cyclic topology. Particles are pulled toward their two ring
// neighbors and pushed away from nearby unrelated particles; edges subdivide
// locally so the ring grows over time.
package ring

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// MagSq returns the squared magnitude.
func (v Vec2) MagSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Mag returns the magnitude.
func (v Vec2) Mag() float32 {
	return float32(math.Sqrt(float64(v.MagSq())))
}

// epsilon below which a vector is treated as zero-length.
const epsilon = 1e-8

// Normalized returns the unit vector in v's direction, or the zero vector
// when v is (near) zero-length. Never produces NaN.
func (v Vec2) Normalized() Vec2 {
	m := v.Mag()
	if m < epsilon {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// Limit returns v with its magnitude capped at max. A max <= 0 means
// unlimited. Zero-length vectors pass through unchanged.
func (v Vec2) Limit(max float32) Vec2 {
	if max <= 0 {
		return v
	}
	m := v.Mag()
	if m <= max || m < epsilon {
		return v
	}
	s := max / m
	return Vec2{v.X * s, v.Y * s}
}

// IsFinite reports whether both components are finite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(float64(v.X)) && !math.IsInf(float64(v.X), 0) &&
		!math.IsNaN(float64(v.Y)) && !math.IsInf(float64(v.Y), 0)
}

// Color is an RGBA color with channels in [0, 1]. Display-only.
type Color struct {
	R, G, B, A float32
}

// averageColor returns the channel-wise mean of two colors.
func averageColor(a, b Color) Color {
	return Color{
		R: (a.R + b.R) / 2,
		G: (a.G + b.G) / 2,
		B: (a.B + b.B) / 2,
		A: (a.A + b.A) / 2,
	}
}

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

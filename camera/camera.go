// Package camera provides a 2D camera system for viewport control.
package camera

// Camera controls the viewport into the simulation plane.
// The plane is unbounded (the ring grows without limit), so the camera
// supports free pan/zoom plus fitting a bounding box into view.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the origin with 1:1 zoom.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		X:         0,
		Y:         0,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.02,
		MaxZoom:   8.0,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// FitBounds centers the camera on the given world-space box and picks the
// largest zoom (clamped to the camera's limits) that keeps the whole box
// plus margin on screen. Used to follow the ring as it grows.
func (c *Camera) FitBounds(minX, minY, maxX, maxY, margin float32) {
	c.X = (minX + maxX) / 2
	c.Y = (minY + maxY) / 2

	w := maxX - minX + 2*margin
	h := maxY - minY + 2*margin
	if w <= 0 || h <= 0 {
		return
	}

	zx := c.ViewportW / w
	zy := c.ViewportH / h
	z := zx
	if zy < z {
		z = zy
	}
	c.Zoom = clamp(z, c.MinZoom, c.MaxZoom)
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
// Returns (minX, minY, maxX, maxY) in world coordinates.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720)

	// Should start at the origin
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(0, 0)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720)
	cam.X = -300
	cam.Y = 150
	cam.SetZoom(2.5)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPan(t *testing.T) {
	cam := New(1280, 720)
	cam.SetZoom(2.0)

	cam.Pan(-200, 100)

	// Screen delta divides by zoom
	if cam.X != -100 || cam.Y != 50 {
		t.Errorf("expected (-100, 50), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720)

	cam.SetZoom(0.001) // Below min
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(100.0) // Above max
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestFitBoundsCenters(t *testing.T) {
	cam := New(1280, 720)

	cam.FitBounds(-100, -50, 300, 150, 0)

	if cam.X != 100 || cam.Y != 50 {
		t.Errorf("expected center (100, 50), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestFitBoundsContainsBox(t *testing.T) {
	cam := New(1280, 720)

	cam.FitBounds(-500, -500, 500, 500, 20)

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX > -500 || minY > -500 || maxX < 500 || maxY < 500 {
		t.Errorf("fit view (%f,%f)-(%f,%f) does not contain the box",
			minX, minY, maxX, maxY)
	}

	// Zoom is the largest that still fits: the limiting axis fills the
	// viewport exactly (box + margin).
	wantZoom := float32(720.0 / 1040.0)
	if math.Abs(float64(cam.Zoom-wantZoom)) > 1e-4 {
		t.Errorf("expected zoom %f, got %f", wantZoom, cam.Zoom)
	}
}

func TestFitBoundsRespectsZoomLimits(t *testing.T) {
	cam := New(1280, 720)

	// A tiny box must not zoom past MaxZoom
	cam.FitBounds(-1, -1, 1, 1, 0)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected MaxZoom %f, got %f", cam.MaxZoom, cam.Zoom)
	}

	// A huge box must not zoom below MinZoom
	cam.FitBounds(-1e6, -1e6, 1e6, 1e6, 0)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected MinZoom %f, got %f", cam.MinZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720)

	// Visible range: (-640, -360) to (640, 360)
	if !cam.IsVisible(0, 0, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(2000, 1300, 10) {
		t.Error("far point should not be visible")
	}
	// Point just outside the edge with a large radius still counts
	if !cam.IsVisible(-700, 0, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyV) {
		g.showVectors = !g.showVectors
	}

	if rl.IsKeyPressed(rl.KeyF) {
		g.followRing = !g.followRing
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.camera != nil {
		g.camera.Resize(w, h)
	}
}

// handleCameraInput processes camera pan/zoom controls. Any manual pan drops
// out of follow mode.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0)

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
		g.followRing = false
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
		g.followRing = false
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
		g.followRing = false
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
		g.followRing = false
	}

	// Mouse drag panning
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			g.camera.Pan(-delta.X, -delta.Y)
			g.followRing = false
		}
	}

	// Zoom controls: mouse wheel or +/- keys
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		zoomFactor := float32(1.0) + wheelMove*0.1
		g.camera.ZoomBy(zoomFactor)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
		g.followRing = true
	}
}

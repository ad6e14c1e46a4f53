// Package ui renders the on-screen status panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDState carries the values the panel displays each frame.
type HUDState struct {
	Tick           int32
	Particles      int
	Splits         int // splits performed by the last step
	Sparks         int
	StepsPerUpdate int
	Zoom           float32
	Paused         bool
	ShowVectors    bool
	FollowRing     bool
}

// HUD draws the status panel in the top-left corner.
type HUD struct {
	x, y  int32
	width int32
}

// NewHUD creates a HUD anchored at the given screen position.
func NewHUD(x, y int32) *HUD {
	return &HUD{x: x, y: y, width: 240}
}

// Draw renders the panel.
func (h *HUD) Draw(s HUDState) {
	lineHeight := int32(20)
	padding := int32(10)
	lines := int32(5)
	if s.Paused {
		lines++
	}
	panelH := lines*lineHeight + padding*2

	rl.DrawRectangle(h.x, h.y, h.width, panelH, rl.Color{R: 0, G: 0, B: 0, A: 170})
	rl.DrawRectangleLines(h.x, h.y, h.width, panelH, rl.Color{R: 90, G: 90, B: 110, A: 255})

	x := h.x + padding
	y := h.y + padding

	rl.DrawText(fmt.Sprintf("Tick: %d   FPS: %d", s.Tick, rl.GetFPS()), x, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Particles: %d   Sparks: %d", s.Particles, s.Sparks), x, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Speed: %dx  [</>]   Zoom: %.2f", s.StepsPerUpdate, s.Zoom), x, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("[V] Vectors: %s", onOff(s.ShowVectors)), x, y, 16, toggleColor(s.ShowVectors))
	y += lineHeight
	rl.DrawText(fmt.Sprintf("[F] Follow: %s", onOff(s.FollowRing)), x, y, 16, toggleColor(s.FollowRing))
	y += lineHeight
	if s.Paused {
		rl.DrawText("PAUSED", x, y, 16, rl.Yellow)
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func toggleColor(b bool) rl.Color {
	if b {
		return rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	return rl.Color{R: 150, G: 150, B: 150, A: 255}
}

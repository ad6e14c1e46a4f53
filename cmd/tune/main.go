// Ring tuning playground - live simulation with parameter sliders.
//
// Usage: go run ./cmd/tune
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/filament/camera"
	"github.com/pthm-cable/filament/ring"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	viewSize     = 700
	panelWidth   = windowWidth - viewSize - 30
)

const (
	seedCount  = 60
	seedRadius = 80
	maxTunePop = 4000
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Filament Tuner")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := ring.DefaultParams()
	seed := int64(42)

	sys := newRing(params, seed)
	cam := camera.New(viewSize, viewSize)

	paused := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}

		if !paused && sys.Count() < maxTunePop {
			sys.Step()
		}

		min, max := sys.Bounds()
		cam.FitBounds(min.X, min.Y, max.X, max.Y, 30)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 8, G: 8, B: 14, A: 255})

		drawRing(sys, cam)
		rl.DrawRectangleLines(0, 0, viewSize, viewSize, rl.DarkGray)

		rl.DrawText(fmt.Sprintf("Particles: %d   Splits: %d", sys.Count(), len(sys.SplitsLastStep())),
			10, viewSize+5, 16, rl.Gray)
		if paused {
			rl.DrawText("PAUSED [space]", 10, viewSize-25, 16, rl.Yellow)
		}

		// Control panel
		panelX := float32(viewSize + 20)
		panelY := float32(10)

		rl.DrawText("Ring Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		changed := false

		panelY, params.AttractionGain, changed = slider(panelX, panelY,
			"Attraction gain", "0", "1", params.AttractionGain, 0, 1, changed)
		panelY, params.PressureGain, changed = slider(panelX, panelY,
			"Pressure gain", "0", "1", params.PressureGain, 0, 1, changed)
		panelY, params.PressureLimit, changed = slider(panelX, panelY,
			"Pressure limit", "0.5", "8", params.PressureLimit, 0.5, 8, changed)
		panelY, params.InfluenceRadius, changed = slider(panelX, panelY,
			"Influence radius", "2", "60", params.InfluenceRadius, 2, 60, changed)

		var threshold float32
		panelY, threshold, changed = slider(panelX, panelY,
			"Split threshold", "2", "40", float32(params.NeighborThreshold), 2, 40, changed)
		params.NeighborThreshold = int(threshold)

		panelY, params.SplitProbability, changed = slider(panelX, panelY,
			"Split probability", "0", "0.5", params.SplitProbability, 0, 0.5, changed)

		if changed {
			sys.SetParams(params)
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reseed") {
			seed++
			sys = newRing(params, seed)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Params") {
			params = ring.DefaultParams()
			sys.SetParams(params)
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		yamlLines := []string{
			"sim:",
			fmt.Sprintf("  influence_radius: %.1f", params.InfluenceRadius),
			fmt.Sprintf("  attraction_gain: %.2f", params.AttractionGain),
			fmt.Sprintf("  pressure_gain: %.2f", params.PressureGain),
			fmt.Sprintf("  pressure_limit: %.2f", params.PressureLimit),
			"split:",
			fmt.Sprintf("  neighbor_threshold: %d", params.NeighborThreshold),
			fmt.Sprintf("  probability: %.3f", params.SplitProbability),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := fmt.Sprintf(`sim:
  influence_radius: %.1f
  attraction_gain: %.2f
  pressure_gain: %.2f
  pressure_limit: %.2f
split:
  neighbor_threshold: %d
  probability: %.3f`,
				params.InfluenceRadius, params.AttractionGain, params.PressureGain,
				params.PressureLimit, params.NeighborThreshold, params.SplitProbability)
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

// slider draws one labeled slider row and returns the advanced y position,
// the new value, and whether any slider changed so far.
func slider(x, y float32, label, minLabel, maxLabel string, value, min, max float32, changed bool) (float32, float32, bool) {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	newValue := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: float32(panelWidth - 80), Height: 20},
		minLabel, maxLabel,
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", value), int32(x+float32(panelWidth-70)), int32(y+2), 16, rl.RayWhite)
	if newValue != value {
		changed = true
	}
	y += 35
	return y, newValue, changed
}

func newRing(params ring.Params, seed int64) *ring.System {
	sys := ring.New(params, rand.New(rand.NewSource(seed)))
	if err := sys.Spawn(seedCount, seedRadius); err != nil {
		panic(err)
	}
	return sys
}

func drawRing(sys *ring.System, cam *camera.Camera) {
	radius := sys.Params().ParticleRadius
	n := sys.Count()
	for i := 0; i < n; i++ {
		next := sys.Links(i).Next
		a := sys.Position(i)
		b := sys.Position(next)
		ax, ay := cam.WorldToScreen(a.X, a.Y)
		bx, by := cam.WorldToScreen(b.X, b.Y)
		rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by},
			rl.Color{R: 120, G: 120, B: 150, A: 60})
	}
	for i := 0; i < n; i++ {
		pos := sys.Position(i)
		c := sys.Color(i)
		sx, sy := cam.WorldToScreen(pos.X, pos.Y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius*cam.Zoom, rl.Color{
			R: uint8(c.R * 255),
			G: uint8(c.G * 255),
			B: uint8(c.B * 255),
			A: uint8(c.A * 255),
		})
	}
}

package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/filament/ui"
)

// Background and edge colors. Edges are drawn dim so the particles read as the
// primary shape.
var (
	backgroundColor = rl.Color{R: 8, G: 8, B: 14, A: 255}
	edgeColor       = rl.Color{R: 120, G: 120, B: 150, A: 60}
	vectorPressure  = rl.Color{R: 230, G: 90, B: 90, A: 200}
	vectorAttract   = rl.Color{R: 90, G: 160, B: 230, A: 200}
)

// Draw renders the game.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	g.drawEdges()
	g.drawParticles()
	if g.showVectors {
		g.drawVectors()
	}
	g.drawSparks()
	g.drawHUD()

	rl.EndDrawing()
}

// drawEdges renders the ring's links as dim lines.
func (g *Game) drawEdges() {
	n := g.ring.Count()
	for i := 0; i < n; i++ {
		next := g.ring.Links(i).Next
		a := g.ring.Position(i)
		b := g.ring.Position(next)

		ax, ay := g.camera.WorldToScreen(a.X, a.Y)
		bx, by := g.camera.WorldToScreen(b.X, b.Y)
		rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, edgeColor)
	}
}

// drawParticles renders every visible particle as a filled circle.
func (g *Game) drawParticles() {
	radius := g.ring.Params().ParticleRadius
	n := g.ring.Count()
	for i := 0; i < n; i++ {
		pos := g.ring.Position(i)
		if !g.camera.IsVisible(pos.X, pos.Y, radius) {
			continue
		}

		c := g.ring.Color(i)
		sx, sy := g.camera.WorldToScreen(pos.X, pos.Y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius*g.camera.Zoom, rl.Color{
			R: uint8(c.R * 255),
			G: uint8(c.G * 255),
			B: uint8(c.B * 255),
			A: uint8(c.A * 255),
		})
	}
}

// drawVectors overlays the last step's pressure and attraction vectors.
func (g *Game) drawVectors() {
	// Scaled up so small per-step forces stay readable
	const scale = 20.0

	n := g.ring.Count()
	for i := 0; i < n; i++ {
		pos := g.ring.Position(i)
		if !g.camera.IsVisible(pos.X, pos.Y, 64) {
			continue
		}
		sx, sy := g.camera.WorldToScreen(pos.X, pos.Y)
		origin := rl.Vector2{X: sx, Y: sy}

		p := g.ring.Pressure(i)
		px, py := g.camera.WorldToScreen(pos.X+p.X*scale, pos.Y+p.Y*scale)
		rl.DrawLineV(origin, rl.Vector2{X: px, Y: py}, vectorPressure)

		a := g.ring.Attraction(i)
		ax, ay := g.camera.WorldToScreen(pos.X+a.X*scale, pos.Y+a.Y*scale)
		rl.DrawLineV(origin, rl.Vector2{X: ax, Y: ay}, vectorAttract)
	}
}

// drawSparks renders the split-burst sparks, faded by remaining life.
func (g *Game) drawSparks() {
	if g.sparks == nil {
		return
	}
	g.sparks.Each(func(x, y, size, fade float32) {
		if !g.camera.IsVisible(x, y, size) {
			return
		}
		sx, sy := g.camera.WorldToScreen(x, y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, size*g.camera.Zoom, rl.Color{
			R: 255,
			G: uint8(200 * fade),
			B: uint8(120 * fade),
			A: uint8(255 * fade),
		})
	})
}

// drawHUD renders the status panel.
func (g *Game) drawHUD() {
	if g.hud == nil {
		g.hud = ui.NewHUD(10, 10)
	}

	sparks := 0
	if g.sparks != nil {
		sparks = g.sparks.Count()
	}

	g.hud.Draw(ui.HUDState{
		Tick:           g.tick,
		Particles:      g.ring.Count(),
		Splits:         len(g.ring.SplitsLastStep()),
		Sparks:         sparks,
		StepsPerUpdate: g.stepsPerUpdate,
		Zoom:           g.camera.Zoom,
		Paused:         g.paused,
		ShowVectors:    g.showVectors,
		FollowRing:     g.followRing,
	})
}

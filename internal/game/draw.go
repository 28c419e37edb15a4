package game

import (
	"fmt"
	"scalegrab/internal/engine"
	"scalegrab/internal/grab"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam)
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: 2 * roomHalfWidth, Y: 2 * roomHalfWidth}, rl.NewColor(45, 45, 55, 255))
	rl.DrawGrid(2*roomHalfWidth, 1)
	for _, obj := range g.Scene.GameObjects {
		if d := engine.GetComponent[engine.Drawable](obj); d != nil {
			d.Draw()
		}
	}
	if g.DebugMode {
		g.drawSampleRays()
	}
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

// drawSampleRays shows the rays the occlusion solver casts this frame.
func (g *Game) drawSampleRays() {
	snap, ok := g.Grabber.Controller.Snapshot()
	if !ok {
		return
	}
	view := g.Camera.Pose()
	scale := g.Grabber.Controller.Scale()
	for _, d := range snap.SampleDirections {
		end := rl.Vector3Add(view.Position, rl.Vector3Scale(rl.Vector3RotateByQuaternion(d, view.Rotation), scale))
		rl.DrawLine3D(view.Position, end, rl.Yellow)
		rl.DrawSphere(end, 0.05, rl.Red)
	}
}

func (g *Game) DrawUI() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	// Crosshair
	cx, cy := int32(screenW/2), int32(screenH/2)
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.RayWhite)

	rl.DrawText("WASD move, Space jump, E/click grab, Tab HUD, F1 debug, F5 save config", 10, 10, 18, rl.LightGray)
	rl.DrawFPS(10, 34)

	gui.Label(rl.Rectangle{X: 10, Y: 60, Width: 400, Height: 20}, g.status)
	if _, held := g.Grabber.Controller.Attached(); held {
		gui.Label(rl.Rectangle{X: 10, Y: 82, Width: 400, Height: 20},
			fmt.Sprintf("Scale x%.2f", g.Grabber.Controller.Scale()))
	}

	if !g.HUDMode {
		return
	}
	cfg := g.Grabber.Controller.Config()
	panel := rl.Rectangle{X: screenW - 290, Y: 10, Width: 280, Height: 120}
	gui.Panel(panel, "Grab")

	growthBounds := rl.Rectangle{X: panel.X + 90, Y: panel.Y + 34, Width: 140, Height: 18}
	cfg.GrowthRate = gui.Slider(growthBounds, "Growth", fmt.Sprintf("%.1f", cfg.GrowthRate), cfg.GrowthRate, 0, 10)

	marginBounds := rl.Rectangle{X: panel.X + 90, Y: panel.Y + 60, Width: 140, Height: 18}
	cfg.Margin = gui.Slider(marginBounds, "Margin", fmt.Sprintf("%.2f", cfg.Margin), cfg.Margin, 0, 1)

	fixed := cfg.Policy == grab.PolicyFixedRatio
	fixedBounds := rl.Rectangle{X: panel.X + 10, Y: panel.Y + 90, Width: 18, Height: 18}
	if gui.CheckBox(fixedBounds, "Fixed ratio", fixed) {
		cfg.Policy = grab.PolicyFixedRatio
	} else {
		cfg.Policy = grab.PolicyOcclusion
	}

	if cfg != g.Grabber.Controller.Config() {
		if err := g.Grabber.Controller.Reconfigure(cfg); err != nil {
			g.log.WithError(err).Warn("rejected HUD config")
		}
	}
}

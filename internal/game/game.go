package game

import (
	"errors"
	"fmt"
	"scalegrab/internal/camera"
	"scalegrab/internal/components"
	"scalegrab/internal/engine"
	"scalegrab/internal/grab"
	"scalegrab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
)

type Game struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
	Camera  *camera.FPSCamera
	Player  *engine.GameObject
	Grabber *components.Grabber

	ConfigPath string
	DebugMode  bool
	HUDMode    bool // cursor released for the HUD, mouse look off

	status string
	log    *log.Entry
}

// New builds the room and the player. It does not touch the window, so it can
// run headless.
func New(cfg grab.Config, logger log.FieldLogger) *Game {
	if logger == nil {
		logger = log.StandardLogger()
	}
	g := &Game{
		Scene:      engine.NewScene("Room"),
		ConfigPath: grab.ConfigPath,
		status:     "Look at a crate and press E or click to pick it up",
		log:        logger.WithField("system", "game"),
	}
	g.Physics = physics.NewPhysicsWorld(g.Scene)
	g.Camera = camera.New(rl.Vector3{X: -8, Y: 5, Z: 0})

	buildRoom(g.Scene)
	g.createPlayer(cfg, logger)
	g.Scene.Start()
	return g
}

func (g *Game) createPlayer(cfg grab.Config, logger log.FieldLogger) {
	g.Player = engine.NewGameObject("Player")
	g.Player.Transform.Position = g.Camera.Position

	// Body spans from the feet up past the eye, so the eye is always inside it
	collider := components.NewBoxCollider(rl.Vector3{X: 0.6, Y: g.Camera.EyeHeight + 0.2, Z: 0.6})
	collider.Offset = rl.Vector3{Y: -g.Camera.EyeHeight/2 + 0.1}
	g.Player.AddComponent(collider)

	ctrl := grab.NewController(grab.Deps{
		Query:       g.Physics,
		Sink:        g.Physics,
		Geometry:    g.Physics,
		View:        g.Camera,
		Diagnostics: grab.NewLogDiagnostics(logger),
		Self:        grab.BodyID(g.Player.UID),
	}, cfg)
	// Held objects are placed by the controller, not pushed around by contacts
	ctrl.OnAttach.AddListener(func(id grab.BodyID) { g.Physics.SetCollisionEnabled(id, false) })
	ctrl.OnDetach.AddListener(func(id grab.BodyID) { g.Physics.SetCollisionEnabled(id, true) })

	g.Grabber = components.NewGrabber(ctrl)
	g.Player.AddComponent(g.Grabber)
	g.Scene.AddGameObject(g.Player)
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Scale Grab")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()
	g.log.Info("window open")

	// Mesh props need the GL context
	addModelProp(g.Scene, "Torus", rl.Vector3{X: -4, Y: 1, Z: 8}, rl.GenMeshTorus(0.4, 1.6, 16, 24), rl.Violet)
	addModelProp(g.Scene, "Knot", rl.Vector3{X: -6, Y: 1, Z: -8}, rl.GenMeshKnot(0.6, 1.2, 32, 12), rl.Maroon)
	defer g.unloadModels()

	for !rl.WindowShouldClose() {
		g.handleKeys()

		in := camera.ReadInput()
		if g.HUDMode {
			in.LookDelta = rl.Vector2{}
		}
		grabPressed := rl.IsKeyPressed(rl.KeyE) || (!g.HUDMode && rl.IsMouseButtonPressed(rl.MouseLeftButton))

		g.Update(in, grabPressed, rl.GetFrameTime())
		g.Draw()
	}
}

func (g *Game) unloadModels() {
	for _, obj := range g.Scene.GameObjects {
		if u := engine.GetComponent[engine.Unloader](obj); u != nil {
			u.Unload()
		}
	}
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.HUDMode = !g.HUDMode
		if g.HUDMode {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.SaveConfig()
	}
}

// Update advances one frame: player movement, the grab toggle, the physics
// step and then the held object's placement, in that order.
func (g *Game) Update(in camera.Input, grabPressed bool, deltaTime float32) {
	g.Camera.Update(in, deltaTime)
	g.resolvePlayer()
	g.Player.Transform.Position = g.Camera.Position

	if grabPressed {
		g.toggleGrab()
	}

	g.Physics.Update(deltaTime)
	g.Scene.Update(deltaTime)
}

func (g *Game) toggleGrab() {
	wasHolding := g.Grabber.Held() != nil
	err := g.Grabber.Toggle()
	switch {
	case err == nil && wasHolding:
		g.status = "Dropped"
	case err == nil:
		g.status = fmt.Sprintf("Holding %s", g.Grabber.Held().Name)
	case errors.Is(err, grab.ErrTargetImmutable):
		g.status = "That doesn't move"
	case errors.Is(err, grab.ErrNoTarget):
		g.status = "Nothing in reach"
	default:
		g.status = err.Error()
	}
}

// resolvePlayer keeps the player on the floor and out of static geometry.
func (g *Game) resolvePlayer() {
	feetY := g.Camera.Position.Y - g.Camera.EyeHeight
	if feetY <= g.Physics.FloorY {
		g.Camera.Position.Y = g.Physics.FloorY + g.Camera.EyeHeight
		g.Camera.Velocity.Y = 0
		g.Camera.Grounded = true
	} else {
		g.Camera.Grounded = false
	}

	g.Player.Transform.Position = g.Camera.Position
	collider := engine.GetComponent[*components.BoxCollider](g.Player)
	held := g.Grabber.Held()

	for _, obj := range g.Scene.GameObjects {
		if obj == g.Player || obj == held {
			continue
		}
		if engine.GetComponent[*components.Rigidbody](obj) != nil {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil {
			continue
		}

		player := physics.NewOBB(collider.GetCenter(), collider.GetWorldSize(), rl.QuaternionIdentity())
		pushOut := player.ResolveOBB(physics.NewOBB(box.GetCenter(), box.GetWorldSize(), box.GetRotation()))
		if pushOut == (rl.Vector3{}) {
			continue
		}
		g.Camera.Position = rl.Vector3Add(g.Camera.Position, pushOut)
		g.Player.Transform.Position = g.Camera.Position
		if pushOut.Y > 0 {
			g.Camera.Velocity.Y = 0
			g.Camera.Grounded = true
		}
	}
}

// SaveConfig writes the controller's current tuning back to ConfigPath.
func (g *Game) SaveConfig() {
	if err := g.Grabber.Controller.Config().Save(g.ConfigPath); err != nil {
		g.log.WithError(err).Error("could not save config")
		g.status = "Config save failed"
		return
	}
	g.log.WithField("path", g.ConfigPath).Info("config saved")
	g.status = "Config saved"
}

// Status is the message shown in the HUD.
func (g *Game) Status() string {
	return g.status
}

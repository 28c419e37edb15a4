package grab

import (
	"scalegrab/internal/engine"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Deps are the collaborators a Controller drives. Query, Sink, Geometry and
// View are required.
type Deps struct {
	Query       SpatialQuery
	Sink        TransformSink
	Geometry    GeometrySource
	View        Viewpoint
	Solver      ScaleSolver // defaults to Config.Solver(Query)
	Diagnostics Diagnostics // defaults to NopDiagnostics
	Self        BodyID      // the controller's own body, never picked up or hit
}

// Controller holds at most one object in front of a viewpoint.
//
// It is not safe for concurrent use. TryAttach, Toggle, Detach and OnTick are
// expected to run on the thread that owns the viewpoint and the physics world.
type Controller struct {
	query  SpatialQuery
	sink   TransformSink
	geom   GeometrySource
	view   Viewpoint
	solver ScaleSolver
	diag   Diagnostics
	self   BodyID
	cfg    Config

	attached bool
	held     BodyID
	snap     Snapshot
	exclude  []BodyID
	scale    float32

	OnAttach engine.Event[BodyID]
	OnDetach engine.Event[BodyID]
}

func NewController(deps Deps, cfg Config) *Controller {
	c := &Controller{
		query:  deps.Query,
		sink:   deps.Sink,
		geom:   deps.Geometry,
		view:   deps.View,
		solver: deps.Solver,
		diag:   deps.Diagnostics,
		self:   deps.Self,
		cfg:    cfg,
		snap:   idleSnapshot(),
		scale:  1,
	}
	if c.solver == nil {
		c.solver = cfg.Solver(deps.Query)
	}
	if c.diag == nil {
		c.diag = NopDiagnostics{}
	}
	return c
}

// Attached reports the held body, if any.
func (c *Controller) Attached() (BodyID, bool) {
	return c.held, c.attached
}

// Snapshot returns a copy of the attach-time state while an object is held.
func (c *Controller) Snapshot() (Snapshot, bool) {
	if !c.attached {
		return Snapshot{}, false
	}
	s := c.snap
	s.SampleDirections = slices.Clone(c.snap.SampleDirections)
	return s, true
}

// Scale returns the scale factor applied by the last placement update.
func (c *Controller) Scale() float32 {
	return c.scale
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// Reconfigure swaps in new tuning. The solver is rebuilt from cfg.Policy and
// the change takes effect on the next placement update.
func (c *Controller) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.solver = cfg.Solver(c.query)
	return nil
}

// Toggle attaches the object in view when idle, or releases the held one.
func (c *Controller) Toggle() error {
	if !c.attached {
		return c.TryAttach(c.cfg.MaxReach)
	}
	if err := c.update(c.view.Pose(), 0); err != nil {
		c.diag.TickFailed(c.held, err)
	}
	c.Detach()
	return nil
}

// TryAttach picks up the body straight ahead of the viewpoint within maxReach.
// On failure the target's flags are left as they were and the controller stays
// idle.
func (c *Controller) TryAttach(maxReach float32) error {
	if c.attached {
		return ErrAlreadyAttached
	}

	view := c.view.Pose()
	hit, ok := c.query.Cast(view.Position, view.Forward(), maxReach, c.self)
	if !ok || hit.StartedPenetrating || hit.Body == 0 || hit.Body == c.self || !c.sink.Valid(hit.Body) {
		c.diag.AttachFailed(hit.Body, ErrNoTarget)
		return ErrNoTarget
	}
	id := hit.Body
	holdDistance := rl.Vector3Distance(hit.Point, view.Position)
	if holdDistance <= 0 {
		c.diag.AttachFailed(id, ErrNoTarget)
		return ErrNoTarget
	}

	mobility := c.sink.Mobility(id)
	if mobility == Static {
		c.diag.AttachFailed(id, ErrTargetImmutable)
		return ErrTargetImmutable
	}
	simulating := c.sink.SimulatingPhysics(id)

	c.sink.SetSimulatingPhysics(id, false)
	c.sink.SetMobility(id, Movable)

	pose := c.sink.Pose(id)
	snap := Snapshot{
		HoldDistance:     holdDistance,
		ViewRotation:     view.Rotation,
		ObjectRotation:   pose.Rotation,
		GrabOffset:       rl.Vector3Subtract(hit.Point, pose.Position),
		BaseScale:        c.sink.Scale(id),
		SavedMobility:    mobility,
		SavedSimulating:  simulating,
		SampleDirections: Sample(c.geom, id, view.Position, rl.QuaternionInvert(view.Rotation)),
	}
	if len(snap.SampleDirections) == 0 {
		c.restore(id, mobility, simulating)
		c.diag.AttachFailed(id, ErrNoAttachableGeometry)
		return ErrNoAttachableGeometry
	}

	c.attached = true
	c.held = id
	c.snap = snap
	c.exclude = []BodyID{c.self, id}
	c.scale = 1

	if err := c.update(view, 0); err != nil {
		c.restore(id, mobility, simulating)
		c.clear()
		c.diag.AttachFailed(id, ErrNoAttachableGeometry)
		return ErrNoAttachableGeometry
	}

	c.diag.Attached(id, len(snap.SampleDirections), holdDistance)
	c.OnAttach.Invoke(id)
	return nil
}

// Detach releases the held object, restoring its mobility and simulation flag
// to their values before attach. It does nothing when idle.
func (c *Controller) Detach() {
	if !c.attached {
		return
	}
	id := c.held
	c.restore(id, c.snap.SavedMobility, c.snap.SavedSimulating)
	c.clear()
	c.diag.Detached(id, false)
	c.OnDetach.Invoke(id)
}

// OnTick refits the held object to the current viewpoint. A held object that
// has left the world is released without touching it.
func (c *Controller) OnTick(deltaTime float32) error {
	if !c.attached {
		return nil
	}
	if !c.sink.Valid(c.held) {
		id := c.held
		c.clear()
		c.diag.Detached(id, true)
		c.OnDetach.Invoke(id)
		return nil
	}
	if err := c.update(c.view.Pose(), deltaTime); err != nil {
		c.diag.TickFailed(c.held, err)
		return err
	}
	return nil
}

func (c *Controller) update(view Pose, deltaTime float32) error {
	target, err := c.solver.Solve(SolveRequest{
		Directions:   c.snap.SampleDirections,
		View:         view,
		FarDistance:  c.cfg.FarDistance,
		HoldDistance: c.snap.HoldDistance,
		Exclude:      c.exclude,
	})
	if err != nil {
		return err
	}

	scale := c.ease(target, deltaTime)
	p := Compose(c.snap, view, scale)
	c.sink.SetPose(c.held, p.Position, p.Rotation, p.Scale)
	c.scale = scale
	return nil
}

// ease moves the current scale toward target at GrowthRate, never past it.
func (c *Controller) ease(target, deltaTime float32) float32 {
	if c.cfg.GrowthRate <= 0 {
		return target
	}
	next := c.scale + (target-c.scale)*min(c.cfg.GrowthRate*deltaTime, 1)
	return min(next, target)
}

func (c *Controller) restore(id BodyID, mobility Mobility, simulating bool) {
	c.sink.SetMobility(id, mobility)
	c.sink.SetSimulatingPhysics(id, simulating)
}

func (c *Controller) clear() {
	c.attached = false
	c.held = 0
	c.snap = idleSnapshot()
	c.exclude = nil
	c.scale = 1
}

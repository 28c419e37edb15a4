package grab

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	targetID BodyID = 1
	selfID   BodyID = 50
	wallID   BodyID = 100
)

// solverFunc adapts a function to ScaleSolver.
type solverFunc func(SolveRequest) (float32, error)

func (f solverFunc) Solve(req SolveRequest) (float32, error) { return f(req) }

type scenario struct {
	world  *fakeWorld
	view   *fakeView
	diag   *recordingDiagnostics
	target *fakeBody
	ctrl   *Controller
}

// newScenario puts the viewpoint at the origin facing +X, inside its own body,
// with a movable sphere whose near surface is 5 units ahead and a wall at x=20.
func newScenario(t *testing.T, solver ScaleSolver) *scenario {
	t.Helper()
	w := newFakeWorld()
	target := w.addSphere(targetID, rl.Vector3{X: 5.5}, 0.5,
		rl.Vector3{Y: 0.5, Z: 0.5},
		rl.Vector3{Y: 0.5, Z: -0.5},
		rl.Vector3{Y: -0.5, Z: 0.5},
		rl.Vector3{Y: -0.5, Z: -0.5},
	)
	w.addSphere(selfID, rl.Vector3{}, 0.2)
	w.addWall(wallID, rl.Vector3{X: 1}, 20)

	cfg := DefaultConfig()
	cfg.Margin = 0
	view := newFakeView()
	diag := &recordingDiagnostics{}
	ctrl := NewController(Deps{
		Query:       w,
		Sink:        w,
		Geometry:    w,
		View:        view,
		Solver:      solver,
		Diagnostics: diag,
		Self:        selfID,
	}, cfg)
	return &scenario{world: w, view: view, diag: diag, target: target, ctrl: ctrl}
}

func fixedScale(scale float32) ScaleSolver {
	return solverFunc(func(SolveRequest) (float32, error) { return scale, nil })
}

func TestControllerAttachAndFit(t *testing.T) {
	s := newScenario(t, nil)

	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}

	id, ok := s.ctrl.Attached()
	if !ok || id != targetID {
		t.Fatalf("Attached() = (%d, %v), want (%d, true)", id, ok, targetID)
	}
	if s.target.simulating {
		t.Error("physics should be off while held")
	}
	if s.target.mobility != Movable {
		t.Errorf("mobility = %v, want movable", s.target.mobility)
	}

	snap, ok := s.ctrl.Snapshot()
	if !ok {
		t.Fatal("expected a snapshot")
	}
	if !approx(snap.HoldDistance, 5) {
		t.Errorf("hold distance = %v, want 5", snap.HoldDistance)
	}
	if !nearVec(snap.GrabOffset, rl.Vector3{X: -0.5}) {
		t.Errorf("grab offset = %v, want (-0.5,0,0)", snap.GrabOffset)
	}
	if len(snap.SampleDirections) != len(s.target.verts) {
		t.Errorf("got %d directions, want %d", len(snap.SampleDirections), len(s.target.verts))
	}

	// The initial placement pushes the sampled vertices out to the wall
	want := float32(20 / 5.5)
	if !approx(s.ctrl.Scale(), want) {
		t.Errorf("scale = %v, want %v", s.ctrl.Scale(), want)
	}
	if !nearVec(s.target.pose.Position, rl.Vector3{X: 20}) {
		t.Errorf("position = %v, want (20,0,0)", s.target.pose.Position)
	}
	if !nearVec(s.target.scale, rl.Vector3{X: want, Y: want, Z: want}) {
		t.Errorf("body scale = %v, want %v", s.target.scale, want)
	}
	if len(s.diag.attached) != 1 || s.diag.attached[0] != targetID {
		t.Errorf("diagnostics attached = %v", s.diag.attached)
	}
}

func TestControllerVerticesStayOnSampleRays(t *testing.T) {
	s := newScenario(t, nil)
	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}
	snap, _ := s.ctrl.Snapshot()

	s.view.pose = Pose{Position: rl.Vector3{Y: 1}, Rotation: yaw(30)}
	if err := s.ctrl.OnTick(1.0 / 60); err != nil {
		t.Fatalf("OnTick: %v", err)
	}

	scale := s.ctrl.Scale()
	verts := s.world.WorldVertices(targetID)
	for i, d := range snap.SampleDirections {
		want := rl.Vector3Add(s.view.pose.Position, rl.Vector3Scale(rl.Vector3RotateByQuaternion(d, s.view.pose.Rotation), scale))
		if !nearVec(verts[i], want) {
			t.Errorf("vertex %d = %v, want %v", i, verts[i], want)
		}
	}
}

func TestControllerRigidFollow(t *testing.T) {
	s := newScenario(t, fixedScale(1))
	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}
	if !nearVec(s.target.pose.Position, rl.Vector3{X: 5.5}) {
		t.Fatalf("position at attach = %v, want unchanged (5.5,0,0)", s.target.pose.Position)
	}

	s.view.pose.Rotation = yaw(90)
	if err := s.ctrl.OnTick(1.0 / 60); err != nil {
		t.Fatalf("OnTick: %v", err)
	}

	if !nearVec(s.target.pose.Position, rl.Vector3{Z: -5.5}) {
		t.Errorf("position = %v, want (0,0,-5.5)", s.target.pose.Position)
	}
	if !sameRotation(s.target.pose.Rotation, yaw(90)) {
		t.Errorf("rotation = %v, want %v", s.target.pose.Rotation, yaw(90))
	}
	if !nearVec(s.target.scale, rl.Vector3One()) {
		t.Errorf("scale = %v, want 1", s.target.scale)
	}
}

func TestControllerToggleRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		mobility   Mobility
		simulating bool
	}{
		{"movable simulating", Movable, true},
		{"movable resting", Movable, false},
		{"kinematic", Kinematic, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newScenario(t, nil)
			s.target.mobility = tc.mobility
			s.target.simulating = tc.simulating

			if err := s.ctrl.Toggle(); err != nil {
				t.Fatalf("first Toggle: %v", err)
			}
			if _, ok := s.ctrl.Attached(); !ok {
				t.Fatal("expected to be attached")
			}
			if err := s.ctrl.Toggle(); err != nil {
				t.Fatalf("second Toggle: %v", err)
			}
			if _, ok := s.ctrl.Attached(); ok {
				t.Fatal("expected to be idle")
			}
			if s.target.mobility != tc.mobility || s.target.simulating != tc.simulating {
				t.Errorf("flags = (%v, %v), want (%v, %v)",
					s.target.mobility, s.target.simulating, tc.mobility, tc.simulating)
			}
			if _, ok := s.ctrl.Snapshot(); ok {
				t.Error("snapshot should be cleared")
			}
			if s.ctrl.Scale() != 1 {
				t.Errorf("scale = %v, want 1 when idle", s.ctrl.Scale())
			}
		})
	}
}

func TestControllerToggleAppliesFinalPlacement(t *testing.T) {
	s := newScenario(t, fixedScale(1))
	if err := s.ctrl.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	s.view.pose.Rotation = yaw(90)
	if err := s.ctrl.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !nearVec(s.target.pose.Position, rl.Vector3{Z: -5.5}) {
		t.Errorf("dropped at %v, want (0,0,-5.5)", s.target.pose.Position)
	}
}

func TestControllerStaticTarget(t *testing.T) {
	s := newScenario(t, nil)
	s.target.mobility = Static

	err := s.ctrl.TryAttach(50)
	if !errors.Is(err, ErrTargetImmutable) {
		t.Fatalf("got %v, want ErrTargetImmutable", err)
	}
	if !errors.Is(err, ErrNoTarget) {
		t.Error("ErrTargetImmutable should also match ErrNoTarget")
	}
	if _, ok := s.ctrl.Attached(); ok {
		t.Error("should not be attached")
	}
	if s.target.mobility != Static || !s.target.simulating {
		t.Errorf("flags changed to (%v, %v)", s.target.mobility, s.target.simulating)
	}
	if s.world.setPoses[targetID] != 0 {
		t.Error("static target was moved")
	}
}

func TestControllerNoTarget(t *testing.T) {
	s := newScenario(t, nil)

	if err := s.ctrl.TryAttach(4); !errors.Is(err, ErrNoTarget) {
		t.Errorf("out of reach: got %v, want ErrNoTarget", err)
	}

	s.view.pose.Rotation = yaw(180)
	if err := s.ctrl.TryAttach(50); !errors.Is(err, ErrNoTarget) {
		t.Errorf("facing away: got %v, want ErrNoTarget", err)
	}
	if len(s.diag.attachFailed) != 2 {
		t.Errorf("got %d failure diagnostics, want 2", len(s.diag.attachFailed))
	}
}

func TestControllerWallIsImmutable(t *testing.T) {
	s := newScenario(t, nil)
	delete(s.world.bodies, targetID)

	if err := s.ctrl.TryAttach(50); !errors.Is(err, ErrTargetImmutable) {
		t.Errorf("got %v, want ErrTargetImmutable", err)
	}
}

func TestControllerIgnoresOwnBody(t *testing.T) {
	s := newScenario(t, nil)
	// Without Self the cast starts inside the controller's own body.
	s.ctrl.self = 0

	if err := s.ctrl.TryAttach(50); !errors.Is(err, ErrNoTarget) {
		t.Errorf("got %v, want ErrNoTarget", err)
	}
}

func TestControllerNoGeometry(t *testing.T) {
	s := newScenario(t, nil)
	s.target.verts = nil
	s.target.mobility = Kinematic
	s.target.simulating = true

	if err := s.ctrl.TryAttach(50); !errors.Is(err, ErrNoAttachableGeometry) {
		t.Fatalf("got %v, want ErrNoAttachableGeometry", err)
	}
	if _, ok := s.ctrl.Attached(); ok {
		t.Error("should not be attached")
	}
	if s.target.mobility != Kinematic || !s.target.simulating {
		t.Errorf("flags = (%v, %v), want restored (kinematic, true)", s.target.mobility, s.target.simulating)
	}
}

func TestControllerInitialPlacementFailure(t *testing.T) {
	s := newScenario(t, solverFunc(func(SolveRequest) (float32, error) {
		return 0, errors.New("boom")
	}))

	if err := s.ctrl.TryAttach(50); !errors.Is(err, ErrNoAttachableGeometry) {
		t.Fatalf("got %v, want ErrNoAttachableGeometry", err)
	}
	if _, ok := s.ctrl.Attached(); ok {
		t.Error("should not be attached")
	}
	if !s.target.simulating || s.target.mobility != Movable {
		t.Error("flags should be restored")
	}
}

func TestControllerAlreadyAttached(t *testing.T) {
	s := newScenario(t, nil)
	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}
	if err := s.ctrl.TryAttach(50); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("got %v, want ErrAlreadyAttached", err)
	}
	if id, ok := s.ctrl.Attached(); !ok || id != targetID {
		t.Error("original attachment should be kept")
	}
}

func TestControllerForcedDetach(t *testing.T) {
	s := newScenario(t, nil)
	var detached []BodyID
	s.ctrl.OnDetach.AddListener(func(id BodyID) { detached = append(detached, id) })

	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}
	delete(s.world.bodies, targetID)
	before := s.world.setPoses[targetID]

	if err := s.ctrl.OnTick(1.0 / 60); err != nil {
		t.Fatalf("OnTick: %v", err)
	}
	if _, ok := s.ctrl.Attached(); ok {
		t.Error("should have been released")
	}
	if s.world.setPoses[targetID] != before {
		t.Error("vanished body should not be touched")
	}
	if len(s.diag.forced) != 1 || !s.diag.forced[0] {
		t.Errorf("forced = %v, want [true]", s.diag.forced)
	}
	if len(detached) != 1 || detached[0] != targetID {
		t.Errorf("OnDetach got %v", detached)
	}
}

func TestControllerTickFailure(t *testing.T) {
	calls := 0
	s := newScenario(t, solverFunc(func(SolveRequest) (float32, error) {
		calls++
		if calls > 1 {
			return 0, ErrNoDirections
		}
		return 1, nil
	}))
	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}

	if err := s.ctrl.OnTick(1.0 / 60); !errors.Is(err, ErrNoDirections) {
		t.Errorf("got %v, want ErrNoDirections", err)
	}
	if _, ok := s.ctrl.Attached(); !ok {
		t.Error("a failed tick should not release the object")
	}
	if len(s.diag.tickFailed) != 1 {
		t.Errorf("got %d tick failures, want 1", len(s.diag.tickFailed))
	}
}

func TestControllerIdleTick(t *testing.T) {
	s := newScenario(t, nil)
	if err := s.ctrl.OnTick(1.0 / 60); err != nil {
		t.Errorf("idle tick: %v", err)
	}
	if s.world.casts != 0 {
		t.Errorf("idle tick cast %d rays", s.world.casts)
	}
	s.ctrl.Detach()
	if len(s.diag.detached) != 0 {
		t.Error("detach while idle should do nothing")
	}
}

func TestControllerGrowthRate(t *testing.T) {
	target := float32(2)
	s := newScenario(t, solverFunc(func(SolveRequest) (float32, error) { return target, nil }))
	s.ctrl.cfg.GrowthRate = 2

	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}
	if s.ctrl.Scale() != 1 {
		t.Errorf("scale at attach = %v, want 1", s.ctrl.Scale())
	}

	steps := []struct {
		dt   float32
		want float32
	}{
		{0.25, 1.5},
		{1, 2},
		{1, 2},
	}
	for _, step := range steps {
		if err := s.ctrl.OnTick(step.dt); err != nil {
			t.Fatalf("OnTick: %v", err)
		}
		if !approx(s.ctrl.Scale(), step.want) {
			t.Errorf("after dt=%v scale = %v, want %v", step.dt, s.ctrl.Scale(), step.want)
		}
	}

	// Shrinking is never eased, so the object never exceeds the free space
	target = 0.5
	if err := s.ctrl.OnTick(0.01); err != nil {
		t.Fatalf("OnTick: %v", err)
	}
	if s.ctrl.Scale() != 0.5 {
		t.Errorf("scale = %v, want 0.5", s.ctrl.Scale())
	}
}

func TestControllerEvents(t *testing.T) {
	s := newScenario(t, nil)
	var attached, detached []BodyID
	s.ctrl.OnAttach.AddListener(func(id BodyID) { attached = append(attached, id) })
	s.ctrl.OnDetach.AddListener(func(id BodyID) { detached = append(detached, id) })

	s.ctrl.Toggle()
	s.ctrl.Toggle()

	if len(attached) != 1 || attached[0] != targetID {
		t.Errorf("OnAttach got %v", attached)
	}
	if len(detached) != 1 || detached[0] != targetID {
		t.Errorf("OnDetach got %v", detached)
	}
	if len(s.diag.forced) != 1 || s.diag.forced[0] {
		t.Errorf("forced = %v, want [false]", s.diag.forced)
	}
}

func TestControllerSnapshotIsCopy(t *testing.T) {
	s := newScenario(t, nil)
	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}
	snap, _ := s.ctrl.Snapshot()
	snap.SampleDirections[0] = rl.Vector3{}

	again, _ := s.ctrl.Snapshot()
	if again.SampleDirections[0] == (rl.Vector3{}) {
		t.Error("snapshot directions are shared with the caller")
	}
}

func TestControllerDefaultsFromConfig(t *testing.T) {
	w := newFakeWorld()
	cfg := DefaultConfig()
	cfg.Policy = PolicyFixedRatio
	ctrl := NewController(Deps{Query: w, Sink: w, Geometry: w, View: newFakeView()}, cfg)

	if _, ok := ctrl.solver.(FixedRatioSolver); !ok {
		t.Errorf("solver = %T, want FixedRatioSolver", ctrl.solver)
	}
	if _, ok := ctrl.diag.(NopDiagnostics); !ok {
		t.Errorf("diagnostics = %T, want NopDiagnostics", ctrl.diag)
	}
	if ctrl.Config() != cfg {
		t.Error("config not kept")
	}
}

func TestControllerReconfigure(t *testing.T) {
	s := newScenario(t, nil)
	if err := s.ctrl.TryAttach(50); err != nil {
		t.Fatalf("TryAttach: %v", err)
	}

	cfg := s.ctrl.Config()
	cfg.Policy = PolicyFixedRatio
	cfg.TargetDistance = 10
	if err := s.ctrl.Reconfigure(cfg); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if err := s.ctrl.OnTick(1.0 / 60); err != nil {
		t.Fatalf("OnTick: %v", err)
	}
	if !approx(s.ctrl.Scale(), 2) {
		t.Errorf("scale = %v, want 2", s.ctrl.Scale())
	}

	bad := cfg
	bad.FarDistance = 0
	if err := s.ctrl.Reconfigure(bad); err == nil {
		t.Error("expected a validation error")
	}
	if s.ctrl.Config() != cfg {
		t.Error("a rejected config should not be applied")
	}
}

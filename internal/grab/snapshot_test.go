package grab

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestComposeAtAttach(t *testing.T) {
	s := idleSnapshot()
	s.HoldDistance = 5
	s.GrabOffset = rl.Vector3{X: -0.5, Y: 0.25}

	p := Compose(s, identityView(), 1)
	if !nearVec(p.Position, rl.Vector3{X: 5.5, Y: -0.25}) {
		t.Errorf("position = %v, want (5.5,-0.25,0)", p.Position)
	}
	if !sameRotation(p.Rotation, rl.QuaternionIdentity()) {
		t.Errorf("rotation = %v, want identity", p.Rotation)
	}
	if p.Scale != rl.Vector3One() {
		t.Errorf("scale = %v, want 1", p.Scale)
	}
}

func TestComposeScalesAboutViewpoint(t *testing.T) {
	s := idleSnapshot()
	s.HoldDistance = 5
	s.GrabOffset = rl.Vector3{X: -0.5}
	s.BaseScale = rl.Vector3{X: 1, Y: 2, Z: 3}

	view := Pose{Position: rl.Vector3{Y: 2}, Rotation: rl.QuaternionIdentity()}
	p := Compose(s, view, 2)
	if !nearVec(p.Position, rl.Vector3{X: 11, Y: 2}) {
		t.Errorf("position = %v, want (11,2,0)", p.Position)
	}
	if !nearVec(p.Scale, rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("scale = %v, want (2,4,6)", p.Scale)
	}
}

func TestComposeKeepsRelativeOrientation(t *testing.T) {
	s := idleSnapshot()
	s.HoldDistance = 4
	s.ViewRotation = yaw(45)
	s.ObjectRotation = yaw(10)

	p := Compose(s, Pose{Rotation: yaw(135)}, 1)
	if !sameRotation(p.Rotation, yaw(100)) {
		t.Errorf("rotation = %v, want yaw 100", p.Rotation)
	}
	// Grab point stays on the forward axis
	fwd := rl.Vector3RotateByQuaternion(Forward, yaw(135))
	if !nearVec(p.Position, rl.Vector3Scale(fwd, 4)) {
		t.Errorf("position = %v, want %v", p.Position, rl.Vector3Scale(fwd, 4))
	}
}

func TestIdleSnapshot(t *testing.T) {
	s := idleSnapshot()
	if s.HoldDistance != NoDistance {
		t.Errorf("hold distance = %v, want NoDistance", s.HoldDistance)
	}
	if len(s.SampleDirections) != 0 {
		t.Error("idle snapshot should have no directions")
	}
	if s.BaseScale != rl.Vector3One() {
		t.Errorf("base scale = %v, want 1", s.BaseScale)
	}
}

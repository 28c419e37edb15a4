package grab

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NoDistance marks a snapshot with no recorded hold distance.
const NoDistance = -math.MaxFloat32

// Snapshot is captured once when an object is attached and never changes while
// it is held.
type Snapshot struct {
	HoldDistance     float32 // viewpoint to grab point
	ViewRotation     rl.Quaternion
	ObjectRotation   rl.Quaternion
	GrabOffset       rl.Vector3 // grab point minus body centroid, world space at attach
	BaseScale        rl.Vector3
	SavedMobility    Mobility
	SavedSimulating  bool
	SampleDirections []rl.Vector3 // view-local, never empty while attached
}

func idleSnapshot() Snapshot {
	return Snapshot{
		HoldDistance:   NoDistance,
		ViewRotation:   rl.QuaternionIdentity(),
		ObjectRotation: rl.QuaternionIdentity(),
		BaseScale:      rl.Vector3One(),
		SavedMobility:  Movable,
	}
}

// relativeRotation is the rotation the view has gone through since attach.
func (s Snapshot) relativeRotation(view rl.Quaternion) rl.Quaternion {
	return rl.QuaternionMultiply(view, rl.QuaternionInvert(s.ViewRotation))
}

// Compose derives the held object's placement for the given view pose and
// scale factor. The grab point stays on the view's forward axis at
// HoldDistance*scale and the object keeps its attach-time orientation relative
// to the view.
func Compose(s Snapshot, view Pose, scale float32) Placement {
	rel := s.relativeRotation(view.Rotation)
	rotatedOffset := rl.Vector3RotateByQuaternion(s.GrabOffset, rel)

	position := rl.Vector3Add(view.Position, rl.Vector3Scale(view.Forward(), s.HoldDistance*scale))
	position = rl.Vector3Subtract(position, rl.Vector3Scale(rotatedOffset, scale))

	return Placement{
		Position: position,
		Rotation: rl.QuaternionNormalize(rl.QuaternionMultiply(rel, s.ObjectRotation)),
		Scale:    rl.Vector3Scale(s.BaseScale, scale),
	}
}

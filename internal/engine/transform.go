package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Transform is a scale, then a rotation, then a translation.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// IdentityTransform leaves points where they are.
func IdentityTransform() Transform {
	return Transform{
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3One(),
	}
}

// Apply maps a point from this transform's local space into its parent space.
func (t Transform) Apply(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(t.Position, rl.Vector3RotateByQuaternion(rl.Vector3Multiply(p, t.Scale), t.Rotation))
}

// Then returns the transform of a child whose local transform is child, under
// t. Scale is composed per axis, which ignores shear from non-uniform parents.
func (t Transform) Then(child Transform) Transform {
	return Transform{
		Position: t.Apply(child.Position),
		Rotation: rl.QuaternionMultiply(t.Rotation, child.Rotation),
		Scale:    rl.Vector3Multiply(t.Scale, child.Scale),
	}
}

package grab

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sample converts the body's surface vertices into directions from the viewpoint,
// expressed in the viewpoint's local frame. Rotating a direction by a later view
// rotation gives the world-space ray toward that vertex as if the object had been
// carried along with the view.
//
// A body without a surface yields an empty slice.
func Sample(src GeometrySource, id BodyID, viewPosition rl.Vector3, invViewRotation rl.Quaternion) []rl.Vector3 {
	verts := src.WorldVertices(id)
	if len(verts) == 0 {
		return nil
	}

	dirs := make([]rl.Vector3, len(verts))
	for i, v := range verts {
		dirs[i] = rl.Vector3RotateByQuaternion(rl.Vector3Subtract(v, viewPosition), invViewRotation)
	}
	return dirs
}

package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, full size and orientation
func NewOBB(center, size rl.Vector3, rotation rl.Quaternion) OBB {
	rotation = rl.QuaternionNormalize(rotation)
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes: [3]rl.Vector3{
			rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, rotation),
			rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, rotation),
			rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, rotation),
		},
	}
}

// ToLocal expresses a world-space point in the box's frame, relative to its center
func (o OBB) ToLocal(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// Contains reports whether p lies inside or on the box
func (o OBB) Contains(p rl.Vector3) bool {
	l := o.ToLocal(p)
	return absf(l.X) <= o.HalfSize.X && absf(l.Y) <= o.HalfSize.Y && absf(l.Z) <= o.HalfSize.Z
}

// Bounds returns the world-space AABB enclosing the box
func (o OBB) Bounds() AABB {
	var ext rl.Vector3
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		ext.X += absf(o.Axes[i].X) * h
		ext.Y += absf(o.Axes[i].Y) * h
		ext.Z += absf(o.Axes[i].Z) * h
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

// ResolveOBB returns the minimum translation vector to push 'a' out of 'b'
// using the separating axis test. Returns zero vector if no overlap.
func (a OBB) ResolveOBB(b OBB) rl.Vector3 {
	if !a.Bounds().Intersects(b.Bounds()) {
		return rl.Vector3Zero()
	}

	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math.MaxFloat32)
	var mtv rl.Vector3
	separated := false

	testAxis := func(axis rl.Vector3) {
		if separated || rl.Vector3Length(axis) < 0.0001 {
			return
		}
		axis = rl.Vector3Normalize(axis)

		dist := rl.Vector3DotProduct(t, axis)
		penetration := a.project(axis) + b.project(axis) - absf(dist)
		if penetration <= 0 {
			separated = true
			return
		}
		if penetration < minPenetration {
			minPenetration = penetration
			// Push in the direction away from B
			if dist < 0 {
				mtv = rl.Vector3Scale(axis, penetration)
			} else {
				mtv = rl.Vector3Scale(axis, -penetration)
			}
		}
	}

	for i := 0; i < 3; i++ {
		testAxis(a.Axes[i])
		testAxis(b.Axes[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			testAxis(rl.Vector3CrossProduct(a.Axes[i], b.Axes[j]))
		}
	}

	if separated {
		return rl.Vector3Zero()
	}
	return mtv
}

// project returns the half-length of the box projected onto axis
func (o OBB) project(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

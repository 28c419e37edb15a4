package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned box, used as a cheap reject before the exact tests.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromSphere creates the AABB enclosing a sphere.
func NewAABBFromSphere(center rl.Vector3, radius float32) AABB {
	return NewAABBFromCenter(center, rl.Vector3{X: 2 * radius, Y: 2 * radius, Z: 2 * radius})
}

// segmentBounds encloses the segment from a to b.
func segmentBounds(a, b rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Min(a, b), Max: rl.Vector3Max(a, b)}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

package physics

import (
	"math"
	"scalegrab/internal/components"
	"scalegrab/internal/engine"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
	// StartedInside is set when the ray origin lies inside the collider; the
	// hit is then reported at distance 0.
	StartedInside bool
}

// Raycast returns the closest collider hit along the ray within maxDistance.
// Objects whose UID is in exclude are skipped.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude ...uint64) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false
	reach := segmentBounds(origin, rl.Vector3Add(origin, rl.Vector3Scale(direction, maxDistance)))

	keep := func(obj *engine.GameObject, hitInfo RaycastHit, ok bool) {
		if ok && hitInfo.Distance <= closestHit.Distance {
			closestHit = hitInfo
			closestHit.GameObject = obj
			hit = true
		}
	}

	for _, obj := range p.Scene.GameObjects {
		if !obj.Active || slices.Contains(exclude, obj.UID) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			obb := NewOBB(box.GetCenter(), box.GetWorldSize(), box.GetRotation())
			if obb.Bounds().Intersects(reach) {
				hitInfo, ok := raycastOBB(origin, direction, obb, maxDistance)
				keep(obj, hitInfo, ok)
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			center, radius := sphere.GetCenter(), sphere.GetWorldRadius()
			if NewAABBFromSphere(center, radius).Intersects(reach) {
				hitInfo, ok := raycastSphere(origin, direction, center, radius, maxDistance)
				keep(obj, hitInfo, ok)
			}
		}
	}

	return closestHit, hit
}

// raycastOBB runs the slab test in the box's local frame. direction must be normalized.
func raycastOBB(origin, direction rl.Vector3, box OBB, maxDistance float32) (RaycastHit, bool) {
	if box.Contains(origin) {
		return RaycastHit{Point: origin, Normal: rl.Vector3Negate(direction), StartedInside: true}, true
	}

	o := box.ToLocal(origin)
	d := rl.Vector3{
		X: rl.Vector3DotProduct(direction, box.Axes[0]),
		Y: rl.Vector3DotProduct(direction, box.Axes[1]),
		Z: rl.Vector3DotProduct(direction, box.Axes[2]),
	}
	oc := [3]float32{o.X, o.Y, o.Z}
	dc := [3]float32{d.X, d.Y, d.Z}
	hc := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	entryAxis := -1
	var entrySign float32

	for i := 0; i < 3; i++ {
		if dc[i] == 0 {
			if oc[i] < -hc[i] || oc[i] > hc[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-hc[i] - oc[i]) / dc[i]
		t2 := (hc[i] - oc[i]) / dc[i]
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = i
			entrySign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if entryAxis < 0 || tmin < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin)),
		Normal:   rl.Vector3Scale(box.Axes[entryAxis], entrySign),
		Distance: tmin,
	}, true
}

// raycastSphere intersects a ray with a sphere. direction must be normalized.
func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	if c <= 0 {
		return RaycastHit{Point: origin, Normal: rl.Vector3Negate(direction), StartedInside: true}, true
	}

	b := rl.Vector3DotProduct(oc, direction)
	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := -b - float32(math.Sqrt(float64(discriminant)))
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

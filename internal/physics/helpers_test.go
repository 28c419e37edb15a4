package physics

import (
	"math"
	"scalegrab/internal/components"
	"scalegrab/internal/engine"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func nearVec(a, b rl.Vector3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

// addBox places a box collider of the given size at pos. Dynamic boxes get a
// Rigidbody, static ones do not.
func addBox(t *testing.T, scene *engine.Scene, name string, pos, size rl.Vector3, dynamic bool) *engine.GameObject {
	t.Helper()
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.AddComponent(components.NewBoxCollider(size))
	obj.AddComponent(components.NewBoxMeshFilter(size))
	if dynamic {
		obj.AddComponent(components.NewRigidbody())
	}
	scene.AddGameObject(obj)
	return obj
}

func addSphere(t *testing.T, scene *engine.Scene, name string, pos rl.Vector3, radius float32) *engine.GameObject {
	t.Helper()
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.AddComponent(components.NewSphereCollider(radius))
	obj.AddComponent(components.NewRigidbody())
	scene.AddGameObject(obj)
	return obj
}

package game

import (
	"fmt"
	"scalegrab/internal/components"
	"scalegrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	roomHalfWidth = 20
	roomHeight    = 12
	wallThickness = 1
)

// buildRoom adds a closed box of static walls with a few loose props inside.
func buildRoom(scene *engine.Scene) {
	wallColor := rl.NewColor(70, 70, 90, 255)
	w := float32(roomHalfWidth)
	h := float32(roomHeight)
	t := float32(wallThickness)

	addStatic(scene, "WallNorth", rl.Vector3{X: w + t/2, Y: h / 2}, rl.Vector3{X: t, Y: h, Z: 2*w + 2*t}, wallColor)
	addStatic(scene, "WallSouth", rl.Vector3{X: -w - t/2, Y: h / 2}, rl.Vector3{X: t, Y: h, Z: 2*w + 2*t}, wallColor)
	addStatic(scene, "WallEast", rl.Vector3{Y: h / 2, Z: w + t/2}, rl.Vector3{X: 2 * w, Y: h, Z: t}, wallColor)
	addStatic(scene, "WallWest", rl.Vector3{Y: h / 2, Z: -w - t/2}, rl.Vector3{X: 2 * w, Y: h, Z: t}, wallColor)
	addStatic(scene, "Ceiling", rl.Vector3{Y: h + t/2}, rl.Vector3{X: 2 * w, Y: t, Z: 2 * w}, wallColor)

	// A pillar and a pedestal to fit things against
	addStatic(scene, "Pillar", rl.Vector3{X: 8, Y: h / 2, Z: -8}, rl.Vector3{X: 2, Y: h, Z: 2}, rl.Gray)
	addStatic(scene, "Pedestal", rl.Vector3{X: 4, Y: 1, Z: 6}, rl.Vector3{X: 3, Y: 2, Z: 3}, rl.Gray)

	colors := []rl.Color{rl.Orange, rl.SkyBlue, rl.Lime, rl.Gold, rl.Pink}
	for i := 0; i < 5; i++ {
		size := float32(0.6 + 0.2*float32(i))
		addCrate(scene, fmt.Sprintf("Crate_%d", i),
			rl.Vector3{X: float32(i*2 - 2), Y: size / 2, Z: float32(i%2*4 - 2)},
			rl.Vector3{X: size, Y: size, Z: size}, colors[i])
	}
	addCrate(scene, "Plank", rl.Vector3{X: 4, Y: 2.25, Z: 6}, rl.Vector3{X: 2, Y: 0.5, Z: 0.5}, rl.Brown)
	addBall(scene, "Ball", rl.Vector3{X: 2, Y: 0.5, Z: -6}, 0.5, rl.Red)
}

func addStatic(scene *engine.Scene, name string, pos, size rl.Vector3, color rl.Color) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Tags = append(obj.Tags, "static")
	obj.Transform.Position = pos
	obj.AddComponent(components.NewBoxCollider(size))
	obj.AddComponent(components.NewMeshRenderer(components.MeshCube, color, size))
	scene.AddGameObject(obj)
	return obj
}

func addCrate(scene *engine.Scene, name string, pos, size rl.Vector3, color rl.Color) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Tags = append(obj.Tags, "prop")
	obj.Transform.Position = pos
	obj.AddComponent(components.NewBoxCollider(size))
	obj.AddComponent(components.NewBoxMeshFilter(size))
	obj.AddComponent(components.NewMeshRenderer(components.MeshCube, color, size))
	obj.AddComponent(components.NewRigidbody())
	scene.AddGameObject(obj)
	return obj
}

func addBall(scene *engine.Scene, name string, pos rl.Vector3, radius float32, color rl.Color) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Tags = append(obj.Tags, "prop")
	obj.Transform.Position = pos
	obj.AddComponent(components.NewSphereCollider(radius))
	obj.AddComponent(components.NewSphereMeshFilter(radius, 8, 12))
	obj.AddComponent(components.NewMeshRenderer(components.MeshSphere, color, rl.Vector3{X: radius}))
	rb := components.NewRigidbody()
	rb.Bounciness = 0.6
	obj.AddComponent(rb)
	scene.AddGameObject(obj)
	return obj
}

// addModelProp turns a generated mesh into a grabbable prop whose surface
// samples come straight from the mesh vertices. It needs a GL context.
func addModelProp(scene *engine.Scene, name string, pos rl.Vector3, mesh rl.Mesh, color rl.Color) *engine.GameObject {
	model := rl.LoadModelFromMesh(mesh)
	bounds := rl.GetModelBoundingBox(model)

	obj := engine.NewGameObject(name)
	obj.Tags = append(obj.Tags, "prop")
	obj.Transform.Position = pos
	collider := components.NewBoxCollider(rl.Vector3Subtract(bounds.Max, bounds.Min))
	collider.Offset = rl.Vector3Scale(rl.Vector3Add(bounds.Max, bounds.Min), 0.5)
	obj.AddComponent(collider)
	obj.AddComponent(components.NewMeshFilterFromModel(model))
	obj.AddComponent(components.NewModelRenderer(model, color))
	obj.AddComponent(components.NewRigidbody())
	scene.AddGameObject(obj)
	obj.Start()
	return obj
}

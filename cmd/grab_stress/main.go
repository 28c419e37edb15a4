// Stress test timing one grab placement update against scene size and the
// number of sampled vertices.
package main

import (
	"fmt"
	"math/rand"
	"scalegrab/internal/components"
	"scalegrab/internal/engine"
	"scalegrab/internal/grab"
	"scalegrab/internal/physics"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	sceneSizes := []int{10, 100, 500, 1000}
	sampleRings := []int{4, 8, 16, 32}

	for _, objects := range sceneSizes {
		for _, rings := range sampleRings {
			testPlacement(objects, rings)
		}
	}
}

func testPlacement(objects, rings int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	scene := engine.NewScene("stress")
	world := physics.NewPhysicsWorld(scene)

	// Clutter in a shell around the viewpoint, never on top of it
	for i := 0; i < objects; i++ {
		obj := engine.NewGameObject(fmt.Sprintf("Box_%d", i))
		dir := rl.Vector3Normalize(rl.Vector3{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
			Z: rng.Float32()*2 - 1,
		})
		obj.Transform.Position = rl.Vector3Scale(dir, 15+rng.Float32()*30)
		size := 0.5 + rng.Float32()*3
		obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
		scene.AddGameObject(obj)
	}

	target := engine.NewGameObject("Target")
	target.Transform.Position = rl.Vector3{X: 4}
	target.AddComponent(components.NewSphereCollider(1))
	mesh := components.NewSphereMeshFilter(1, rings, rings*2)
	target.AddComponent(mesh)
	target.AddComponent(components.NewRigidbody())
	scene.AddGameObject(target)

	ctrl := grab.NewController(grab.Deps{
		Query:    world,
		Sink:     world,
		Geometry: world,
		View: grab.ViewpointFunc(func() grab.Pose {
			return grab.Pose{Rotation: rl.QuaternionIdentity()}
		}),
	}, grab.DefaultConfig())
	if err := ctrl.TryAttach(10); err != nil {
		fmt.Printf("%5d objects, %4d samples: ATTACH ERROR: %v\n", objects, len(mesh.Vertices()), err)
		return
	}

	const iterations = 20
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := ctrl.OnTick(1.0 / 60); err != nil {
			fmt.Printf("%5d objects, %4d samples: TICK ERROR: %v\n", objects, len(mesh.Vertices()), err)
			return
		}
	}
	perTick := time.Since(start) / iterations

	fmt.Printf("%5d objects, %4d samples: %8.3f ms/tick, scale %.2f\n",
		objects, len(mesh.Vertices()), float64(perTick.Microseconds())/1000.0, ctrl.Scale())
}

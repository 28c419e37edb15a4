package physics

import (
	"scalegrab/internal/components"
	"scalegrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsWorld simulates the rigidbodies of a scene and answers ray casts
// against its colliders. Objects without a Rigidbody are static.
type PhysicsWorld struct {
	Scene   *engine.Scene
	Gravity rl.Vector3
	FloorY  float32
}

func NewPhysicsWorld(scene *engine.Scene) *PhysicsWorld {
	return &PhysicsWorld{
		Scene:   scene,
		Gravity: rl.Vector3{X: 0, Y: -20.0, Z: 0},
		FloorY:  0,
	}
}

// Update advances the simulation by deltaTime seconds.
func (p *PhysicsWorld) Update(deltaTime float32) {
	for _, obj := range p.Scene.GameObjects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !obj.Active || !rb.Simulated() {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))

		if rb.CollisionEnabled {
			p.resolveFloor(obj, rb)
			for _, other := range p.Scene.GameObjects {
				if other != obj && other.Active {
					p.resolveCollision(obj, rb, other)
				}
			}
		}

		rb.TrySleep(deltaTime)
	}
}

// shape returns the collider volume of obj as an OBB. Spheres are treated as
// their bounding cube for contact resolution.
func shape(obj *engine.GameObject) (OBB, bool) {
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		return NewOBB(box.GetCenter(), box.GetWorldSize(), box.GetRotation()), true
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		d := 2 * sphere.GetWorldRadius()
		return NewOBB(sphere.GetCenter(), rl.Vector3{X: d, Y: d, Z: d}, rl.QuaternionIdentity()), true
	}
	return OBB{}, false
}

func (p *PhysicsWorld) resolveFloor(obj *engine.GameObject, rb *components.Rigidbody) {
	box, ok := shape(obj)
	if !ok {
		return
	}
	bottom := box.Bounds().Min.Y
	if bottom >= p.FloorY {
		return
	}
	obj.Transform.Position.Y += p.FloorY - bottom
	if rb.Velocity.Y < 0 {
		rb.Velocity.Y = -rb.Velocity.Y * rb.Bounciness
	}
	rb.Velocity.X *= 1 - rb.Friction
	rb.Velocity.Z *= 1 - rb.Friction
}

// resolveCollision pushes obj out of other. Only obj moves; other is treated
// as immovable for this pair.
func (p *PhysicsWorld) resolveCollision(obj *engine.GameObject, rb *components.Rigidbody, other *engine.GameObject) {
	if orb := engine.GetComponent[*components.Rigidbody](other); orb != nil && !orb.CollisionEnabled {
		return
	}
	a, ok := shape(obj)
	if !ok {
		return
	}
	b, ok := shape(other)
	if !ok {
		return
	}

	mtv := a.ResolveOBB(b)
	length := rl.Vector3Length(mtv)
	if length == 0 {
		return
	}
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, mtv)

	// Remove the velocity component pointing into the contact
	n := rl.Vector3Scale(mtv, 1/length)
	if vn := rl.Vector3DotProduct(rb.Velocity, n); vn < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(n, (1+rb.Bounciness)*vn))
	}
	if orb := engine.GetComponent[*components.Rigidbody](other); orb != nil && orb.IsSleeping {
		orb.Wake()
	}
}

package physics

import (
	"scalegrab/internal/components"
	"scalegrab/internal/engine"
	"scalegrab/internal/grab"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsWorld is the grab controller's view of the world.
var (
	_ grab.SpatialQuery   = (*PhysicsWorld)(nil)
	_ grab.TransformSink  = (*PhysicsWorld)(nil)
	_ grab.GeometrySource = (*PhysicsWorld)(nil)
)

func (p *PhysicsWorld) lookup(id grab.BodyID) *engine.GameObject {
	return engine.GameObjectRef{UID: uint64(id)}.Get(p.Scene)
}

// Cast implements grab.SpatialQuery.
func (p *PhysicsWorld) Cast(origin, direction rl.Vector3, maxDistance float32, exclude ...grab.BodyID) (grab.Hit, bool) {
	uids := make([]uint64, len(exclude))
	for i, id := range exclude {
		uids[i] = uint64(id)
	}
	hit, ok := p.Raycast(origin, direction, maxDistance, uids...)
	if !ok {
		return grab.Hit{}, false
	}
	return grab.Hit{
		Body:               grab.BodyID(hit.GameObject.UID),
		Distance:           hit.Distance,
		Point:              hit.Point,
		Normal:             hit.Normal,
		StartedPenetrating: hit.StartedInside,
	}, true
}

// Valid reports whether the body is still in the scene.
func (p *PhysicsWorld) Valid(id grab.BodyID) bool {
	return p.lookup(id) != nil
}

func (p *PhysicsWorld) Pose(id grab.BodyID) grab.Pose {
	obj := p.lookup(id)
	if obj == nil {
		return grab.Pose{Rotation: rl.QuaternionIdentity()}
	}
	return grab.Pose{Position: obj.WorldPosition(), Rotation: obj.WorldRotation()}
}

func (p *PhysicsWorld) Scale(id grab.BodyID) rl.Vector3 {
	obj := p.lookup(id)
	if obj == nil {
		return rl.Vector3One()
	}
	return obj.WorldScale()
}

// SetPose places the body in world space. A body with a parent is detached
// from it first so the pose is not compounded with the parent's.
func (p *PhysicsWorld) SetPose(id grab.BodyID, position rl.Vector3, rotation rl.Quaternion, scale rl.Vector3) {
	obj := p.lookup(id)
	if obj == nil {
		return
	}
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	obj.Transform.Position = position
	obj.Transform.Rotation = rotation
	obj.Transform.Scale = scale
}

func (p *PhysicsWorld) SimulatingPhysics(id grab.BodyID) bool {
	if rb := p.rigidbody(id); rb != nil {
		return rb.SimulatePhysics
	}
	return false
}

// SetSimulatingPhysics toggles simulation. Turning it on wakes the body with
// zero velocity, since the body was moved by teleporting.
func (p *PhysicsWorld) SetSimulatingPhysics(id grab.BodyID, simulate bool) {
	rb := p.rigidbody(id)
	if rb == nil {
		return
	}
	if simulate && !rb.SimulatePhysics {
		rb.Velocity = rl.Vector3{}
		rb.Wake()
	}
	rb.SimulatePhysics = simulate
}

// Mobility reports Static for bodies without a Rigidbody.
func (p *PhysicsWorld) Mobility(id grab.BodyID) grab.Mobility {
	if rb := p.rigidbody(id); rb != nil {
		return rb.Mobility
	}
	return grab.Static
}

func (p *PhysicsWorld) SetMobility(id grab.BodyID, m grab.Mobility) {
	if rb := p.rigidbody(id); rb != nil {
		rb.Mobility = m
	}
}

// SetCollisionEnabled includes or removes the body from contact resolution.
func (p *PhysicsWorld) SetCollisionEnabled(id grab.BodyID, enabled bool) {
	if rb := p.rigidbody(id); rb != nil {
		rb.CollisionEnabled = enabled
	}
}

// WorldVertices implements grab.GeometrySource from the body's MeshFilter.
func (p *PhysicsWorld) WorldVertices(id grab.BodyID) []rl.Vector3 {
	obj := p.lookup(id)
	if obj == nil {
		return nil
	}
	mf := engine.GetComponent[*components.MeshFilter](obj)
	if mf == nil {
		return nil
	}
	return mf.WorldVertices()
}

func (p *PhysicsWorld) rigidbody(id grab.BodyID) *components.Rigidbody {
	obj := p.lookup(id)
	if obj == nil {
		return nil
	}
	return engine.GetComponent[*components.Rigidbody](obj)
}

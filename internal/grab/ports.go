package grab

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpatialQuery finds the nearest blocking surface along a ray.
type SpatialQuery interface {
	// Cast returns the closest hit within maxDistance, ignoring bodies in exclude.
	// The direction does not need to be normalized.
	Cast(origin, direction rl.Vector3, maxDistance float32, exclude ...BodyID) (Hit, bool)
}

// TransformSink reads and drives the transform and physics flags of world bodies.
type TransformSink interface {
	Valid(id BodyID) bool
	Pose(id BodyID) Pose
	Scale(id BodyID) rl.Vector3
	SetPose(id BodyID, position rl.Vector3, rotation rl.Quaternion, scale rl.Vector3)
	SimulatingPhysics(id BodyID) bool
	SetSimulatingPhysics(id BodyID, simulate bool)
	Mobility(id BodyID) Mobility
	SetMobility(id BodyID, m Mobility)
}

// GeometrySource exposes the rendered surface of a body.
type GeometrySource interface {
	// WorldVertices returns the vertices of the body's highest-detail surface in
	// world space, or nil when the body has no surface.
	WorldVertices(id BodyID) []rl.Vector3
}

// Viewpoint reports the current eye pose of the controller.
type Viewpoint interface {
	Pose() Pose
}

// ViewpointFunc adapts a function to the Viewpoint interface.
type ViewpointFunc func() Pose

func (f ViewpointFunc) Pose() Pose { return f() }

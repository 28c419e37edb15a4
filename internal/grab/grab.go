// Package grab lets a first-person viewpoint pick up a rigid body, hold it at a
// fixed offset and orientation relative to the view, and rescale it every tick so
// it fills the free space in front of the viewpoint without passing through walls.
//
// The package does not simulate physics. It talks to the world through three
// collaborators: a SpatialQuery for ray casts, a TransformSink that owns body
// poses and physics flags, and a GeometrySource that exposes surface vertices.
package grab

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BodyID identifies a rigid body owned by the world. Zero means no body.
type BodyID uint64

// Mobility governs whether a body's transform may be driven externally.
type Mobility int

const (
	Static Mobility = iota
	Kinematic
	Movable
)

func (m Mobility) String() string {
	switch m {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Movable:
		return "movable"
	}
	return "unknown"
}

// Forward is the viewpoint's local forward axis.
var Forward = rl.Vector3{X: 1, Y: 0, Z: 0}

// Up is the viewpoint's local up axis.
var Up = rl.Vector3{X: 0, Y: 1, Z: 0}

// Pose is a world-space position and orientation.
type Pose struct {
	Position rl.Vector3
	Rotation rl.Quaternion
}

// Forward returns the pose's forward axis in world space.
func (p Pose) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(Forward, p.Rotation)
}

// Hit is the nearest blocking surface found by a ray cast.
type Hit struct {
	Body               BodyID
	Distance           float32
	Point              rl.Vector3
	Normal             rl.Vector3
	StartedPenetrating bool // ray origin was already inside the surface
}

// Placement is the full transform applied to a held body in one update.
type Placement struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

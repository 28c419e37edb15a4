package camera

import (
	"math"
	"scalegrab/internal/grab"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSCamera is the player's eye. It doubles as the grab viewpoint.
type FPSCamera struct {
	Position  rl.Vector3
	Velocity  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32

	Gravity      float32
	JumpStrength float32
	Grounded     bool
	EyeHeight    float32 // eye above feet
}

const maxPitch = 89

// Input reports the player's intent for one frame.
type Input struct {
	LookDelta                        rl.Vector2
	Forward, Back, Left, Right, Jump bool
}

// ReadInput samples the keyboard and mouse.
func ReadInput() Input {
	return Input{
		LookDelta: rl.GetMouseDelta(),
		Forward:   rl.IsKeyDown(rl.KeyW),
		Back:      rl.IsKeyDown(rl.KeyS),
		Left:      rl.IsKeyDown(rl.KeyA),
		Right:     rl.IsKeyDown(rl.KeyD),
		Jump:      rl.IsKeyPressed(rl.KeySpace),
	}
}

func New(pos rl.Vector3) *FPSCamera {
	return &FPSCamera{
		Position:     pos,
		MoveSpeed:    8,
		LookSpeed:    0.1,
		Gravity:      20,
		JumpStrength: 8,
		EyeHeight:    5,
	}
}

// Update applies one frame of look and movement. Vertical motion is ballistic
// until the owner marks the camera Grounded again.
func (c *FPSCamera) Update(in Input, deltaTime float32) {
	c.Yaw += in.LookDelta.X * c.LookSpeed
	c.Pitch = rl.Clamp(c.Pitch-in.LookDelta.Y*c.LookSpeed, -maxPitch, maxPitch)

	heading := c.heading()
	side := rl.Vector3{X: heading.Z, Z: -heading.X}

	var walk rl.Vector3
	if in.Forward {
		walk = rl.Vector3Add(walk, heading)
	}
	if in.Back {
		walk = rl.Vector3Subtract(walk, heading)
	}
	if in.Left {
		walk = rl.Vector3Add(walk, side)
	}
	if in.Right {
		walk = rl.Vector3Subtract(walk, side)
	}
	walk = rl.Vector3Scale(rl.Vector3Normalize(walk), c.MoveSpeed)
	c.Velocity.X, c.Velocity.Z = walk.X, walk.Z

	if in.Jump && c.Grounded {
		c.Velocity.Y = c.JumpStrength
		c.Grounded = false
	}
	if !c.Grounded {
		c.Velocity.Y -= c.Gravity * deltaTime
	}

	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(c.Velocity, deltaTime))
}

// heading is the look direction flattened onto the floor.
func (c *FPSCamera) heading() rl.Vector3 {
	sin, cos := math.Sincos(float64(c.Yaw) * rl.Deg2rad)
	return rl.Vector3{X: float32(cos), Z: float32(sin)}
}

// Rotation maps the grab frame (+X forward, +Y up) onto the look direction:
// pitch about +Z, then yaw about +Y.
func (c *FPSCamera) Rotation() rl.Quaternion {
	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, -c.Yaw*rl.Deg2rad)
	pitch := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, c.Pitch*rl.Deg2rad)
	return rl.QuaternionMultiply(yaw, pitch)
}

// Pose implements grab.Viewpoint.
func (c *FPSCamera) Pose() grab.Pose {
	return grab.Pose{Position: c.Position, Rotation: c.Rotation()}
}

// LookDirection returns the unit vector the camera is facing.
func (c *FPSCamera) LookDirection() rl.Vector3 {
	sin, cos := math.Sincos(float64(c.Pitch) * rl.Deg2rad)
	return rl.Vector3Add(rl.Vector3Scale(c.heading(), float32(cos)), rl.Vector3{Y: float32(sin)})
}

// GetRaylibCamera is the render camera for this frame.
func (c *FPSCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.LookDirection()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

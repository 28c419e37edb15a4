package components

import (
	"scalegrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return b.GetGameObject().LocalToWorld(b.Offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	return rl.Vector3Multiply(b.Size, b.GetGameObject().WorldScale())
}

// GetRotation returns the collider's world orientation
func (b *BoxCollider) GetRotation() rl.Quaternion {
	return b.GetGameObject().WorldRotation()
}

package components

import (
	"math"
	"scalegrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3 // cube size, or sphere radius in X
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw renders the mesh with the object's full world transform.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	axis, angle := AxisAngle(g.WorldRotation())
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	rl.Scalef(scale.X, scale.Y, scale.Z)
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3{}, m.Size, m.Color)
		rl.DrawCubeWiresV(rl.Vector3{}, m.Size, rl.DarkGray)
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, m.Size.X, m.Color)
	}
	rl.PopMatrix()
}

// AxisAngle converts a rotation to an axis and an angle in radians. The
// identity maps to +Y and zero.
func AxisAngle(q rl.Quaternion) (rl.Vector3, float32) {
	q = rl.QuaternionNormalize(q)
	if q.W < 0 {
		q = rl.Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
	}
	s := math.Sqrt(math.Max(0, 1-float64(q.W*q.W)))
	if s < 1e-6 {
		return rl.Vector3{Y: 1}, 0
	}
	angle := 2 * math.Acos(math.Min(1, float64(q.W)))
	return rl.Vector3{
		X: q.X / float32(s),
		Y: q.Y / float32(s),
		Z: q.Z / float32(s),
	}, float32(angle)
}

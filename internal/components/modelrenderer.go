package components

import (
	"scalegrab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a GPU model. It owns the model and unloads it.
type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	// Combine: scale -> rotate -> translate
	scale := g.WorldScale()
	pos := g.WorldPosition()
	m.Model.Transform = rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(scale.X, scale.Y, scale.Z), rl.QuaternionToMatrix(g.WorldRotation())),
		rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
	)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
	rl.DrawModelWires(m.Model, rl.Vector3Zero(), 1.0, rl.DarkGray)
}

func (m *ModelRenderer) Unload() {
	rl.UnloadModel(m.Model)
}

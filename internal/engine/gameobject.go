package engine

import (
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type GameObject struct {
	UID       uint64 // unique per process, never 0
	Name      string
	Tags      []string
	Transform Transform // relative to Parent
	Active    bool
	Scene     *Scene
	Parent    *GameObject
	Children  []*GameObject

	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:       nextUID.Add(1),
		Name:      name,
		Active:    true,
		Transform: IdentityTransform(),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component assignable to T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	var zero T
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

// Start runs each component's Start once, even if called again.
func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

// AddChild reparents child under g.
func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	if i := slices.Index(g.Children, child); i >= 0 {
		g.Children = slices.Delete(g.Children, i, i+1)
		child.Parent = nil
	}
}

// WorldTransform composes the local transforms from the root down to g.
func (g *GameObject) WorldTransform() Transform {
	if g.Parent == nil {
		return g.Transform
	}
	return g.Parent.WorldTransform().Then(g.Transform)
}

func (g *GameObject) WorldPosition() rl.Vector3    { return g.WorldTransform().Position }
func (g *GameObject) WorldRotation() rl.Quaternion { return g.WorldTransform().Rotation }
func (g *GameObject) WorldScale() rl.Vector3       { return g.WorldTransform().Scale }

// LocalToWorld maps a point in the object's local space to world space.
func (g *GameObject) LocalToWorld(p rl.Vector3) rl.Vector3 {
	return g.WorldTransform().Apply(p)
}

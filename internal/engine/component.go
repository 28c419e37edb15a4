package engine

// Component is behaviour attached to a GameObject.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Drawable components render themselves inside an active 3D mode.
type Drawable interface {
	Component
	Draw()
}

// Unloader components own GPU resources that must be released before the
// window closes.
type Unloader interface {
	Component
	Unload()
}

// BaseComponent is embedded by components that only need some of the hooks.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start()                      {}
func (b *BaseComponent) Update(deltaTime float32)    {}
func (b *BaseComponent) SetGameObject(g *GameObject) { b.gameObject = g }
func (b *BaseComponent) GetGameObject() *GameObject  { return b.gameObject }

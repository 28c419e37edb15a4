package components

import (
	"scalegrab/internal/engine"
	"scalegrab/internal/grab"
)

// Grabber attaches a grab controller to the player object and refits the
// held object every frame.
type Grabber struct {
	engine.BaseComponent
	Controller *grab.Controller
}

func NewGrabber(controller *grab.Controller) *Grabber {
	return &Grabber{Controller: controller}
}

func (g *Grabber) Update(deltaTime float32) {
	// Failures are reported through the controller's diagnostics.
	_ = g.Controller.OnTick(deltaTime)
}

// Toggle picks up the object in view, or drops the held one.
func (g *Grabber) Toggle() error {
	return g.Controller.Toggle()
}

// Held resolves the held object in the owner's scene. It returns nil when
// nothing is held or the object has already been removed.
func (g *Grabber) Held() *engine.GameObject {
	id, ok := g.Controller.Attached()
	owner := g.GetGameObject()
	if !ok || owner == nil {
		return nil
	}
	return engine.GameObjectRef{UID: uint64(id)}.Get(owner.Scene)
}

package engine

// GameObjectRef names an object by UID without keeping it alive. Resolving it
// after the object has left the scene yields nil.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or the empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	if g == nil {
		return GameObjectRef{}
	}
	return GameObjectRef{UID: g.UID}
}

// Get resolves the reference against scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference names anything at all. Use Get to
// check that the object still exists.
func (r GameObjectRef) IsValid() bool { return r.UID != 0 }

func (r *GameObjectRef) Clear() { r.UID = 0 }

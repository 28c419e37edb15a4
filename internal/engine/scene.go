package engine

import "slices"

// Scene owns the live GameObjects and indexes them by UID.
type Scene struct {
	Name        string
	GameObjects []*GameObject

	byUID    map[uint64]*GameObject
	doomed   []*GameObject
	updating bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		byUID: make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.byUID == nil {
		s.byUID = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byUID[g.UID] = g
}

// RemoveGameObject takes g and all of its descendants out of the scene
// immediately. References to them stop resolving.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	if i := slices.Index(s.GameObjects, g); i >= 0 {
		s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
	}
	delete(s.byUID, g.UID)
	if g.Scene == s {
		g.Scene = nil
	}
}

// Destroy removes g at the end of the current Update, or right away when
// called outside one.
func (s *Scene) Destroy(g *GameObject) {
	if !s.updating {
		s.RemoveGameObject(g)
		return
	}
	if !slices.Contains(s.doomed, g) {
		s.doomed = append(s.doomed, g)
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	i := slices.IndexFunc(s.GameObjects, func(g *GameObject) bool { return g.Name == name })
	if i < 0 {
		return nil
	}
	return s.GameObjects[i]
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update ticks every object, then applies the Destroy calls made meanwhile.
func (s *Scene) Update(deltaTime float32) {
	s.updating = true
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
	s.updating = false

	for _, g := range s.doomed {
		s.RemoveGameObject(g)
	}
	s.doomed = s.doomed[:0]
}

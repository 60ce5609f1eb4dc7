package engine

// Scene is the ordered list of live entities.
type Scene struct {
	Name     string
	Entities []Entity
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		Entities: make([]Entity, 0),
	}
}

func (s *Scene) Add(e Entity) {
	s.Entities = append(s.Entities, e)
}

// Remove reports whether e was in the scene.
func (s *Scene) Remove(e Entity) bool {
	for i, other := range s.Entities {
		if other == e {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scene) FindByName(name string) Entity {
	for _, e := range s.Entities {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// Tick ticks every entity present at the start of the call. Entities added
// during the tick start ticking on the next one.
func (s *Scene) Tick() {
	n := len(s.Entities)
	for i := 0; i < n; i++ {
		s.Entities[i].Tick()
	}
}

// RemoveDead drops dead entities, keeping the order of the others, and
// returns what was dropped.
func (s *Scene) RemoveDead() []Entity {
	var removed []Entity
	kept := s.Entities[:0]
	for _, e := range s.Entities {
		if e.Dead() {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}
	clear(s.Entities[len(kept):])
	s.Entities = kept
	return removed
}

func (s *Scene) Len() int {
	return len(s.Entities)
}

package ecs

type remover interface {
	remove(e Entity)
	clear()
}

// World owns entity handles and the groups and stores keyed by them.
type World struct {
	entities entityStore
	groups   []*Group
	stores   []remover
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes e from every group and store. It returns false when
// e was already destroyed, which makes repeated destruction harmless.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, g := range w.groups {
		g.Remove(e)
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// Compact drops tombstones from every group. Call it once the frame's
// iteration passes are finished.
func (w *World) Compact() {
	if w == nil {
		return
	}
	for _, g := range w.groups {
		g.Compact()
	}
}

// Reset destroys every entity and empties all groups and stores. Handles
// issued before the reset stay dead.
func (w *World) Reset() {
	if w == nil {
		return
	}
	for i := range w.entities.gen {
		if w.entities.live[i] {
			w.entities.destroy(makeEntity(entityID(i+1), w.entities.gen[i]))
		}
	}
	for _, g := range w.groups {
		g.clear()
	}
	for _, s := range w.stores {
		s.clear()
	}
}

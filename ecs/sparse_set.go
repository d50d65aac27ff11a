package ecs

// Store is a sparse set of values keyed by entity slot. It is the arena
// entity data lives in; a stale handle never resolves because the stored
// handle must match exactly.
type Store[T any] struct {
	denseEntities []Entity
	denseValues   []T
	sparse        []int
}

// NewStore creates a store registered with w so that destroying an entity
// also drops its value.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{}
	if w != nil {
		w.stores = append(w.stores, s)
	}
	return s
}

// Has returns true if the entity has a value in the store.
func (s *Store[T]) Has(e Entity) bool {
	if s == nil {
		return false
	}
	id := int(e.id())
	if id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

// Get returns the value for e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	var zero T
	if !s.Has(e) {
		return zero, false
	}
	return s.denseValues[s.sparse[e.id()-1]], true
}

// Set inserts or updates the value for e.
func (s *Store[T]) Set(e Entity, v T) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.id())
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *Store[T]) Remove(e Entity) {
	if !s.Has(e) {
		return
	}
	id := int(e.id())
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastEnt := s.denseEntities[last]

	s.denseEntities[idx] = lastEnt
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEnt.id()-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

func (s *Store[T]) remove(e Entity) { s.Remove(e) }

func (s *Store[T]) clear() {
	s.denseEntities = nil
	s.denseValues = nil
	s.sparse = nil
}

package ecs

// Group is an insertion-ordered set of entities. Removal leaves a tombstone
// in place so that iteration in progress is never disturbed; Compact drops
// the tombstones once nothing is iterating.
type Group struct {
	name    string
	dense   []Entity
	index   map[Entity]int
	removed int
}

// NewGroup creates a group registered with w. Destroying an entity in w
// removes it from every registered group.
func NewGroup(w *World, name string) *Group {
	g := &Group{name: name, index: make(map[Entity]int)}
	if w != nil {
		w.groups = append(w.groups, g)
	}
	return g
}

func (g *Group) Name() string { return g.name }

// Add appends e. Adding a member twice is a no-op.
func (g *Group) Add(e Entity) {
	if g == nil || !e.Valid() {
		return
	}
	if _, ok := g.index[e]; ok {
		return
	}
	g.index[e] = len(g.dense)
	g.dense = append(g.dense, e)
}

// Remove invalidates e's slot. It reports whether e was a member.
func (g *Group) Remove(e Entity) bool {
	if g == nil {
		return false
	}
	idx, ok := g.index[e]
	if !ok {
		return false
	}
	delete(g.index, e)
	g.dense[idx] = 0
	g.removed++
	return true
}

// Has reports membership.
func (g *Group) Has(e Entity) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[e]
	return ok
}

// Len returns the number of live members.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.index)
}

// Each calls fn for every member in insertion order until fn returns false.
// Members removed during the walk are skipped and members added during the
// walk are not visited.
func (g *Group) Each(fn func(Entity) bool) {
	if g == nil {
		return
	}
	n := len(g.dense)
	for i := 0; i < n; i++ {
		e := g.dense[i]
		if e == 0 {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Compact drops tombstones, preserving order.
func (g *Group) Compact() {
	if g == nil || g.removed == 0 {
		return
	}
	kept := g.dense[:0]
	for _, e := range g.dense {
		if e == 0 {
			continue
		}
		g.index[e] = len(kept)
		kept = append(kept, e)
	}
	clear(g.dense[len(kept):])
	g.dense = kept
	g.removed = 0
}

func (g *Group) clear() {
	g.dense = nil
	g.index = make(map[Entity]int)
	g.removed = 0
}

package ecs

import "testing"

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.Count() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Count())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should be a no-op")
				}
			}
		})
	}
}

func TestWorldSlotReuseInvalidatesOldHandle(t *testing.T) {
	w := NewWorld()
	store := NewStore[string](w)

	old := w.CreateEntity()
	store.Set(old, "old")
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, fresh)
	}
	if fresh == old {
		t.Fatalf("reused slot must carry a new generation")
	}
	store.Set(fresh, "fresh")
	if _, ok := store.Get(old); ok {
		t.Fatalf("stale handle resolved a value")
	}
	if v, ok := store.Get(fresh); !ok || v != "fresh" {
		t.Fatalf("Get(fresh) = %q, %v", v, ok)
	}
}

func TestGroupRemovalDuringIteration(t *testing.T) {
	w := NewWorld()
	g := NewGroup(w, "all")
	ents := []Entity{w.CreateEntity(), w.CreateEntity(), w.CreateEntity(), w.CreateEntity()}
	for _, e := range ents {
		g.Add(e)
	}

	var visited []Entity
	g.Each(func(e Entity) bool {
		visited = append(visited, e)
		if e == ents[0] {
			w.DestroyEntity(ents[2])
			g.Add(w.CreateEntity())
		}
		return true
	})

	want := []Entity{ents[0], ents[1], ents[3]}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
	if g.Len() != 4 {
		t.Fatalf("expected 4 live members after add, got %d", g.Len())
	}

	g.Compact()
	var got []Entity
	g.Each(func(e Entity) bool {
		got = append(got, e)
		return true
	})
	if len(got) != 4 || got[0] != ents[0] || got[1] != ents[1] || got[2] != ents[3] {
		t.Fatalf("compact lost insertion order: %v", got)
	}
	if !g.Remove(got[3]) || g.Has(got[3]) {
		t.Fatalf("remove after compact failed")
	}
}

func TestDestroyRemovesFromAllGroups(t *testing.T) {
	w := NewWorld()
	all := NewGroup(w, "all")
	enemies := NewGroup(w, "enemies")
	store := NewStore[int](w)

	e := w.CreateEntity()
	all.Add(e)
	enemies.Add(e)
	store.Set(e, 7)

	w.DestroyEntity(e)
	if all.Has(e) || enemies.Has(e) || store.Has(e) {
		t.Fatalf("destroyed entity still registered")
	}
}

func TestWorldReset(t *testing.T) {
	w := NewWorld()
	g := NewGroup(w, "all")
	store := NewStore[int](w)
	var ents []Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		g.Add(e)
		store.Set(e, i)
		ents = append(ents, e)
	}
	w.Reset()
	if w.Count() != 0 || g.Len() != 0 || store.Len() != 0 {
		t.Fatalf("reset left state behind: count=%d group=%d store=%d", w.Count(), g.Len(), store.Len())
	}
	for _, e := range ents {
		if w.IsAlive(e) {
			t.Fatalf("handle %v alive after reset", e)
		}
	}
	if e := w.CreateEntity(); !w.IsAlive(e) {
		t.Fatalf("world unusable after reset")
	}
}

func TestStoreSwapRemove(t *testing.T) {
	w := NewWorld()
	s := NewStore[string](w)
	a, b, c := w.CreateEntity(), w.CreateEntity(), w.CreateEntity()
	s.Set(a, "a")
	s.Set(b, "b")
	s.Set(c, "c")
	s.Remove(a)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if v, _ := s.Get(c); v != "c" {
		t.Fatalf("Get(c) = %q after swap remove", v)
	}
	s.Set(b, "bb")
	if v, _ := s.Get(b); v != "bb" {
		t.Fatalf("update failed, got %q", v)
	}
}

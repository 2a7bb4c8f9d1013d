package system

import (
	"slices"
	"time"

	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
)

type entry struct {
	key   Key
	sys   System
	stats *systemStatsInternal

	// bound is the store whose Query and Singleton fields were last bound.
	bound *ecs.Store
}

// Group is an ordered collection of systems that is itself a System.
// The zero value is an empty group. Nested groups are declared by embedding
// Group in a struct type, which gives the struct its own Kind.
type Group struct {
	entries []*entry
}

type grouper interface {
	group() *Group
}

func (g *Group) group() *Group {
	return g
}

// AsGroup returns the group embedded in sys, if any.
func AsGroup(sys System) (*Group, bool) {
	gr, ok := sys.(grouper)
	if !ok {
		return nil, false
	}
	return gr.group(), true
}

func (g *Group) indexOf(kind Kind) int {
	for i, e := range g.entries {
		if e.key.Kind == kind {
			return i
		}
	}
	return -1
}

// Insert adds sys keyed by its Kind and traits, replacing a member of the
// same Kind. UpdateIn is ignored; the group inserts into itself.
func (g *Group) Insert(sys System, traits Traits) error {
	kind := KindOfSystem(sys)
	if inner, ok := AsGroup(sys); ok && inner == g {
		return ErrInvalidRoute
	}

	g.remove(kind)
	g.entries = append(g.entries, &entry{
		key:   traits.key(kind),
		sys:   sys,
		stats: newStatsInternal(),
	})
	g.sort()

	at := g.indexOf(kind)
	logger := log.Default()
	logger.Debug("system inserted", log.Stringer("system", kind), log.Int("position", at))
	for _, c := range g.Conflicts() {
		logger.Warn("system order violates declared constraint",
			log.Stringer("before", c.Before), log.Stringer("after", c.After))
	}
	return nil
}

func (g *Group) remove(kind Kind) (System, bool) {
	i := g.indexOf(kind)
	if i < 0 {
		return nil, false
	}
	sys := g.entries[i].sys
	g.entries = slices.Delete(g.entries, i, i+1)
	g.sort()
	return sys, true
}

// sort orders the members so every declared constraint is honored, picking
// the smallest Kind whenever several members are free to run next. Members
// caught in a constraint cycle are released fewest unmet constraints first.
func (g *Group) sort() {
	n := len(g.entries)
	pending := make([]int, n)
	for i := range g.entries {
		for j := range g.entries {
			if i != j && mustPrecede(g.entries[j].key, g.entries[i].key) {
				pending[i]++
			}
		}
	}

	sorted := make([]*entry, 0, n)
	placed := make([]bool, n)
	for len(sorted) < n {
		next := -1
		for i, e := range g.entries {
			if placed[i] {
				continue
			}
			if next < 0 || pending[i] < pending[next] ||
				(pending[i] == pending[next] && e.key.Less(g.entries[next].key)) {
				next = i
			}
		}

		placed[next] = true
		sorted = append(sorted, g.entries[next])
		for i := range g.entries {
			if !placed[i] && mustPrecede(g.entries[next].key, g.entries[i].key) {
				pending[i]--
			}
		}
	}
	g.entries = sorted
}

// Remove drops the member with the given kind and reports whether it existed.
func (g *Group) Remove(kind Kind) bool {
	_, ok := g.remove(kind)
	if ok {
		log.Default().Debug("system removed", log.Stringer("system", kind))
	}
	return ok
}

// Contains reports whether a member with the given kind exists.
func (g *Group) Contains(kind Kind) bool {
	return g.indexOf(kind) >= 0
}

// Lookup returns the member with the given kind.
func (g *Group) Lookup(kind Kind) (System, error) {
	i := g.indexOf(kind)
	if i < 0 {
		return nil, ErrNotFound
	}
	return g.entries[i].sys, nil
}

// Update runs every member once in key order. Members are snapshotted first:
// systems added or removed by a member during this call take effect on the
// next Update.
func (g *Group) Update(store *ecs.Store) {
	snapshot := slices.Clone(g.entries)

	for _, e := range snapshot {
		if e.bound != store {
			bindFields(e.sys, store)
			e.bound = store
		}

		start := time.Now()
		e.sys.Update(store)
		e.stats.record(time.Since(start))
	}
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.entries)
}

// Systems returns the members in execution order.
func (g *Group) Systems() []System {
	out := make([]System, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.sys
	}
	return out
}

// Order returns the member kinds in execution order.
func (g *Group) Order() []Kind {
	out := make([]Kind, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.key.Kind
	}
	return out
}

// Stats returns execution statistics of the members in execution order.
func (g *Group) Stats() []SystemStats {
	out := make([]SystemStats, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.stats.snapshot(e.key.Kind)
	}
	return out
}

// Conflict is a declared ordering the current member order does not honor.
type Conflict struct {
	Before Kind
	After  Kind
}

// Conflicts lists the declared constraints violated by the current order.
// A non-empty result means the Precedes and Succeeds declarations of the
// members contradict each other or are not transitive.
func (g *Group) Conflicts() []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(g.entries); i++ {
		for j := i + 1; j < len(g.entries); j++ {
			early, late := g.entries[i].key, g.entries[j].key
			if mustPrecede(late, early) {
				conflicts = append(conflicts, Conflict{Before: late.Kind, After: early.Kind})
			}
		}
	}
	return conflicts
}

package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Store issues entity handles and owns every component and singleton.
// A Store is not safe for concurrent use.
type Store struct {
	generations []uint32
	alive       []bool
	free        []uint32
	live        int

	pools      map[reflect.Type]componentPool
	singletons map[reflect.Type]any

	// singletonEpoch changes whenever a singleton is destroyed so cached
	// Singleton accessors know to resolve again.
	singletonEpoch uint64

	commands *Commands
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{
		pools:      make(map[reflect.Type]componentPool),
		singletons: make(map[reflect.Type]any),
		commands:   newCommands(),
	}
}

// Create returns a fresh, valid entity handle.
func (s *Store) Create() Entity {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.generations))
		s.generations = append(s.generations, 1)
		s.alive = append(s.alive, false)
	}

	s.alive[index] = true
	s.live++
	return newEntity(index, s.generations[index])
}

// Destroy removes all components of e and invalidates the handle.
// Destroying an invalid handle is a no-op.
func (s *Store) Destroy(e Entity) {
	if !s.Valid(e) {
		return
	}

	for _, p := range s.pools {
		p.Remove(e)
	}

	index := e.Index()
	s.alive[index] = false
	s.generations[index]++
	if s.generations[index] == 0 {
		s.generations[index] = 1
	}
	s.free = append(s.free, index)
	s.live--
}

// Valid reports whether e currently denotes a live entity.
func (s *Store) Valid(e Entity) bool {
	if e.IsNull() {
		return false
	}
	index := e.Index()
	if int(index) >= len(s.generations) {
		return false
	}
	return s.alive[index] && s.generations[index] == e.Generation()
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.live
}

// Entities yields every live entity in slot order.
func (s *Store) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for index := 0; index < len(s.generations); index++ {
			if !s.alive[index] {
				continue
			}
			if !yield(newEntity(uint32(index), s.generations[index])) {
				return
			}
		}
	}
}

// Components returns the component types attached to e, sorted by name.
func (s *Store) Components(e Entity) []reflect.Type {
	if !s.Valid(e) {
		return nil
	}

	types := make([]reflect.Type, 0, 4)
	for typ, p := range s.pools {
		if p.Has(e) {
			types = append(types, typ)
		}
	}
	slices.SortFunc(types, byTypeName)
	return types
}

// ComponentTypes returns every component type that has been stored, sorted by name.
func (s *Store) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(s.pools))
	for typ := range s.pools {
		types = append(types, typ)
	}
	slices.SortFunc(types, byTypeName)
	return types
}

// ComponentOf returns a pointer to the component of type compType owned by e.
func (s *Store) ComponentOf(e Entity, compType reflect.Type) (any, bool) {
	if !s.Valid(e) {
		return nil, false
	}
	p, ok := s.pools[compType]
	if !ok {
		return nil, false
	}
	comp := p.GetAny(e)
	return comp, comp != nil
}

// Commands returns the deferred command buffer of the store.
func (s *Store) Commands() *Commands {
	return s.commands
}

func byTypeName(a, b reflect.Type) int {
	return strings.Compare(a.String(), b.String())
}

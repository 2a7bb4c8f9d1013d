package ecs

import (
	"iter"
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// componentPool is a type-erased view of the storage for one component type.
type componentPool interface {
	Type() reflect.Type
	Has(e Entity) bool
	Remove(e Entity) bool
	GetAny(e Entity) any
	Pointer(e Entity) unsafe.Pointer
	Clear()
	Len() int
	Entities() iter.Seq[Entity]
}

const (
	poolBlockSize = 64
)

// pool stores components of a specific type `T` in fixed-size blocks.
// Blocks are heap allocated individually so a *T stays put while other
// components are added or removed.
type pool[T any] struct {
	blocks    []*[poolBlockSize]T
	owners    []Entity
	freeSlots []int
	nextIndex int
	count     int

	// sparse maps an entity slot index to its position in blocks.
	sparse *intmap.Map[uint32, int]
}

func newPool[T any]() *pool[T] {
	return &pool[T]{
		sparse: intmap.New[uint32, int](poolBlockSize),
	}
}

func (p *pool[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (p *pool[T]) slot(e Entity) (int, bool) {
	slot, ok := p.sparse.Get(e.Index())
	if !ok || p.owners[slot] != e {
		return 0, false
	}
	return slot, true
}

func (p *pool[T]) at(slot int) *T {
	return &p.blocks[slot/poolBlockSize][slot%poolBlockSize]
}

// Upsert stores value for e, replacing any existing component in place.
func (p *pool[T]) Upsert(e Entity, value T) *T {
	if slot, ok := p.slot(e); ok {
		ptr := p.at(slot)
		*ptr = value
		return ptr
	}

	var slot int
	if n := len(p.freeSlots); n > 0 {
		slot = p.freeSlots[n-1]
		p.freeSlots = p.freeSlots[:n-1]
	} else {
		slot = p.nextIndex
		p.nextIndex++
		if slot/poolBlockSize >= len(p.blocks) {
			p.blocks = append(p.blocks, new([poolBlockSize]T))
		}
		p.owners = append(p.owners, Null)
	}

	p.owners[slot] = e
	p.sparse.Put(e.Index(), slot)
	p.count++

	ptr := p.at(slot)
	*ptr = value
	return ptr
}

// Get returns a pointer to the component owned by e.
func (p *pool[T]) Get(e Entity) (*T, bool) {
	slot, ok := p.slot(e)
	if !ok {
		return nil, false
	}
	return p.at(slot), true
}

func (p *pool[T]) Has(e Entity) bool {
	_, ok := p.slot(e)
	return ok
}

// Remove zeroes the slot owned by e and returns it to the free list.
func (p *pool[T]) Remove(e Entity) bool {
	slot, ok := p.slot(e)
	if !ok {
		return false
	}

	var zero T
	*p.at(slot) = zero
	p.owners[slot] = Null
	p.sparse.Del(e.Index())
	p.freeSlots = append(p.freeSlots, slot)
	p.count--
	return true
}

func (p *pool[T]) GetAny(e Entity) any {
	ptr, ok := p.Get(e)
	if !ok {
		return nil
	}
	return ptr
}

func (p *pool[T]) Pointer(e Entity) unsafe.Pointer {
	ptr, ok := p.Get(e)
	if !ok {
		return nil
	}
	return unsafe.Pointer(ptr)
}

// Clear drops every component in the pool.
func (p *pool[T]) Clear() {
	p.blocks = nil
	p.owners = nil
	p.freeSlots = nil
	p.nextIndex = 0
	p.count = 0
	p.sparse.Clear()
}

func (p *pool[T]) Len() int {
	return p.count
}

// Entities yields component owners in slot order.
func (p *pool[T]) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for slot := 0; slot < len(p.owners); slot++ {
			e := p.owners[slot]
			if e == Null {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

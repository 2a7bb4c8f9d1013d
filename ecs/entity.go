package ecs

import "fmt"

// Entity is an opaque handle to a bundle of components.
// The lower 32 bits hold the slot index, the upper 32 bits hold the slot generation.
type Entity uint64

// Null is the zero handle. It never denotes a live entity.
const Null Entity = 0

func newEntity(index uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the handle
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the slot generation from the handle
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNull reports whether e is the zero handle.
func (e Entity) IsNull() bool {
	return e == Null
}

func (e Entity) String() string {
	if e.IsNull() {
		return "Entity(null)"
	}
	return fmt.Sprintf("Entity(%d:%d)", e.Index(), e.Generation())
}

package ecs

import (
	"reflect"

	"github.com/rotisserie/eris"
)

func poolOf[T any](s *Store) *pool[T] {
	p, ok := s.pools[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return p.(*pool[T])
}

func ensurePool[T any](s *Store) *pool[T] {
	if p := poolOf[T](s); p != nil {
		return p
	}
	p := newPool[T]()
	s.pools[p.Type()] = p
	return p
}

// CreateComponent attaches value to e, replacing an existing T component.
// The returned pointer stays valid until the component is removed.
// Panics if e is not a valid entity.
func CreateComponent[T any](s *Store, e Entity, value T) *T {
	if !s.Valid(e) {
		panic(eris.Wrapf(ErrInvalidEntity, "create %s on %s", reflect.TypeFor[T](), e))
	}
	return ensurePool[T](s).Upsert(e, value)
}

// DestroyComponent removes the T component from e and reports whether one was removed.
func DestroyComponent[T any](s *Store, e Entity) bool {
	p := poolOf[T](s)
	if p == nil || !s.Valid(e) {
		return false
	}
	return p.Remove(e)
}

// HasComponent reports whether e has a T component.
func HasComponent[T any](s *Store, e Entity) bool {
	p := poolOf[T](s)
	if p == nil || !s.Valid(e) {
		return false
	}
	return p.Has(e)
}

// LookupComponent returns the T component of e, if any.
func LookupComponent[T any](s *Store, e Entity) (*T, bool) {
	p := poolOf[T](s)
	if p == nil || !s.Valid(e) {
		return nil, false
	}
	return p.Get(e)
}

// GetComponent returns the T component of e.
// Callers check HasComponent first; a missing component panics with ErrNotFound.
func GetComponent[T any](s *Store, e Entity) *T {
	if !s.Valid(e) {
		panic(eris.Wrapf(ErrInvalidEntity, "get %s on %s", reflect.TypeFor[T](), e))
	}
	comp, ok := LookupComponent[T](s, e)
	if !ok {
		panic(eris.Wrapf(ErrNotFound, "component %s on %s", reflect.TypeFor[T](), e))
	}
	return comp
}

// ClearComponent removes T from every entity.
func ClearComponent[T any](s *Store) {
	if p := poolOf[T](s); p != nil {
		p.Clear()
	}
}

// CountComponent returns how many entities have a T component.
func CountComponent[T any](s *Store) int {
	if p := poolOf[T](s); p != nil {
		return p.Len()
	}
	return 0
}

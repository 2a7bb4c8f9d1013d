package ecs

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// CreateSingleton stores value as the only instance of T, replacing any existing one in place.
func CreateSingleton[T any](s *Store, value T) *T {
	typ := reflect.TypeFor[T]()
	if existing, ok := s.singletons[typ]; ok {
		ptr := existing.(*T)
		*ptr = value
		return ptr
	}

	ptr := new(T)
	*ptr = value
	s.singletons[typ] = ptr
	return ptr
}

// DestroySingleton removes the T singleton and reports whether it existed.
func DestroySingleton[T any](s *Store) bool {
	typ := reflect.TypeFor[T]()
	if _, ok := s.singletons[typ]; !ok {
		return false
	}
	delete(s.singletons, typ)
	s.singletonEpoch++
	return true
}

// HasSingleton reports whether a T singleton exists.
func HasSingleton[T any](s *Store) bool {
	_, ok := s.singletons[reflect.TypeFor[T]()]
	return ok
}

// LookupSingleton returns the T singleton, if any.
func LookupSingleton[T any](s *Store) (*T, bool) {
	existing, ok := s.singletons[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return existing.(*T), true
}

// GetSingleton returns the T singleton and panics with ErrNotFound if there is none.
func GetSingleton[T any](s *Store) *T {
	ptr, ok := LookupSingleton[T](s)
	if !ok {
		panic(eris.Wrapf(ErrNotFound, "singleton %s", reflect.TypeFor[T]()))
	}
	return ptr
}

// Singleton caches access to a singleton value. Systems keep one as a
// field; it is bound to the store on registration through Init.
type Singleton[T any] struct {
	store *Store
	ptr   *T
	epoch uint64
}

// NewSingleton returns an accessor bound to store. If the singleton does not
// exist yet it is created from initializer, or from the zero value.
func NewSingleton[T any](store *Store, initializer ...T) *Singleton[T] {
	if !HasSingleton[T](store) {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		CreateSingleton(store, value)
	}

	s := &Singleton[T]{}
	s.Init(store)
	return s
}

// Init binds the accessor to store.
func (s *Singleton[T]) Init(store *Store) {
	s.store = store
	s.ptr = nil
	s.resolve()
}

func (s *Singleton[T]) resolve() {
	if s.store == nil {
		return
	}
	s.ptr, _ = LookupSingleton[T](s.store)
	s.epoch = s.store.singletonEpoch
}

// Get returns the singleton, or nil if it does not exist.
func (s *Singleton[T]) Get() *T {
	if s.store == nil {
		return nil
	}
	if s.ptr == nil || s.epoch != s.store.singletonEpoch {
		s.resolve()
	}
	return s.ptr
}

// Exists reports whether the singleton is present in the bound store.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

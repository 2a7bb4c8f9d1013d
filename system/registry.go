package system

import (
	"github.com/rotisserie/eris"
)

// Registry is a place systems can be registered in. *Group and *Manager implement it.
type Registry interface {
	Insert(sys System, traits Traits) error
	Remove(kind Kind) bool
	Contains(kind Kind) bool
	Lookup(kind Kind) (System, error)
}

// CreateSystem registers sys in r, replacing any system of the same type,
// and returns it.
func CreateSystem[T System](r Registry, sys T, opts ...Option) (T, error) {
	if err := r.Insert(sys, NewTraits(opts...)); err != nil {
		var zero T
		return zero, eris.Wrapf(err, "create %s", KindOfSystem(sys))
	}
	return sys, nil
}

// DestroySystem removes the T system from r and reports whether it existed.
func DestroySystem[T System](r Registry) bool {
	return r.Remove(KindOf[T]())
}

// HasSystem reports whether r holds a T system.
func HasSystem[T System](r Registry) bool {
	return r.Contains(KindOf[T]())
}

// GetSystem returns the T system of r. It fails with ErrNotFound if r holds none.
func GetSystem[T System](r Registry) (T, error) {
	var zero T
	kind := KindOf[T]()
	sys, err := r.Lookup(kind)
	if err != nil {
		return zero, eris.Wrapf(err, "get %s", kind)
	}
	typed, ok := sys.(T)
	if !ok {
		return zero, eris.Wrapf(ErrNotFound, "get %s: registered as %T", kind, sys)
	}
	return typed, nil
}

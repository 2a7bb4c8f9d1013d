package ecs

import (
	"iter"
	"reflect"
	"slices"
)

// ComponentList is a set of component types used to filter a view.
type ComponentList []reflect.Type

// List builds a ComponentList from sample values. Pointers are
// dereferenced, so List(Position{}) and List(&Position{}) are the same.
// Untyped nil values carry no type and are skipped.
func List(values ...any) ComponentList {
	list := make(ComponentList, 0, len(values))
	for _, v := range values {
		typ := reflect.TypeOf(v)
		if typ == nil {
			continue
		}
		if typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		list = append(list, typ)
	}
	return list
}

// TypeOf returns a single element ComponentList for T.
func TypeOf[T any]() ComponentList {
	return ComponentList{reflect.TypeFor[T]()}
}

// With returns a new list containing the types of l followed by other.
func (l ComponentList) With(other ComponentList) ComponentList {
	return append(slices.Clone(l), other...)
}

// ComponentReader resolves components by type without handing out mutable access.
type ComponentReader interface {
	ComponentOf(e Entity, compType reflect.Type) (any, bool)
}

// ReadComponent returns a copy of the T component of e.
func ReadComponent[T any](r ComponentReader, e Entity) (T, bool) {
	var zero T
	comp, ok := r.ComponentOf(e, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	return *comp.(*T), true
}

// EntityView enumerates the entities that have every included component
// and none of the excluded ones. The result is recomputed on every call.
type EntityView struct {
	store    *Store
	includes ComponentList
	excludes ComponentList
}

// View returns a view over the entities having all includes and none of excludes.
func (s *Store) View(includes, excludes ComponentList) *EntityView {
	return &EntityView{
		store:    s,
		includes: slices.Clone(includes),
		excludes: slices.Clone(excludes),
	}
}

// Contains reports whether e currently matches the view.
func (v *EntityView) Contains(e Entity) bool {
	if !v.store.Valid(e) {
		return false
	}
	for _, typ := range v.includes {
		p, ok := v.store.pools[typ]
		if !ok || !p.Has(e) {
			return false
		}
	}
	for _, typ := range v.excludes {
		if p, ok := v.store.pools[typ]; ok && p.Has(e) {
			return false
		}
	}
	return true
}

// driver returns the smallest included pool. ok is false when an included
// type has never been stored, in which case the view is empty.
func (v *EntityView) driver() (componentPool, bool) {
	var smallest componentPool
	for _, typ := range v.includes {
		p, ok := v.store.pools[typ]
		if !ok {
			return nil, false
		}
		if smallest == nil || p.Len() < smallest.Len() {
			smallest = p
		}
	}
	return smallest, true
}

// Iter yields the matching entities. With includes it follows the storage
// order of the smallest included pool, otherwise entity slot order.
func (v *EntityView) Iter() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		source := v.store.Entities()
		if len(v.includes) > 0 {
			p, ok := v.driver()
			if !ok {
				return
			}
			source = p.Entities()
		}

		for e := range source {
			if !v.Contains(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Len counts the matching entities.
func (v *EntityView) Len() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}

// ReadOnly returns a view over the same entities that only hands out copies.
func (v *EntityView) ReadOnly() ReadOnlyView {
	return ReadOnlyView{view: v}
}

// ViewComponent returns the T component of e if e matches v.
func ViewComponent[T any](v *EntityView, e Entity) *T {
	if !v.Contains(e) {
		return nil
	}
	comp, _ := LookupComponent[T](v.store, e)
	return comp
}

// ReadOnlyView is an EntityView restricted to copy-out component access.
type ReadOnlyView struct {
	view *EntityView
}

func (r ReadOnlyView) Iter() iter.Seq[Entity] {
	return r.view.Iter()
}

func (r ReadOnlyView) Contains(e Entity) bool {
	return r.view.Contains(e)
}

func (r ReadOnlyView) Len() int {
	return r.view.Len()
}

// ComponentOf implements ComponentReader for entities in the view.
func (r ReadOnlyView) ComponentOf(e Entity, compType reflect.Type) (any, bool) {
	if !r.view.Contains(e) {
		return nil, false
	}
	return r.view.store.ComponentOf(e, compType)
}

package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// View is a typed query over a struct of component pointers.
// Embedded pointer fields are required. Named fields may be tagged
// `ecs:"optional"` (nil when absent) or `ecs:"exclude"` (the entity must not
// have the component, the field is always nil). A field of type Entity
// receives the entity handle.
type View[T any] struct {
	store    *Store
	fields   []viewField
	entity   []uintptr
	includes ComponentList
	excludes ComponentList
}

// NewView creates a typed view over store.
func NewView[T any](store *Store) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	entityType := reflect.TypeFor[Entity]()
	v := &View[T]{store: store}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityType {
			v.entity = append(v.entity, field.Offset)
			continue
		}

		if field.Type.Kind() != reflect.Pointer {
			panic("View struct fields must be pointer types or Entity")
		}

		componentType := field.Type.Elem()
		tag := ""
		if !field.Anonymous {
			tag = field.Tag.Get("ecs")
		}

		switch tag {
		case "":
			v.includes = append(v.includes, componentType)
			v.fields = append(v.fields, viewField{typ: componentType, offset: field.Offset})
		case "optional":
			v.fields = append(v.fields, viewField{typ: componentType, offset: field.Offset, optional: true})
		case "exclude":
			v.excludes = append(v.excludes, componentType)
		default:
			panic("invalid ecs tag value: \"" + tag + "\" (supported: \"optional\", \"exclude\")")
		}
	}

	return v
}

// Entities returns the untyped view matching the same entities.
func (v *View[T]) Entities() *EntityView {
	return v.store.View(v.includes, v.excludes)
}

// Fill populates ptr with the components of e.
// Returns false if e does not match the view.
func (v *View[T]) Fill(e Entity, ptr *T) bool {
	if !v.Entities().Contains(e) {
		return false
	}
	v.populate(unsafe.Pointer(ptr), e)
	return true
}

func (v *View[T]) populate(structPtr unsafe.Pointer, e Entity) {
	for _, offset := range v.entity {
		*(*Entity)(unsafe.Add(structPtr, offset)) = e
	}

	for _, field := range v.fields {
		var component unsafe.Pointer
		if p, ok := v.store.pools[field.typ]; ok {
			component = p.Pointer(e)
		}
		*(*unsafe.Pointer)(unsafe.Add(structPtr, field.offset)) = component
	}
}

// Get returns a populated view struct for e, or nil if e does not match.
func (v *View[T]) Get(e Entity) *T {
	var result T
	if !v.Fill(e, &result) {
		return nil
	}
	return &result
}

// Iter yields every matching entity with its populated view struct.
func (v *View[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		for e := range v.Entities().Iter() {
			var result T
			v.populate(unsafe.Pointer(&result), e)
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values yields the populated view structs without their entities.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

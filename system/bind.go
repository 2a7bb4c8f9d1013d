package system

import (
	"reflect"

	"github.com/plus3/starlight/ecs"
)

type storeBinder interface {
	Init(store *ecs.Store)
}

// bindFields initializes the exported ecs.Query and ecs.Singleton style fields
// of sys so they resolve against store.
func bindFields(sys System, store *ecs.Store) {
	systemValue := reflect.ValueOf(sys)
	if systemValue.Kind() != reflect.Pointer || systemValue.IsNil() {
		return
	}
	systemValue = systemValue.Elem()
	if systemValue.Kind() != reflect.Struct {
		return
	}

	binderType := reflect.TypeFor[storeBinder]()
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if !reflect.PointerTo(field.Type()).Implements(binderType) {
			continue
		}
		field.Addr().Interface().(storeBinder).Init(store)
	}
}

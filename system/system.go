// Package system orders and runs the per-frame behaviors of an application.
//
// Systems live in groups. A group keeps its members sorted by their Key, which
// combines the system's Kind with the kinds it declared it must run before
// (Precedes) or after (Succeeds). The Manager is the root group and routes
// registrations into nested groups.
package system

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/plus3/starlight/ecs"
)

// System is a unit of per-frame behavior over a store.
type System interface {
	Update(store *ecs.Store)
}

// Kind identifies a system type. It is the xxhash of the type's qualified
// name; pointer and value forms of a type share a Kind. Distinct types with
// the same qualified name, such as types declared inside functions, get a
// numbered suffix in the order they are first seen.
type Kind uint64

var (
	kinds sync.Map // reflect.Type -> kindInfo

	ownersMu sync.Mutex
	owners   = make(map[Kind]reflect.Type)
)

type kindInfo struct {
	kind Kind
	name string
}

func kindOfType(typ reflect.Type) kindInfo {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if cached, ok := kinds.Load(typ); ok {
		return cached.(kindInfo)
	}

	ownersMu.Lock()
	defer ownersMu.Unlock()
	if cached, ok := kinds.Load(typ); ok {
		return cached.(kindInfo)
	}

	base := typ.String()
	if typ.PkgPath() != "" {
		base = typ.PkgPath() + "." + typ.Name()
	}
	name := base
	kind := Kind(xxhash.Sum64String(name))
	for n := 2; ; n++ {
		owner, taken := owners[kind]
		if !taken || owner == typ {
			break
		}
		name = fmt.Sprintf("%s#%d", base, n)
		kind = Kind(xxhash.Sum64String(name))
	}
	owners[kind] = typ

	info := kindInfo{kind: kind, name: name}
	kinds.Store(typ, info)
	names.Store(info.kind, name)
	return info
}

var names sync.Map // Kind -> string

// KindOf returns the Kind of T.
func KindOf[T any]() Kind {
	return kindOfType(reflect.TypeFor[T]()).kind
}

// KindOfSystem returns the Kind of the dynamic type of sys.
func KindOfSystem(sys System) Kind {
	return kindOfType(reflect.TypeOf(sys)).kind
}

// Name returns the qualified type name of k if it has been computed before.
func (k Kind) Name() string {
	if name, ok := names.Load(k); ok {
		return name.(string)
	}
	return "unknown"
}

func (k Kind) String() string {
	return k.Name()
}

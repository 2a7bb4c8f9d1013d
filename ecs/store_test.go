package ecs_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/plus3/starlight/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityHandle(t *testing.T) {
	assert.True(t, ecs.Null.IsNull())
	assert.Equal(t, "Entity(null)", ecs.Null.String())

	store := ecs.NewStore()
	first := store.Create()
	assert.False(t, first.IsNull())
	assert.Equal(t, uint32(0), first.Index())
	assert.Equal(t, uint32(1), first.Generation())
	assert.Equal(t, "Entity(0:1)", first.String())
}

func TestCreateDestroyValidity(t *testing.T) {
	store := ecs.NewStore()
	assert.False(t, store.Valid(ecs.Null))

	e := store.Create()
	require.True(t, store.Valid(e))
	assert.Equal(t, 1, store.Len())

	store.Destroy(e)
	assert.False(t, store.Valid(e))
	assert.Equal(t, 0, store.Len())

	// The slot is recycled with a new generation; the stale handle stays invalid
	reused := store.Create()
	assert.Equal(t, e.Index(), reused.Index())
	assert.NotEqual(t, e, reused)
	assert.True(t, store.Valid(reused))
	assert.False(t, store.Valid(e))
}

func TestDestroyInvalidIsNoop(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()
	store.Destroy(e)

	assert.NotPanics(t, func() {
		store.Destroy(e)
		store.Destroy(ecs.Null)
	})
	assert.Equal(t, 0, store.Len())

	// A second destroy must not push the slot onto the free list twice
	a := store.Create()
	b := store.Create()
	assert.NotEqual(t, a.Index(), b.Index())
}

func TestCreateDestroyManySequences(t *testing.T) {
	store := ecs.NewStore()
	destroyed := make([]ecs.Entity, 0)
	alive := make([]ecs.Entity, 0)

	for round := 0; round < 10; round++ {
		for i := 0; i < 20; i++ {
			e := store.Create()
			require.True(t, store.Valid(e))
			alive = append(alive, e)
		}
		for i := 0; i < 10; i++ {
			e := alive[0]
			alive = alive[1:]
			store.Destroy(e)
			destroyed = append(destroyed, e)
		}
	}

	for _, e := range destroyed {
		assert.False(t, store.Valid(e), "destroyed %s must stay invalid", e)
	}
	for _, e := range alive {
		assert.True(t, store.Valid(e))
	}
	assert.Equal(t, len(alive), store.Len())
	assert.Len(t, slices.Collect(store.Entities()), len(alive))
}

func TestComponentUpsert(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()

	first := ecs.CreateComponent(store, e, Position{X: 1, Y: 2})
	second := ecs.CreateComponent(store, e, Position{X: 3, Y: 4})

	assert.Same(t, first, second, "upsert replaces in place")
	assert.True(t, ecs.HasComponent[Position](store, e))
	assert.Equal(t, Position{X: 3, Y: 4}, *ecs.GetComponent[Position](store, e))
	assert.Equal(t, 1, ecs.CountComponent[Position](store))

	assert.True(t, ecs.DestroyComponent[Position](store, e))
	assert.False(t, ecs.HasComponent[Position](store, e))
	assert.False(t, ecs.DestroyComponent[Position](store, e))
}

func TestComponentPrimitiveTypes(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()

	ecs.CreateComponent(store, e, Score(10))
	ecs.CreateComponent(store, e, Temperature(36.6))

	*ecs.GetComponent[Score](store, e) += 5
	assert.Equal(t, Score(15), *ecs.GetComponent[Score](store, e))
	assert.Equal(t, Temperature(36.6), *ecs.GetComponent[Temperature](store, e))
}

func TestComponentPointerStability(t *testing.T) {
	store := ecs.NewStore()
	first := store.Create()
	ptr := ecs.CreateComponent(store, first, Health{Current: 10, Max: 10})

	// Force several new blocks to be allocated
	for i := 0; i < 500; i++ {
		ecs.CreateComponent(store, store.Create(), Health{Current: i})
	}

	assert.Same(t, ptr, ecs.GetComponent[Health](store, first))
	assert.Equal(t, 10, ptr.Current)
}

func TestDestroyRemovesComponents(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()
	ecs.CreateComponent(store, e, Position{})
	ecs.CreateComponent(store, e, Velocity{})

	store.Destroy(e)

	reused := store.Create()
	require.Equal(t, e.Index(), reused.Index())
	assert.False(t, ecs.HasComponent[Position](store, reused))
	assert.False(t, ecs.HasComponent[Velocity](store, reused))
	assert.Equal(t, 0, ecs.CountComponent[Position](store))
}

func TestStaleHandleComponentAccess(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()
	ecs.CreateComponent(store, e, Name{Value: "old"})
	store.Destroy(e)

	reused := store.Create()
	ecs.CreateComponent(store, reused, Name{Value: "new"})

	assert.False(t, ecs.HasComponent[Name](store, e))
	_, ok := ecs.LookupComponent[Name](store, e)
	assert.False(t, ok)
	assert.False(t, ecs.DestroyComponent[Name](store, e))
	assert.Equal(t, "new", ecs.GetComponent[Name](store, reused).Value)
}

func TestGetComponentPanics(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()

	err := recoverError(func() {
		ecs.GetComponent[Position](store, e)
	})
	assert.ErrorIs(t, err, ecs.ErrNotFound)

	store.Destroy(e)
	err = recoverError(func() {
		ecs.CreateComponent(store, e, Position{})
	})
	assert.ErrorIs(t, err, ecs.ErrInvalidEntity)
	err = recoverError(func() {
		ecs.GetComponent[Position](store, e)
	})
	assert.ErrorIs(t, err, ecs.ErrInvalidEntity)
}

func recoverError(fn func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()
	fn()
	return nil
}

func TestClearComponent(t *testing.T) {
	store := ecs.NewStore()
	entities := make([]ecs.Entity, 5)
	for i := range entities {
		entities[i] = store.Create()
		ecs.CreateComponent(store, entities[i], Position{X: float32(i)})
		ecs.CreateComponent(store, entities[i], Velocity{})
	}

	ecs.ClearComponent[Position](store)

	for _, e := range entities {
		assert.False(t, ecs.HasComponent[Position](store, e))
		assert.True(t, ecs.HasComponent[Velocity](store, e))
	}

	ecs.CreateComponent(store, entities[2], Position{X: 9})
	assert.Equal(t, float32(9), ecs.GetComponent[Position](store, entities[2]).X)
	assert.Equal(t, 1, ecs.CountComponent[Position](store))
}

func TestComponents(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()
	ecs.CreateComponent(store, e, Velocity{})
	ecs.CreateComponent(store, e, Position{})

	types := store.Components(e)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Position](), reflect.TypeFor[Velocity]()}, types)
	assert.Nil(t, store.Components(ecs.Null))

	comp, ok := store.ComponentOf(e, reflect.TypeFor[Position]())
	require.True(t, ok)
	assert.IsType(t, &Position{}, comp)
}

func TestSingletons(t *testing.T) {
	store := ecs.NewStore()
	assert.False(t, ecs.HasSingleton[Score](store))
	assert.False(t, ecs.DestroySingleton[Score](store))

	first := ecs.CreateSingleton(store, Score(1))
	second := ecs.CreateSingleton(store, Score(2))
	assert.Same(t, first, second)
	assert.Equal(t, Score(2), *ecs.GetSingleton[Score](store))

	assert.True(t, ecs.DestroySingleton[Score](store))
	assert.False(t, ecs.HasSingleton[Score](store))
	_, ok := ecs.LookupSingleton[Score](store)
	assert.False(t, ok)
	assert.Panics(t, func() {
		ecs.GetSingleton[Score](store)
	})

	// Singletons are independent of entities
	assert.Equal(t, 0, store.Len())
}

func TestSingletonAccessor(t *testing.T) {
	store := ecs.NewStore()

	accessor := ecs.NewSingleton(store, Name{Value: "window"})
	require.True(t, accessor.Exists())
	assert.Equal(t, "window", accessor.Get().Value)

	ecs.DestroySingleton[Name](store)
	assert.False(t, accessor.Exists())
	assert.Nil(t, accessor.Get())

	ecs.CreateSingleton(store, Name{Value: "again"})
	assert.Equal(t, "again", accessor.Get().Value)

	var unbound ecs.Singleton[Name]
	assert.Nil(t, unbound.Get())
	unbound.Init(store)
	assert.Equal(t, "again", unbound.Get().Value)
}

func TestCollectStats(t *testing.T) {
	store := ecs.NewStore()
	for i := 0; i < 3; i++ {
		e := store.Create()
		ecs.CreateComponent(store, e, Position{})
		if i > 0 {
			ecs.CreateComponent(store, e, Velocity{})
		}
	}
	ecs.CreateSingleton(store, Score(3))

	stats := store.CollectStats()
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.ComponentTypeCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []ecs.ComponentStats{
		{Type: "ecs_test.Position", EntityCount: 3},
		{Type: "ecs_test.Velocity", EntityCount: 2},
	}, stats.ComponentBreakdown)
	assert.Equal(t, []string{"ecs_test.Score"}, stats.SingletonTypes)
}

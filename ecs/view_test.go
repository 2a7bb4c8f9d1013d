package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/starlight/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewIncludeExclude(t *testing.T) {
	store := ecs.NewStore()
	e1 := store.Create()
	ecs.CreateComponent(store, e1, A{})
	ecs.CreateComponent(store, e1, B{})
	e2 := store.Create()
	ecs.CreateComponent(store, e2, A{})
	e3 := store.Create()
	ecs.CreateComponent(store, e3, B{})

	view := store.View(ecs.TypeOf[A](), ecs.TypeOf[B]())
	assert.Equal(t, []ecs.Entity{e2}, slices.Collect(view.Iter()))
	assert.Equal(t, 1, view.Len())
	assert.True(t, view.Contains(e2))
	assert.False(t, view.Contains(e1))
	assert.False(t, view.Contains(e3))
}

func TestViewRecomputes(t *testing.T) {
	store := ecs.NewStore()
	view := store.View(ecs.List(Position{}), nil)
	assert.Equal(t, 0, view.Len())

	e := store.Create()
	ecs.CreateComponent(store, e, Position{})
	assert.Equal(t, []ecs.Entity{e}, slices.Collect(view.Iter()))

	store.Destroy(e)
	assert.Empty(t, slices.Collect(view.Iter()))
}

func TestViewNoIncludes(t *testing.T) {
	store := ecs.NewStore()
	plain := store.Create()
	frozen := store.Create()
	ecs.CreateComponent(store, frozen, Frozen{})

	all := store.View(nil, nil)
	assert.Equal(t, []ecs.Entity{plain, frozen}, slices.Collect(all.Iter()))

	thawed := store.View(nil, ecs.List(&Frozen{}))
	assert.Equal(t, []ecs.Entity{plain}, slices.Collect(thawed.Iter()))
}

func TestViewUnknownInclude(t *testing.T) {
	store := ecs.NewStore()
	store.Create()

	view := store.View(ecs.TypeOf[Health](), nil)
	assert.Empty(t, slices.Collect(view.Iter()))
}

func TestViewEarlyBreak(t *testing.T) {
	store := ecs.NewStore()
	for i := 0; i < 10; i++ {
		ecs.CreateComponent(store, store.Create(), Score(i))
	}

	seen := 0
	for range store.View(ecs.TypeOf[Score](), nil).Iter() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestViewComponentAccess(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()
	ecs.CreateComponent(store, e, Position{X: 1})
	other := store.Create()
	ecs.CreateComponent(store, other, Velocity{})

	view := store.View(ecs.TypeOf[Position](), nil)
	pos := ecs.ViewComponent[Position](view, e)
	require.NotNil(t, pos)
	pos.X = 5
	assert.Equal(t, float32(5), ecs.GetComponent[Position](store, e).X)
	assert.Nil(t, ecs.ViewComponent[Velocity](view, other))

	readOnly := view.ReadOnly()
	value, ok := ecs.ReadComponent[Position](readOnly, e)
	require.True(t, ok)
	value.X = 100
	assert.Equal(t, float32(5), ecs.GetComponent[Position](store, e).X, "read-only access returns copies")

	_, ok = ecs.ReadComponent[Velocity](readOnly, other)
	assert.False(t, ok)
	assert.Equal(t, []ecs.Entity{e}, slices.Collect(readOnly.Iter()))

	direct, ok := ecs.ReadComponent[Velocity](store, other)
	assert.True(t, ok)
	assert.Equal(t, Velocity{}, direct)
}

func TestTypedView(t *testing.T) {
	store := ecs.NewStore()
	moving := store.Create()
	ecs.CreateComponent(store, moving, Position{X: 1, Y: 2})
	ecs.CreateComponent(store, moving, Velocity{DX: 1, DY: 1})
	ecs.CreateComponent(store, moving, Name{Value: "mover"})

	still := store.Create()
	ecs.CreateComponent(store, still, Position{X: 5})
	ecs.CreateComponent(store, still, Velocity{})
	ecs.CreateComponent(store, still, Frozen{})

	view := ecs.NewView[struct {
		Entity ecs.Entity
		*Position
		*Velocity
		Name   *Name   `ecs:"optional"`
		Frozen *Frozen `ecs:"exclude"`
	}](store)

	count := 0
	for e, item := range view.Iter() {
		count++
		assert.Equal(t, moving, e)
		assert.Equal(t, moving, item.Entity)
		require.NotNil(t, item.Name)
		assert.Equal(t, "mover", item.Name.Value)
		assert.Nil(t, item.Frozen)

		item.Position.X += item.Velocity.DX
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, float32(2), ecs.GetComponent[Position](store, moving).X)

	assert.Nil(t, view.Get(still))
	assert.NotNil(t, view.Get(moving))
}

func TestTypedViewOptionalMissing(t *testing.T) {
	store := ecs.NewStore()
	e := store.Create()
	ecs.CreateComponent(store, e, Position{})

	view := ecs.NewView[struct {
		*Position
		Health *Health `ecs:"optional"`
	}](store)

	item := view.Get(e)
	require.NotNil(t, item)
	assert.Nil(t, item.Health)
	assert.Len(t, slices.Collect(view.Values()), 1)
}

func TestTypedViewInvalidDefinitions(t *testing.T) {
	store := ecs.NewStore()

	assert.Panics(t, func() {
		ecs.NewView[Position](store)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct{ Position }](store)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"sometimes"`
		}](store)
	})
}

func TestQueryRebinds(t *testing.T) {
	first := ecs.NewStore()
	ecs.CreateComponent(first, first.Create(), Health{Current: 1})

	second := ecs.NewStore()
	ecs.CreateComponent(second, second.Create(), Health{Current: 2})
	ecs.CreateComponent(second, second.Create(), Health{Current: 3})

	var query ecs.Query[struct{ *Health }]
	assert.Equal(t, 1, query.Len(first))
	assert.Equal(t, 2, query.Len(second))

	total := 0
	for item := range query.Values(second) {
		total += item.Current
	}
	assert.Equal(t, 5, total)
}

func TestListSkipsNil(t *testing.T) {
	assert.Empty(t, ecs.List(nil))
	assert.Equal(t, ecs.List(A{}, B{}), ecs.List(nil, &A{}, nil, B{}))

	store := ecs.NewStore()
	e := store.Create()
	ecs.CreateComponent(store, e, A{})
	assert.Equal(t, 1, store.View(ecs.List(nil), nil).Len())
}

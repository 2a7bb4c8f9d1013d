package main

import (
	"math/rand/v2"

	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/system"
)

type C0 struct {
	Value float64
	Ticks int
}

type C1 struct {
	Value float64
	Ticks int
}

type C2 struct {
	Value float64
	Ticks int
}

type C3 struct {
	Value float64
	Ticks int
}

type C4 struct {
	Value float64
	Ticks int
}

type C5 struct {
	Value float64
	Ticks int
}

type C6 struct {
	Value float64
	Ticks int
}

type C7 struct {
	Value float64
	Ticks int
}

const componentCount = 8

// churn mixes two components of every entity that has both.
type churn[A, B any] struct {
	Items ecs.Query[struct {
		First  *A
		Second *B
	}]
	touch func(a *A, b *B)
}

func (s *churn[A, B]) Update(store *ecs.Store) {
	for item := range s.Items.Values(store) {
		s.touch(item.First, item.Second)
	}
}

func newChurn[A, B any](touch func(a *A, b *B)) system.System {
	return &churn[A, B]{touch: touch}
}

// systemFactories lists every distinct system type the stress run can register.
var systemFactories = []func() system.System{
	func() system.System { return newChurn(func(a *C0, b *C1) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C1, b *C2) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C2, b *C3) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C3, b *C4) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C4, b *C5) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C5, b *C6) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C6, b *C7) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C7, b *C0) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C0, b *C3) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C1, b *C4) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C2, b *C5) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C3, b *C6) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C4, b *C7) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C5, b *C0) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C6, b *C1) { a.Value += b.Value * 0.5; b.Ticks++ }) },
	func() system.System { return newChurn(func(a *C7, b *C2) { a.Value += b.Value * 0.5; b.Ticks++ }) },
}

// spawnRandomEntity creates an entity with count distinct random components.
func spawnRandomEntity(store *ecs.Store, rng *rand.Rand, count int) ecs.Entity {
	e := store.Create()
	for _, i := range rng.Perm(componentCount)[:min(count, componentCount)] {
		addComponent(store, e, i, rng.Float64())
	}
	return e
}

func addComponent(store *ecs.Store, e ecs.Entity, index int, value float64) {
	switch index {
	case 0:
		ecs.CreateComponent(store, e, C0{Value: value})
	case 1:
		ecs.CreateComponent(store, e, C1{Value: value})
	case 2:
		ecs.CreateComponent(store, e, C2{Value: value})
	case 3:
		ecs.CreateComponent(store, e, C3{Value: value})
	case 4:
		ecs.CreateComponent(store, e, C4{Value: value})
	case 5:
		ecs.CreateComponent(store, e, C5{Value: value})
	case 6:
		ecs.CreateComponent(store, e, C6{Value: value})
	case 7:
		ecs.CreateComponent(store, e, C7{Value: value})
	}
}

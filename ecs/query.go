package ecs

import (
	"iter"
)

// Query is a View that a system keeps as a field. It is bound when the
// system is registered and rebinds itself if handed a different store.
type Query[T any] struct {
	view *View[T]
}

// NewQuery creates a Query bound to store.
func NewQuery[T any](store *Store) *Query[T] {
	q := &Query[T]{}
	q.Init(store)
	return q
}

// Init binds the query to store.
func (q *Query[T]) Init(store *Store) {
	q.view = NewView[T](store)
}

func (q *Query[T]) bind(store *Store) *View[T] {
	if q.view == nil || q.view.store != store {
		q.Init(store)
	}
	return q.view
}

// Iter yields the entities of store matching the query.
func (q *Query[T]) Iter(store *Store) iter.Seq2[Entity, T] {
	return q.bind(store).Iter()
}

// Values yields the populated query structs of store.
func (q *Query[T]) Values(store *Store) iter.Seq[T] {
	return q.bind(store).Values()
}

// Get returns the query struct for e, or nil if e does not match.
func (q *Query[T]) Get(store *Store, e Entity) *T {
	return q.bind(store).Get(e)
}

// Len counts the matching entities of store.
func (q *Query[T]) Len(store *Store) int {
	return q.bind(store).Entities().Len()
}

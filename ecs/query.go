package ecs

import "iter"

// Query is a View whose matches are collected once per frame.
// The Scheduler initialises and executes Query fields of registered systems before any
// system runs, so every system in a frame sees the same entity set.
type Query[T any] struct {
	view     *View[T]
	entities []EntityId
	items    []T
	executed bool
}

// NewQuery creates a query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops any cached results.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.entities = q.entities[:0]
	q.items = q.items[:0]
	q.executed = false
}

// Execute rebuilds the cached matches.
func (q *Query[T]) Execute() {
	q.entities = q.entities[:0]
	q.items = q.items[:0]
	for id, item := range q.view.All() {
		q.entities = append(q.entities, id)
		q.items = append(q.items, item)
	}
	q.executed = true
}

// Len returns the number of cached matches.
func (q *Query[T]) Len() int {
	return len(q.items)
}

// All iterates over cached ids and items. It panics if Execute has never run.
func (q *Query[T]) All() iter.Seq2[EntityId, T] {
	if !q.executed {
		panic("ecs: Query.All() called before Query.Execute()")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.items {
			if !yield(q.entities[i], q.items[i]) {
				return
			}
		}
	}
}

// Iter iterates over cached items. It panics if Execute has never run.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.executed {
		panic("ecs: Query.Iter() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for i := range q.items {
			if !yield(q.items[i]) {
				return
			}
		}
	}
}

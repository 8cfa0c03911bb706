package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton gives typed access to a component that belongs to no entity, such as
// configuration, the clock, or the latest input.
type Singleton[T any] struct {
	storage *Storage
	ptr     unsafe.Pointer
}

// NewSingleton returns a handle to the T singleton, creating it from initializer (or the
// zero value) when storage has none yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the handle to storage. The Scheduler calls it for Singleton fields of
// registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.refresh()
}

func (s *Singleton[T]) refresh() {
	s.ptr = nil
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.ptr = entry.dataPtr
	}
}

// Get returns the singleton, or nil if it has not been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.refresh()
	}
	return (*T)(s.ptr)
}

// Exists reports whether the singleton has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

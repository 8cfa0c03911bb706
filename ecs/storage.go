package ecs

import (
	"reflect"
	"slices"
	"unsafe"
)

// LifecycleHooks are invoked synchronously by Storage. Deleting runs before the entity's
// components are released, so the hook may still read them.
type LifecycleHooks struct {
	Spawned  func(id EntityId)
	Deleting func(id EntityId)
}

// Storage is the entity registry: archetype tables keyed by opaque EntityIds, plus
// singleton components that belong to no entity.
type Storage struct {
	registry   *ComponentRegistry
	archetypes map[uint32]*Archetype
	// order keeps archetypes in creation order so iteration is deterministic
	order      []*Archetype
	singletons map[reflect.Type]*singletonEntry
	hooks      LifecycleHooks
}

type singletonEntry struct {
	value   reflect.Value // *T
	dataPtr unsafe.Pointer
}

// NewStorage creates a new storage using the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: make(map[uint32]*Archetype),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// SetHooks replaces the lifecycle hooks.
func (s *Storage) SetHooks(hooks LifecycleHooks) {
	s.hooks = hooks
}

// Spawn creates a new entity with the provided components.
// Components may be passed by value or by pointer; the storage keeps its own copy.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}

	types, sorted := sortComponents(components)
	archetype := s.archetypeFor(types)
	id := NewEntityId(archetype.id, archetype.spawn(sorted))

	if s.hooks.Spawned != nil {
		s.hooks.Spawned(id)
	}
	return id
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := archetypeID(types)
	if archetype, ok := s.archetypes[id]; ok {
		return archetype
	}
	archetype := newArchetype(id, types, s.registry)
	s.archetypes[id] = archetype
	s.order = append(s.order, archetype)
	return archetype
}

// Delete removes the entity. Deleting a dead or unknown id is a no-op that returns false.
func (s *Storage) Delete(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !archetype.alive(id.Index()) {
		return false
	}

	if s.hooks.Deleting != nil {
		s.hooks.Deleting(id)
	}
	return archetype.delete(id.Index())
}

// Alive reports whether id refers to a live entity
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	return ok && archetype.alive(id.Index())
}

// GetComponent returns a pointer to the entity's component of compType, or nil
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.component(id.Index(), compType)
}

// HasComponent checks if a live entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	return s.GetComponent(id, compType) != nil
}

// Archetypes returns the archetypes in creation order
func (s *Storage) Archetypes() []*Archetype {
	return slices.Clone(s.order)
}

// AddSingleton stores value as the singleton of its type, replacing any previous one.
// Pointers obtained through earlier Singleton handles keep pointing at the old value.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		value = reflect.ValueOf(value).Elem().Interface()
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ReadSingleton fills target, which must be a **T, with the singleton of type T.
// It returns false when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Pointer {
		panic("ecs: ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.singletons[rv.Elem().Type().Elem()]
	if entry == nil {
		return false
	}
	rv.Elem().Set(entry.value)
	return true
}

// sortComponents extracts component types and returns types and components both in
// archetype order.
func sortComponents(components []any) ([]reflect.Type, []any) {
	type pair struct {
		typ  reflect.Type
		comp any
	}

	pairs := make([]pair, len(components))
	for i, comp := range components {
		pairs[i] = pair{typ: componentType(comp), comp: comp}
	}
	slices.SortFunc(pairs, func(a, b pair) int { return compareTypes(a.typ, b.typ) })

	types := make([]reflect.Type, len(pairs))
	sorted := make([]any, len(pairs))
	for i, p := range pairs {
		if i > 0 && types[i-1] == p.typ {
			panic("ecs: duplicate component type " + p.typ.String())
		}
		types[i] = p.typ
		sorted[i] = p.comp
	}
	return types, sorted
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t == nil {
		panic("ecs: nil component")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		panic("ecs: components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// ComponentReader is anything that resolves components by entity and type.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil when it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}

package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View projects entities onto a struct of component pointers.
//
// Every pointer field names a component type. Embedded pointer fields are required;
// named pointer fields may be tagged `ecs:"optional"` and are left nil when the entity
// lacks the component. A field of type EntityId (embedded or named) receives the
// entity's id.
type View[T any] struct {
	storage  *Storage
	types    []reflect.Type
	optional []bool
	offsets  []uintptr

	idOffset uintptr
	hasId    bool
}

// NewView creates a view over storage for the struct type T. It panics if T is not a
// struct of component pointers.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}
		if field.Type.Kind() != reflect.Pointer {
			panic("ecs: View struct fields must be component pointers or EntityId, got " + field.Type.String())
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("ecs: invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, optional)
		v.offsets = append(v.offsets, field.Offset)
	}
	return v
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for i, typ := range v.types {
		if !v.optional[i] && !archetype.HasComponent(typ) {
			return false
		}
	}
	return true
}

// columns maps each view field to the archetype column holding it, or -1.
func (v *View[T]) columns(archetype *Archetype) []int {
	cols := make([]int, len(v.types))
	for i, typ := range v.types {
		cols[i] = archetype.columnIndex(typ)
	}
	return cols
}

func (v *View[T]) populate(dst *T, archetype *Archetype, index int, cols []int) bool {
	base := unsafe.Pointer(dst)
	if v.hasId {
		*(*EntityId)(unsafe.Add(base, v.idOffset)) = NewEntityId(archetype.id, uint32(index))
	}

	for i, col := range cols {
		field := (*unsafe.Pointer)(unsafe.Add(base, v.offsets[i]))

		var comp any
		if col >= 0 {
			comp = archetype.columns[col].Get(index)
		}
		if comp == nil {
			if !v.optional[i] {
				return false
			}
			*field = nil
			continue
		}
		*field = (*iface)(unsafe.Pointer(&comp)).data
	}
	return true
}

// Fill populates dst for id. It returns false if the entity is dead or misses a
// required component.
func (v *View[T]) Fill(id EntityId, dst *T) bool {
	archetype, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok || !archetype.alive(id.Index()) || !v.matches(archetype) {
		return false
	}
	return v.populate(dst, archetype, int(id.Index()), v.columns(archetype))
}

// Get returns the populated view for id, or nil
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// All iterates over every matching entity with its id.
func (v *View[T]) All() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.order {
			if !v.matches(archetype) || len(archetype.columns) == 0 {
				continue
			}
			cols := v.columns(archetype)

			var result T
			for index := range archetype.columns[0].Iter() {
				if !v.populate(&result, archetype, index, cols) {
					continue
				}
				if !yield(NewEntityId(archetype.id, uint32(index)), result) {
					return
				}
			}
		}
	}
}

// Iter iterates over the populated view structs of every matching entity.
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.All() {
			if !yield(item) {
				return
			}
		}
	}
}

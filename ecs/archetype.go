package ecs

import (
	"reflect"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Archetype holds every entity sharing one exact set of component types.
// Columns are parallel: slot i of each column belongs to the same entity.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentColumn
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
	}
	for i, typ := range types {
		a.columns[i] = registry.newColumn(typ)
	}
	return a
}

// ID returns the archetype's identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return a.columnIndex(compType) >= 0
}

func (a *Archetype) columnIndex(compType reflect.Type) int {
	return slices.Index(a.types, compType)
}

// spawn appends one entity. components must be sorted in the archetype's type order.
func (a *Archetype) spawn(components []any) uint32 {
	index := -1
	for i, comp := range components {
		index = a.columns[i].Append(comp)
	}
	return uint32(index)
}

func (a *Archetype) component(index uint32, compType reflect.Type) any {
	col := a.columnIndex(compType)
	if col < 0 {
		return nil
	}
	return a.columns[col].Get(int(index))
}

func (a *Archetype) alive(index uint32) bool {
	return len(a.columns) > 0 && a.columns[0].Has(int(index))
}

// delete removes the entity's slot from every column and reports whether it was alive.
func (a *Archetype) delete(index uint32) bool {
	deleted := false
	for _, col := range a.columns {
		if col.Delete(int(index)) {
			deleted = true
		}
	}
	return deleted
}

// Iter yields the id of every live entity in this archetype
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

// sortTypes orders component types by name so that any permutation of the same set
// resolves to the same archetype.
func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, compareTypes)
}

func compareTypes(a, b reflect.Type) int {
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	return strings.Compare(a.PkgPath(), b.PkgPath())
}

// archetypeID hashes a sorted type set. Type names are package-qualified, so the id is
// stable across runs of the same binary.
func archetypeID(types []reflect.Type) uint32 {
	d := xxhash.New()
	for _, t := range types {
		_, _ = d.WriteString(t.PkgPath())
		_, _ = d.WriteString(".")
		_, _ = d.WriteString(t.String())
		_, _ = d.WriteString(";")
	}
	sum := d.Sum64()
	id := uint32(sum) ^ uint32(sum>>32)
	if id == 0 {
		// archetype 0 would make slot 0 encode as the zero EntityId
		id = 1
	}
	return id
}

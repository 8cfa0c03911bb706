package sim

import (
	"github.com/plus3/steer/ecs"
	"github.com/plus3/steer/vmath"
)

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/plus3/steer/sim Observer

// SpawnEvent describes a newly created entity.
type SpawnEvent struct {
	ID       ecs.EntityId
	Kind     Kind
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float32
}

// Observer is told about entity lifecycle changes. Calls happen synchronously on the
// goroutine driving the world, after the tick's systems have run.
//
// Ids are recycled: after OnDespawn(id) a later OnSpawn may carry the same id for a
// different entity. Within a tick every OnDespawn is delivered before any OnSpawn, so an
// observer that forgets ids on despawn never sees two live entities share one.
type Observer interface {
	OnSpawn(SpawnEvent)
	OnDespawn(ecs.EntityId)
}

func spawnEvent(storage *ecs.Storage, id ecs.EntityId) SpawnEvent {
	ev := SpawnEvent{ID: id}
	if k := ecs.ReadComponent[Kind](storage, id); k != nil {
		ev.Kind = *k
	}
	if p := ecs.ReadComponent[Position](storage, id); p != nil {
		ev.Position = p.Vec2
	}
	if v := ecs.ReadComponent[Velocity](storage, id); v != nil {
		ev.Velocity = v.Vec2
	}
	if s := ecs.ReadComponent[Shape](storage, id); s != nil {
		ev.Radius = s.Radius
	}
	return ev
}

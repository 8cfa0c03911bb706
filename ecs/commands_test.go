package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/steer/ecs"
)

type testSpawnSystem struct {
	executed bool
}

func (s *testSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.executed = true
	frame.Commands.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	frame.Commands.Spawn(Position{X: 3, Y: 4})
}

type testDeleteSystem struct {
	entityToDelete ecs.EntityId
}

func (s *testDeleteSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Delete(s.entityToDelete)
}

type testMixedSystem struct {
	entity ecs.EntityId
}

func (s *testMixedSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Position{X: 10, Y: 20})
	frame.Commands.Delete(s.entity)
	frame.Commands.Spawn(Health{Current: 100, Max: 100})
}

type testDeferSystem struct {
	entity ecs.EntityId
	alive  *bool
}

func (s *testDeferSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Delete(s.entity)
	frame.Commands.Defer(func() {
		*s.alive = frame.Storage.Alive(s.entity)
	})
}

func TestCommands(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)

	t.Run("spawn entities", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		system := &testSpawnSystem{}
		scheduler.Register(system)

		view := ecs.NewView[struct{ *Position }](storage)
		count := 0
		for range view.Iter() {
			count++
		}
		if count != 0 {
			t.Error("entities spawned before frame execution")
		}

		scheduler.Once(1.0)

		count = 0
		for range view.Iter() {
			count++
		}
		if count != 2 {
			t.Errorf("expected 2 entities after frame, got %d", count)
		}

		if !system.executed {
			t.Error("system was not executed")
		}
	})

	t.Run("delete entities", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		e1 := storage.Spawn(Position{X: 1, Y: 2})
		e2 := storage.Spawn(Position{X: 3, Y: 4})

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&testDeleteSystem{entityToDelete: e1})

		if storage.GetComponent(e1, reflect.TypeOf(Position{})) == nil {
			t.Error("entity deleted before frame execution")
		}

		scheduler.Once(1.0)

		if storage.GetComponent(e1, reflect.TypeOf(Position{})) != nil {
			t.Error("entity not deleted after frame")
		}
		if storage.GetComponent(e2, reflect.TypeOf(Position{})) == nil {
			t.Error("wrong entity deleted")
		}
	})

	t.Run("duplicate deletes across systems", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		e1 := storage.Spawn(Position{X: 1, Y: 2})

		deletes := 0
		storage.SetHooks(ecs.LifecycleHooks{
			Deleting: func(ecs.EntityId) { deletes++ },
		})

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&testDeleteSystem{entityToDelete: e1})
		scheduler.Register(&testDeleteSystem{entityToDelete: e1})
		scheduler.Once(1.0)

		if deletes != 1 {
			t.Errorf("expected entity to be deleted once, got %d", deletes)
		}
	})

	t.Run("mixed operations", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		e1 := storage.Spawn(Position{X: 1, Y: 2})

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&testMixedSystem{entity: e1})
		scheduler.Once(1.0)

		view := ecs.NewView[struct{ *Position }](storage)
		count := 0
		for item := range view.Iter() {
			count++
			if item.Position.X != 10 {
				t.Errorf("unexpected surviving position %+v", *item.Position)
			}
		}
		if count != 1 {
			t.Errorf("expected 1 position entity, got %d", count)
		}
	})

	t.Run("defers run after structural changes", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		e1 := storage.Spawn(Position{X: 1, Y: 2})

		alive := true
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&testDeferSystem{entity: e1, alive: &alive})
		scheduler.Once(1.0)

		if alive {
			t.Error("deferred function observed the entity before its deletion was applied")
		}
	})

	t.Run("flush resets the buffer", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&testSpawnSystem{})

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		view := ecs.NewView[struct{ *Position }](storage)
		count := 0
		for range view.Iter() {
			count++
		}
		if count != 4 {
			t.Errorf("expected 4 entities after two frames, got %d", count)
		}
	})
}

package ecs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/steer/ecs"
)

type Point struct {
	X, Y float32
}

type Drift struct {
	DX, DY float32
}

type Fuse struct {
	Remaining float32
}

type Elapsed struct {
	Frames  int
	Seconds float64
}

type DriftSystem struct {
	Entities ecs.Query[struct {
		*Point
		*Drift
	}]
}

func (s *DriftSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Iter() {
		entity.X += entity.DX * float32(frame.DeltaTime)
		entity.Y += entity.DY * float32(frame.DeltaTime)
	}
}

type FuseSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Fuse
	}]
}

func (s *FuseSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Iter() {
		entity.Remaining -= float32(frame.DeltaTime)
		if entity.Remaining <= 0 {
			frame.Commands.Delete(entity.EntityId)
		}
	}
}

type ClockSystem struct {
	Elapsed ecs.Singleton[Elapsed]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	e := s.Elapsed.Get()
	e.Frames++
	e.Seconds += frame.DeltaTime
}

// ExampleScheduler runs a short fixed-step loop. Query and Singleton fields are bound at
// registration, queries refresh at the start of every frame, and deletes queued through
// Commands are applied once all systems have run.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Point](registry)
	ecs.RegisterComponent[Drift](registry)
	ecs.RegisterComponent[Fuse](registry)
	storage := ecs.NewStorage(registry)
	storage.AddSingleton(Elapsed{})

	storage.Spawn(Point{X: 0, Y: 0}, Drift{DX: 10, DY: 5})
	storage.Spawn(Point{X: 100, Y: 100}, Drift{DX: -5, DY: -5}, Fuse{Remaining: 1.5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClockSystem{})
	scheduler.Register(&DriftSystem{})
	scheduler.Register(&FuseSystem{})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	view := ecs.NewView[struct{ *Point }](storage)
	for item := range view.Iter() {
		fmt.Printf("point at (%.0f, %.0f)\n", item.X, item.Y)
	}

	var elapsed *Elapsed
	storage.ReadSingleton(&elapsed)
	fmt.Printf("%d frames, %.1fs\n", elapsed.Frames, elapsed.Seconds)

	// Output:
	// point at (20, 10)
	// 2 frames, 2.0s
}

// ExampleScheduler_Run drives frames from a ticker until the context ends.
func ExampleScheduler_Run() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Point](registry)
	ecs.RegisterComponent[Drift](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Point{}, Drift{DX: 1, DY: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&DriftSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 5*time.Millisecond)

	fmt.Println("stopped after", scheduler.GetStats().Systems[0].ExecutionCount > 0)
	// Output:
	// stopped after true
}

// ExampleNewSingleton shows that every handle to a singleton type shares one value.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	first := ecs.NewSingleton[Elapsed](storage, Elapsed{Frames: 1})
	second := ecs.NewSingleton[Elapsed](storage)

	second.Get().Frames = 7
	fmt.Println(first.Get().Frames)

	// Output:
	// 7
}

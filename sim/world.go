// Package sim is the steering simulation: one commander seeking a target and firing
// projectiles inside a bounded world, with pairwise removal of colliding entities.
//
// A World owns its ECS storage and scheduler and is driven one tick at a time by its
// host. It is not safe for concurrent use.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/plus3/steer/config"
	"github.com/plus3/steer/ecs"
	"github.com/plus3/steer/vmath"
	"go.uber.org/zap"
)

// ErrInvalidDelta is returned by Tick for negative or non-finite delta times.
var ErrInvalidDelta = errors.New("invalid delta time")

// EntityState is a read-only snapshot of one entity.
type EntityState struct {
	ID       ecs.EntityId
	Kind     Kind
	Position vmath.Vec2
	Velocity vmath.Vec2
	Force    vmath.Vec2
	Radius   float32
}

type entityView struct {
	ecs.EntityId
	Position *Position
	Velocity *Velocity `ecs:"optional"`
	Steering *Steering `ecs:"optional"`
	Shape    *Shape    `ecs:"optional"`
	Kind     *Kind     `ecs:"optional"`
}

func (v entityView) state() EntityState {
	s := EntityState{ID: v.EntityId, Position: v.Position.Vec2}
	if v.Velocity != nil {
		s.Velocity = v.Velocity.Vec2
	}
	if v.Steering != nil {
		s.Force = v.Steering.Force
	}
	if v.Shape != nil {
		s.Radius = v.Shape.Radius
	}
	if v.Kind != nil {
		s.Kind = *v.Kind
	}
	return s
}

type Option func(*World)

// WithObserver adds a lifecycle observer. Observers are notified in the order added.
func WithObserver(o Observer) Option {
	return func(w *World) { w.observers = append(w.observers, o) }
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *World) { w.logger = logger }
}

// WithComponents registers extra component types, for hosts that attach their own
// components (overlay items, sprites) to the world's storage.
func WithComponents(register func(*ecs.ComponentRegistry)) Option {
	return func(w *World) { register(w.registry) }
}

type World struct {
	cfg       config.Config
	registry  *ecs.ComponentRegistry
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	logger    *zap.Logger
	observers []Observer

	pending   Intent
	commander ecs.EntityId
	entities  *ecs.View[entityView]
	clock     *ecs.Singleton[Clock]
	input     *ecs.Singleton[Input]
}

// New validates cfg and builds a world with the commander and the configured obstacles.
func New(cfg config.Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		cfg:      cfg,
		registry: ecs.NewComponentRegistry(),
		logger:   zap.NewNop(),
	}
	RegisterComponents(w.registry)
	for _, opt := range opts {
		opt(w)
	}

	w.storage = ecs.NewStorage(w.registry)
	w.storage.SetHooks(ecs.LifecycleHooks{
		Spawned:  w.onSpawned,
		Deleting: w.onDeleting,
	})

	w.storage.AddSingleton(paramsFromConfig(cfg))
	w.clock = ecs.NewSingleton[Clock](w.storage)
	w.input = ecs.NewSingleton[Input](w.storage)
	w.entities = ecs.NewView[entityView](w.storage)

	w.scheduler = ecs.NewScheduler(w.storage)
	w.scheduler.Register(&ClockSystem{})
	w.scheduler.Register(&InputSystem{pending: &w.pending})
	w.scheduler.Register(&SteeringSystem{})
	w.scheduler.Register(&IntegrateSystem{})
	w.scheduler.Register(&BoundarySystem{})
	w.scheduler.Register(&CollisionSystem{})
	w.scheduler.Register(&LifetimeSystem{})
	w.scheduler.Register(&AttackSystem{})

	w.commander = w.storage.Spawn(
		Position{vmath.V(cfg.Commander.X, cfg.Commander.Y)},
		Velocity{},
		Steering{},
		Mass{Value: cfg.Commander.Mass},
		Shape{Radius: cfg.Commander.Radius},
		NewAttackAbility(cfg.Commander.Cooldown),
		KindCommander,
		Commander{},
	)
	for _, o := range cfg.Obstacles {
		w.storage.Spawn(
			Position{vmath.V(o.X, o.Y)},
			Shape{Radius: o.Radius},
			KindObstacle,
			DeathOnCollide{},
		)
	}

	w.logger.Info("world created",
		zap.Float32("max_force", cfg.Steering.MaxForce),
		zap.String("radius_rule", cfg.Collision.RadiusRule),
		zap.Int("obstacles", len(cfg.Obstacles)),
	)
	return w, nil
}

func (w *World) onSpawned(id ecs.EntityId) {
	ev := spawnEvent(w.storage, id)
	w.logger.Debug("spawn", zap.Uint64("id", uint64(id)), zap.Stringer("kind", ev.Kind))
	for _, o := range w.observers {
		o.OnSpawn(ev)
	}
}

func (w *World) onDeleting(id ecs.EntityId) {
	w.logger.Debug("despawn", zap.Uint64("id", uint64(id)))
	for _, o := range w.observers {
		o.OnDespawn(id)
	}
}

// SetInput stores the intent used by subsequent ticks.
func (w *World) SetInput(intent Intent) {
	w.pending = intent
}

// TickWith sets intent and advances the world by dt.
func (w *World) TickWith(dt float32, intent Intent) error {
	w.SetInput(intent)
	return w.Tick(dt)
}

// Tick runs one simulation step of dt seconds. A zero dt is a valid tick that moves
// nothing; negative or non-finite values return ErrInvalidDelta and change nothing.
func (w *World) Tick(dt float32) error {
	if dt < 0 || math.IsNaN(float64(dt)) || math.IsInf(float64(dt), 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	w.scheduler.Once(float64(dt))
	return nil
}

// Now returns elapsed simulation time in seconds.
func (w *World) Now() float64 {
	return w.clock.Get().Now
}

// Frame returns the number of ticks run.
func (w *World) Frame() uint64 {
	return w.clock.Get().Frame
}

// Intent returns the intent seen by the most recent tick.
func (w *World) Intent() Intent {
	return w.input.Get().Intent
}

// Entities snapshots every positioned entity.
func (w *World) Entities() []EntityState {
	var out []EntityState
	for _, v := range w.entities.All() {
		out = append(out, v.state())
	}
	return out
}

// Commander snapshots the commander. It reports false once the commander is gone.
func (w *World) Commander() (EntityState, bool) {
	v := w.entities.Get(w.commander)
	if v == nil {
		return EntityState{}, false
	}
	return v.state(), true
}

func (w *World) Config() config.Config { return w.cfg }

func (w *World) Bounds() Bounds { return BoundsFromConfig(w.cfg.World) }

// Storage exposes the underlying entity store for overlays and statistics.
func (w *World) Storage() *ecs.Storage { return w.storage }

func (w *World) Scheduler() *ecs.Scheduler { return w.scheduler }

// AddSystem appends a system to run after the simulation stages each tick.
func (w *World) AddSystem(system ecs.System) {
	w.scheduler.Register(system)
}

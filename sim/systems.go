package sim

import (
	"github.com/plus3/steer/ecs"
	"github.com/plus3/steer/steering"
	"github.com/plus3/steer/vmath"
)

// ClockSystem advances simulation time.
type ClockSystem struct {
	Clock ecs.Singleton[Clock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	c := s.Clock.Get()
	c.Now += frame.DeltaTime
	c.Frame++
}

// InputSystem publishes the pending intent for the rest of the tick.
type InputSystem struct {
	Input   ecs.Singleton[Input]
	pending *Intent
}

func (s *InputSystem) Execute(*ecs.UpdateFrame) {
	s.Input.Get().Intent = *s.pending
}

// SteeringSystem turns the commander's intent into a steering force.
type SteeringSystem struct {
	Commanders ecs.Query[struct {
		*Position
		*Velocity
		*Steering
		*Mass
		*Commander
	}]
	Input  ecs.Singleton[Input]
	Params ecs.Singleton[Params]
}

func (s *SteeringSystem) Execute(*ecs.UpdateFrame) {
	intent := s.Input.Get().Intent
	params := s.Params.Get()

	for c := range s.Commanders.Iter() {
		c.Force = CommanderForce(intent, c.Position.Vec2, c.Velocity.Vec2, c.Mass.Value, params.SlowingRadius)
	}
}

// CommanderForce is the steering force for one commander under intent.
func CommanderForce(intent Intent, position, velocity vmath.Vec2, mass, slowingRadius float32) vmath.Vec2 {
	switch intent.Move {
	case MoveTarget:
		return steering.Seek(position, intent.Target, velocity, mass, slowingRadius)
	case MoveDirection:
		desired := intent.Direction.NormalizeOrZero().Scale(steering.MaxSpeed)
		return steering.DesiredToForce(desired, velocity, mass)
	default:
		return vmath.Zero
	}
}

// IntegrateSystem applies steering forces to velocities, then velocities to positions.
// Only steered entities have their speed clamped to steering.MaxSpeed; projectiles keep
// their launch velocity.
type IntegrateSystem struct {
	Steered ecs.Query[struct {
		*Velocity
		*Steering
	}]
	Moving ecs.Query[struct {
		*Position
		*Velocity
	}]
	Params ecs.Singleton[Params]
}

func (s *IntegrateSystem) Execute(frame *ecs.UpdateFrame) {
	maxForce := s.Params.Get().MaxForce
	for e := range s.Steered.Iter() {
		e.Velocity.Vec2 = ApplyForce(e.Velocity.Vec2, e.Force, maxForce)
	}

	dt := float32(frame.DeltaTime)
	for e := range s.Moving.Iter() {
		e.Position.Vec2 = Advance(e.Position.Vec2, e.Velocity.Vec2, dt)
	}
}

// BoundarySystem keeps moving entities inside the world rectangle.
type BoundarySystem struct {
	Moving ecs.Query[struct {
		*Position
		*Velocity
	}]
	Params ecs.Singleton[Params]
}

func (s *BoundarySystem) Execute(*ecs.UpdateFrame) {
	bounds := s.Params.Get().Bounds
	for e := range s.Moving.Iter() {
		e.Position.Vec2 = bounds.Clamp(e.Position.Vec2)
	}
}

// CollisionSystem removes every DeathOnCollide entity overlapping another one.
type CollisionSystem struct {
	Colliders ecs.Query[struct {
		ecs.EntityId
		*Position
		*Shape
		*DeathOnCollide
	}]
	Params ecs.Singleton[Params]

	set      *CollisionSet
	snapshot []Collider
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	if s.set == nil {
		s.set = NewCollisionSet()
	}

	s.snapshot = s.snapshot[:0]
	for c := range s.Colliders.Iter() {
		s.snapshot = append(s.snapshot, Collider{ID: c.EntityId, Position: c.Position.Vec2, Radius: c.Radius})
	}

	for _, id := range s.set.Scan(s.snapshot, s.Params.Get().RadiusRule) {
		frame.Commands.Delete(id)
	}
}

// LifetimeSystem expires entities whose Lifetime has run out.
type LifetimeSystem struct {
	Timed ecs.Query[struct {
		ecs.EntityId
		*Lifetime
	}]
}

func (s *LifetimeSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Timed.Iter() {
		e.Remaining -= frame.DeltaTime
		if e.Remaining <= 0 {
			frame.Commands.Delete(e.EntityId)
		}
	}
}

// AttackSystem fires projectiles from commanders whose cooldown has elapsed.
type AttackSystem struct {
	Attackers ecs.Query[struct {
		*Position
		*AttackAbility
		*Commander
	}]
	Input  ecs.Singleton[Input]
	Clock  ecs.Singleton[Clock]
	Params ecs.Singleton[Params]
}

func (s *AttackSystem) Execute(frame *ecs.UpdateFrame) {
	intent := s.Input.Get().Intent
	now := s.Clock.Get().Now
	params := s.Params.Get()

	for a := range s.Attackers.Iter() {
		shot, ok := TryFire(intent.Fire, now, a.Position.Vec2, a.AttackAbility, intent.FireTarget, params.ProjectileSpeed)
		if !ok {
			continue
		}
		frame.Commands.Spawn(projectileComponents(shot, params)...)
	}
}

func projectileComponents(shot ProjectileSpec, params *Params) []any {
	components := []any{
		Position{shot.Position},
		Velocity{shot.Velocity},
		Shape{Radius: params.ProjectileSize},
		KindProjectile,
		Projectile{},
		DeathOnCollide{},
	}
	if params.ProjectileLife > 0 {
		components = append(components, Lifetime{Remaining: params.ProjectileLife})
	}
	return components
}

package sim

import (
	"math"

	"github.com/plus3/steer/config"
	"github.com/plus3/steer/ecs"
	"github.com/plus3/steer/vmath"
)

// Position is an entity's location in world space.
type Position struct{ vmath.Vec2 }

// Velocity is in world units per second.
type Velocity struct{ vmath.Vec2 }

// Steering holds the force requested for the current tick. It is recomputed every tick
// and consumed by integration.
type Steering struct {
	Force vmath.Vec2
}

type Mass struct {
	Value float32
}

// Kind classifies an entity for observers and renderers.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCommander
	KindProjectile
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindCommander:
		return "commander"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Commander marks the player-controlled entity.
type Commander struct{}

// AttackAbility gates firing. LastAttack is simulation time in seconds.
type AttackAbility struct {
	Cooldown   float64
	LastAttack float64
}

// NewAttackAbility returns an ability that has never fired.
func NewAttackAbility(cooldown float64) AttackAbility {
	return AttackAbility{Cooldown: cooldown, LastAttack: math.Inf(-1)}
}

// Shape is the circle used for collision.
type Shape struct {
	Radius float32
}

// DeathOnCollide marks entities removed when they overlap another marked entity.
type DeathOnCollide struct{}

type Projectile struct{}

// Lifetime removes its entity once Remaining reaches zero.
type Lifetime struct {
	Remaining float64
}

// Clock is the simulation-time singleton.
type Clock struct {
	Now   float64
	Frame uint64
}

// Input is the singleton holding this tick's intent.
type Input struct {
	Intent Intent
}

// Params is the singleton holding the tunables systems read every tick.
type Params struct {
	MaxForce        float32
	SlowingRadius   float32
	Bounds          Bounds
	RadiusRule      RadiusRule
	ProjectileSpeed float32
	ProjectileSize  float32
	ProjectileLife  float64
}

func paramsFromConfig(cfg config.Config) Params {
	rule := RadiusSum
	if cfg.Collision.RadiusRule == config.RadiusRuleDoubledFirst {
		rule = RadiusDoubledFirst
	}
	return Params{
		MaxForce:        cfg.Steering.MaxForce,
		SlowingRadius:   cfg.Steering.SlowingRadius,
		Bounds:          BoundsFromConfig(cfg.World),
		RadiusRule:      rule,
		ProjectileSpeed: cfg.Projectile.SpeedMultiplier,
		ProjectileSize:  cfg.Projectile.Radius,
		ProjectileLife:  cfg.Projectile.Lifetime,
	}
}

// RegisterComponents registers every component the simulation spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Steering](registry)
	ecs.RegisterComponent[Mass](registry)
	ecs.RegisterComponent[Kind](registry)
	ecs.RegisterComponent[Commander](registry)
	ecs.RegisterComponent[AttackAbility](registry)
	ecs.RegisterComponent[Shape](registry)
	ecs.RegisterComponent[DeathOnCollide](registry)
	ecs.RegisterComponent[Projectile](registry)
	ecs.RegisterComponent[Lifetime](registry)
}

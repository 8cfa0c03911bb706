package sim

import (
	"github.com/plus3/steer/steering"
	"github.com/plus3/steer/vmath"
)

// ProjectileSpec describes a projectile to spawn.
type ProjectileSpec struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
}

// TryFire fires when mode is FireActive and the cooldown has elapsed strictly before now.
// On success it records now as the ability's last attack. The projectile leaves origin
// toward target at speedMultiplier times steering.MaxSpeed; a target equal to origin
// yields a stationary projectile.
func TryFire(mode FireMode, now float64, origin vmath.Vec2, ability *AttackAbility, target vmath.Vec2, speedMultiplier float32) (ProjectileSpec, bool) {
	if mode != FireActive || !(ability.LastAttack+ability.Cooldown < now) {
		return ProjectileSpec{}, false
	}
	ability.LastAttack = now

	dir := target.Sub(origin).NormalizeOrZero()
	return ProjectileSpec{
		Position: origin,
		Velocity: dir.Scale(steering.MaxSpeed * speedMultiplier),
	}, true
}

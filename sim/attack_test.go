package sim

import (
	"testing"

	"github.com/plus3/steer/steering"
	"github.com/plus3/steer/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryFireCooldown(t *testing.T) {
	ability := NewAttackAbility(0.5)
	origin := vmath.V(0, 0)
	target := vmath.V(10, 0)

	_, fired := TryFire(FireActive, 0.0, origin, &ability, target, 2)
	assert.True(t, fired, "a fresh ability fires immediately")
	assert.Equal(t, 0.0, ability.LastAttack)

	_, fired = TryFire(FireActive, 0.3, origin, &ability, target, 2)
	assert.False(t, fired, "still cooling down")
	assert.Equal(t, 0.0, ability.LastAttack)

	_, fired = TryFire(FireActive, 0.5, origin, &ability, target, 2)
	assert.False(t, fired, "cooldown must be strictly exceeded")

	_, fired = TryFire(FireActive, 0.6, origin, &ability, target, 2)
	assert.True(t, fired)
	assert.Equal(t, 0.6, ability.LastAttack)
}

func TestTryFireIdle(t *testing.T) {
	ability := NewAttackAbility(0)
	_, fired := TryFire(FireIdle, 10, vmath.Zero, &ability, vmath.V(1, 1), 2)
	assert.False(t, fired)
	assert.Less(t, ability.LastAttack, 0.0)
}

func TestTryFireVelocity(t *testing.T) {
	ability := NewAttackAbility(0.5)
	shot, fired := TryFire(FireActive, 1, vmath.V(10, 10), &ability, vmath.V(10, 50), 2)
	require.True(t, fired)

	assert.Equal(t, vmath.V(10, 10), shot.Position)
	assert.InDelta(t, 0, shot.Velocity.X, eps)
	assert.InDelta(t, 2*steering.MaxSpeed, shot.Velocity.Y, eps)
}

func TestTryFireZeroDirection(t *testing.T) {
	ability := NewAttackAbility(0.5)
	shot, fired := TryFire(FireActive, 1, vmath.V(3, 3), &ability, vmath.V(3, 3), 2)
	require.True(t, fired)
	assert.Equal(t, vmath.Zero, shot.Velocity, "projectile spawns stationary")
}

// Package steering computes seek forces for point-mass agents.
package steering

import "github.com/plus3/steer/vmath"

const (
	// MaxSpeed is the global speed limit for steered agents, in world units per second.
	MaxSpeed float32 = 100

	// DefaultSlowingRadius is the distance at which seek starts to decelerate.
	DefaultSlowingRadius float32 = 50
)

// DesiredVelocity is the velocity seek aims for: full MaxSpeed toward target, scaled down
// linearly inside slowingRadius so the agent arrives at rest. A non-positive slowingRadius
// disables arrival.
func DesiredVelocity(position, target vmath.Vec2, slowingRadius float32) vmath.Vec2 {
	offset := target.Sub(position)
	distance := offset.Length()
	dir := offset.NormalizeOrZero()

	if slowingRadius > 0 && distance <= slowingRadius {
		return dir.Scale(MaxSpeed * distance / slowingRadius)
	}
	return dir.Scale(MaxSpeed)
}

// DesiredToForce turns a desired velocity into a steering force: (desired - velocity) / mass.
// A non-positive mass counts as 1.
func DesiredToForce(desired, velocity vmath.Vec2, mass float32) vmath.Vec2 {
	if mass <= 0 {
		mass = 1
	}
	return desired.Sub(velocity).Scale(1 / mass)
}

// Seek returns the force steering an agent at position with the given velocity toward
// target. When target equals position the result is -velocity/mass, a braking force.
func Seek(position, target, velocity vmath.Vec2, mass, slowingRadius float32) vmath.Vec2 {
	return DesiredToForce(DesiredVelocity(position, target, slowingRadius), velocity, mass)
}

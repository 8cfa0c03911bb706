package sim

import "github.com/plus3/steer/vmath"

// MoveMode says how the commander wants to move this tick.
type MoveMode uint8

const (
	MoveNone MoveMode = iota
	// MoveDirection steers along Intent.Direction at full speed.
	MoveDirection
	// MoveTarget seeks Intent.Target with arrival.
	MoveTarget
)

type FireMode uint8

const (
	FireIdle FireMode = iota
	FireActive
)

// Intent is the player's input for one tick, already translated into world space.
// The zero value moves nowhere and does not fire.
type Intent struct {
	Move       MoveMode
	Direction  vmath.Vec2
	Target     vmath.Vec2
	Fire       FireMode
	FireTarget vmath.Vec2
}

package sim

import (
	"github.com/plus3/steer/config"
	"github.com/plus3/steer/steering"
	"github.com/plus3/steer/vmath"
)

// ApplyForce adds force, clamped to maxForce, to velocity and returns the result clamped
// to steering.MaxSpeed.
func ApplyForce(velocity, force vmath.Vec2, maxForce float32) vmath.Vec2 {
	v := velocity.Add(force.ClampLength(maxForce))
	return v.ClampLength(steering.MaxSpeed)
}

// Advance integrates position over dt seconds.
func Advance(position, velocity vmath.Vec2, dt float32) vmath.Vec2 {
	return position.Add(velocity.Scale(dt))
}

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Min, Max vmath.Vec2
}

// DefaultBounds is the [-300,300]x[-200,200] world rectangle.
var DefaultBounds = Bounds{Min: vmath.V(-300, -200), Max: vmath.V(300, 200)}

func BoundsFromConfig(w config.WorldConfig) Bounds {
	return Bounds{Min: vmath.V(w.MinX, w.MinY), Max: vmath.V(w.MaxX, w.MaxY)}
}

// Clamp returns p moved into b, each axis independently.
func (b Bounds) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.V(
		vmath.Clamp(p.X, b.Min.X, b.Max.X),
		vmath.Clamp(p.Y, b.Min.Y, b.Max.Y),
	)
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p vmath.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

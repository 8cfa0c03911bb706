// Package vmath holds the float32 2D vector math used by the simulation.
// Every operation is total: zero-length inputs produce zero vectors, never NaN.
package vmath

import "math"

// Vec2 is a 2D vector in world units. The world's y axis points up.
type Vec2 struct {
	X, Y float32
}

// Zero is the zero vector.
var Zero = Vec2{}

func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) LengthSq() float32 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns |o - v|.
func (v Vec2) Distance(o Vec2) float32 { return o.Sub(v).Length() }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// NormalizeOrZero returns the unit vector in v's direction, or the zero vector when v has
// no usable length.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := math.Hypot(float64(v.X), float64(v.Y))
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Zero
	}
	return Vec2{float32(float64(v.X) / l), float32(float64(v.Y) / l)}
}

// ClampLength returns v scaled down so its length is at most maxLen. Vectors already
// within the limit are returned unchanged. A negative maxLen is treated as zero.
func (v Vec2) ClampLength(maxLen float32) Vec2 {
	if maxLen <= 0 {
		return Zero
	}
	if v.Length() <= maxLen {
		return v
	}
	return v.NormalizeOrZero().Scale(maxLen)
}

// MoveTowards steps from current toward target by at most maxDelta, landing exactly on
// target when it is within reach. A negative maxDelta moves away from target.
func MoveTowards(current, target Vec2, maxDelta float32) Vec2 {
	to := target.Sub(current)
	sq := to.LengthSq()
	if sq == 0 || (maxDelta >= 0 && sq <= maxDelta*maxDelta) {
		return target
	}
	dist := float32(math.Sqrt(float64(sq)))
	return Vec2{
		current.X + to.X/dist*maxDelta,
		current.Y + to.Y/dist*maxDelta,
	}
}

// Clamp returns x limited to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

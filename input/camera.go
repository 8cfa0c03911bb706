// Package input turns host input into simulation intent.
//
// Nothing here touches a windowing library: the host samples its devices into a State
// and the Translator maps it to a sim.Intent through the Camera.
package input

import "github.com/plus3/steer/vmath"

// Camera is a 2D view centred on Position. Screen space has its origin top-left with y
// pointing down; world space has y pointing up.
type Camera struct {
	Position vmath.Vec2
	Zoom     float32
	ScreenW  int
	ScreenH  int
}

func (c Camera) zoom() float32 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// ScreenToWorld maps a screen pixel to world space.
func (c Camera) ScreenToWorld(sx, sy float32) vmath.Vec2 {
	z := c.zoom()
	px := (sx - float32(c.ScreenW)/2) / z
	py := (sy - float32(c.ScreenH)/2) / z
	return vmath.V(px, -py).Add(c.Position)
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c Camera) WorldToScreen(p vmath.Vec2) (float32, float32) {
	z := c.zoom()
	rel := p.Sub(c.Position)
	return rel.X*z + float32(c.ScreenW)/2, -rel.Y*z + float32(c.ScreenH)/2
}

// Follow moves the camera toward target by at most speed*dt.
func (c *Camera) Follow(target vmath.Vec2, speed, dt float32) {
	c.Position = vmath.MoveTowards(c.Position, target, speed*dt)
}

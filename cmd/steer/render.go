package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/steer/input"
	"github.com/plus3/steer/sim"
	"github.com/plus3/steer/vmath"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{24, 26, 32, 255}
	boundsColor     = color.RGBA{90, 96, 110, 255}
	velocityColor   = color.RGBA{120, 220, 140, 255}
	forceColor      = color.RGBA{240, 120, 110, 255}
	targetColor     = color.RGBA{255, 223, 186, 255}
	hudColor        = color.RGBA{220, 220, 220, 255}

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

func kindColor(k sim.Kind) color.RGBA {
	switch k {
	case sim.KindCommander:
		return color.RGBA{179, 229, 252, 255}
	case sim.KindProjectile:
		return color.RGBA{255, 255, 186, 255}
	case sim.KindObstacle:
		return color.RGBA{255, 179, 186, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}

func drawBounds(screen *ebiten.Image, cam input.Camera, b sim.Bounds) {
	x0, y0 := cam.WorldToScreen(vmath.V(b.Min.X, b.Max.Y))
	x1, y1 := cam.WorldToScreen(vmath.V(b.Max.X, b.Min.Y))
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, boundsColor, false)
}

func drawEntity(screen *ebiten.Image, cam input.Camera, e sim.EntityState) {
	x, y := cam.WorldToScreen(e.Position)
	edge, _ := cam.WorldToScreen(e.Position.Add(vmath.V(e.Radius, 0)))
	r := max(edge-x, 2)
	clr := kindColor(e.Kind)
	if e.Kind == sim.KindObstacle {
		vector.StrokeCircle(screen, x, y, r, 2, clr, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, r, clr, true)
}

// drawVectors draws velocity and steering force from the entity's centre.
func drawVectors(screen *ebiten.Image, cam input.Camera, e sim.EntityState) {
	x, y := cam.WorldToScreen(e.Position)
	vx, vy := cam.WorldToScreen(e.Position.Add(e.Velocity))
	vector.StrokeLine(screen, x, y, vx, vy, 2, velocityColor, true)
	fx, fy := cam.WorldToScreen(e.Position.Add(e.Force))
	vector.StrokeLine(screen, x, y, fx, fy, 1, forceColor, true)
}

func drawTarget(screen *ebiten.Image, cam input.Camera, target vmath.Vec2) {
	x, y := cam.WorldToScreen(target)
	vector.StrokeLine(screen, x-5, y-5, x+5, y+5, 1, targetColor, true)
	vector.StrokeLine(screen, x-5, y+5, x+5, y-5, 1, targetColor, true)
}

func hudText(w *sim.World) string {
	counts := make(map[sim.Kind]int)
	for _, e := range w.Entities() {
		counts[e.Kind]++
	}
	s := fmt.Sprintf("t=%.1fs  frame %d\nobstacles %d  projectiles %d",
		w.Now(), w.Frame(), counts[sim.KindObstacle], counts[sim.KindProjectile])
	if c, ok := w.Commander(); ok {
		s += fmt.Sprintf("\npos (%.0f, %.0f)  speed %.1f", c.Position.X, c.Position.Y, c.Velocity.Length())
	}
	return s
}

func drawHUD(screen *ebiten.Image, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, float64(screen.Bounds().Dy())-52)
	op.ColorScale.ScaleWithColor(hudColor)
	op.LineSpacing = 16
	text.Draw(screen, s, hudFace, op)
}

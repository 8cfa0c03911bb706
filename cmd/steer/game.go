package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/steer/config"
	"github.com/plus3/steer/input"
	"github.com/plus3/steer/sim"
	"github.com/plus3/steer/vmath"
	"go.uber.org/zap"
)

// Game implements ebiten.Game around a sim.World. Every Update is one fixed tick.
type Game struct {
	world  *sim.World
	logger *zap.Logger

	translator  input.Translator
	camera      input.Camera
	cameraSpeed float32
	dt          float32

	overlay     *overlay
	showVectors bool
}

func NewGame(world *sim.World, host config.HostConfig, logger *zap.Logger) *Game {
	g := &Game{
		world:       world,
		logger:      logger,
		cameraSpeed: host.CameraSpeed,
		dt:          1 / float32(host.TPS),
		camera: input.Camera{
			Zoom:    host.Zoom,
			ScreenW: host.Width,
			ScreenH: host.Height,
		},
		showVectors: true,
	}
	if c, ok := world.Commander(); ok {
		g.camera.Position = c.Position
	}
	return g
}

func (g *Game) sample() input.State {
	cx, cy := ebiten.CursorPosition()
	s := input.State{
		Up:          ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Pointer:     vmath.V(float32(cx), float32(cy)),
		MovePressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
	if g.overlay != nil {
		s.PointerCaptured = g.overlay.capturesPointer()
	}
	return s
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showVectors = !g.showVectors
	}

	intent := g.translator.Intent(g.sample(), g.camera)

	if g.overlay != nil {
		g.overlay.backend.BeginFrame()
	}
	start := time.Now()
	err := g.world.TickWith(g.dt, intent)
	if g.overlay != nil {
		g.overlay.history.Push(time.Since(start))
		g.overlay.backend.EndFrame()
	}
	if err != nil {
		return err
	}

	if c, ok := g.world.Commander(); ok {
		g.camera.Follow(c.Position, g.cameraSpeed, g.dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.ScreenW = screen.Bounds().Dx()
	g.camera.ScreenH = screen.Bounds().Dy()

	screen.Fill(backgroundColor)
	drawBounds(screen, g.camera, g.world.Bounds())
	for _, e := range g.world.Entities() {
		drawEntity(screen, g.camera, e)
		if g.showVectors && e.Kind == sim.KindCommander {
			drawVectors(screen, g.camera, e)
		}
	}
	if target, ok := g.translator.Target(); ok && g.showVectors {
		drawTarget(screen, g.camera, target)
	}
	drawHUD(screen, hudText(g.world))

	if g.overlay != nil {
		g.overlay.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

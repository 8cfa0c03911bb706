package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/steer/config"
	"github.com/plus3/steer/ecs"
	"github.com/plus3/steer/ecs/debugui"
	debugui_ebiten "github.com/plus3/steer/ecs/debugui/ebiten"
	"github.com/plus3/steer/sim"
)

const frameHistorySize = 120

// overlay owns the ImGui backend and the overlay windows living in the world's storage.
type overlay struct {
	backend debugui_ebiten.ImguiBackend
	history *debugui.FrameHistory
	capture *ecs.Singleton[debugui.ImguiInputState]
}

// newOverlay creates the window through the ImGui backend, so the host must not size it
// again.
func newOverlay(host config.HostConfig) *overlay {
	return &overlay{
		backend: debugui_ebiten.NewImguiBackend(host.Title, host.Width, host.Height),
		history: debugui.NewFrameHistory(frameHistorySize),
	}
}

func (o *overlay) option() sim.Option {
	return sim.WithComponents(debugui.RegisterComponents)
}

func (o *overlay) capturesPointer() bool {
	if o.capture == nil {
		return false
	}
	return o.capture.Get().WantCaptureMouse
}

// attachOverlay registers the ImGui system after the simulation stages and spawns the
// overlay windows.
func (g *Game) attachOverlay(o *overlay) {
	storage := g.world.Storage()
	o.capture = ecs.NewSingleton[debugui.ImguiInputState](storage, debugui.ImguiInputState{})
	g.world.AddSystem(&debugui.ImguiSystem{})

	perf := &debugui.PerformanceWindow{
		Storage:   storage,
		Scheduler: g.world.Scheduler(),
		History:   o.history,
	}
	storage.Spawn(perf.Item())
	storage.Spawn(debugui.ImguiItem{Render: g.renderSimulationWindow})
	g.overlay = o
}

func (g *Game) renderSimulationWindow() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 360), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 280), imgui.CondOnce)
	if !imgui.BeginV("Simulation", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Time: %.2fs", g.world.Now()))
	imgui.Text(fmt.Sprintf("Frame: %d", g.world.Frame()))
	imgui.Separator()

	intent := g.world.Intent()
	switch intent.Move {
	case sim.MoveDirection:
		imgui.Text(fmt.Sprintf("Move: direction (%.2f, %.2f)", intent.Direction.X, intent.Direction.Y))
	case sim.MoveTarget:
		imgui.Text(fmt.Sprintf("Move: target (%.0f, %.0f)", intent.Target.X, intent.Target.Y))
	default:
		imgui.Text("Move: none")
	}
	if intent.Fire == sim.FireActive {
		imgui.Text(fmt.Sprintf("Fire: at (%.0f, %.0f)", intent.FireTarget.X, intent.FireTarget.Y))
	} else {
		imgui.Text("Fire: idle")
	}
	imgui.Checkbox("Steering vectors (F1)", &g.showVectors)
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 150), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Velocity")
		imgui.TableSetupColumn("Radius")
		imgui.TableHeadersRow()
		for _, e := range g.world.Entities() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(e.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f", e.Position.X, e.Position.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f", e.Velocity.X, e.Velocity.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f", e.Radius))
		}
		imgui.EndTable()
	}

	imgui.End()
}

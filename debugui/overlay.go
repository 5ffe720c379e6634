package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/fruitdrop/ecs"
	"github.com/plus3/fruitdrop/fruitdrop"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend. It satisfies
// render.Overlay.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
}

// NewOverlay creates the ImGui backend and its window.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{backend: backend}
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// Install registers the ImGui system and the default panels on a world.
func Install(world *fruitdrop.World) {
	resources := world.Resources

	ecs.NewSingleton[ImguiInputState](resources)
	panels := ecs.NewSingleton[Panels](resources).Get()
	panels.Add(NewSchedulerPanel(world.Scheduler).Item())
	panels.Add(NewWorldPanel(world).Item())

	world.Scheduler.Register(&ImguiSystem{}, ecs.InStage(ecs.Update))
}

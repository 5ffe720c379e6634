package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fruitdrop/config"
	"github.com/plus3/fruitdrop/fruitdrop"
)

// Overlay is drawn on top of the game and brackets each world step,
// e.g. a Dear ImGui debug UI.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game for a fruitdrop world.
type Game struct {
	world    *fruitdrop.World
	renderer *Renderer
	hud      *HUD
	overlay  Overlay
	width    int
	height   int
	dt       float64
}

// NewGame creates the ebiten game. overlay may be nil.
func NewGame(window config.WindowConfig, world *fruitdrop.World, renderer *Renderer, hud *HUD, overlay Overlay) *Game {
	return &Game{
		world:    world,
		renderer: renderer,
		hud:      hud,
		overlay:  overlay,
		width:    window.Width,
		height:   window.Height,
		dt:       1.0 / float64(window.TPS),
	}
}

// ConfigureWindow applies the fixed window settings. The window cannot be
// resized or maximised and fullscreen is never entered.
func ConfigureWindow(window config.WindowConfig) {
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(window.TPS)
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	g.world.Step(g.dt)

	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if input := g.world.Input(); input != nil && input.Quit {
		return ebiten.Termination
	}

	g.hud.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	g.hud.Draw(screen)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(g.width, g.height)
	}
	return g.width, g.height
}

// Run configures the window and blocks until the game exits.
func Run(window config.WindowConfig, game *Game) error {
	ConfigureWindow(window)
	return ebiten.RunGame(game)
}

package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fruitdrop/fruitdrop"
)

// WorldPanel shows the game state and every live fruit.
type WorldPanel struct {
	world *fruitdrop.World
}

// NewWorldPanel creates a panel for the given world.
func NewWorldPanel(world *fruitdrop.World) *WorldPanel {
	return &WorldPanel{world: world}
}

// Item returns the panel as an ImguiItem.
func (p *WorldPanel) Item() ImguiItem {
	return ImguiItem{Name: "World", Render: p.Render}
}

func (p *WorldPanel) Render() {
	state := p.world.State()
	score := p.world.Score()
	player := p.world.Player()
	arena := p.world.Fruit()
	tuning := p.world.Tuning()
	if state == nil || score == nil || player == nil || arena == nil || tuning == nil {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if state.Phase == fruitdrop.Running {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	} else {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}

	imgui.Text(score.Text)
	imgui.Text(fmt.Sprintf("Fall speed: %.2f", fruitdrop.FallSpeed(score.Value, tuning.Fruit)))
	imgui.Text(fmt.Sprintf("Player x: %.1f", player.Position.X))
	imgui.Text(fmt.Sprintf("Spawned: %d  Caught: %d  Restarts: %d", state.Spawned, state.Caught, state.Restarts))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Live fruit: %d", arena.Len()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Fruit", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Variant")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableHeadersRow()

		for fruit := range arena.All() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", fruit.ID))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", fruit.Variant))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", fruit.Position.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", fruit.Position.Y))
		}
		imgui.EndTable()
	}

	imgui.End()
}

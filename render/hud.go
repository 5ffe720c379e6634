package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/plus3/fruitdrop/fruitdrop"
)

// LoadFace returns the HUD font at the given size.
func LoadFace(size float64) (text.Face, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &text.GoTextFace{
		Source: source,
		Size:   size,
	}, nil
}

// HUD shows the score text and, once the game is over, the end screen.
type HUD struct {
	ui          *ebitenui.UI
	scoreText   *widget.Text
	overPanel   *widget.Container
	overlayRoot *widget.Container
	finalText   *widget.Text
	showing     bool
}

// NewHUD builds the HUD. The score text is centred on its world position.
func NewHUD(camera Camera, score fruitdrop.Vec3, face, smallFace text.Face) *HUD {
	h := &HUD{}

	sx, sy := camera.WorldToScreen(score)
	scoreWidth, scoreHeight := text.Measure(fruitdrop.FormatScore(0), face, 0)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{
				Left: max(0, int(sx-scoreWidth/2)),
				Top:  max(0, int(sy-scoreHeight/2)),
			}),
		)),
	)

	h.scoreText = widget.NewText(
		widget.TextOpts.Text(fruitdrop.FormatScore(0), face, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	root.AddChild(h.scoreText)

	overlay := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	h.overPanel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(color.NRGBA{R: 20, G: 20, B: 30, A: 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	h.overPanel.AddChild(widget.NewText(
		widget.TextOpts.Text("GAME OVER", face, color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	h.finalText = widget.NewText(
		widget.TextOpts.Text("", smallFace, color.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.overPanel.AddChild(h.finalText)
	h.overPanel.AddChild(widget.NewText(
		widget.TextOpts.Text("Press R to restart, Esc to quit", smallFace, color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	stack := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewStackedLayout()),
	)
	stack.AddChild(root)
	stack.AddChild(overlay)

	h.ui = &ebitenui.UI{Container: stack}
	h.overlayRoot = overlay
	return h
}

// Update syncs the widgets with the world and runs the UI.
func (h *HUD) Update(world *fruitdrop.World) {
	if score := world.Score(); score != nil {
		h.scoreText.Label = score.Text
	}

	over := false
	if state := world.State(); state != nil && state.Phase == fruitdrop.Over {
		over = true
		h.finalText.Label = fmt.Sprintf("Final score: %d", state.FinalScore)
	}

	if over && !h.showing {
		h.overlayRoot.AddChild(h.overPanel)
		h.showing = true
	} else if !over && h.showing {
		h.overlayRoot.RemoveChild(h.overPanel)
		h.showing = false
	}

	h.ui.Update()
}

// Draw renders the HUD on top of the world.
func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

// ShowingGameOver reports whether the end screen is displayed.
func (h *HUD) ShowingGameOver() bool {
	return h.showing
}

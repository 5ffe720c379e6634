package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fruitdrop/fruitdrop"
)

var background = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

// Renderer draws the floor, fruit and player sorted by depth.
type Renderer struct {
	camera  Camera
	sprites *Sprites
	pixel   *ebiten.Image

	drawables []drawable
}

type drawable struct {
	z     float64
	order int
	draw  func(screen *ebiten.Image)
}

// NewRenderer creates a renderer for the given camera and sprites.
func NewRenderer(camera Camera, sprites *Sprites) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{
		camera:  camera,
		sprites: sprites,
		pixel:   pixel,
	}
}

// Draw renders the world onto screen. Nothing but the background is drawn
// before the world's first step.
func (r *Renderer) Draw(screen *ebiten.Image, world *fruitdrop.World) {
	screen.Fill(background)

	r.drawables = r.drawables[:0]

	if floor := world.Floor(); floor != nil {
		f := *floor
		r.push(f.Position.Z, func(screen *ebiten.Image) { r.drawFloor(screen, f) })
	}

	if arena := world.Fruit(); arena != nil {
		for fruit := range arena.All() {
			f := *fruit
			r.push(f.Position.Z, func(screen *ebiten.Image) {
				r.drawSprite(screen, r.sprites.FruitVariant(f.Variant), f.Position, f.Size)
			})
		}
	}

	if player := world.Player(); player != nil {
		p := *player
		r.push(p.Position.Z, func(screen *ebiten.Image) {
			r.drawSprite(screen, r.sprites.Player, p.Position, p.Size)
		})
	}

	sort.SliceStable(r.drawables, func(i, j int) bool {
		if r.drawables[i].z != r.drawables[j].z {
			return r.drawables[i].z < r.drawables[j].z
		}
		return r.drawables[i].order < r.drawables[j].order
	})

	for _, d := range r.drawables {
		d.draw(screen)
	}
}

func (r *Renderer) push(z float64, fn func(screen *ebiten.Image)) {
	r.drawables = append(r.drawables, drawable{z: z, order: len(r.drawables), draw: fn})
}

func (r *Renderer) drawFloor(screen *ebiten.Image, floor fruitdrop.Floor) {
	x, y := r.camera.CenteredRect(floor.Position, floor.Width, floor.Height)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(floor.Width, floor.Height)
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(floor.Color)
	screen.DrawImage(r.pixel, opts)
}

func (r *Renderer) drawSprite(screen *ebiten.Image, img *ebiten.Image, pos fruitdrop.Vec3, size float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	x, y := r.camera.CenteredRect(pos, size, size)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
	opts.GeoM.Translate(x, y)
	opts.Filter = ebiten.FilterLinear
	screen.DrawImage(img, opts)
}

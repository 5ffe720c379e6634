package render

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerSpriteFile is the player sprite file name inside the assets directory.
const PlayerSpriteFile = "mouth.png"

// FruitSpriteFile returns the file name of a 1-based fruit variant.
func FruitSpriteFile(variant int) string {
	return fmt.Sprintf("fruit%d.png", variant)
}

// Sprites holds every image the renderer draws.
type Sprites struct {
	Player *ebiten.Image
	Fruit  []*ebiten.Image // index 0 is variant 1
}

// FruitVariant returns the image for a 1-based variant, wrapping out-of-range values.
func (s *Sprites) FruitVariant(variant int) *ebiten.Image {
	if len(s.Fruit) == 0 {
		return nil
	}
	idx := (variant - 1) % len(s.Fruit)
	if idx < 0 {
		idx += len(s.Fruit)
	}
	return s.Fruit[idx]
}

var placeholderPalette = []color.RGBA{
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff},
	{R: 0xfd, G: 0xd8, B: 0x35, A: 0xff},
	{R: 0x7c, G: 0xb3, B: 0x42, A: 0xff},
	{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
}

// LoadSprites loads the player and fruit sprites from dir. Missing files are
// replaced by generated placeholders so the game stays playable without art;
// any other read or decode failure is returned.
func LoadSprites(dir string, variants int, logger *log.Logger) (*Sprites, error) {
	sprites := &Sprites{Fruit: make([]*ebiten.Image, variants)}

	img, err := loadOrPlaceholder(filepath.Join(dir, PlayerSpriteFile), logger, func() *ebiten.Image {
		return placeholderCircle(color.RGBA{R: 0x8b, G: 0x00, B: 0x1a, A: 0xff})
	})
	if err != nil {
		return nil, err
	}
	sprites.Player = img

	for i := range variants {
		c := placeholderPalette[i%len(placeholderPalette)]
		img, err := loadOrPlaceholder(filepath.Join(dir, FruitSpriteFile(i+1)), logger, func() *ebiten.Image {
			return placeholderCircle(c)
		})
		if err != nil {
			return nil, err
		}
		sprites.Fruit[i] = img
	}

	return sprites, nil
}

func loadOrPlaceholder(path string, logger *log.Logger, placeholder func() *ebiten.Image) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err == nil {
		return img, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
		logger.Warn("sprite missing, using placeholder", "path", path)
		return placeholder(), nil
	}
	return nil, fmt.Errorf("failed to load sprite %s: %w", path, err)
}

const placeholderSize = 64

func placeholderCircle(c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	const r = placeholderSize / 2
	vector.DrawFilledCircle(img, r, r, r-2, c, true)
	return img
}

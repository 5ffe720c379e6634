package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fruitdrop/fruitdrop"
)

// KeyBindings maps logical keys to keyboard keys. Bindings are fixed.
var KeyBindings = map[fruitdrop.Key]ebiten.Key{
	fruitdrop.KeyLeft:    ebiten.KeyArrowLeft,
	fruitdrop.KeyRight:   ebiten.KeyArrowRight,
	fruitdrop.KeyRestart: ebiten.KeyR,
	fruitdrop.KeyQuit:    ebiten.KeyEscape,
}

// KeyboardInput polls the ebiten keyboard.
type KeyboardInput struct {
	// Blocked, if set, suppresses game input while it returns true
	// (for example while a debug window has keyboard focus).
	Blocked func() bool
}

// Pressed implements fruitdrop.InputSource.
func (k *KeyboardInput) Pressed(key fruitdrop.Key) bool {
	if k.Blocked != nil && k.Blocked() {
		return false
	}
	ebitenKey, ok := KeyBindings[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ebitenKey)
}

// Package render draws a fruitdrop world with ebiten and runs it as an ebiten.Game.
package render

import "github.com/plus3/fruitdrop/fruitdrop"

// Camera maps world coordinates (origin at the centre, y up) onto a screen
// of Width x Height pixels (origin at the top left, y down).
type Camera struct {
	Width, Height float64
}

// NewCamera returns a camera for a screen of the given size.
func NewCamera(width, height int) Camera {
	return Camera{Width: float64(width), Height: float64(height)}
}

// WorldToScreen converts a world position to screen pixels.
func (c Camera) WorldToScreen(pos fruitdrop.Vec3) (float64, float64) {
	return c.Width/2 + pos.X, c.Height/2 - pos.Y
}

// CenteredRect returns the top-left corner of a w x h box centred on pos.
func (c Camera) CenteredRect(pos fruitdrop.Vec3, w, h float64) (float64, float64) {
	sx, sy := c.WorldToScreen(pos)
	return sx - w/2, sy - h/2
}

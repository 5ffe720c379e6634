package fruitdrop

import (
	"math"

	"github.com/plus3/fruitdrop/config"
)

// FallSpeed is the distance every fruit falls per fixed tick at the given score.
func FallSpeed(score uint32, f config.FruitConfig) float64 {
	return f.BaseSpeed + float64(score)*f.SpeedPerPoint
}

// MovePlayer returns the player's next x. Left and right are applied
// independently, so holding both cancels out. The result never leaves
// [-bound, bound].
func MovePlayer(x float64, in PlayerInput, p config.PlayerConfig) float64 {
	if in.MoveLeft && x > -p.Bound {
		x = math.Max(x-p.Step, -p.Bound)
	}
	if in.MoveRight && x < p.Bound {
		x = math.Min(x+p.Step, p.Bound)
	}
	return x
}

// InCatchBand reports whether a fruit at pos is caught by a player at playerX.
func InCatchBand(pos Vec3, playerX float64, f config.FruitConfig) bool {
	return pos.Y < f.CatchY && math.Abs(pos.X-playerX) <= f.CatchHalfWidth
}

// StepResult is what one fixed tick of fruit motion produced.
type StepResult struct {
	Caught   []FruitID
	GameOver int
}

// StepFruit advances every fruit by one fixed tick. A fruit below the miss
// line raises one game-over signal per tick; a fruit in the catch band is
// removed without falling further; every other fruit falls by speed.
func StepFruit(arena *FruitArena, playerX, speed float64, f config.FruitConfig) StepResult {
	var result StepResult

	for i := 0; i < len(arena.fruits); {
		fruit := &arena.fruits[i]

		if fruit.Position.Y < f.MissY {
			result.GameOver++
		} else if InCatchBand(fruit.Position, playerX, f) {
			result.Caught = append(result.Caught, fruit.ID)
			arena.Despawn(fruit.ID)
			// The last fruit was swapped into slot i; visit it next.
			continue
		}

		fruit.Position.Y -= speed
		i++
	}

	return result
}

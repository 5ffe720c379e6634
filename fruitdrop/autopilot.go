package fruitdrop

import (
	"math"

	"github.com/plus3/fruitdrop/config"
	"github.com/plus3/fruitdrop/ecs"
)

// Autopilot is an InputSource that steers the player under the lowest fruit
// still above the miss line. It is used by the headless simulator.
type Autopilot struct {
	resources *ecs.Resources
}

// NewAutopilot creates an autopilot reading the given resources.
func NewAutopilot(resources *ecs.Resources) *Autopilot {
	return &Autopilot{resources: resources}
}

// Pressed implements InputSource.
func (a *Autopilot) Pressed(key Key) bool {
	if key != KeyLeft && key != KeyRight {
		return false
	}

	player := ecs.ReadResource[Player](a.resources)
	arena := ecs.ReadResource[FruitArena](a.resources)
	tuning := ecs.ReadResource[config.Gameplay](a.resources)
	if player == nil || arena == nil || tuning == nil {
		return false
	}

	target, ok := lowestFruit(arena, tuning.Fruit.MissY)
	if !ok {
		return false
	}

	dx := target.Position.X - player.Position.X
	if math.Abs(dx) < tuning.Player.Step/2 {
		return false
	}
	if key == KeyLeft {
		return dx < 0
	}
	return dx > 0
}

func lowestFruit(arena *FruitArena, missY float64) (Fruit, bool) {
	var (
		best  Fruit
		found bool
	)
	for fruit := range arena.All() {
		if fruit.Position.Y < missY {
			continue
		}
		if !found || fruit.Position.Y < best.Position.Y {
			best = *fruit
			found = true
		}
	}
	return best, found
}

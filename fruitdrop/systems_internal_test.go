package fruitdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/fruitdrop/ecs"
)

func TestMustPanicsOnMissingResource(t *testing.T) {
	var player ecs.Singleton[Player]
	player.Init(ecs.NewResources())

	assert.PanicsWithValue(t, "fruitdrop: required resource fruitdrop.Player is missing", func() {
		must(&player)
	})
}

func TestWhileRunning(t *testing.T) {
	resources := ecs.NewResources()
	frame := &ecs.UpdateFrame{Resources: resources}
	assert.False(t, WhileRunning(frame))

	resources.AddSingleton(GameState{Phase: Running})
	assert.True(t, WhileRunning(frame))

	resources.AddSingleton(GameState{Phase: Over})
	assert.False(t, WhileRunning(frame))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "over", Over.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

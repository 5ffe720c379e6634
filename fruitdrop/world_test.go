package fruitdrop_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/fruitdrop/config"
	"github.com/plus3/fruitdrop/ecs"
	"github.com/plus3/fruitdrop/fruitdrop"
)

// testTuning uses a quarter-second fixed step so one 0.25s frame is exactly
// one fixed tick.
func testTuning() config.Gameplay {
	tuning := config.DefaultGameplay()
	tuning.FixedTimestep = 0.25
	return tuning
}

// startedWorld builds a world and runs the first frame so every resource exists.
func startedWorld(t *testing.T, tuning config.Gameplay, opts ...fruitdrop.Option) *fruitdrop.World {
	t.Helper()
	opts = append([]fruitdrop.Option{fruitdrop.WithSeed(7)}, opts...)
	world := fruitdrop.NewWorld(tuning, opts...)
	world.Step(0.25)
	require.NotNil(t, world.State())
	return world
}

func TestWorldStartup(t *testing.T) {
	world := fruitdrop.NewWorld(config.DefaultGameplay(), fruitdrop.WithSeed(1))
	assert.Nil(t, world.Player())
	assert.Nil(t, world.Score())
	require.NotNil(t, world.Tuning())

	world.Step(1.0 / 60.0)

	player := world.Player()
	require.NotNil(t, player)
	assert.Equal(t, fruitdrop.Vec3{X: 0, Y: -100, Z: 2}, player.Position)
	assert.Equal(t, 64.0, player.Size)

	score := world.Score()
	require.NotNil(t, score)
	assert.Equal(t, uint32(0), score.Value)
	assert.Equal(t, "Score: 0", score.Text)
	assert.Equal(t, fruitdrop.Vec3{X: -305, Y: 345, Z: 3}, score.Position)

	floor := world.Floor()
	require.NotNil(t, floor)
	assert.Equal(t, fruitdrop.Vec3{X: 0, Y: -270, Z: 1}, floor.Position)
	assert.Equal(t, 750.0, floor.Width)
	assert.Equal(t, 275.0, floor.Height)
	assert.Equal(t, color.RGBA{R: 128, G: 204, B: 77, A: 255}, floor.Color)

	assert.Equal(t, fruitdrop.Running, world.State().Phase)
	assert.Zero(t, world.Fruit().Len())
}

func TestPlayerMovement(t *testing.T) {
	world := startedWorld(t, testTuning())

	world.SetInput(fruitdrop.KeySet{fruitdrop.KeyLeft: true})
	world.Step(0.25)
	assert.Equal(t, -7.5, world.Player().Position.X)
	assert.True(t, world.Input().MoveLeft)

	for range 100 {
		world.Step(0.25)
	}
	assert.Equal(t, -340.0, world.Player().Position.X)

	world.SetInput(fruitdrop.KeySet{fruitdrop.KeyLeft: true, fruitdrop.KeyRight: true})
	world.Step(0.25)
	assert.Equal(t, -332.5, world.Player().Position.X)

	world.SetInput(fruitdrop.KeySet{fruitdrop.KeyRight: true})
	for range 200 {
		world.Step(0.25)
		require.LessOrEqual(t, world.Player().Position.X, 340.0)
	}
	assert.Equal(t, 340.0, world.Player().Position.X)
	assert.Equal(t, -100.0, world.Player().Position.Y)
}

func TestFruitSpawning(t *testing.T) {
	tuning := testTuning()
	world := fruitdrop.NewWorld(tuning, fruitdrop.WithSeed(3))

	var spawnedAt []float64
	elapsed := 0.0
	for _, dt := range []float64{0.25, 0.5, 0.25, 0.5, 0.5, 0.25, 0.25, 0.5} {
		before := uint64(0)
		if state := world.State(); state != nil {
			before = state.Spawned
		}

		world.Step(dt)
		elapsed += dt

		spawned := world.State().Spawned - before
		require.LessOrEqual(t, spawned, uint64(1))
		if spawned == 1 {
			spawnedAt = append(spawnedAt, elapsed)
		}
	}

	assert.Equal(t, []float64{1, 2, 3}, spawnedAt)
	assert.Equal(t, 3, world.Fruit().Len())

	maxY := 0.0
	for fruit := range world.Fruit().All() {
		assert.GreaterOrEqual(t, fruit.Position.X, -350.0)
		assert.LessOrEqual(t, fruit.Position.X, 350.0)
		assert.LessOrEqual(t, fruit.Position.Y, 385.0)
		assert.GreaterOrEqual(t, fruit.Variant, 1)
		assert.LessOrEqual(t, fruit.Variant, 6)
		assert.Equal(t, 1.0, fruit.Position.Z)
		maxY = max(maxY, fruit.Position.Y)
	}
	// The fruit spawned this frame has not fallen yet.
	assert.Equal(t, 385.0, maxY)
}

func TestSpawningIsDeterministic(t *testing.T) {
	run := func() []fruitdrop.Fruit {
		world := fruitdrop.NewWorld(testTuning(), fruitdrop.WithSeed(11))
		for range 40 {
			world.Step(0.25)
		}
		return world.Fruit().Snapshot()
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestCatching(t *testing.T) {
	t.Run("catch scores a point", func(t *testing.T) {
		world := startedWorld(t, testTuning())
		world.Fruit().Spawn(fruitdrop.Vec3{X: 10, Y: -56, Z: 1}, 1, 64)

		world.Step(0.25)

		assert.Equal(t, uint32(1), world.Score().Value)
		assert.Equal(t, "Score: 1", world.Score().Text)
		assert.Zero(t, world.Fruit().Len())
		assert.Equal(t, uint64(1), world.State().Caught)
		assert.InDelta(t, 2.03, fruitdrop.FallSpeed(world.Score().Value, world.Tuning().Fruit), 1e-9)
	})

	t.Run("faster fall after a catch", func(t *testing.T) {
		world := startedWorld(t, testTuning())
		world.Fruit().Spawn(fruitdrop.Vec3{X: 0, Y: -60, Z: 1}, 1, 64)
		id := world.Fruit().Spawn(fruitdrop.Vec3{X: 300, Y: 200, Z: 1}, 1, 64)

		world.Step(0.25)
		world.Step(0.25)

		fruit, ok := world.Fruit().Get(id)
		require.True(t, ok)
		assert.InDelta(t, 200-2.0-2.03, fruit.Position.Y, 1e-9)
	})

	t.Run("every catch in a frame counts", func(t *testing.T) {
		world := startedWorld(t, testTuning())
		for _, x := range []float64{-40, 0, 40} {
			world.Fruit().Spawn(fruitdrop.Vec3{X: x, Y: -60, Z: 1}, 1, 64)
		}

		world.Step(0.25)

		assert.Equal(t, uint32(3), world.Score().Value)
		assert.Equal(t, "Score: 3", world.Score().Text)
	})

	t.Run("collapsed catches count once", func(t *testing.T) {
		tuning := testTuning()
		tuning.Score.CollapseEvents = true
		world := startedWorld(t, tuning)
		for _, x := range []float64{-40, 0, 40} {
			world.Fruit().Spawn(fruitdrop.Vec3{X: x, Y: -60, Z: 1}, 1, 64)
		}

		world.Step(0.25)

		assert.Equal(t, uint32(1), world.Score().Value)
		assert.Equal(t, uint64(3), world.State().Caught)
	})

	t.Run("no catch leaves the score alone", func(t *testing.T) {
		world := startedWorld(t, testTuning())
		world.Fruit().Spawn(fruitdrop.Vec3{X: 200, Y: 300, Z: 1}, 1, 64)

		for range 3 {
			world.Step(0.25)
		}

		assert.Equal(t, uint32(0), world.Score().Value)
		assert.Equal(t, "Score: 0", world.Score().Text)
	})
}

func TestGameOver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	world := startedWorld(t, testTuning(), fruitdrop.WithLogger(logger))

	world.Fruit().Spawn(fruitdrop.Vec3{X: 0, Y: -56, Z: 1}, 1, 64)
	world.Step(0.25)
	require.Equal(t, uint32(1), world.Score().Value)

	missed := world.Fruit().Spawn(fruitdrop.Vec3{X: 300, Y: -101, Z: 1}, 1, 64)
	world.Step(0.25)

	state := world.State()
	assert.Equal(t, fruitdrop.Over, state.Phase)
	assert.Equal(t, uint32(1), state.FinalScore)
	assert.Contains(t, buf.String(), "game over")

	fruit, _ := world.Fruit().Get(missed)
	y := fruit.Position.Y
	spawned := state.Spawned
	world.SetInput(fruitdrop.KeySet{fruitdrop.KeyLeft: true})

	for range 40 {
		world.Step(0.25)
	}

	assert.Equal(t, fruitdrop.Over, world.State().Phase)
	assert.Equal(t, spawned, world.State().Spawned)
	fruit, _ = world.Fruit().Get(missed)
	assert.Equal(t, y, fruit.Position.Y)
	assert.Equal(t, 0.0, world.Player().Position.X)
	assert.Equal(t, uint32(1), world.Score().Value)
}

func TestRestart(t *testing.T) {
	world := startedWorld(t, testTuning())
	world.SetInput(fruitdrop.KeySet{fruitdrop.KeyRight: true})
	for range 4 {
		world.Step(0.25)
	}
	world.Fruit().Spawn(fruitdrop.Vec3{X: -300, Y: -101, Z: 1}, 1, 64)
	world.Step(0.25)
	require.Equal(t, fruitdrop.Over, world.State().Phase)

	world.SetInput(fruitdrop.KeySet{fruitdrop.KeyRestart: true})
	world.Step(0.25)

	state := world.State()
	assert.Equal(t, fruitdrop.Running, state.Phase)
	assert.Equal(t, 1, state.Restarts)
	assert.Zero(t, state.Spawned)
	assert.Zero(t, world.Fruit().Len())
	assert.Equal(t, "Score: 0", world.Score().Text)
	assert.Equal(t, 0.0, world.Player().Position.X)

	world.SetInput(fruitdrop.NoInput{})
	for range 3 {
		world.Step(0.25)
		assert.Zero(t, world.State().Spawned, "no fruit before the first interval of the new game")
	}
	assert.Equal(t, fruitdrop.Running, world.State().Phase)
	assert.Equal(t, 1, world.State().Restarts)

	world.Step(0.25)
	assert.Equal(t, uint64(1), world.State().Spawned)
}

func TestRestartRewindsSpawnClock(t *testing.T) {
	world := fruitdrop.NewWorld(testTuning(), fruitdrop.WithSeed(9))
	world.Step(0.5)
	world.Fruit().Spawn(fruitdrop.Vec3{X: 300, Y: -101, Z: 1}, 1, 64)
	world.Step(0.25)
	require.Equal(t, fruitdrop.Over, world.State().Phase)
	require.Zero(t, world.State().Spawned)

	world.SetInput(fruitdrop.KeySet{fruitdrop.KeyRestart: true})
	world.Step(0.25)
	world.SetInput(fruitdrop.NoInput{})

	world.Step(0.25)
	assert.Equal(t, fruitdrop.Running, world.State().Phase)
	assert.Zero(t, world.State().Spawned)
	assert.Equal(t, 0.25, ecs.ReadResource[fruitdrop.SpawnClock](world.Resources).Timer.Elapsed())
}

func TestQuitIsSampled(t *testing.T) {
	world := startedWorld(t, testTuning(), fruitdrop.WithInput(fruitdrop.KeySet{fruitdrop.KeyQuit: true}))
	assert.True(t, world.Input().Quit)
}

func TestIdleGameEnds(t *testing.T) {
	world := fruitdrop.NewWorld(config.DefaultGameplay(), fruitdrop.WithSeed(5))

	for range 60 * 120 {
		world.Step(1.0 / 60.0)
		if world.State().Phase == fruitdrop.Over {
			break
		}
	}

	state := world.State()
	require.Equal(t, fruitdrop.Over, state.Phase)
	assert.Equal(t, world.Score().Value, state.FinalScore)
	assert.Positive(t, state.Spawned)
}

func TestSystemsAreRegistered(t *testing.T) {
	world := fruitdrop.NewWorld(config.DefaultGameplay())
	stats := world.Scheduler.GetStats()

	stages := map[string]ecs.Stage{}
	for _, sys := range stats.Systems {
		stages[sys.Name] = sys.Stage
	}
	assert.Equal(t, map[string]ecs.Stage{
		"SetupSystem":        ecs.Startup,
		"InputSystem":        ecs.PreUpdate,
		"PlayerMotionSystem": ecs.FixedUpdate,
		"FruitMotionSystem":  ecs.FixedUpdate,
		"FruitSpawnSystem":   ecs.Update,
		"ScoreSystem":        ecs.Update,
		"GameOverSystem":     ecs.Update,
		"RestartSystem":      ecs.Update,
	}, stages)
}

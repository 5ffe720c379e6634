package fruitdrop

import (
	"fmt"
	"reflect"

	"github.com/charmbracelet/log"
	"github.com/plus3/fruitdrop/config"
	"github.com/plus3/fruitdrop/ecs"
)

// must returns the singleton or panics. Player, score and the other core
// resources are created at startup and never removed, so a missing one is a
// programming error.
func must[T any](s *ecs.Singleton[T]) *T {
	v := s.Get()
	if v == nil {
		panic(fmt.Sprintf("fruitdrop: required resource %s is missing", reflect.TypeFor[T]()))
	}
	return v
}

// WhileRunning is a run condition that holds until the game is over.
func WhileRunning(frame *ecs.UpdateFrame) bool {
	state := ecs.ReadResource[GameState](frame.Resources)
	return state != nil && state.Phase == Running
}

// SpawnDue is a run condition that ticks the SpawnClock with the frame delta
// and holds on the frames where it completes.
func SpawnDue(frame *ecs.UpdateFrame) bool {
	clock := ecs.ReadResource[SpawnClock](frame.Resources)
	return clock != nil && clock.Timer.Tick(frame.DeltaTime)
}

// SetupSystem creates the player, score display, floor and the remaining
// per-game resources. It runs once in the Startup stage.
type SetupSystem struct {
	Tuning ecs.Singleton[config.Gameplay]
	Logger ecs.Singleton[log.Logger]
}

func (s *SetupSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := must(&s.Tuning)
	for _, resource := range initialResources(tuning) {
		frame.Commands.Insert(resource)
	}
	must(&s.Logger).Info("world ready",
		"player_x", tuning.Player.StartX,
		"spawn_interval", tuning.Spawn.Interval,
		"fixed_timestep", tuning.FixedTimestep)
}

func initialResources(tuning *config.Gameplay) []any {
	floorColor := tuning.Floor.Color
	return []any{
		Player{
			Position: Vec3{X: tuning.Player.StartX, Y: tuning.Player.StartY, Z: tuning.Player.Z},
			Size:     tuning.Player.Size,
		},
		NewScore(Vec3{X: tuning.Score.X, Y: tuning.Score.Y, Z: tuning.Score.Z}),
		Floor{
			Position: Vec3{X: tuning.Floor.X, Y: tuning.Floor.Y, Z: tuning.Floor.Z},
			Width:    tuning.Floor.Width,
			Height:   tuning.Floor.Height,
			Color:    colorRGBA(floorColor),
		},
		PlayerInput{},
		Signals{},
		GameState{Phase: Running},
		SpawnClock{Timer: ecs.NewTimer(tuning.Spawn.Interval)},
		NewFruitArena(),
	}
}

// InputSystem samples the input source into PlayerInput once per frame.
type InputSystem struct {
	Source InputSource
	Input  ecs.Singleton[PlayerInput]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	input := must(&s.Input)
	if s.Source == nil {
		*input = PlayerInput{}
		return
	}
	input.MoveLeft = s.Source.Pressed(KeyLeft)
	input.MoveRight = s.Source.Pressed(KeyRight)
	input.Restart = s.Source.Pressed(KeyRestart)
	input.Quit = s.Source.Pressed(KeyQuit)
}

// PlayerMotionSystem moves the player horizontally every fixed tick.
type PlayerMotionSystem struct {
	Input  ecs.Singleton[PlayerInput]
	Player ecs.Singleton[Player]
	Tuning ecs.Singleton[config.Gameplay]
}

func (s *PlayerMotionSystem) Execute(frame *ecs.UpdateFrame) {
	player := must(&s.Player)
	player.Position.X = MovePlayer(player.Position.X, *must(&s.Input), must(&s.Tuning).Player)
}

// FruitMotionSystem drops every fruit, removes caught ones and raises the
// score and game-over signals. It must run after PlayerMotionSystem so the
// catch test sees this tick's player position.
type FruitMotionSystem struct {
	Arena   ecs.Singleton[FruitArena]
	Player  ecs.Singleton[Player]
	Score   ecs.Singleton[Score]
	Signals ecs.Singleton[Signals]
	State   ecs.Singleton[GameState]
	Tuning  ecs.Singleton[config.Gameplay]
	Logger  ecs.Singleton[log.Logger]
}

func (s *FruitMotionSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := must(&s.Tuning)
	player := must(&s.Player)
	speed := FallSpeed(must(&s.Score).Value, tuning.Fruit)

	result := StepFruit(must(&s.Arena), player.Position.X, speed, tuning.Fruit)

	signals := must(&s.Signals)
	signals.Caught += len(result.Caught)
	signals.GameOver += result.GameOver
	must(&s.State).Caught += uint64(len(result.Caught))

	if len(result.Caught) > 0 {
		must(&s.Logger).Debug("fruit caught", "count", len(result.Caught), "player_x", player.Position.X, "speed", speed)
	}
}

// FruitSpawnSystem creates one fruit above the top of the screen each time
// it runs. It is registered behind the SpawnDue condition.
type FruitSpawnSystem struct {
	Arena  ecs.Singleton[FruitArena]
	Rng    ecs.Singleton[Rng]
	State  ecs.Singleton[GameState]
	Tuning ecs.Singleton[config.Gameplay]
	Logger ecs.Singleton[log.Logger]
}

func (s *FruitSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	fruit := must(&s.Tuning).Fruit
	rng := must(&s.Rng)

	x := (rng.Float64()*2 - 1) * fruit.SpawnXRange
	variant := rng.IntN(fruit.Variants) + 1

	id := must(&s.Arena).Spawn(Vec3{X: x, Y: fruit.SpawnY, Z: fruit.Z}, variant, fruit.Size)
	must(&s.State).Spawned++

	must(&s.Logger).Debug("fruit spawned", "id", id, "x", x, "variant", variant)
}

// ScoreSystem turns this frame's catch signals into points.
type ScoreSystem struct {
	Signals ecs.Singleton[Signals]
	Score   ecs.Singleton[Score]
	Tuning  ecs.Singleton[config.Gameplay]
	Logger  ecs.Singleton[log.Logger]
}

func (s *ScoreSystem) Execute(frame *ecs.UpdateFrame) {
	signals := must(&s.Signals)
	if signals.Caught == 0 {
		return
	}

	points := uint32(signals.Caught)
	if must(&s.Tuning).Score.CollapseEvents {
		points = 1
	}
	signals.Caught = 0

	score := must(&s.Score)
	score.Add(points)
	must(&s.Logger).Info("score", "value", score.Value)
}

// GameOverSystem moves the game to Over when a fruit reached the floor.
type GameOverSystem struct {
	Signals ecs.Singleton[Signals]
	State   ecs.Singleton[GameState]
	Score   ecs.Singleton[Score]
	Logger  ecs.Singleton[log.Logger]
}

func (s *GameOverSystem) Execute(frame *ecs.UpdateFrame) {
	signals := must(&s.Signals)
	if signals.GameOver == 0 {
		return
	}
	triggers := signals.GameOver
	signals.GameOver = 0

	state := must(&s.State)
	if state.Phase != Running {
		return
	}

	state.Phase = Over
	state.FinalScore = must(&s.Score).Value
	must(&s.Logger).Warn("game over", "score", state.FinalScore, "triggers", triggers, "caught", state.Caught)
}

// RestartSystem resets the world when restart is held on the game-over screen.
// The reset is deferred to the end of the stage.
type RestartSystem struct {
	Input  ecs.Singleton[PlayerInput]
	State  ecs.Singleton[GameState]
	Tuning ecs.Singleton[config.Gameplay]
	Logger ecs.Singleton[log.Logger]
}

func (s *RestartSystem) Execute(frame *ecs.UpdateFrame) {
	state := must(&s.State)
	if state.Phase != Over || !must(&s.Input).Restart {
		return
	}

	restarts := state.Restarts + 1
	tuning := must(&s.Tuning)
	logger := must(&s.Logger)
	resources := frame.Resources

	frame.Commands.Defer(func() {
		Reset(resources, tuning)
		ecs.ReadResource[GameState](resources).Restarts = restarts
		logger.Info("restart", "count", restarts)
	})
}

// Reset puts every per-game resource back into its startup state.
func Reset(resources *ecs.Resources, tuning *config.Gameplay) {
	for _, resource := range initialResources(tuning) {
		resources.AddSingleton(resource)
	}
}

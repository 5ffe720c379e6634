package fruitdrop

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/fruitdrop/config"
	"github.com/plus3/fruitdrop/ecs"
)

// World bundles the game resources with a scheduler wired with every game system.
type World struct {
	Resources *ecs.Resources
	Scheduler *ecs.Scheduler

	input *InputSystem
}

type worldOptions struct {
	input  InputSource
	logger *log.Logger
	seed   uint64
	seeded bool
}

// Option configures NewWorld.
type Option func(*worldOptions)

// WithInput sets the input source sampled every frame.
func WithInput(source InputSource) Option {
	return func(o *worldOptions) {
		o.input = source
	}
}

// WithLogger sets the logger used by the systems.
func WithLogger(logger *log.Logger) Option {
	return func(o *worldOptions) {
		o.logger = logger
	}
}

// WithSeed makes spawning deterministic.
func WithSeed(seed uint64) Option {
	return func(o *worldOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// NewWorld builds a world for the given tuning. The world is populated by the
// Startup stage on the first Step.
func NewWorld(tuning config.Gameplay, opts ...Option) *World {
	o := worldOptions{input: NoInput{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if !o.seeded {
		o.seed = uint64(time.Now().UnixNano())
	}

	resources := ecs.NewResources()
	resources.AddSingleton(&tuning)
	resources.AddSingleton(o.logger)
	resources.AddSingleton(NewRng(o.seed))

	scheduler := ecs.NewScheduler(resources, ecs.WithFixedTimestep(tuning.FixedTimestep))
	scheduler.Register(&SetupSystem{}, ecs.InStage(ecs.Startup))
	input := &InputSystem{Source: o.input}
	scheduler.Register(input, ecs.InStage(ecs.PreUpdate))
	scheduler.Register(&PlayerMotionSystem{}, ecs.InStage(ecs.FixedUpdate), ecs.RunIf(WhileRunning))
	scheduler.Register(&FruitMotionSystem{}, ecs.InStage(ecs.FixedUpdate), ecs.RunIf(WhileRunning))
	scheduler.Register(&FruitSpawnSystem{},
		ecs.RunIf(WhileRunning),
		ecs.RunIf(SpawnDue))
	scheduler.Register(&ScoreSystem{})
	scheduler.Register(&GameOverSystem{})
	scheduler.Register(&RestartSystem{})

	return &World{
		Resources: resources,
		Scheduler: scheduler,
		input:     input,
	}
}

// SetInput replaces the input source sampled every frame.
func (w *World) SetInput(source InputSource) {
	w.input.Source = source
}

// Step advances the world by one frame of dt seconds.
func (w *World) Step(dt float64) {
	w.Scheduler.Once(dt)
}

// Player returns the player, or nil before the first Step.
func (w *World) Player() *Player {
	return ecs.ReadResource[Player](w.Resources)
}

// Score returns the score display, or nil before the first Step.
func (w *World) Score() *Score {
	return ecs.ReadResource[Score](w.Resources)
}

// State returns the game state, or nil before the first Step.
func (w *World) State() *GameState {
	return ecs.ReadResource[GameState](w.Resources)
}

// Fruit returns the fruit arena, or nil before the first Step.
func (w *World) Fruit() *FruitArena {
	return ecs.ReadResource[FruitArena](w.Resources)
}

// Floor returns the floor, or nil before the first Step.
func (w *World) Floor() *Floor {
	return ecs.ReadResource[Floor](w.Resources)
}

// Input returns the sampled input, or nil before the first Step.
func (w *World) Input() *PlayerInput {
	return ecs.ReadResource[PlayerInput](w.Resources)
}

// Tuning returns the gameplay tuning the world was built with.
func (w *World) Tuning() *config.Gameplay {
	return ecs.ReadResource[config.Gameplay](w.Resources)
}

func colorRGBA(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Package fruitdrop implements the Fruit Drop game: a catcher moves along the
// bottom of the screen catching fruit that falls faster as the score grows.
//
// All game state lives in ecs.Resources singletons and is advanced by the
// systems in this package; nothing here depends on a window, so the whole
// game can be driven headless.
package fruitdrop

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/plus3/fruitdrop/ecs"
)

// Vec3 is a world position. The origin is the centre of the screen, y points
// up and Z orders drawing (higher is drawn later).
type Vec3 struct {
	X, Y, Z float64
}

// Player is the catcher. Exactly one exists for the game's lifetime.
type Player struct {
	Position Vec3
	Size     float64
}

// FruitID identifies a fruit for as long as it is alive. IDs are never reused.
type FruitID uint64

// Fruit is a falling sprite.
type Fruit struct {
	ID       FruitID
	Position Vec3
	Variant  int // 1-based sprite variant
	Size     float64
}

// Score is the score counter together with its rendered text.
type Score struct {
	Value    uint32
	Text     string
	Position Vec3
}

// NewScore returns a score display reading zero.
func NewScore(pos Vec3) Score {
	s := Score{Position: pos}
	s.Set(0)
	return s
}

// Set overwrites the counter and keeps Text in sync.
func (s *Score) Set(value uint32) {
	s.Value = value
	s.Text = FormatScore(value)
}

// Add increments the counter by n and keeps Text in sync.
func (s *Score) Add(n uint32) {
	s.Set(s.Value + n)
}

// FormatScore renders the score display text.
func FormatScore(value uint32) string {
	return fmt.Sprintf("Score: %d", value)
}

// Floor is the static decorative ground.
type Floor struct {
	Position      Vec3
	Width, Height float64
	Color         color.RGBA
}

// PlayerInput is overwritten every frame by InputSystem.
type PlayerInput struct {
	MoveLeft  bool
	MoveRight bool
	Restart   bool
	Quit      bool
}

// Signals collects the per-frame events raised by fruit motion. They are
// consumed and cleared by ScoreSystem and GameOverSystem in the same frame.
type Signals struct {
	Caught   int
	GameOver int
}

// Phase is the game's top-level state.
type Phase int

const (
	// Running is normal play.
	Running Phase = iota
	// Over is reached when a fruit hits the floor. Simulation stops until a restart.
	Over
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// GameState tracks the phase plus a few counters for display and logging.
type GameState struct {
	Phase      Phase
	FinalScore uint32
	Spawned    uint64
	Caught     uint64
	Restarts   int
}

// SpawnClock paces fruit spawning. It is rebuilt on restart so every game
// spawns its first fruit one interval in.
type SpawnClock struct {
	Timer *ecs.Timer
}

// Rng is the random source used for spawning.
type Rng struct {
	*rand.Rand
}

// NewRng returns a PCG-backed Rng. A zero seed yields a fixed but valid stream.
func NewRng(seed uint64) Rng {
	return Rng{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

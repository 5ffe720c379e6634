// Package config provides YAML-based configuration loading for Fruit Drop:
// window settings, gameplay tuning, logging and asset location.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration document.
type Config struct {
	Window    WindowConfig `yaml:"window"`
	Gameplay  Gameplay     `yaml:"gameplay"`
	Log       LogConfig    `yaml:"log"`
	AssetsDir string       `yaml:"assets_dir"`
	Seed      uint64       `yaml:"seed"` // 0 = seed from the clock
}

// WindowConfig defines the fixed game window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// Gameplay holds every tunable number used by the simulation.
type Gameplay struct {
	FixedTimestep float64      `yaml:"fixed_timestep"` // seconds
	Player        PlayerConfig `yaml:"player"`
	Fruit         FruitConfig  `yaml:"fruit"`
	Spawn         SpawnConfig  `yaml:"spawn"`
	Score         ScoreConfig  `yaml:"score"`
	Floor         FloorConfig  `yaml:"floor"`
}

// PlayerConfig defines the catcher.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Z      float64 `yaml:"z"`
	Size   float64 `yaml:"size"`
	Step   float64 `yaml:"step"`  // horizontal distance per fixed tick
	Bound  float64 `yaml:"bound"` // |x| never exceeds this
}

// FruitConfig defines falling fruit.
type FruitConfig struct {
	Size           float64 `yaml:"size"`
	Z              float64 `yaml:"z"`
	SpawnY         float64 `yaml:"spawn_y"`
	SpawnXRange    float64 `yaml:"spawn_x_range"` // x drawn from [-range, range]
	Variants       int     `yaml:"variants"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerPoint  float64 `yaml:"speed_per_point"`
	CatchY         float64 `yaml:"catch_y"`          // fruit below this may be caught
	CatchHalfWidth float64 `yaml:"catch_half_width"` // horizontal catch tolerance
	MissY          float64 `yaml:"miss_y"`           // fruit below this ends the game
}

// SpawnConfig defines the spawn cadence.
type SpawnConfig struct {
	Interval float64 `yaml:"interval"` // seconds of real time
}

// ScoreConfig defines the score display and how catches are counted.
type ScoreConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	FontSize float64 `yaml:"font_size"`
	// CollapseEvents awards a single point per frame no matter how many
	// fruit were caught in it.
	CollapseEvents bool `yaml:"collapse_events"`
}

// FloorConfig defines the decorative floor.
type FloorConfig struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Z      float64  `yaml:"z"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Color  [3]uint8 `yaml:"color"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, logfmt
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window tps %d", ErrInvalidConfig, c.Window.TPS)
	}
	switch c.Log.Format {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return c.Gameplay.Validate()
}

// Validate checks the gameplay tuning.
func (g *Gameplay) Validate() error {
	switch {
	case g.FixedTimestep <= 0:
		return fmt.Errorf("%w: fixed_timestep %v", ErrInvalidConfig, g.FixedTimestep)
	case g.Spawn.Interval <= 0:
		return fmt.Errorf("%w: spawn interval %v", ErrInvalidConfig, g.Spawn.Interval)
	case g.Fruit.Variants < 1:
		return fmt.Errorf("%w: fruit variants %d", ErrInvalidConfig, g.Fruit.Variants)
	case g.Player.Step <= 0:
		return fmt.Errorf("%w: player step %v", ErrInvalidConfig, g.Player.Step)
	case g.Player.Bound < 0:
		return fmt.Errorf("%w: player bound %v", ErrInvalidConfig, g.Player.Bound)
	case g.Player.Size <= 0 || g.Fruit.Size <= 0:
		return fmt.Errorf("%w: sprite sizes must be positive", ErrInvalidConfig)
	case g.Fruit.SpawnXRange < 0:
		return fmt.Errorf("%w: fruit spawn_x_range %v", ErrInvalidConfig, g.Fruit.SpawnXRange)
	case g.Fruit.CatchHalfWidth < 0:
		return fmt.Errorf("%w: fruit catch_half_width %v", ErrInvalidConfig, g.Fruit.CatchHalfWidth)
	case g.Fruit.CatchY <= g.Fruit.MissY:
		return fmt.Errorf("%w: fruit catch_y %v must be above miss_y %v", ErrInvalidConfig, g.Fruit.CatchY, g.Fruit.MissY)
	}
	return nil
}

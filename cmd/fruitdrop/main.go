// fruitdrop is a small arcade game: move the catcher with the arrow keys and
// catch the falling fruit before it reaches the ground.
//
// Usage:
//
//	fruitdrop                 - Play in a window
//	fruitdrop sim             - Run a headless game and print a summary
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search ~/.fruitdrop, ./configs)
//	--seed <value>      - RNG seed for reproducible spawns (0 = random)
//	--log-level <level> - debug, info, warn or error
//	--debug             - Show the Dear ImGui debug overlay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plus3/fruitdrop/config"
	"github.com/plus3/fruitdrop/debugui"
	"github.com/plus3/fruitdrop/fruitdrop"
	"github.com/plus3/fruitdrop/render"
)

var (
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitdrop",
	Short: "Fruit Drop - catch the falling fruit",
	Long: `Fruit Drop is a minimal arcade game. Move the catcher with the left
and right arrow keys. Every caught fruit scores a point and makes the next
ones fall faster; the game ends when a fruit hits the ground.

On the game over screen press R to play again or Esc to quit.

Examples:
  fruitdrop
  fruitdrop --seed 42 --debug
  fruitdrop sim --ticks 3600 --strategy track`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config or time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")

	rootCmd.AddCommand(simCmd)
}

// loadConfig reads the configuration and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

func worldOptions(cfg config.Config, logger fruitdrop.Option) []fruitdrop.Option {
	opts := []fruitdrop.Option{logger}
	if cfg.Seed != 0 {
		opts = append(opts, fruitdrop.WithSeed(cfg.Seed))
	}
	return opts
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	input := &render.KeyboardInput{}
	opts := append(worldOptions(cfg, fruitdrop.WithLogger(logger)), fruitdrop.WithInput(input))
	world := fruitdrop.NewWorld(cfg.Gameplay, opts...)

	var overlay render.Overlay
	if flagDebug {
		overlay = debugui.NewOverlay(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		debugui.Install(world)
		input.Blocked = func() bool {
			return debugui.KeyboardCaptured(world.Resources)
		}
	}

	sprites, err := render.LoadSprites(cfg.AssetsDir, cfg.Gameplay.Fruit.Variants, logger)
	if err != nil {
		return fmt.Errorf("loading sprites: %w", err)
	}

	scoreFace, err := render.LoadFace(cfg.Gameplay.Score.FontSize)
	if err != nil {
		return fmt.Errorf("loading score font: %w", err)
	}
	smallFace, err := render.LoadFace(cfg.Gameplay.Score.FontSize * 0.6)
	if err != nil {
		return fmt.Errorf("loading hint font: %w", err)
	}

	camera := render.NewCamera(cfg.Window.Width, cfg.Window.Height)
	score := cfg.Gameplay.Score
	hud := render.NewHUD(camera, fruitdrop.Vec3{X: score.X, Y: score.Y, Z: score.Z}, scoreFace, smallFace)
	game := render.NewGame(cfg.Window, world, render.NewRenderer(camera, sprites), hud, overlay)

	logger.Info("starting", "title", cfg.Window.Title, "width", cfg.Window.Width, "height", cfg.Window.Height, "debug", flagDebug)
	if err := render.Run(cfg.Window, game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if state := world.State(); state != nil {
		logger.Info("exit", "score", world.Score().Value, "phase", state.Phase, "restarts", state.Restarts)
	}
	return nil
}

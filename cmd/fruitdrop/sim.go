package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plus3/fruitdrop/config"
	"github.com/plus3/fruitdrop/fruitdrop"
)

var (
	flagTicks    int
	flagStrategy string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print a summary",
	Long: `Run the game without a window, driven by a scripted player.

Strategies:
  track  - steer toward the lowest falling fruit
  idle   - never move

The run stops at game over or after --ticks frames.

Examples:
  fruitdrop sim
  fruitdrop sim --ticks 600 --strategy idle --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().StringVar(&flagStrategy, "strategy", "track", "Input strategy (track, idle)")
}

// SimResult summarises a headless run.
type SimResult struct {
	Frames   int
	Seconds  float64
	Score    uint32
	Spawned  uint64
	Caught   uint64
	GameOver bool
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	world := fruitdrop.NewWorld(cfg.Gameplay, worldOptions(cfg, fruitdrop.WithLogger(logger))...)
	switch flagStrategy {
	case "track":
		world.SetInput(fruitdrop.NewAutopilot(world.Resources))
	case "idle":
		world.SetInput(fruitdrop.NoInput{})
	default:
		return fmt.Errorf("unknown strategy %q (want track or idle)", flagStrategy)
	}

	result := simulate(world, cfg.Window, flagTicks)
	printSummary(cmd.OutOrStdout(), flagStrategy, result)
	return nil
}

// simulate steps the world at the window tick rate until game over or until
// maxFrames frames have run.
func simulate(world *fruitdrop.World, window config.WindowConfig, maxFrames int) SimResult {
	dt := 1.0 / float64(window.TPS)

	var result SimResult
	for result.Frames < maxFrames {
		world.Step(dt)
		result.Frames++
		if world.State().Phase == fruitdrop.Over {
			result.GameOver = true
			break
		}
	}

	state := world.State()
	result.Seconds = float64(result.Frames) * dt
	result.Score = world.Score().Value
	result.Spawned = state.Spawned
	result.Caught = state.Caught
	return result
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	overStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	aliveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func printSummary(w io.Writer, strategy string, r SimResult) {
	outcome := aliveStyle.Render("still running")
	if r.GameOver {
		outcome = overStyle.Render("GAME OVER")
	}

	rows := [][2]string{
		{"Strategy", strategy},
		{"Frames", fmt.Sprintf("%d (%.1fs)", r.Frames, r.Seconds)},
		{"Score", fruitdrop.FormatScore(r.Score)},
		{"Spawned", fmt.Sprintf("%d", r.Spawned)},
		{"Caught", fmt.Sprintf("%d", r.Caught)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Fruit Drop simulation"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(valueStyle.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString(outcome)

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}

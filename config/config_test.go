package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/fruitdrop/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 750, cfg.Window.Width)
	assert.Equal(t, 750, cfg.Window.Height)
	assert.Equal(t, "Fruit Drop", cfg.Window.Title)
	assert.Equal(t, 0.017, cfg.Gameplay.FixedTimestep)
	assert.Equal(t, 7.5, cfg.Gameplay.Player.Step)
	assert.Equal(t, 340.0, cfg.Gameplay.Player.Bound)
	assert.Equal(t, 6, cfg.Gameplay.Fruit.Variants)
	assert.Equal(t, 1.0, cfg.Gameplay.Spawn.Interval)
	assert.NoError(t, cfg.Validate())
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := config.Parse(config.DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse(t *testing.T) {
	t.Run("overrides keep unspecified defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(`
gameplay:
  fruit:
    base_speed: 3.5
  score:
    collapse_events: true
log:
  level: debug
seed: 42
`))
		require.NoError(t, err)

		assert.Equal(t, 3.5, cfg.Gameplay.Fruit.BaseSpeed)
		assert.Equal(t, 0.03, cfg.Gameplay.Fruit.SpeedPerPoint)
		assert.True(t, cfg.Gameplay.Score.CollapseEvents)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, 750, cfg.Window.Width)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Parse([]byte("window: [unterminated"))
		assert.Error(t, err)
	})

	invalid := map[string]string{
		"zero width":         "window:\n  width: 0\n",
		"zero tps":           "window:\n  tps: 0\n",
		"unknown format":     "log:\n  format: xml\n",
		"zero timestep":      "gameplay:\n  fixed_timestep: 0\n",
		"zero interval":      "gameplay:\n  spawn:\n    interval: 0\n",
		"no variants":        "gameplay:\n  fruit:\n    variants: 0\n",
		"negative step":      "gameplay:\n  player:\n    step: -1\n",
		"negative bound":     "gameplay:\n  player:\n    bound: -1\n",
		"zero fruit size":    "gameplay:\n  fruit:\n    size: 0\n",
		"negative range":     "gameplay:\n  fruit:\n    spawn_x_range: -5\n",
		"negative tolerance": "gameplay:\n  fruit:\n    catch_half_width: -1\n",
		"catch below miss":   "gameplay:\n  fruit:\n    catch_y: -120\n",
		"catch on miss line": "gameplay:\n  fruit:\n    catch_y: -100\n",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("custom path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fruitdrop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Custom\n"), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Custom", cfg.Window.Title)
	})

	t.Run("missing custom path", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  spawn:\n    interval: -1\n"), 0o644))

		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("broken user file is reported", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".fruitdrop"), 0o755))
		path := filepath.Join(home, ".fruitdrop", "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  fruit:\n    variants: 0\n"), 0o644))

		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.ErrorContains(t, err, path)
	})

	t.Run("broken project file is reported", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "fruitdrop.yaml"), []byte("window: [unterminated"), 0o644))

		_, err := config.Load("")
		assert.ErrorContains(t, err, "fruitdrop.yaml")
	})

	t.Run("project file is used", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "fruitdrop.yaml"), []byte("seed: 9\n"), 0o644))

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, uint64(9), cfg.Seed)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}

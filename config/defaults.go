package config

// Default returns the built-in configuration, identical to the embedded default.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  750,
			Height: 750,
			Title:  "Fruit Drop",
			TPS:    60,
		},
		Gameplay: DefaultGameplay(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		AssetsDir: "assets",
	}
}

// DefaultGameplay returns the built-in gameplay tuning.
func DefaultGameplay() Gameplay {
	return Gameplay{
		FixedTimestep: 0.017,
		Player: PlayerConfig{
			StartX: 0,
			StartY: -100,
			Z:      2,
			Size:   64,
			Step:   7.5,
			Bound:  340,
		},
		Fruit: FruitConfig{
			Size:           64,
			Z:              1,
			SpawnY:         385,
			SpawnXRange:    350,
			Variants:       6,
			BaseSpeed:      2.0,
			SpeedPerPoint:  0.03,
			CatchY:         -55,
			CatchHalfWidth: 50,
			MissY:          -100,
		},
		Spawn: SpawnConfig{
			Interval: 1.0,
		},
		Score: ScoreConfig{
			X:        -305,
			Y:        345,
			Z:        3,
			FontSize: 30,
		},
		Floor: FloorConfig{
			X:      0,
			Y:      -270,
			Z:      1,
			Width:  750,
			Height: 275,
			Color:  [3]uint8{128, 204, 77},
		},
	}
}

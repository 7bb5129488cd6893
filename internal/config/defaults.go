package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 10x10 grid,
// a two-segment snake at (3,3) heading up, movement every 150ms and a food
// spawn attempt every second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 10,
		},
		Spawn: SpawnConfig{
			X:       3,
			Y:       3,
			Heading: "up",
			Length:  2,
		},
		Timing: TimingConfig{
			MoveInterval: 150 * time.Millisecond,
			FoodInterval: time.Second,
		},
		Food: FoodConfig{
			Placement:   PlacementFree,
			WhenPresent: WhenPresentKeep,
		},
		Rules: RulesConfig{
			TailVacates: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

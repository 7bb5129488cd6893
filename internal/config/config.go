// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the snake simulation.
package config

import "time"

// SnakeConfig contains all configuration for the snake simulation.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
	Rules  RulesConfig  `yaml:"rules"`
}

// GridConfig defines the fixed board size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines where and how the snake appears after start and death.
type SpawnConfig struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Heading string `yaml:"heading"` // up, down, left, right
	Length  int    `yaml:"length"`
}

// TimingConfig defines the two independent periodic schedules.
type TimingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	FoodInterval time.Duration `yaml:"food_interval"`
}

// FoodPlacement selects how a food cell is sampled.
type FoodPlacement string

const (
	// PlacementFree samples uniformly among cells not covered by the snake.
	PlacementFree FoodPlacement = "free"
	// PlacementUniform samples uniformly over the whole grid.
	PlacementUniform FoodPlacement = "uniform"
)

// FoodWhenPresent selects what a spawn does while food is already on the board.
type FoodWhenPresent string

const (
	WhenPresentKeep    FoodWhenPresent = "keep"
	WhenPresentReplace FoodWhenPresent = "replace"
)

// FoodConfig defines the food spawning policy.
type FoodConfig struct {
	Placement   FoodPlacement   `yaml:"placement"`
	WhenPresent FoodWhenPresent `yaml:"when_present"`
}

// RulesConfig holds collision rule switches.
type RulesConfig struct {
	// TailVacates excludes the pre-move tail cell from the self-collision
	// check, so the head may follow into the cell the tail leaves.
	TailVacates bool `yaml:"tail_vacates"`
}

// DifficultyPreset represents a named movement speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// MoveIntervalForPreset returns the movement period for a preset.
// The second result is false for fixed and unknown presets.
func MoveIntervalForPreset(preset DifficultyPreset) (time.Duration, bool) {
	switch preset {
	case DifficultyEasy:
		return 220 * time.Millisecond, true
	case DifficultyNormal:
		return 150 * time.Millisecond, true
	case DifficultyHard:
		return 90 * time.Millisecond, true
	default:
		return 0, false
	}
}

// ParseDifficultyPreset validates a preset name. Empty means fixed.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", invalidf("difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if interval, ok := MoveIntervalForPreset(preset); ok {
		cfg.Timing.MoveInterval = interval
	}
}

package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodSpawner picks food cells on its own fixed schedule, independent of
// the movement tick.
type FoodSpawner struct {
	rng         *rand.Rand
	placement   config.FoodPlacement
	whenPresent config.FoodWhenPresent
	schedule    *core.Schedule
}

// NewFoodSpawner creates a spawner that fires every interval.
func NewFoodSpawner(rng *rand.Rand, cfg config.FoodConfig, interval time.Duration) *FoodSpawner {
	return &FoodSpawner{
		rng:         rng,
		placement:   cfg.Placement,
		whenPresent: cfg.WhenPresent,
		schedule:    core.NewSchedule(interval),
	}
}

// Due reports whether at least one spawn period elapsed up to now.
// Missed periods collapse into one spawn attempt.
func (f *FoodSpawner) Due(now time.Duration) bool {
	return f.schedule.Due(now) > 0
}

// Rewind restarts the schedule from start.
func (f *FoodSpawner) Rewind(start time.Duration) {
	f.schedule.Reset(start)
}

// Reseed replaces the random source.
func (f *FoodSpawner) Reseed(rng *rand.Rand) {
	f.rng = rng
}

// Allows reports whether a spawn may run while food is present or absent.
func (f *FoodSpawner) Allows(hasFood bool) bool {
	return !hasFood || f.whenPresent == config.WhenPresentReplace
}

// Pick samples a food cell. With free placement it samples uniformly among
// cells not occupied by the snake and reports false when none is left.
// Uniform placement samples the whole grid and cannot fail.
func (f *FoodSpawner) Pick(grid Grid, occupied func(Cell) bool) (Cell, bool) {
	if f.placement == config.PlacementUniform {
		return Cell{X: f.rng.Intn(grid.Width()), Y: f.rng.Intn(grid.Height())}, true
	}

	// Collect all empty cells
	free := make([]Cell, 0, grid.Area())
	for _, c := range grid.Cells() {
		if !occupied(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[f.rng.Intn(len(free))], true
}

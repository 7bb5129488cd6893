package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Stats are lifetime counters for the status line. They are not part of
// the world state that a reset restores.
type Stats struct {
	Deaths     int
	Eaten      int // Food eaten in the current life
	TotalEaten int
	Longest    int
}

// World owns the whole simulation state. It is mutated only by the frame
// loop that owns it; the platform reads Snapshots.
type World struct {
	grid  Grid
	rules config.RulesConfig

	spawnHead    Cell
	spawnHeading Heading
	spawnLength  int

	snake   *Snake
	food    Cell
	hasFood bool

	pending    Heading
	hasPending bool

	spawner *FoodSpawner
	tick    uint64
	stats   Stats
}

// NewWorld validates cfg and spawns the initial snake.
func NewWorld(cfg config.SnakeConfig, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	grid, err := NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return nil, err
	}
	heading, ok := ParseHeading(cfg.Spawn.Heading)
	if !ok {
		return nil, fmt.Errorf("snake: unknown spawn heading %q", cfg.Spawn.Heading)
	}

	w := &World{
		grid:         grid,
		rules:        cfg.Rules,
		spawnHead:    Cell{X: cfg.Spawn.X, Y: cfg.Spawn.Y},
		spawnHeading: heading,
		spawnLength:  cfg.Spawn.Length,
		spawner:      NewFoodSpawner(rng, cfg.Food, cfg.Timing.FoodInterval),
	}
	w.spawn()
	return w, nil
}

// spawn places a fresh snake with no pending intent.
func (w *World) spawn() {
	w.snake = NewSnake(w.spawnHead, w.spawnHeading, w.spawnLength)
	w.hasPending = false
	w.stats.Eaten = 0
	w.stats.Longest = max(w.stats.Longest, w.snake.Len())
}

// reset despawns every segment and the food, then spawns again.
func (w *World) reset() {
	w.snake = nil
	w.hasFood = false
	w.spawn()
}

// Restart returns the world to its initial state with a new random source
// and clears the lifetime counters. start is the simulated time the food
// schedule counts from.
func (w *World) Restart(rng *rand.Rand, start time.Duration) {
	w.spawner.Reseed(rng)
	w.spawner.Rewind(start)
	w.tick = 0
	w.stats = Stats{}
	w.reset()
}

// SubmitIntent records a directional intent for the next movement tick.
// Later intents overwrite earlier ones. An intent that reverses the committed
// heading is dropped so it cannot displace a valid earlier one.
func (w *World) SubmitIntent(h Heading) {
	if !h.Valid() || h == w.snake.Heading().Reverse() {
		return
	}
	w.pending = h
	w.hasPending = true
}

// TickFoodSpawn makes one spawn attempt and reports whether food was placed.
func (w *World) TickFoodSpawn() bool {
	if !w.spawner.Allows(w.hasFood) {
		return false
	}
	c, ok := w.spawner.Pick(w.grid, w.snake.Occupies)
	if !ok {
		return false
	}
	w.food = c
	w.hasFood = true
	return true
}

// MaybeSpawnFood runs TickFoodSpawn when the food schedule is due at now.
func (w *World) MaybeSpawnFood(now time.Duration) bool {
	if !w.spawner.Due(now) {
		return false
	}
	return w.TickFoodSpawn()
}

// PlaceFood puts food on c, replacing any existing food.
// Out-of-bounds cells are ignored.
func (w *World) PlaceFood(c Cell) bool {
	if !w.grid.InBounds(c) {
		return false
	}
	w.food = c
	w.hasFood = true
	return true
}

// Grid returns the board.
func (w *World) Grid() Grid {
	return w.grid
}

// Snake returns the live snake. Callers must treat it as read-only.
func (w *World) Snake() *Snake {
	return w.snake
}

// Food returns the active food cell, if any.
func (w *World) Food() (Cell, bool) {
	return w.food, w.hasFood
}

// Stats returns the lifetime counters.
func (w *World) Stats() Stats {
	return w.stats
}

// Tick returns the number of movement ticks run since the last restart.
func (w *World) Tick() uint64 {
	return w.tick
}

// SpawnCells returns the body a fresh spawn produces.
func (w *World) SpawnCells() []Cell {
	return NewSnake(w.spawnHead, w.spawnHeading, w.spawnLength).Segments()
}

// SpawnHeading returns the heading a fresh spawn starts with.
func (w *World) SpawnHeading() Heading {
	return w.spawnHeading
}

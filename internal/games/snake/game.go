package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game hosts a World on the platform's frame loop. It owns the movement
// schedule, feeds steer input into the world and logs lifecycle events.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	world  *World
	rng    *rand.Rand // Seeds restarts
	move   *core.Schedule
	now    time.Duration // Simulated time, frozen while paused
	frames uint64
	paused bool
	last   Outcome
}

// New creates a game from a configuration. A nil logger discards output.
func New(cfg config.SnakeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world, err := NewWorld(cfg, rand.New(rand.NewSource(0)))
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
		logger:  logger,
		world:   world,
		rng:     rand.New(rand.NewSource(0)),
		move:    core.NewSchedule(cfg.Timing.MoveInterval),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Snake %dx%d", g.cfg.Grid.Width, g.cfg.Grid.Height)
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.now = 0
	g.frames = 0
	g.paused = false
	g.last = Outcome{}
	g.move.Reset(0)
	g.world.Restart(rand.New(rand.NewSource(g.rng.Int63())), 0)

	g.logger.Info("game reset",
		"seed", cfg.Seed,
		"grid", fmt.Sprintf("%dx%d", g.cfg.Grid.Width, g.cfg.Grid.Height),
		"move_interval", g.cfg.Timing.MoveInterval,
		"food_interval", g.cfg.Timing.FoodInterval,
	)
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frames++

	// Handle restart
	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if h, ok := HeadingFromAction(input.Steer()); ok {
		g.world.SubmitIntent(h)
	}

	g.now += g.runtime.FrameDuration()

	moves := g.move.Due(g.now)
	for _i := 0; _i < moves; _i++ {
		g.observe(g.world.TickMovement())
	}

	if g.world.MaybeSpawnFood(g.now) {
		food, _ := g.world.Food()
		g.logger.Debug("food spawned", "cell", food.String(), "tick", g.world.Tick())
	}

	return core.StepResult{State: g.State(), Moves: moves}
}

// observe logs a movement outcome and remembers it for the platform.
func (g *Game) observe(out Outcome) {
	g.last = out

	switch out.Kind {
	case OutcomeDied:
		g.logger.Info("snake died",
			"reason", out.Reason.String(),
			"tick", out.Tick,
			"head", out.Head.String(),
			"length", out.Length,
		)
	case OutcomeAte:
		g.logger.Debug("snake grew",
			"tick", out.Tick,
			"length", out.Length,
			"tail", out.GrownAt.String(),
		)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	stats := g.world.Stats()
	return core.GameState{
		Score:  stats.Eaten,
		Best:   stats.Longest,
		Deaths: stats.Deaths,
		Paused: g.paused,
	}
}

// Snapshot returns a copy of the world for rendering.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// World exposes the simulation for tools and tests.
func (g *Game) World() *World {
	return g.world
}

// LastOutcome returns the outcome of the most recent movement tick.
func (g *Game) LastOutcome() Outcome {
	return g.last
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Elapsed returns the simulated time since the last reset.
func (g *Game) Elapsed() time.Duration {
	return g.now
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

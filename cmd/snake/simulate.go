package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagTicks int
	flagMoves string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a terminal UI and log every death,
meal and food spawn.

--moves is a script of steer intents, one per movement tick:
U, D, L, R steer, '.' keeps the current heading. The script repeats
until --ticks movement ticks have run.

Examples:
  snake simulate --ticks 100
  snake simulate --ticks 300 --moves RRRUUULLLDDD --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of movement ticks to run")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Steer script (U/D/L/R/.), repeated")
}

// parseMoves converts a steer script into per-tick actions.
func parseMoves(script string) ([]core.Action, error) {
	actions := make([]core.Action, 0, len(script))
	for i, r := range strings.ToUpper(script) {
		switch r {
		case 'U':
			actions = append(actions, core.ActionUp)
		case 'D':
			actions = append(actions, core.ActionDown)
		case 'L':
			actions = append(actions, core.ActionLeft)
		case 'R':
			actions = append(actions, core.ActionRight)
		case '.':
			actions = append(actions, core.ActionNone)
		default:
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
	}
	return actions, nil
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	moves, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTicks <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must be positive")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	game, err := snake.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})

	// A steer is submitted on the first frame after each movement tick
	input := core.NewInputFrame()
	ticks, next := 0, 0
	for ticks < flagTicks {
		input.Clear()
		if len(moves) > 0 && next <= ticks {
			input.Set(moves[ticks%len(moves)])
			next = ticks + 1
		}
		ticks += game.Step(input).Moves
	}

	snap := game.Snapshot()
	fmt.Printf("Simulated %d movement ticks (%v simulated time, seed %d)\n",
		snap.Tick, game.Elapsed().Round(time.Millisecond), seed)
	fmt.Print(snap.String())
}

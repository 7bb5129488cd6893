package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Logs are discarded unless --log-file is set, so they do not draw
over the board.

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./big-board.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Warn early if the board cannot fit
	needW, needH := tui.RequiredSize(cfg.Grid.Width, cfg.Grid.Height)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	game, err := snake.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runtime := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	runErr := tui.Run(game, runtime)

	// Close log before potential exit
	//nolint:errcheck // Best-effort close
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

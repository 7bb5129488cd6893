package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestBoardKindsFlipsY(t *testing.T) {
	snap := snake.Snapshot{
		Width:   4,
		Height:  3,
		Snake:   []snake.Cell{{X: 1, Y: 2}, {X: 1, Y: 1}},
		Food:    snake.Cell{X: 3, Y: 0},
		HasFood: true,
	}

	rows := boardKinds(snap)

	if len(rows) != 3 || len(rows[0]) != 4 {
		t.Fatalf("board is %dx%d, expected 3 rows of 4", len(rows), len(rows[0]))
	}
	if rows[0][1] != kindHead {
		t.Errorf("head should be on the top row, got %v", rows[0][1])
	}
	if rows[1][1] != kindBody {
		t.Errorf("body should be on the middle row, got %v", rows[1][1])
	}
	if rows[2][3] != kindFood {
		t.Errorf("food should be on the bottom row, got %v", rows[2][3])
	}
	if rows[2][0] != kindEmpty {
		t.Errorf("empty cell marked %v", rows[2][0])
	}
}

func TestBoardKindsIgnoresOutOfBounds(t *testing.T) {
	snap := snake.Snapshot{
		Width:  2,
		Height: 2,
		Snake:  []snake.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}},
	}
	rows := boardKinds(snap)
	if rows[1][1] != kindBody {
		t.Errorf("in-bounds body not drawn")
	}
}

func TestRenderBoardDimensions(t *testing.T) {
	snap := snake.Snapshot{
		Width:  5,
		Height: 4,
		Snake:  []snake.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}},
	}

	out := RenderBoard(snap, DefaultStyles())
	lines := strings.Split(out, "\n")
	cols, rows := RequiredSize(5, 4)

	// Board plus border; status and help lines are not part of it.
	if len(lines) != rows-2 {
		t.Errorf("board has %d lines, expected %d", len(lines), rows-2)
	}
	if !strings.Contains(out, "██") || !strings.Contains(out, "▓▓") {
		t.Error("head or body glyph missing")
	}
	if cols != 12 {
		t.Errorf("RequiredSize cols = %d, expected 12", cols)
	}
}

func TestRenderStatus(t *testing.T) {
	snap := snake.Snapshot{
		Snake: make([]snake.Cell, 4),
		Stats: snake.Stats{Eaten: 2, Longest: 6, Deaths: 3},
	}
	out := RenderStatus(snap, true, DefaultStyles())
	for _, want := range []string{"Length 4", "Eaten 2", "Best 6", "Deaths 3", "PAUSED"} {
		if !strings.Contains(out, want) {
			t.Errorf("status %q missing %q", out, want)
		}
	}
}

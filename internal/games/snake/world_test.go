package snake

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func newTestWorld(t *testing.T, mutate func(*config.SnakeConfig)) *World {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	return w
}

// assertSpawnState checks the state every reset must restore.
func assertSpawnState(t *testing.T, w *World) {
	t.Helper()
	snap := w.Snapshot()
	if len(snap.Snake) != 2 {
		t.Errorf("length = %d after reset, expected 2", len(snap.Snake))
	}
	if snap.Heading != HeadingUp {
		t.Errorf("heading = %v after reset, expected up", snap.Heading)
	}
	if snap.HasFood {
		t.Errorf("food at %v after reset, expected none", snap.Food)
	}
	if expected := []Cell{{3, 3}, {3, 2}}; !slices.Equal(snap.Snake, expected) {
		t.Errorf("segments = %v after reset, expected %v", snap.Snake, expected)
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Width = 0
	if _, err := NewWorld(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewWorld() error = %v, expected ErrInvalid", err)
	}
}

func TestSpawnState(t *testing.T) {
	w := newTestWorld(t, nil)
	assertSpawnState(t, w)
	if !slices.Equal(w.SpawnCells(), []Cell{{3, 3}, {3, 2}}) {
		t.Errorf("SpawnCells() = %v", w.SpawnCells())
	}
}

func TestThreeTicksUp(t *testing.T) {
	w := newTestWorld(t, nil)

	expected := [][]Cell{
		{{3, 4}, {3, 3}},
		{{3, 5}, {3, 4}},
		{{3, 6}, {3, 5}},
	}
	for i, want := range expected {
		out := w.TickMovement()
		if out.Kind != OutcomeNormal {
			t.Fatalf("tick %d: outcome %v, expected normal", i+1, out.Kind)
		}
		if got := w.Snake().Segments(); !slices.Equal(got, want) {
			t.Errorf("tick %d: segments = %v, expected %v", i+1, got, want)
		}
	}
}

func TestEatFoodGrows(t *testing.T) {
	w := newTestWorld(t, nil)
	w.PlaceFood(Cell{3, 4})

	out := w.TickMovement()

	if out.Kind != OutcomeAte {
		t.Fatalf("outcome = %v, expected ate", out.Kind)
	}
	if w.Snake().Len() != 3 || out.Length != 3 {
		t.Errorf("length = %d (outcome %d), expected 3", w.Snake().Len(), out.Length)
	}
	if _, ok := w.Food(); ok {
		t.Error("food should be consumed")
	}
	// New tail is the tail's cell from before the move.
	if w.Snake().Tail() != (Cell{3, 2}) || out.GrownAt != (Cell{3, 2}) {
		t.Errorf("tail = %v (grown at %v), expected (3, 2)", w.Snake().Tail(), out.GrownAt)
	}
	if expected := []Cell{{3, 4}, {3, 3}, {3, 2}}; !slices.Equal(w.Snake().Segments(), expected) {
		t.Errorf("segments = %v, expected %v", w.Snake().Segments(), expected)
	}
	if s := w.Stats(); s.Eaten != 1 || s.TotalEaten != 1 || s.Longest != 3 {
		t.Errorf("stats = %+v", s)
	}
}

func TestBoundaryDeathResets(t *testing.T) {
	w := newTestWorld(t, nil)
	w.snake = NewSnake(Cell{5, 9}, HeadingUp, 2)
	w.PlaceFood(Cell{0, 0})

	out := w.TickMovement()

	if out.Kind != OutcomeDied || out.Reason != DeathBoundary {
		t.Fatalf("outcome = %v/%v, expected died/boundary", out.Kind, out.Reason)
	}
	if out.Head != (Cell{5, 10}) {
		t.Errorf("fatal head = %v, expected (5, 10)", out.Head)
	}
	assertSpawnState(t, w)
	if w.Stats().Deaths != 1 {
		t.Errorf("deaths = %d, expected 1", w.Stats().Deaths)
	}
}

func TestBoundaryDeathEachEdge(t *testing.T) {
	tests := []struct {
		name    string
		head    Cell
		heading Heading
	}{
		{"top", Cell{4, 9}, HeadingUp},
		{"bottom", Cell{4, 0}, HeadingDown},
		{"left", Cell{0, 4}, HeadingLeft},
		{"right", Cell{9, 4}, HeadingRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, nil)
			w.snake = NewSnake(tc.head, tc.heading, 2)
			out := w.TickMovement()
			if out.Reason != DeathBoundary {
				t.Errorf("reason = %v, expected boundary", out.Reason)
			}
			assertSpawnState(t, w)
		})
	}
}

func TestSelfCollisionResets(t *testing.T) {
	w := newTestWorld(t, nil)
	w.snake = &Snake{
		segments: []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {6, 4}},
		heading:  HeadingRight,
	}

	out := w.TickMovement()

	if out.Kind != OutcomeDied || out.Reason != DeathSelfCollision {
		t.Fatalf("outcome = %v/%v, expected died/self_collision", out.Kind, out.Reason)
	}
	if out.Length != 5 {
		t.Errorf("outcome length = %d, expected pre-reset 5", out.Length)
	}
	assertSpawnState(t, w)
}

func TestReversalRequestIgnored(t *testing.T) {
	w := newTestWorld(t, nil)
	w.snake = NewSnake(Cell{5, 5}, HeadingRight, 4) // (5,5) (4,5) (3,5) (2,5)

	w.SubmitIntent(HeadingLeft)
	out := w.TickMovement()

	if out.Kind != OutcomeNormal {
		t.Fatalf("outcome = %v, expected normal", out.Kind)
	}
	if w.Snake().Heading() != HeadingRight {
		t.Errorf("heading = %v, expected right", w.Snake().Heading())
	}
	if w.Snake().Head() != (Cell{6, 5}) {
		t.Errorf("head = %v, expected (6, 5)", w.Snake().Head())
	}
}

func TestIntentLastWriteWins(t *testing.T) {
	w := newTestWorld(t, nil)

	w.SubmitIntent(HeadingLeft)
	w.SubmitIntent(HeadingRight)
	w.SubmitIntent(HeadingDown) // reverse of up, dropped
	w.TickMovement()

	if w.Snake().Heading() != HeadingRight {
		t.Errorf("heading = %v, expected right", w.Snake().Heading())
	}
	if w.Snake().Head() != (Cell{4, 3}) {
		t.Errorf("head = %v, expected (4, 3)", w.Snake().Head())
	}

	// The intent is consumed by the tick.
	w.TickMovement()
	if w.Snake().Head() != (Cell{5, 3}) {
		t.Errorf("head = %v, expected (5, 3)", w.Snake().Head())
	}
}

func TestTailVacates(t *testing.T) {
	loop := func() *Snake {
		return &Snake{
			segments: []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}},
			heading:  HeadingRight,
		}
	}

	t.Run("follows tail", func(t *testing.T) {
		w := newTestWorld(t, nil)
		w.snake = loop()
		out := w.TickMovement()
		if out.Kind != OutcomeNormal {
			t.Fatalf("outcome = %v/%v, expected normal", out.Kind, out.Reason)
		}
		expected := []Cell{{6, 5}, {5, 5}, {5, 6}, {6, 6}}
		if !slices.Equal(w.Snake().Segments(), expected) {
			t.Errorf("segments = %v, expected %v", w.Snake().Segments(), expected)
		}
	})

	t.Run("growing keeps tail", func(t *testing.T) {
		w := newTestWorld(t, nil)
		w.snake = loop()
		w.PlaceFood(Cell{6, 5})
		out := w.TickMovement()
		if out.Reason != DeathSelfCollision {
			t.Errorf("reason = %v, expected self_collision", out.Reason)
		}
	})

	t.Run("strict rule", func(t *testing.T) {
		w := newTestWorld(t, func(c *config.SnakeConfig) { c.Rules.TailVacates = false })
		w.snake = loop()
		out := w.TickMovement()
		if out.Reason != DeathSelfCollision {
			t.Errorf("reason = %v, expected self_collision", out.Reason)
		}
	})
}

func TestRestartClearsCounters(t *testing.T) {
	w := newTestWorld(t, nil)
	w.snake = NewSnake(Cell{5, 9}, HeadingUp, 2)
	w.TickMovement()
	w.TickFoodSpawn()

	w.Restart(rand.New(rand.NewSource(2)), 0)

	assertSpawnState(t, w)
	if w.Tick() != 0 || w.Stats().Deaths != 0 {
		t.Errorf("tick = %d, deaths = %d after restart", w.Tick(), w.Stats().Deaths)
	}
}

// TestInvariantsUnderRandomPlay drives the world with random intents and
// checks the invariants after every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	w := newTestWorld(t, nil)
	rng := rand.New(rand.NewSource(7))
	spawn := w.SpawnCells()

	deaths, meals := 0, 0
	for i := 0; i < 5000; i++ {
		if i%7 == 0 {
			w.TickFoodSpawn()
		}
		w.SubmitIntent(Heading(rng.Intn(4)))

		before := w.Snake().Len()
		out := w.TickMovement()
		snap := w.Snapshot()

		switch out.Kind {
		case OutcomeDied:
			deaths++
			if !slices.Equal(snap.Snake, spawn) || snap.HasFood || snap.Heading != HeadingUp {
				t.Fatalf("tick %d: world not reset after death: %s", i, snap)
			}
			continue
		case OutcomeAte:
			meals++
			if len(snap.Snake) != before+1 {
				t.Fatalf("tick %d: length %d after eating, expected %d", i, len(snap.Snake), before+1)
			}
		default:
			if len(snap.Snake) != before {
				t.Fatalf("tick %d: length changed %d -> %d without eating", i, before, len(snap.Snake))
			}
		}

		if !w.Grid().InBounds(snap.Head()) {
			t.Fatalf("tick %d: head %v out of bounds while running", i, snap.Head())
		}
		seen := make(map[Cell]bool, len(snap.Snake))
		for _, c := range snap.Snake {
			if seen[c] {
				t.Fatalf("tick %d: two segments on %v", i, c)
			}
			seen[c] = true
		}
		if snap.HasFood && seen[snap.Food] {
			t.Fatalf("tick %d: food %v under the snake", i, snap.Food)
		}
	}

	if deaths == 0 || meals == 0 {
		t.Errorf("random play should both die and eat (deaths=%d meals=%d)", deaths, meals)
	}
}

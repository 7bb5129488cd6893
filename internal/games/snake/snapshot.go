package snake

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of the world for rendering and tests.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Snake   []Cell // Head first
	Heading Heading
	Food    Cell
	HasFood bool
	Stats   Stats
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:    w.tick,
		Width:   w.grid.Width(),
		Height:  w.grid.Height(),
		Snake:   w.snake.Segments(),
		Heading: w.snake.Heading(),
		Food:    w.food,
		HasFood: w.hasFood,
		Stats:   w.stats,
	}
}

// Head returns the head cell of the snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// String summarizes the snapshot on one line per field group.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Grid: %dx%d\n", s.Tick, s.Width, s.Height)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Head: %s\n", len(s.Snake), s.Heading, s.Head())
	if s.HasFood {
		fmt.Fprintf(&b, "Food: %s\n", s.Food)
	} else {
		b.WriteString("Food: none\n")
	}
	fmt.Fprintf(&b, "Eaten: %d, Total: %d, Longest: %d, Deaths: %d\n",
		s.Stats.Eaten, s.Stats.TotalEaten, s.Stats.Longest, s.Stats.Deaths)
	return b.String()
}

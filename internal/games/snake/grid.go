// Package snake implements the grid-snake simulation: a fixed board, a snake
// that moves one cell per movement tick, timer-driven food, growth, and a
// full reset on death. The package has no rendering or terminal dependencies;
// the platform reads Snapshots between ticks.
package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned for non-positive grid dimensions.
var ErrInvalidGrid = errors.New("snake: invalid grid")

// Cell is an integer grid coordinate. +Y is up.
// Cells outside the grid are representable; that is how boundary deaths are detected.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid is the fixed-size board. It is immutable once created.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a width x height grid.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return Grid{width: width, height: height}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Area returns the number of cells.
func (g Grid) Area() int {
	return g.width * g.height
}

// InBounds reports whether c lies in [0,width) x [0,height).
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cells returns every cell in row-major order, bottom row first.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

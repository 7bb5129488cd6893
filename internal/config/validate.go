package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// headingDelta mirrors the simulation's unit vectors; +y is up.
var headingDelta = map[string][2]int{
	"up":    {0, 1},
	"down":  {0, -1},
	"left":  {-1, 0},
	"right": {1, 0},
}

// Validate checks the configuration once, before the simulation starts.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return invalidf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.MoveInterval <= 0 {
		return invalidf("timing.move_interval must be positive, got %v", c.Timing.MoveInterval)
	}
	if c.Timing.FoodInterval <= 0 {
		return invalidf("timing.food_interval must be positive, got %v", c.Timing.FoodInterval)
	}

	switch c.Food.Placement {
	case PlacementFree, PlacementUniform:
	default:
		return invalidf("food.placement %q (want free or uniform)", c.Food.Placement)
	}
	switch c.Food.WhenPresent {
	case WhenPresentKeep, WhenPresentReplace:
	default:
		return invalidf("food.when_present %q (want keep or replace)", c.Food.WhenPresent)
	}

	d, ok := headingDelta[c.Spawn.Heading]
	if !ok {
		return invalidf("spawn.heading %q (want up, down, left or right)", c.Spawn.Heading)
	}
	if c.Spawn.Length < 2 {
		return invalidf("spawn.length must be at least 2, got %d", c.Spawn.Length)
	}

	// The body trails behind the head, opposite the heading.
	for i := 0; i < c.Spawn.Length; i++ {
		x := c.Spawn.X - d[0]*i
		y := c.Spawn.Y - d[1]*i
		if x < 0 || x >= c.Grid.Width || y < 0 || y >= c.Grid.Height {
			return invalidf("spawn segment %d at (%d, %d) is outside the %dx%d grid",
				i, x, y, c.Grid.Width, c.Grid.Height)
		}
	}
	return nil
}

package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Heading is the snake's movement direction.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	default:
		return h
	}
}

// Delta returns the unit vector for the heading.
func (h Heading) Delta() Cell {
	switch h {
	case HeadingUp:
		return Cell{X: 0, Y: 1}
	case HeadingDown:
		return Cell{X: 0, Y: -1}
	case HeadingLeft:
		return Cell{X: -1, Y: 0}
	case HeadingRight:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseHeading converts a config string ("up", "down", "left", "right").
func ParseHeading(s string) (Heading, bool) {
	switch s {
	case "up":
		return HeadingUp, true
	case "down":
		return HeadingDown, true
	case "left":
		return HeadingLeft, true
	case "right":
		return HeadingRight, true
	default:
		return 0, false
	}
}

// HeadingFromAction maps a steer action to a heading.
func HeadingFromAction(a core.Action) (Heading, bool) {
	switch a {
	case core.ActionUp:
		return HeadingUp, true
	case core.ActionDown:
		return HeadingDown, true
	case core.ActionLeft:
		return HeadingLeft, true
	case core.ActionRight:
		return HeadingRight, true
	default:
		return 0, false
	}
}

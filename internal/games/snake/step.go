package snake

import "slices"

// OutcomeKind classifies a movement tick.
type OutcomeKind int

const (
	OutcomeNormal OutcomeKind = iota
	OutcomeAte
	OutcomeDied
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNormal:
		return "normal"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// DeathReason says why a tick ended in death.
type DeathReason int

const (
	DeathNone DeathReason = iota
	DeathBoundary
	DeathSelfCollision
)

func (r DeathReason) String() string {
	switch r {
	case DeathNone:
		return "none"
	case DeathBoundary:
		return "boundary"
	case DeathSelfCollision:
		return "self_collision"
	default:
		return "unknown"
	}
}

// Outcome is the result of one movement tick.
type Outcome struct {
	Kind   OutcomeKind
	Reason DeathReason // Set when Kind is OutcomeDied
	Tick   uint64
	Head   Cell // Head after the move; the fatal cell on death
	// GrownAt is the new tail cell when Kind is OutcomeAte.
	GrownAt Cell
	// Length is the snake length when the tick resolved, before any reset.
	Length int
}

// TickMovement runs one movement tick:
//
//	commit intent -> move -> boundary check -> self check -> (reset | eat -> grow)
//
// A death resets the world before returning.
func (w *World) TickMovement() Outcome {
	w.tick++

	if w.hasPending {
		w.snake.SetHeading(w.pending)
		w.hasPending = false
	}

	prior := w.snake.Advance()
	tail := w.snake.TailBeforeMove()
	head := w.snake.Head()
	eats := w.hasFood && w.food == head

	out := Outcome{Tick: w.tick, Head: head, Length: w.snake.Len()}

	switch {
	case !w.grid.InBounds(head):
		out.Reason = DeathBoundary
	case w.hitsBody(head, prior, eats):
		out.Reason = DeathSelfCollision
	}

	if out.Reason != DeathNone {
		out.Kind = OutcomeDied
		w.stats.Deaths++
		w.reset()
		return out
	}

	if eats {
		w.hasFood = false
		w.snake.Append(tail)
		w.stats.Eaten++
		w.stats.TotalEaten++
		w.stats.Longest = max(w.stats.Longest, w.snake.Len())

		out.Kind = OutcomeAte
		out.GrownAt = tail
		out.Length = w.snake.Len()
	}
	return out
}

// hitsBody checks head against the pre-move body. With TailVacates the old
// tail cell is free unless the snake grows this tick, since growth keeps a
// segment there.
func (w *World) hitsBody(head Cell, prior []Cell, growing bool) bool {
	body := prior
	if w.rules.TailVacates && !growing {
		body = prior[:len(prior)-1]
	}
	return slices.Contains(body, head)
}

package snake

import "slices"

// Snake is the ordered body, head at index 0, plus the committed heading.
type Snake struct {
	segments       []Cell
	heading        Heading
	tailBeforeMove Cell
}

// NewSnake lays out length segments starting at head and trailing
// opposite to heading.
func NewSnake(head Cell, heading Heading, length int) *Snake {
	length = max(length, 1)
	back := heading.Reverse().Delta()

	segments := make([]Cell, length)
	segments[0] = head
	for i := 1; i < length; i++ {
		segments[i] = segments[i-1].Add(back)
	}

	return &Snake{
		segments:       segments,
		heading:        heading,
		tailBeforeMove: segments[length-1],
	}
}

// Heading returns the committed heading.
func (s *Snake) Heading() Heading {
	return s.heading
}

// SetHeading commits h unless it is invalid or reverses the current heading.
// It reports whether the heading was accepted.
func (s *Snake) SetHeading(h Heading) bool {
	if !h.Valid() || h == s.heading.Reverse() {
		return false
	}
	s.heading = h
	return true
}

// Advance moves the head one cell along the heading and shifts every other
// segment into its predecessor's pre-move cell. The length never changes.
// It returns the pre-move positions.
func (s *Snake) Advance() []Cell {
	prior := slices.Clone(s.segments)
	s.tailBeforeMove = prior[len(prior)-1]

	s.segments[0] = prior[0].Add(s.heading.Delta())
	for i := 1; i < len(s.segments); i++ {
		s.segments[i] = prior[i-1]
	}
	return prior
}

// TailBeforeMove returns the tail cell captured by the latest Advance.
func (s *Snake) TailBeforeMove() Cell {
	return s.tailBeforeMove
}

// Append pushes a new tail segment at c.
func (s *Snake) Append(c Cell) {
	s.segments = append(s.segments, c)
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.segments[0]
}

// Tail returns the last segment's cell.
func (s *Snake) Tail() Cell {
	return s.segments[len(s.segments)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Cell {
	return slices.Clone(s.segments)
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	return slices.Contains(s.segments, c)
}

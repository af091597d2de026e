package core

import (
	"errors"
	"fmt"
)

var ErrNegativeGrowth = errors.New("growth must be non-negative")

// SnakeKind identifies which side controls a snake
type SnakeKind int

const (
	HumanSnake SnakeKind = iota
	ComputerSnake
)

func (k SnakeKind) String() string {
	switch k {
	case HumanSnake:
		return "human"
	case ComputerSnake:
		return "computer"
	default:
		return fmt.Sprintf("snake(%d)", int(k))
	}
}

// Snake is an ordered chain of segments from tail to head plus a heading and
// pending growth credit. Segments live in a ring buffer owned by the snake:
// AppendHead writes after the head, RemoveTail advances the tail index.
// A snake whose last segment has been removed is empty for good.
type Snake struct {
	Kind    SnakeKind
	Heading Direction
	Growth  int

	ring   []Coordinate
	tail   int // ring index of the tail segment
	length int
}

const initialRingCapacity = 8

// NewSnake creates a single-segment snake at start and marks its cell on the board
func NewSnake(b *Board, kind SnakeKind, start Coordinate, heading Direction, initialGrowth int) (*Snake, error) {
	if !heading.IsValid() {
		return nil, WrapSnakeError(kind, fmt.Errorf("heading %d: %w", int(heading), ErrInvalidDirection))
	}
	if initialGrowth < 0 {
		return nil, WrapSnakeError(kind, ErrNegativeGrowth)
	}
	cell, ok := b.Lookup(start)
	if !ok {
		return nil, WrapSnakeError(kind, fmt.Errorf("start %s: %w", start, ErrOutOfBounds))
	}
	if cell != CellOpen {
		return nil, WrapSnakeError(kind, fmt.Errorf("start %s is %s: %w", start, cell, ErrCellOccupied))
	}

	s := &Snake{
		Kind:    kind,
		Heading: heading,
		Growth:  initialGrowth,
		ring:    make([]Coordinate, initialRingCapacity),
	}
	s.ring[0] = start
	s.length = 1
	b.setIdx(b.Idx(start.Row, start.Col), CellSnake)
	return s, nil
}

// Destroy releases the segment chain. Board cells are left untouched.
func (s *Snake) Destroy() {
	s.ring = nil
	s.tail = 0
	s.length = 0
}

// Len returns the number of segments
func (s *Snake) Len() int { return s.length }

// IsEmpty reports whether the snake reached its terminal, segment-less state
func (s *Snake) IsEmpty() bool { return s.length == 0 }

// Head returns the head segment position
func (s *Snake) Head() (Coordinate, bool) {
	if s.length == 0 {
		return Coordinate{}, false
	}
	return s.ring[s.slot(s.length-1)], true
}

// Tail returns the tail segment position
func (s *Snake) Tail() (Coordinate, bool) {
	if s.length == 0 {
		return Coordinate{}, false
	}
	return s.ring[s.tail], true
}

// Segments returns a copy of the chain ordered tail to head
func (s *Snake) Segments() []Coordinate {
	out := make([]Coordinate, s.length)
	for i := 0; i < s.length; i++ {
		out[i] = s.ring[s.slot(i)]
	}
	return out
}

// Contains reports whether any segment occupies c
func (s *Snake) Contains(c Coordinate) bool {
	for i := 0; i < s.length; i++ {
		if s.ring[s.slot(i)].Equal(c) {
			return true
		}
	}
	return false
}

// AppendHead adds a new head segment at c and marks the cell as snake
func (s *Snake) AppendHead(b *Board, c Coordinate) error {
	if s.length == 0 {
		return WrapSnakeError(s.Kind, ErrSnakeEmpty)
	}
	if !b.InBounds(c.Row, c.Col) {
		return WrapSnakeError(s.Kind, fmt.Errorf("append %s: %w", c, ErrOutOfBounds))
	}
	s.appendHead(b, c)
	return nil
}

// appendHead requires a non-empty snake and an in-bounds c
func (s *Snake) appendHead(b *Board, c Coordinate) {
	if s.length == len(s.ring) {
		s.grow()
	}
	s.ring[s.slot(s.length)] = c
	s.length++
	b.setIdx(b.Idx(c.Row, c.Col), CellSnake)
}

// RemoveTail opens the tail cell and drops the tail segment
func (s *Snake) RemoveTail(b *Board) error {
	if s.length == 0 {
		return WrapSnakeError(s.Kind, ErrSnakeEmpty)
	}
	s.removeTail(b)
	return nil
}

// removeTail requires a non-empty snake
func (s *Snake) removeTail(b *Board) {
	t := s.ring[s.tail]
	if b.InBounds(t.Row, t.Col) {
		b.setIdx(b.Idx(t.Row, t.Col), CellOpen)
	}
	s.tail = s.slot(1)
	s.length--
	if s.length == 0 {
		s.tail = 0
	}
}

// Clone returns an independent copy of the snake
func (s *Snake) Clone() *Snake {
	segs := s.Segments()
	ring := make([]Coordinate, max(len(segs), initialRingCapacity))
	copy(ring, segs)
	return &Snake{
		Kind:    s.Kind,
		Heading: s.Heading,
		Growth:  s.Growth,
		ring:    ring,
		length:  len(segs),
	}
}

// slot maps a logical position (0 = tail) to a ring index
func (s *Snake) slot(i int) int {
	return (s.tail + i) % len(s.ring)
}

// grow doubles the ring, unrolling the chain so the tail sits at index 0
func (s *Snake) grow() {
	next := make([]Coordinate, len(s.ring)*2)
	for i := 0; i < s.length; i++ {
		next[i] = s.ring[s.slot(i)]
	}
	s.ring = next
	s.tail = 0
}

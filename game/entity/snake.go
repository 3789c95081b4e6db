package entity

import (
	"statue-snake/game/types"
)

// Snake is the ordered list of occupied cells, head first
type Snake struct {
	Body []types.Cell
}

func NewSnake(startPos types.Cell) *Snake {
	return &Snake{
		Body: []types.Cell{startPos},
	}
}

// Advance prepends newHead and drops the tail unless food was eaten
func (s *Snake) Advance(newHead types.Cell, ateFood bool) {
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if !ateFood {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains checks the current body, tail included
func (s *Snake) Contains(c types.Cell) bool {
	for _, p := range s.Body {
		if p == c {
			return true
		}
	}
	return false
}

// Occupies lets the snake be used as a food spawn exclusion
func (s *Snake) Occupies(c types.Cell) bool {
	return s.Contains(c)
}

// Segments returns every cell behind the head
func (s *Snake) Segments() []types.Cell {
	return s.Body[1:]
}

// Cells returns a copy of the body
func (s *Snake) Cells() []types.Cell {
	body := make([]types.Cell, len(s.Body))
	copy(body, s.Body)
	return body
}

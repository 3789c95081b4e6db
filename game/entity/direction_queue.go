package entity

import "statue-snake/game/types"

// DirectionQueue buffers key presses that arrive between ticks.
// Reversals are only rejected when an entry is popped, against the heading
// that is current at that moment.
type DirectionQueue struct {
	pending []types.Direction
}

func NewDirectionQueue() *DirectionQueue {
	return &DirectionQueue{}
}

// Push buffers a direction. NONE is ignored.
func (q *DirectionQueue) Push(dir types.Direction) {
	if dir == types.NONE {
		return
	}
	q.pending = append(q.pending, dir)
}

// PopNext consumes the oldest buffered direction. A reversal of current is
// dropped and current is kept.
func (q *DirectionQueue) PopNext(current types.Direction) types.Direction {
	if len(q.pending) == 0 {
		return current
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	if next.IsOpposite(current) {
		return current
	}
	return next
}

func (q *DirectionQueue) Len() int {
	return len(q.pending)
}

func (q *DirectionQueue) Clear() {
	q.pending = q.pending[:0]
}

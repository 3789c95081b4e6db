package types

// Direction is a cardinal heading. NONE means no heading has been chosen yet.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// Directions lists every real heading
var Directions = [...]Direction{UP, RIGHT, DOWN, LEFT}

// Delta converts a Direction into a unit movement vector
func (d Direction) Delta() Cell {
	switch d {
	case UP:
		return Cell{X: 0, Y: -1}
	case RIGHT:
		return Cell{X: 1, Y: 0}
	case DOWN:
		return Cell{X: 0, Y: 1}
	case LEFT:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// IsOpposite reports whether the two deltas cancel out.
// NONE is never opposite to anything.
func (d Direction) IsOpposite(other Direction) bool {
	if d == NONE || other == NONE {
		return false
	}
	a, b := d.Delta(), other.Delta()
	return a.X+b.X == 0 && a.Y+b.Y == 0
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	default:
		return "NONE"
	}
}

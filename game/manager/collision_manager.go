package manager

import (
	"statue-snake/game/entity"
	"statue-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	StatueCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case StatueCollision:
		return "statue"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a candidate head position against walls, the
// current body and, when statues is non-nil, solid statues
func (cm *CollisionManager) CheckCollision(pos types.Cell, snake *entity.Snake, statues *StatueManager) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}

	if snake.Contains(pos) {
		return SelfCollision
	}

	if statues != nil && statues.IsSolid(pos) {
		return StatueCollision
	}

	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.InBounds(pos)
}

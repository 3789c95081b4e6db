package manager

import (
	"fmt"

	"statue-snake/game/types"
)

// Occupier reports whether a cell is taken
type Occupier interface {
	Occupies(c types.Cell) bool
}

type FoodManager struct {
	grid types.Grid
	rng  Random
	food types.Cell
}

func NewFoodManager(grid types.Grid, rng Random) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// RandomFreeCell picks a uniformly random cell not taken by any occupier.
// It panics when nothing is free.
func (fm *FoodManager) RandomFreeCell(occupiers ...Occupier) types.Cell {
	taken := func(c types.Cell) bool {
		for _, o := range occupiers {
			if o.Occupies(c) {
				return true
			}
		}
		return false
	}

	// Rejection sampling is uniform and fast while the board is sparse
	for tries := 0; tries < fm.grid.Area(); tries++ {
		c := types.Cell{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !taken(c) {
			return c
		}
	}

	free := make([]types.Cell, 0)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			c := types.Cell{X: x, Y: y}
			if !taken(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		panic(fmt.Sprintf("manager: no free cell left on %dx%d grid", fm.grid.Width, fm.grid.Height))
	}
	return free[fm.rng.Intn(len(free))]
}

// Spawn moves the food to a fresh free cell
func (fm *FoodManager) Spawn(occupiers ...Occupier) types.Cell {
	fm.food = fm.RandomFreeCell(occupiers...)
	return fm.food
}

func (fm *FoodManager) GetFood() types.Cell {
	return fm.food
}

// SetFood places the food directly
func (fm *FoodManager) SetFood(c types.Cell) {
	fm.food = c
}

// IsFood checks if a position collides with food
func (fm *FoodManager) IsFood(pos types.Cell) bool {
	return pos == fm.food
}

package game

import (
	"fmt"
	"time"

	"statue-snake/game/types"
)

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	Session   string
	Grid      types.Grid
	Phase     types.Phase
	Mode      types.GameMode
	Speed     types.Speed
	Direction types.Direction
	Snake     []types.Cell // head first
	Food      types.Cell
	Statues   []types.Cell
	Cracked   map[types.Cell]int
	Score     int
	HighScore int
	GameOver  bool
	Elapsed   time.Duration
}

// Snapshot copies the current state. Mutating it has no effect on the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Session:   g.UUID,
		Grid:      g.Grid,
		Phase:     g.phase,
		Mode:      g.stateMgr.GetMode(),
		Speed:     g.speed,
		Direction: g.direction,
		Snake:     g.snake.Cells(),
		Food:      g.foodMgr.GetFood(),
		Statues:   g.statueMgr.Statues(),
		Cracked:   g.statueMgr.Cracked(),
		Score:     g.stateMgr.GetScore(),
		HighScore: g.stateMgr.GetHighScore(),
		GameOver:  g.phase == types.PhaseGameOver,
		Elapsed:   g.ElapsedTime(),
	}
}

// InMenu reports whether a selection screen should be shown
func (s Snapshot) InMenu() bool {
	return s.Phase == types.PhaseSelectingMode || s.Phase == types.PhaseSelectingSpeed
}

// Clock formats the run length as mm:ss
func (s Snapshot) Clock() string {
	total := int(s.Elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// IsStatue reports whether the cell holds a statue, cracked or not
func (s Snapshot) IsStatue(c types.Cell) bool {
	for _, p := range s.Statues {
		if p == c {
			return true
		}
	}
	return false
}

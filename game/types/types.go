package types

import "time"

// Cell is a single grid coordinate
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by delta
func (c Cell) Add(delta Cell) Cell {
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether the cell lies inside the grid.
// The whole Width x Height area is playable; HUD space is a rendering concern.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the starting cell for a fresh snake
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Area returns the number of cells in the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Game constants
const (
	DefaultGridSize = 30
)

// GameMode selects the rule set for a session
type GameMode int

const (
	ModeNone GameMode = iota
	ModeNormal
	ModeStatue
)

// ModeFromChoice maps a menu choice (1 or 2) to a mode
func ModeFromChoice(choice int) (GameMode, bool) {
	switch choice {
	case 1:
		return ModeNormal, true
	case 2:
		return ModeStatue, true
	default:
		return ModeNone, false
	}
}

// Key is the name the mode is persisted under
func (m GameMode) Key() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeStatue:
		return "STATUE"
	default:
		return ""
	}
}

func (m GameMode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeStatue:
		return "Statue"
	default:
		return "None"
	}
}

// Speed is one of the three tick cadences
type Speed int

const (
	SpeedSlow   Speed = 1
	SpeedMedium Speed = 2
	SpeedFast   Speed = 3

	DefaultSpeed = SpeedMedium
)

// SpeedFromChoice maps a menu choice (1, 2 or 3) to a speed
func SpeedFromChoice(choice int) (Speed, bool) {
	s := Speed(choice)
	if s < SpeedSlow || s > SpeedFast {
		return DefaultSpeed, false
	}
	return s, true
}

// Delay is the time between two ticks at this speed
func (s Speed) Delay() time.Duration {
	switch s {
	case SpeedSlow:
		return 200 * time.Millisecond
	case SpeedFast:
		return 100 * time.Millisecond
	default:
		return 150 * time.Millisecond
	}
}

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "Slow"
	case SpeedFast:
		return "Fast"
	default:
		return "Medium"
	}
}

// Phase is the top-level state of a game
type Phase int

const (
	PhaseSelectingMode Phase = iota
	PhaseSelectingSpeed
	PhaseWaitingForFirstInput
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSelectingMode:
		return "SelectingMode"
	case PhaseSelectingSpeed:
		return "SelectingSpeed"
	case PhaseWaitingForFirstInput:
		return "WaitingForFirstInput"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

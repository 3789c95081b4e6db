package game

import "statue-snake/game/types"

// EventKind identifies an input event
type EventKind int

const (
	EventQuit EventKind = iota
	EventDirection
	EventSelectMode
	EventSelectSpeed
	EventRestart
	EventHome
	EventCancel
	EventDigit
)

// Event is a discrete input delivered by a frontend
type Event struct {
	Kind      EventKind
	Direction types.Direction // EventDirection
	Choice    int             // EventSelectMode (1-2), EventSelectSpeed (1-3), EventDigit
}

func Quit() Event { return Event{Kind: EventQuit} }
func KeyDirection(d types.Direction) Event { return Event{Kind: EventDirection, Direction: d} }
func SelectMode(choice int) Event { return Event{Kind: EventSelectMode, Choice: choice} }
func SelectSpeed(choice int) Event { return Event{Kind: EventSelectSpeed, Choice: choice} }
func Restart() Event { return Event{Kind: EventRestart} }
func Home() Event { return Event{Kind: EventHome} }
func Cancel() Event { return Event{Kind: EventCancel} }

// Digit is a number key; it selects a mode or a speed depending on the menu shown
func Digit(n int) Event { return Event{Kind: EventDigit, Choice: n} }

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventDirection:
		return "direction"
	case EventSelectMode:
		return "select-mode"
	case EventSelectSpeed:
		return "select-speed"
	case EventRestart:
		return "restart"
	case EventHome:
		return "home"
	case EventCancel:
		return "cancel"
	case EventDigit:
		return "digit"
	default:
		return "unknown"
	}
}

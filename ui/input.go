package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"statue-snake/game"
	"statue-snake/game/types"
)

// translateKey maps a raylib key code to a game event
func translateKey(key int32) (game.Event, bool) {
	switch key {
	case rl.KeyUp:
		return game.KeyDirection(types.UP), true
	case rl.KeyDown:
		return game.KeyDirection(types.DOWN), true
	case rl.KeyLeft:
		return game.KeyDirection(types.LEFT), true
	case rl.KeyRight:
		return game.KeyDirection(types.RIGHT), true
	case rl.KeyOne, rl.KeyKp1:
		return game.Digit(1), true
	case rl.KeyTwo, rl.KeyKp2:
		return game.Digit(2), true
	case rl.KeyThree, rl.KeyKp3:
		return game.Digit(3), true
	case rl.KeyR:
		return game.Restart(), true
	case rl.KeyH:
		return game.Home(), true
	case rl.KeyEscape:
		return game.Cancel(), true
	default:
		return game.Event{}, false
	}
}

// PollEvents drains every key pressed since the last frame, in order, and
// applies it. It returns false when the game asked to quit.
func PollEvents(g *game.Game) bool {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		ev, ok := translateKey(key)
		if !ok {
			continue
		}
		if !g.HandleEvent(ev) {
			return false
		}
	}
	return true
}

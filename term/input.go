package term

import (
	"github.com/gdamore/tcell/v2"

	"statue-snake/game"
	"statue-snake/game/types"
)

// TranslateKey maps a terminal key press to a game event. Arrow keys and
// WASD steer, digits pick menu entries, R restarts, H goes home, Escape
// backs out of a menu, and Q or Ctrl-C quits.
func TranslateKey(key tcell.Key, ch rune) (game.Event, bool) {
	switch key {
	case tcell.KeyUp:
		return game.KeyDirection(types.UP), true
	case tcell.KeyDown:
		return game.KeyDirection(types.DOWN), true
	case tcell.KeyLeft:
		return game.KeyDirection(types.LEFT), true
	case tcell.KeyRight:
		return game.KeyDirection(types.RIGHT), true
	case tcell.KeyEscape:
		return game.Cancel(), true
	case tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		return translateRune(ch)
	}
	return game.Event{}, false
}

func translateRune(ch rune) (game.Event, bool) {
	switch ch {
	case 'w', 'W':
		return game.KeyDirection(types.UP), true
	case 's', 'S':
		return game.KeyDirection(types.DOWN), true
	case 'a', 'A':
		return game.KeyDirection(types.LEFT), true
	case 'd', 'D':
		return game.KeyDirection(types.RIGHT), true
	case '1', '2', '3':
		return game.Digit(int(ch - '0')), true
	case 'r', 'R':
		return game.Restart(), true
	case 'h', 'H':
		return game.Home(), true
	case 'q', 'Q':
		return game.Quit(), true
	}
	return game.Event{}, false
}

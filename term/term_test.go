package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"statue-snake/game"
	"statue-snake/game/types"
)

type fakeSurface struct {
	width, height int
	cells         map[[2]int]rune
	shown         int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (f *fakeSurface) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.cells[[2]int{x, y}] = primary
}

func (f *fakeSurface) Size() (int, int) { return f.width, f.height }
func (f *fakeSurface) Clear()           { f.cells = make(map[[2]int]rune) }
func (f *fakeSurface) Show()            { f.shown++ }

func (f *fakeSurface) at(x, y int) rune {
	return f.cells[[2]int{x, y}]
}

func (f *fakeSurface) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.width; x++ {
		if ch, ok := f.cells[[2]int{x, y}]; ok {
			b.WriteRune(ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (f *fakeSurface) contains(text string) bool {
	for y := 0; y < f.height; y++ {
		if strings.Contains(f.row(y), text) {
			return true
		}
	}
	return false
}

func TestDrawMenus(t *testing.T) {
	screen := newFakeSurface(80, 24)
	r := NewRenderer(screen)

	r.Draw(game.Snapshot{Phase: types.PhaseSelectingMode})
	for _, text := range []string{"SNAKE GAME", "1 - Normal Mode", "2 - Statue Mode"} {
		if !screen.contains(text) {
			t.Errorf("Mode menu missing %q", text)
		}
	}

	r.Draw(game.Snapshot{Phase: types.PhaseSelectingSpeed})
	for _, text := range []string{"SELECT SPEED", "1 - Slow", "2 - Medium", "3 - Fast"} {
		if !screen.contains(text) {
			t.Errorf("Speed menu missing %q", text)
		}
	}
	if screen.contains("Normal Mode") {
		t.Error("Expected the screen to be cleared between frames")
	}
	if screen.shown != 2 {
		t.Errorf("Expected 2 frames shown, got %d", screen.shown)
	}
}

func TestDrawBoard(t *testing.T) {
	screen := newFakeSurface(80, 20)
	r := NewRenderer(screen)

	s := game.Snapshot{
		Grid:      types.Grid{Width: 10, Height: 10},
		Phase:     types.PhaseRunning,
		Mode:      types.ModeStatue,
		Speed:     types.SpeedFast,
		Direction: types.RIGHT,
		Snake:     []types.Cell{{X: 2, Y: 3}, {X: 1, Y: 3}},
		Food:      types.Cell{X: 7, Y: 7},
		Statues:   []types.Cell{{X: 5, Y: 0}, {X: 6, Y: 0}},
		Cracked:   map[types.Cell]int{{X: 6, Y: 0}: 1},
		Score:     4,
		HighScore: 9,
		Elapsed:   65 * time.Second,
	}
	r.Draw(s)

	// Board is 22 columns wide, centred in 80
	originX := 29
	cellAt := func(c types.Cell) rune {
		return screen.at(originX+1+c.X*cellWidth, 1+c.Y)
	}

	if screen.at(originX, 0) != '┌' || screen.at(originX+21, 11) != '┘' {
		t.Errorf("Border corners misplaced: %q %q", screen.at(originX, 0), screen.at(originX+21, 11))
	}
	if got := cellAt(s.Snake[0]); got != headRune {
		t.Errorf("Expected head glyph, got %q", got)
	}
	if got := cellAt(s.Snake[1]); got != bodyRune {
		t.Errorf("Expected body glyph, got %q", got)
	}
	if got := cellAt(s.Food); got != foodRune {
		t.Errorf("Expected food glyph, got %q", got)
	}
	if got := cellAt(s.Statues[0]); got != statueRune {
		t.Errorf("Expected statue glyph, got %q", got)
	}
	if got := cellAt(s.Statues[1]); got != crackedRune {
		t.Errorf("Expected cracked glyph, got %q", got)
	}
	if !strings.Contains(screen.row(12), "Score: 4  High Score: 9  Speed: 3  Statue  01:05") {
		t.Errorf("Unexpected HUD %q", screen.row(12))
	}
	if screen.contains("GAME OVER") {
		t.Error("Banner drawn while running")
	}
}

func TestNormalModeHidesStatues(t *testing.T) {
	screen := newFakeSurface(60, 20)
	r := NewRenderer(screen)

	r.Draw(game.Snapshot{
		Grid:    types.Grid{Width: 10, Height: 10},
		Phase:   types.PhaseGameOver,
		Mode:    types.ModeNormal,
		Snake:   []types.Cell{{X: 0, Y: 0}},
		Food:    types.Cell{X: 9, Y: 9},
		Statues: []types.Cell{{X: 5, Y: 2}},
	})

	if got := screen.at(19+1+5*cellWidth, 3); got != 0 {
		t.Errorf("Expected empty cell, got %q", got)
	}
	if !screen.contains("GAME OVER - Press R to restart or H for home") {
		t.Error("Missing game over banner")
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := newFakeSurface(20, 10)
	r := NewRenderer(screen)

	r.Draw(game.Snapshot{Grid: types.Grid{Width: 30, Height: 30}, Phase: types.PhaseRunning})
	if !screen.contains("Terminal too small") {
		t.Error("Expected a size warning")
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want game.Event
	}{
		{tcell.KeyUp, 0, game.KeyDirection(types.UP)},
		{tcell.KeyDown, 0, game.KeyDirection(types.DOWN)},
		{tcell.KeyLeft, 0, game.KeyDirection(types.LEFT)},
		{tcell.KeyRight, 0, game.KeyDirection(types.RIGHT)},
		{tcell.KeyRune, 'w', game.KeyDirection(types.UP)},
		{tcell.KeyRune, 'D', game.KeyDirection(types.RIGHT)},
		{tcell.KeyRune, '2', game.Digit(2)},
		{tcell.KeyRune, 'r', game.Restart()},
		{tcell.KeyRune, 'h', game.Home()},
		{tcell.KeyRune, 'q', game.Quit()},
		{tcell.KeyEscape, 0, game.Cancel()},
		{tcell.KeyCtrlC, 0, game.Quit()},
	}

	for _, tc := range tests {
		got, ok := TranslateKey(tc.key, tc.ch)
		if !ok {
			t.Errorf("Key %v %q: not mapped", tc.key, tc.ch)
			continue
		}
		if got != tc.want {
			t.Errorf("Key %v %q: expected %+v, got %+v", tc.key, tc.ch, tc.want, got)
		}
	}

	for _, ch := range []rune{'x', '4', '0', ' '} {
		if _, ok := TranslateKey(tcell.KeyRune, ch); ok {
			t.Errorf("Rune %q should not be mapped", ch)
		}
	}
	if _, ok := TranslateKey(tcell.KeyTab, 0); ok {
		t.Error("Tab should not be mapped")
	}
}

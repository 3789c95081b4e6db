// Package term draws the game on a character terminal through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"statue-snake/game"
	"statue-snake/game/types"
)

// Surface is the part of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// cellWidth is the number of columns per grid cell; terminal glyphs are
// roughly twice as tall as they are wide
const cellWidth = 2

var (
	borderStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	headStyle    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	bodyStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statueStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	crackedStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

const (
	headRune    = '█'
	bodyRune    = '▓'
	foodRune    = '●'
	statueRune  = '▒'
	crackedRune = '╳'
)

type Renderer struct {
	screen Surface
}

func NewRenderer(screen Surface) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()

	switch s.Phase {
	case types.PhaseSelectingMode:
		r.drawMenu("SNAKE GAME", []string{"1 - Normal Mode", "2 - Statue Mode"}, "Select a game mode")
	case types.PhaseSelectingSpeed:
		r.drawMenu("SELECT SPEED", []string{"1 - Slow", "2 - Medium", "3 - Fast"}, "Choose game speed")
	default:
		r.drawGame(s)
	}

	r.screen.Show()
}

func (r *Renderer) drawMenu(title string, options []string, hint string) {
	_, height := r.screen.Size()
	y := height/2 - len(options) - 2
	if y < 0 {
		y = 0
	}

	r.drawCentered(title, y, titleStyle)
	y += 2
	for _, option := range options {
		r.drawCentered(option, y, textStyle)
		y++
	}
	r.drawCentered(hint, y+1, textStyle)
}

func (r *Renderer) drawGame(s game.Snapshot) {
	width, height := r.screen.Size()
	boardWidth := s.Grid.Width*cellWidth + 2
	boardHeight := s.Grid.Height + 2
	if width < boardWidth || height < boardHeight+1 {
		r.drawCentered(fmt.Sprintf("Terminal too small, need %dx%d", boardWidth, boardHeight+1), height/2, textStyle)
		return
	}

	originX := (width - boardWidth) / 2
	originY := 0
	r.drawBorder(originX, originY, boardWidth, boardHeight)

	put := func(c types.Cell, ch rune, style tcell.Style) {
		x := originX + 1 + c.X*cellWidth
		y := originY + 1 + c.Y
		for i := 0; i < cellWidth; i++ {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}

	put(s.Food, foodRune, foodStyle)
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Snake[i], headRune, headStyle)
		} else {
			put(s.Snake[i], bodyRune, bodyStyle)
		}
	}
	if s.Mode == types.ModeStatue {
		for _, pos := range s.Statues {
			if s.Cracked[pos] > 0 {
				put(pos, crackedRune, crackedStyle)
			} else {
				put(pos, statueRune, statueStyle)
			}
		}
	}

	hudY := originY + boardHeight
	r.drawText(originX, hudY, fmt.Sprintf("Score: %d  High Score: %d  Speed: %d  %s  %s", s.Score, s.HighScore, s.Speed, s.Mode, s.Clock()), textStyle)

	switch s.Phase {
	case types.PhaseWaitingForFirstInput:
		r.drawCentered("Press an arrow key to start", originY+boardHeight/2+2, textStyle)
	case types.PhaseGameOver:
		r.drawCentered("GAME OVER - Press R to restart or H for home", originY+boardHeight/2, textStyle)
	}
}

func (r *Renderer) drawBorder(x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		r.screen.SetContent(x+i, y, '─', nil, borderStyle)
		r.screen.SetContent(x+i, y+h-1, '─', nil, borderStyle)
	}
	for j := 1; j < h-1; j++ {
		r.screen.SetContent(x, y+j, '│', nil, borderStyle)
		r.screen.SetContent(x+w-1, y+j, '│', nil, borderStyle)
	}
	r.screen.SetContent(x, y, '┌', nil, borderStyle)
	r.screen.SetContent(x+w-1, y, '┐', nil, borderStyle)
	r.screen.SetContent(x, y+h-1, '└', nil, borderStyle)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, borderStyle)
}

func (r *Renderer) drawCentered(text string, y int, style tcell.Style) {
	width, _ := r.screen.Size()
	x := (width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

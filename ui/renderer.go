package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"statue-snake/game"
	"statue-snake/game/types"
)

const (
	hudHeight     = 40 // Score strip below the grid
	borderPadding = 0
)

var (
	headColor    = rl.Green
	bodyColor    = rl.Color{R: 0, G: 200, B: 0, A: 255}
	outlineColor = rl.Color{R: 0, G: 100, B: 0, A: 255}
	statueColor  = rl.Gray
	crackColor   = rl.Color{R: 80, G: 80, B: 80, A: 255}
	foodColor    = rl.Red
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// layout fits the grid above the HUD strip and centres it horizontally
func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - hudHeight - borderPadding*2

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.gridWidth = r.cellSize * int32(grid.Width)
	r.gridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = (r.screenWidth - r.gridWidth) / 2
	r.offsetY = borderPadding
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch s.Phase {
	case types.PhaseSelectingMode:
		r.drawMenu("SNAKE GAME", []string{"1 - Normal Mode", "2 - Statue Mode"}, "Select a game mode")
	case types.PhaseSelectingSpeed:
		r.drawMenu("SELECT SPEED", []string{"1 - Slow", "2 - Medium", "3 - Fast"}, "Choose game speed")
	default:
		r.drawGame(s)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawMenu(title string, options []string, hint string) {
	r.drawCentered(title, 100, 60, rl.Green)
	y := int32(250)
	for _, option := range options {
		r.drawCentered(option, y, 30, rl.White)
		y += 50
	}
	r.drawCentered(hint, y+50, 30, rl.White)
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, y, fontSize, color)
}

func (r *Renderer) drawGame(s game.Snapshot) {
	r.layout(s.Grid)

	// Grid background
	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, r.gridWidth+2, r.gridHeight+2, rl.DarkGray)

	r.fillCell(s.Food, foodColor)

	for i, segment := range s.Snake {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		r.fillCell(segment, color)
		rl.DrawRectangleLines(r.cellX(segment), r.cellY(segment), r.cellSize, r.cellSize, outlineColor)
	}
	if len(s.Snake) > 0 && s.Direction != types.NONE {
		r.drawEyes(s.Snake[0], s.Direction)
	}

	if s.Mode == types.ModeStatue {
		for _, pos := range s.Statues {
			r.fillCell(pos, statueColor)
			if s.Cracked[pos] > 0 {
				r.drawCrack(pos)
			}
		}
	}

	r.drawHUD(s)
}

func (r *Renderer) cellX(c types.Cell) int32 {
	return r.offsetX + int32(c.X)*r.cellSize
}

func (r *Renderer) cellY(c types.Cell) int32 {
	return r.offsetY + int32(c.Y)*r.cellSize
}

func (r *Renderer) fillCell(c types.Cell, color rl.Color) {
	rl.DrawRectangle(r.cellX(c), r.cellY(c), r.cellSize, r.cellSize, color)
}

// drawEyes puts two eyes on the leading edge of the head
func (r *Renderer) drawEyes(head types.Cell, dir types.Direction) {
	centerX := r.cellX(head) + r.cellSize/2
	centerY := r.cellY(head) + r.cellSize/2
	offset := r.cellSize / 4
	eyeRadius := float32(r.cellSize) / 5

	var left, right rl.Vector2
	switch dir {
	case types.RIGHT:
		left = rl.Vector2{X: float32(centerX + offset), Y: float32(centerY - offset)}
		right = rl.Vector2{X: float32(centerX + offset), Y: float32(centerY + offset)}
	case types.LEFT:
		left = rl.Vector2{X: float32(centerX - offset), Y: float32(centerY - offset)}
		right = rl.Vector2{X: float32(centerX - offset), Y: float32(centerY + offset)}
	case types.UP:
		left = rl.Vector2{X: float32(centerX - offset), Y: float32(centerY - offset)}
		right = rl.Vector2{X: float32(centerX + offset), Y: float32(centerY - offset)}
	default:
		left = rl.Vector2{X: float32(centerX - offset), Y: float32(centerY + offset)}
		right = rl.Vector2{X: float32(centerX + offset), Y: float32(centerY + offset)}
	}

	for _, eye := range []rl.Vector2{left, right} {
		rl.DrawCircleV(eye, eyeRadius, rl.White)
		rl.DrawCircleV(eye, eyeRadius/2, rl.Black)
	}
}

// drawCrack marks a cracked statue with an X
func (r *Renderer) drawCrack(pos types.Cell) {
	x := float32(r.cellX(pos))
	y := float32(r.cellY(pos))
	size := float32(r.cellSize)
	rl.DrawLineEx(rl.Vector2{X: x + 2, Y: y + 2}, rl.Vector2{X: x + size - 2, Y: y + size - 2}, 4, crackColor)
	rl.DrawLineEx(rl.Vector2{X: x + size - 2, Y: y + 2}, rl.Vector2{X: x + 2, Y: y + size - 2}, 4, crackColor)
}

func (r *Renderer) drawHUD(s game.Snapshot) {
	fontSize := int32(20)
	y := r.offsetY + r.gridHeight + (hudHeight-fontSize)/2

	hud := fmt.Sprintf("Score: %d   High Score: %d   Speed: %d   %s   %s", s.Score, s.HighScore, s.Speed, s.Mode, s.Clock())
	rl.DrawText(hud, 10, y, fontSize, rl.White)

	switch s.Phase {
	case types.PhaseWaitingForFirstInput:
		r.drawCentered("Press an arrow key to start", r.offsetY+r.gridHeight/2+40, fontSize, rl.White)
	case types.PhaseGameOver:
		r.drawCentered("GAME OVER - Press R to restart or H for home", r.offsetY+r.gridHeight/2, fontSize, rl.White)
	}
}

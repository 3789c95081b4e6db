package game

import (
	"log"
	"time"

	"github.com/google/uuid"

	"statue-snake/game/entity"
	"statue-snake/game/manager"
	"statue-snake/game/types"
)

// TickResult describes what a single Update did
type TickResult struct {
	Moved        bool
	AteFood      bool
	NewHighScore bool
	Shattered    bool // a cracked statue was crushed by the head
	Collision    manager.CollisionType
}

// Game is one player's state machine. It is not safe for concurrent use;
// the driver owns it and feeds it events and ticks from a single goroutine.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time // first move of the current run
	EndTime   time.Time // game over of the current run
	Steps     int

	phase     types.Phase
	speed     types.Speed
	direction types.Direction

	snake *entity.Snake
	queue *entity.DirectionQueue

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	statueMgr    *manager.StatueManager
	stateMgr     *manager.StateManager
}

func NewGame(width, height int, store manager.HighScoreStore, rng manager.Random) *Game {
	grid := types.Grid{
		Width:  width,
		Height: height,
	}

	g := &Game{
		Grid:         grid,
		phase:        types.PhaseSelectingMode,
		speed:        types.DefaultSpeed,
		queue:        entity.NewDirectionQueue(),
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng),
		statueMgr:    manager.NewStatueManager(rng),
		stateMgr:     manager.NewStateManager(store),
	}
	g.resetBoard()

	return g
}

// HandleEvent applies one input event. It returns false when the driver
// should shut down.
func (g *Game) HandleEvent(ev Event) bool {
	if ev.Kind == EventDigit {
		ev = g.resolveDigit(ev.Choice)
	}

	switch ev.Kind {
	case EventQuit:
		return false

	case EventCancel:
		if g.phase == types.PhaseSelectingSpeed {
			g.goHome()
			return true
		}
		return false

	case EventHome:
		g.goHome()

	case EventRestart:
		if g.phase == types.PhaseGameOver || g.phase == types.PhaseWaitingForFirstInput {
			g.restart()
		}

	case EventSelectMode:
		if g.phase != types.PhaseSelectingMode {
			return true
		}
		mode, ok := types.ModeFromChoice(ev.Choice)
		if !ok {
			return true
		}
		g.stateMgr.SetMode(mode)
		g.phase = types.PhaseSelectingSpeed

	case EventSelectSpeed:
		if g.phase != types.PhaseSelectingSpeed {
			return true
		}
		speed, ok := types.SpeedFromChoice(ev.Choice)
		if !ok {
			return true
		}
		g.speed = speed
		g.startSession()

	case EventDirection:
		switch g.phase {
		case types.PhaseWaitingForFirstInput:
			if ev.Direction == types.NONE {
				return true
			}
			g.direction = ev.Direction
			g.phase = types.PhaseRunning
			g.StartTime = time.Now()
		case types.PhaseRunning:
			g.queue.Push(ev.Direction)
		}
	}

	return true
}

func (g *Game) resolveDigit(n int) Event {
	if g.phase == types.PhaseSelectingSpeed {
		return SelectSpeed(n)
	}
	return SelectMode(n)
}

// Update advances the simulation by one tick. It does nothing outside the
// running phase or before a direction has been chosen.
func (g *Game) Update() TickResult {
	var result TickResult
	if g.phase != types.PhaseRunning {
		return result
	}

	g.direction = g.queue.PopNext(g.direction)
	if g.direction == types.NONE {
		return result
	}

	newHead := g.snake.GetHead().Add(g.direction.Delta())

	collision := g.collisionMgr.CheckCollision(newHead, g.snake, g.activeStatues())
	if collision != manager.NoCollision {
		g.phase = types.PhaseGameOver
		g.EndTime = time.Now()
		result.Collision = collision
		result.NewHighScore = g.stateMgr.UpdateHighScore()
		log.Printf("session %s: game over (%s) with score %d after %d steps",
			g.UUID, collision, g.stateMgr.GetScore(), g.Steps)
		return result
	}

	if g.isStatueMode() {
		result.Shattered = g.statueMgr.Shatter(newHead)
	}

	ateFood := g.foodMgr.IsFood(newHead)
	g.snake.Advance(newHead, ateFood)
	g.Steps++
	result.Moved = true

	if ateFood {
		result.AteFood = true
		g.handleFoodEaten(&result)
	}

	return result
}

func (g *Game) handleFoodEaten(result *TickResult) {
	result.NewHighScore = g.stateMgr.AddPoint()
	if result.NewHighScore {
		log.Printf("session %s: new %s high score %d", g.UUID, g.stateMgr.GetMode(), g.stateMgr.GetHighScore())
	}

	if g.isStatueMode() && g.snake.Len() > 1 {
		g.statueMgr.CreateStatues(g.snake.Segments())
		g.statueMgr.CrackingPass(g.stateMgr.GetScore())
	}

	g.foodMgr.Spawn(g.snake, g.statueMgr)
}

// activeStatues returns the statue manager when statues can block movement
func (g *Game) activeStatues() *manager.StatueManager {
	if g.isStatueMode() {
		return g.statueMgr
	}
	return nil
}

func (g *Game) isStatueMode() bool {
	return g.stateMgr.GetMode() == types.ModeStatue
}

// startSession begins a fresh run once mode and speed are known
func (g *Game) startSession() {
	g.UUID = uuid.New().String()
	g.restart()
	log.Printf("session %s: started %s mode at %s speed on %dx%d grid",
		g.UUID, g.stateMgr.GetMode(), g.speed, g.Grid.Width, g.Grid.Height)
}

func (g *Game) restart() {
	g.resetBoard()
	g.stateMgr.LoadHighScore()
	g.phase = types.PhaseWaitingForFirstInput
}

func (g *Game) goHome() {
	g.stateMgr.SetMode(types.ModeNone)
	g.speed = types.DefaultSpeed
	g.resetBoard()
	g.phase = types.PhaseSelectingMode
}

func (g *Game) resetBoard() {
	g.snake = entity.NewSnake(g.Grid.Center())
	g.direction = types.NONE
	g.queue.Clear()
	g.statueMgr.Reset()
	g.stateMgr.ResetScore()
	g.Steps = 0
	g.StartTime = time.Time{}
	g.EndTime = time.Time{}
	g.foodMgr.Spawn(g.snake)
}

func (g *Game) Phase() types.Phase {
	return g.phase
}

func (g *Game) Mode() types.GameMode {
	return g.stateMgr.GetMode()
}

func (g *Game) Speed() types.Speed {
	return g.speed
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Cell {
	return g.foodMgr.GetFood()
}

// ElapsedTime is the length of the current run. It is zero before the first
// move and stops at game over.
func (g *Game) ElapsedTime() time.Duration {
	if g.StartTime.IsZero() {
		return 0
	}
	if !g.EndTime.IsZero() {
		return g.EndTime.Sub(g.StartTime)
	}
	return time.Since(g.StartTime)
}

package manager

import (
	"log"

	"statue-snake/game/types"
)

// HighScoreStore persists one best score per mode
type HighScoreStore interface {
	Load(mode types.GameMode) (int, error)
	Save(mode types.GameMode, value int) error
}

// StateManager tracks score and high score for the active mode
type StateManager struct {
	store     HighScoreStore
	mode      types.GameMode
	score     int
	highScore int
}

func NewStateManager(store HighScoreStore) *StateManager {
	return &StateManager{
		store: store,
	}
}

// SetMode switches the mode and loads its stored high score
func (sm *StateManager) SetMode(mode types.GameMode) {
	sm.mode = mode
	sm.score = 0
	sm.LoadHighScore()
}

// LoadHighScore refreshes the high score from the store. Failures count as 0.
func (sm *StateManager) LoadHighScore() {
	sm.highScore = 0
	if sm.store == nil || sm.mode == types.ModeNone {
		return
	}

	value, err := sm.store.Load(sm.mode)
	if err != nil {
		log.Printf("high score for %s unavailable: %v", sm.mode, err)
		return
	}
	if value > 0 {
		sm.highScore = value
	}
}

// AddPoint increments the score. Reports whether it is a new high score.
func (sm *StateManager) AddPoint() bool {
	sm.score++
	return sm.UpdateHighScore()
}

// UpdateHighScore saves the score if it beats the high score.
// Reports whether a new record was set.
func (sm *StateManager) UpdateHighScore() bool {
	if sm.score <= sm.highScore {
		return false
	}
	sm.highScore = sm.score
	if sm.store != nil && sm.mode != types.ModeNone {
		if err := sm.store.Save(sm.mode, sm.highScore); err != nil {
			log.Printf("could not save %s high score %d: %v", sm.mode, sm.highScore, err)
		}
	}
	return true
}

func (sm *StateManager) ResetScore() {
	sm.score = 0
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetMode() types.GameMode {
	return sm.mode
}

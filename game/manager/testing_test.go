package manager

import (
	"errors"

	"statue-snake/game/types"
)

// scriptedRandom replays fixed values. Once floats run out it returns
// fallback; Intn cycles through ints (modulo n) or returns 0; Shuffle keeps
// the input order unless reverse is set.
type scriptedRandom struct {
	floats   []float64
	fallback float64
	ints     []int
	reverse  bool

	shuffles int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallback
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = append(r.ints[1:], v)
	return v % n
}

func (r *scriptedRandom) Shuffle(n int, swap func(i, j int)) {
	r.shuffles++
	if !r.reverse {
		return
	}
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

type memoryStore struct {
	scores  map[types.GameMode]int
	loadErr error
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{scores: make(map[types.GameMode]int)}
}

func (s *memoryStore) Load(mode types.GameMode) (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.scores[mode], nil
}

func (s *memoryStore) Save(mode types.GameMode, value int) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.scores[mode] = value
	return nil
}

var errBroken = errors.New("broken store")

type cellSet map[types.Cell]bool

func (s cellSet) Occupies(c types.Cell) bool {
	return s[c]
}

package manager

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"statue-snake/game/types"
)

const (
	CrackMinScore     = 2   // No cracking below this score
	CrackGateChance   = 0.5 // Chance that a pass cracks anything at all
	CrackChance       = 0.6 // Chance for each selected statue to crack
	CrackScoreDivisor = 3   // One extra candidate every this many points
	MaxCracks         = 2   // Crack count at which a statue crumbles
)

// StatueManager owns the statues left behind in statue mode
type StatueManager struct {
	rng     Random
	statues map[types.Cell]struct{}
	cracked map[types.Cell]int
	fresh   map[types.Cell]struct{} // created on the latest meal, not crackable yet
}

func NewStatueManager(rng Random) *StatueManager {
	return &StatueManager{
		rng:     rng,
		statues: make(map[types.Cell]struct{}),
		cracked: make(map[types.Cell]int),
		fresh:   make(map[types.Cell]struct{}),
	}
}

func (sm *StatueManager) Reset() {
	maps.Clear(sm.statues)
	maps.Clear(sm.cracked)
	maps.Clear(sm.fresh)
}

// CreateStatues turns every segment behind the head into a fresh statue
func (sm *StatueManager) CreateStatues(segments []types.Cell) {
	if len(segments) == 0 {
		return
	}

	maps.Clear(sm.fresh)
	for _, pos := range segments {
		sm.statues[pos] = struct{}{}
		sm.fresh[pos] = struct{}{}
	}
}

// CrackingPass crumbles fully cracked statues, then randomly cracks some of
// the older intact ones. The number of candidates grows with score.
func (sm *StatueManager) CrackingPass(score int) {
	if len(sm.statues) == 0 || score < CrackMinScore {
		return
	}

	var crumbled []types.Cell
	for pos, count := range sm.cracked {
		if count >= MaxCracks {
			crumbled = append(crumbled, pos)
		}
	}
	for _, pos := range crumbled {
		sm.remove(pos)
	}

	if sm.rng.Float64() >= CrackGateChance {
		return
	}

	candidates := sm.crackable()
	if len(candidates) == 0 {
		return
	}
	sm.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	limit := min(1+score/CrackScoreDivisor, len(candidates))
	for _, pos := range candidates[:limit] {
		if sm.rng.Float64() < CrackChance {
			sm.cracked[pos]++
		}
	}
}

// crackable lists statues that are neither fresh nor cracked, in a stable
// order so a seeded source gives repeatable results
func (sm *StatueManager) crackable() []types.Cell {
	candidates := make([]types.Cell, 0, len(sm.statues))
	for pos := range sm.statues {
		if _, ok := sm.fresh[pos]; ok {
			continue
		}
		if _, ok := sm.cracked[pos]; ok {
			continue
		}
		candidates = append(candidates, pos)
	}
	sortCells(candidates)
	return candidates
}

// Shatter removes a cracked statue the snake moves onto.
// Reports whether anything was removed.
func (sm *StatueManager) Shatter(pos types.Cell) bool {
	if _, ok := sm.cracked[pos]; !ok {
		return false
	}
	sm.remove(pos)
	return true
}

func (sm *StatueManager) remove(pos types.Cell) {
	delete(sm.statues, pos)
	delete(sm.cracked, pos)
	delete(sm.fresh, pos)
}

// IsSolid reports an intact statue, which blocks movement
func (sm *StatueManager) IsSolid(pos types.Cell) bool {
	if _, ok := sm.statues[pos]; !ok {
		return false
	}
	return sm.cracked[pos] == 0
}

// Occupies covers both intact and cracked statues
func (sm *StatueManager) Occupies(pos types.Cell) bool {
	if _, ok := sm.statues[pos]; ok {
		return true
	}
	_, ok := sm.cracked[pos]
	return ok
}

func (sm *StatueManager) IsFresh(pos types.Cell) bool {
	_, ok := sm.fresh[pos]
	return ok
}

func (sm *StatueManager) CrackCount(pos types.Cell) int {
	return sm.cracked[pos]
}

func (sm *StatueManager) Count() int {
	return len(sm.statues)
}

// Statues returns every statue cell, sorted
func (sm *StatueManager) Statues() []types.Cell {
	cells := maps.Keys(sm.statues)
	sortCells(cells)
	return cells
}

// Cracked returns a copy of the crack counts
func (sm *StatueManager) Cracked() map[types.Cell]int {
	return maps.Clone(sm.cracked)
}

func sortCells(cells []types.Cell) {
	slices.SortFunc(cells, func(a, b types.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

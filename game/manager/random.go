package manager

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the subset of *rand.Rand the managers draw from
type Random interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a seeded source. A zero seed picks one from the clock.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

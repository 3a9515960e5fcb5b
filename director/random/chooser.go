package random

import (
	"math/rand"

	"github.com/they4kman/sweepodds/engine"
)

// Chooser picks among equally risky cells when none of them is known to be
// safe.
type Chooser struct {
	rand *rand.Rand
}

func NewChooser(seed int64) *Chooser {
	return &Chooser{rand: rand.New(rand.NewSource(seed))}
}

// Pick returns one of cells at random. cells must not be empty.
func (chooser *Chooser) Pick(cells []engine.Coord) engine.Coord {
	return cells[chooser.rand.Intn(len(cells))]
}

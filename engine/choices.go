package engine

// BestChoices returns every unrevealed cell sharing the lowest mine
// probability on the board, in row-major order, along with that
// probability. Revealed cells are never returned; with none left the
// result is empty and the probability 1.
//
// A probability of 0 means all returned cells are safe. Anything higher
// is a guess, and callers should only act on one of the cells.
func (engine *Engine) BestChoices() ([]Coord, float64) {
	lowest := 1.
	for _, cell := range engine.cells {
		if probability := cell.Probability(); probability < lowest {
			lowest = probability
		}
	}

	var choices []Coord
	for idx, cell := range engine.cells {
		if cell.kind == Unknown && cell.probability == lowest {
			choices = append(choices, engine.coord(idx))
		}
	}

	return choices, lowest
}

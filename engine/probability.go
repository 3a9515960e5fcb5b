package engine

import "fmt"

type totals struct {
	unknown  int
	presumed int
}

func (engine *Engine) totals() totals {
	var t totals
	for _, cell := range engine.cells {
		if cell.kind == Unknown {
			t.unknown++
			if cell.IsPresumedMine() {
				t.presumed++
			}
		}
	}
	return t
}

// CalculateProbability estimates the chance that the unrevealed cell at
// (x, y) is a mine, from the current state of the board.
//
// Each revealed neighbor contributes the ratio of mines it has left to
// explain over the undetermined cells around it. The estimate is the
// highest of those ratios, except that any neighbor with no mines left
// makes the cell safe. Cells without revealed neighbors share the mines
// not yet accounted for with every other unrevealed cell.
func (engine *Engine) CalculateProbability(x, y int) (float64, error) {
	if !engine.inBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return engine.probability(engine.index(x, y), engine.totals())
}

func (engine *Engine) probability(idx int, t totals) (float64, error) {
	cell := engine.cells[idx]
	switch cell.kind {
	case Known:
		return 0, fmt.Errorf("%w: %v", ErrKnownCell, engine.coord(idx))
	case Unknown:
		if cell.IsPresumedMine() {
			return 1, nil
		}
	default:
		panic(fmt.Sprintf("unhandled cell kind %d", cell.kind))
	}

	constraints := engine.knownsAround(idx)
	if len(constraints) == 0 {
		return engine.globalProbability(idx, t)
	}

	highest := 0.
	isSafe := false
	for _, c := range constraints {
		ratio := c.ratio()
		if ratio < 0 || ratio > 1 {
			neighbor := engine.coord(c.neighbor)
			return 0, &InconsistencyError{
				Cell:      engine.coord(idx),
				Neighbor:  &neighbor,
				Remaining: c.remaining,
				Unknowns:  c.unknowns,
				Ratio:     ratio,
			}
		}

		if ratio == 0 {
			isSafe = true
		}
		if ratio > highest {
			highest = ratio
		}
	}

	if isSafe {
		return 0, nil
	}
	return highest, nil
}

// globalProbability spreads the mines not presumed anywhere over the other
// unrevealed cells of the board.
func (engine *Engine) globalProbability(idx int, t totals) (float64, error) {
	if t.unknown <= 1 {
		return 1, nil
	}

	minesLeft := engine.totalMines - t.presumed
	others := t.unknown - 1
	ratio := float64(minesLeft) / float64(others)
	if ratio < 0 || ratio > 1 {
		return 0, &InconsistencyError{
			Cell:      engine.coord(idx),
			Remaining: minesLeft,
			Unknowns:  others,
			Ratio:     ratio,
		}
	}
	return ratio, nil
}

package engine

// neighborIndexes lists the cells touching idx, clipped to the board
func (engine *Engine) neighborIndexes(idx int) []int {
	center := engine.coord(idx)
	neighbors := make([]int, 0, 8)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if engine.inBounds(x, y) {
				neighbors = append(neighbors, engine.index(x, y))
			}
		}
	}

	return neighbors
}

// unknownsAround counts the neighbors of idx which are unrevealed and not
// presumed to be mines
func (engine *Engine) unknownsAround(idx int) int {
	count := 0
	for _, neighbor := range engine.neighbors[idx] {
		cell := engine.cells[neighbor]
		if cell.kind == Unknown && !cell.IsPresumedMine() {
			count++
		}
	}
	return count
}

func (engine *Engine) presumedMinesAround(idx int) int {
	count := 0
	for _, neighbor := range engine.neighbors[idx] {
		if engine.cells[neighbor].IsPresumedMine() {
			count++
		}
	}
	return count
}

// UnknownsAround counts the undetermined cells around (x, y): unrevealed,
// and not yet presumed to be mines.
func (engine *Engine) UnknownsAround(x, y int) int {
	if !engine.inBounds(x, y) {
		return 0
	}
	return engine.unknownsAround(engine.index(x, y))
}

// PresumedMinesAround counts the unrevealed cells around (x, y) whose mine
// probability has reached 1.
func (engine *Engine) PresumedMinesAround(x, y int) int {
	if !engine.inBounds(x, y) {
		return 0
	}
	return engine.presumedMinesAround(engine.index(x, y))
}

type constraint struct {
	neighbor  int
	remaining int
	unknowns  int
}

func (c constraint) ratio() float64 {
	if c.unknowns == 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.unknowns)
}

// knownsAround pairs each revealed neighbor of idx with the mines it still
// has to explain and the undetermined cells those mines may occupy.
func (engine *Engine) knownsAround(idx int) []constraint {
	var constraints []constraint
	for _, neighbor := range engine.neighbors[idx] {
		cell := engine.cells[neighbor]
		if cell.kind != Known {
			continue
		}
		constraints = append(constraints, constraint{
			neighbor:  neighbor,
			remaining: cell.minesAround - engine.presumedMinesAround(neighbor),
			unknowns:  engine.unknownsAround(neighbor),
		})
	}
	return constraints
}

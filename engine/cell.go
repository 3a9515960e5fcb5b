package engine

import "fmt"

type CellKind int

const (
	Unknown CellKind = iota
	Known
)

// Cell is either Unknown, carrying the current estimate that it holds a
// mine, or Known, carrying the number of mines among its neighbors.
type Cell struct {
	kind        CellKind
	probability float64
	minesAround int
}

func UnknownCell(probability float64) Cell {
	return Cell{kind: Unknown, probability: probability}
}

func KnownCell(minesAround int) Cell {
	return Cell{kind: Known, minesAround: minesAround}
}

func (cell Cell) Kind() CellKind {
	return cell.kind
}

func (cell Cell) IsKnown() bool {
	return cell.kind == Known
}

// Probability of the cell being a mine. Known cells report 1, so they are
// never picked as a choice.
func (cell Cell) Probability() float64 {
	switch cell.kind {
	case Unknown:
		return cell.probability
	case Known:
		return 1
	default:
		panic(fmt.Sprintf("unhandled cell kind %d", cell.kind))
	}
}

// IsPresumedMine reports whether an Unknown cell has reached certainty
func (cell Cell) IsPresumedMine() bool {
	return cell.kind == Unknown && cell.probability == 1
}

func (cell Cell) MinesAround() int {
	return cell.minesAround
}

func (cell Cell) String() string {
	switch cell.kind {
	case Unknown:
		return fmt.Sprintf("Unknown(%.3f)", cell.probability)
	case Known:
		return fmt.Sprintf("Known(%d)", cell.minesAround)
	default:
		panic(fmt.Sprintf("unhandled cell kind %d", cell.kind))
	}
}

type Coord struct {
	X, Y int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.X, coord.Y)
}

// Observation is a revealed cell and the count of mines around it
type Observation struct {
	X, Y        int
	MinesAround int
}

func (observation Observation) Coord() Coord {
	return Coord{X: observation.X, Y: observation.Y}
}

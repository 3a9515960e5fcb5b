package game

import (
	"github.com/they4kman/sweepodds/engine"
)

// Observe lists every revealed cell along with its count of neighboring
// mines.
func (board *Board) Observe() ([]engine.Observation, error) {
	var observations []engine.Observation
	for cell := range board.Cells() {
		if cell.isRevealed && !cell.isMine {
			observations = append(observations, engine.Observation{
				X:           int(cell.x),
				Y:           int(cell.y),
				MinesAround: int(cell.numMines),
			})
		}
	}
	return observations, nil
}

func (board *Board) Act(coord engine.Coord) error {
	if coord.X < 0 || coord.Y < 0 {
		return ErrOutOfBounds
	}
	return board.Reveal(uint(coord.X), uint(coord.Y))
}

func (board *Board) Over() bool {
	return !board.canPlay()
}

package game

import (
	"fmt"
)

type Cell struct {
	board *Board

	x, y     uint
	idx      uint
	numMines uint8

	isMine, isRevealed bool
	isLosingMine       bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		if cell.isLosingMine {
			return "*"
		}
		return "O"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'O':
		cell.isMine = true
		if c == '*' && !fresh {
			cell.isLosingMine = true
			cell.isRevealed = true
		}
	case '.':
		cell.isRevealed = !fresh
	case '#':
		cell.isRevealed = false
	default:
		return false
	}

	return true
}

func (cell *Cell) X() uint {
	return cell.x
}

func (cell *Cell) Y() uint {
	return cell.y
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) NumMines() uint8 {
	return cell.numMines
}

func (cell *Cell) Neighbors() []*Cell {
	board := cell.board
	neighbors := make([]*Cell, 0, 8)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			// Wraps around below zero, which CellAt rejects
			if neighbor := board.CellAt(cell.x+uint(dx), cell.y+uint(dy)); neighbor != nil {
				neighbors = append(neighbors, neighbor)
			}
		}
	}

	return neighbors
}

// SelfNeighbors returns the cell along with its neighbors
func (cell *Cell) SelfNeighbors() []*Cell {
	return append([]*Cell{cell}, cell.Neighbors()...)
}

func (cell *Cell) setMine(isMine bool) {
	if cell.isMine == isMine {
		return
	}
	cell.isMine = isMine

	for _, neighbor := range cell.Neighbors() {
		if isMine {
			neighbor.numMines++
		} else {
			neighbor.numMines--
		}
	}
}

func (cell *Cell) reveal() {
	if cell.isRevealed {
		return
	}
	cell.isRevealed = true

	if cell.isMine {
		cell.isLosingMine = true
		cell.board.lose()
		return
	}

	cell.board.markRevealed()
}

package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell)

// flood visits cell and spreads breadth-first through every cell without
// neighboring mines, visiting each cell at most once.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(map[uint]struct{})
	var visitQueue deque.Deque

	enqueue := func(cell *Cell) {
		// Don't visit, if already visited
		if _, alreadyVisited := visited[cell.idx]; alreadyVisited {
			return
		}
		visited[cell.idx] = struct{}{}
		visitQueue.PushBack(cell)
	}

	enqueue(cell)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		visit(cell)

		if cell.numMines == 0 && !cell.isMine {
			for _, neighbor := range getNeighbors(cell) {
				enqueue(neighbor)
			}
		}
	}
}

func (cell *Cell) cascadeEmpty() {
	flood(
		cell,
		func(cell *Cell) {
			cell.reveal()
		},
		func(cell *Cell) []*Cell {
			return cell.Neighbors()
		},
	)
}

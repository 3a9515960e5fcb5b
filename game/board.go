package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

type Config struct {
	Width, Height uint
	NumMines      uint
	Mode          GameMode

	Seed int64
}

func NewConfig() Config {
	return Config{
		Width:    30,
		Height:   16,
		NumMines: 99,
		Mode:     Classic,
	}
}

type Board struct {
	width, height uint // in number of cells
	numMines      uint
	cells         [][]Cell

	id         uuid.UUID
	mode       GameMode
	seed       int64
	rand       *rand.Rand
	hasClicked bool

	state       BoardState
	numRevealed uint
}

func (board *Board) Width() uint {
	return board.width
}

func (board *Board) Height() uint {
	return board.height
}

func (board *Board) NumMines() uint {
	return board.numMines
}

func (board *Board) NumCells() uint {
	return board.width * board.height
}

func (board *Board) State() BoardState {
	return board.state
}

// ID tells games apart in logs and saved snapshots
func (board *Board) ID() string {
	return board.id.String()
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) CellAt(x, y uint) *Cell {
	if x < board.width && y < board.height {
		return &board.cells[y][x]
	}
	return nil
}

func (board *Board) Cells() <-chan *Cell {
	out := make(chan *Cell)
	go func() {
		for y := uint(0); y < board.height; y++ {
			for x := uint(0); x < board.width; x++ {
				out <- board.CellAt(x, y)
			}
		}
		close(out)
	}()
	return out
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

func (board *Board) lose() {
	board.state = Lost
}

func (board *Board) markRevealed() {
	board.numRevealed++
	if board.state == Ongoing && board.numRevealed == board.NumCells()-board.numMines {
		board.state = Won
	}
}

// Reveal uncovers the cell at (x, y). Cells without neighboring mines
// uncover their neighbors too. Revealing a mine loses the game.
func (board *Board) Reveal(x, y uint) error {
	cell := board.CellAt(x, y)
	if cell == nil {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	if !board.canPlay() {
		return ErrGameOver
	}

	if !board.hasClicked {
		board.hasClicked = true

		if board.mode == Win7 {
			board.clearSurroundingMines(cell)
		}
	}

	if cell.isRevealed {
		return nil
	}
	if !cell.isMine && cell.numMines == 0 {
		cell.cascadeEmpty()
	} else {
		cell.reveal()
	}
	return nil
}

// clearSurroundingMines moves any mine on or around cell somewhere else, so
// the first click always opens an area.
func (board *Board) clearSurroundingMines(cell *Cell) {
	zone := make(map[*Cell]struct{})
	for _, c := range cell.SelfNeighbors() {
		zone[c] = struct{}{}
	}

	var free []*Cell
	for c := range board.Cells() {
		if _, inZone := zone[c]; !inZone && !c.isMine {
			free = append(free, c)
		}
	}
	board.rand.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	for c := range zone {
		if !c.isMine || len(free) == 0 {
			continue
		}
		c.setMine(false)
		free[0].setMine(true)
		free = free[1:]
	}
}

func validateConfig(config Config) error {
	if config.Width == 0 || config.Height == 0 {
		return fmt.Errorf("%w: %dx%d board", ErrInvalidBoard, config.Width, config.Height)
	}
	if config.NumMines == 0 || config.NumMines >= config.Width*config.Height {
		return fmt.Errorf("%w: %d mines in %d cells", ErrInvalidBoard, config.NumMines, config.Width*config.Height)
	}
	return nil
}

func createBoard(config Config) *Board {
	board := Board{
		state:    Ongoing,
		id:       uuid.New(),
		width:    config.Width,
		height:   config.Height,
		numMines: config.NumMines,
		mode:     config.Mode,
		seed:     config.Seed,
		rand:     rand.New(rand.NewSource(config.Seed)),
		cells:    make([][]Cell, config.Height),
	}

	cellIdx := uint(0)
	for y := uint(0); y < config.Height; y++ {
		row := make([]Cell, config.Width)
		board.cells[y] = row

		for x := uint(0); x < config.Width; x++ {
			cell := &board.cells[y][x]
			cell.board = &board
			cell.idx = cellIdx
			cell.x, cell.y = x, y
			cellIdx++
		}
	}

	return &board
}

// NewBoard creates a board with mines placed at random, driven by the
// configured seed.
func NewBoard(config Config) (*Board, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	board := createBoard(config)

	// Store cell indexes, to shuffle and fill mines
	cellIndexes := board.rand.Perm(int(board.NumCells()))
	for _, cellIdx := range cellIndexes[:config.NumMines] {
		y, x := uint(cellIdx)/board.width, uint(cellIdx)%board.width
		board.CellAt(x, y).setMine(true)
	}

	return board, nil
}

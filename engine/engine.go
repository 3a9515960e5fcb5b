package engine

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Engine estimates, for every unrevealed cell of a board, the probability
// that it holds a mine. An Engine lives for a single game: create a new one
// whenever the board is reset.
type Engine struct {
	width, height int
	totalMines    int

	// cells is the current grid, scratch receives the next relaxation pass.
	// Both are indexed by y*width + x.
	cells     []Cell
	scratch   []Cell
	neighbors [][]int

	err error
	log logrus.FieldLogger
}

type Option func(*Engine)

func WithLogger(log logrus.FieldLogger) Option {
	return func(engine *Engine) {
		engine.log = log
	}
}

func New(width, height, totalMines int, options ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	numCells := width * height
	if totalMines <= 0 || totalMines >= numCells {
		return nil, fmt.Errorf("%w: %d mines in %d cells", ErrInvalidMineCount, totalMines, numCells)
	}

	engine := &Engine{
		width:      width,
		height:     height,
		totalMines: totalMines,
		cells:      make([]Cell, numCells),
		scratch:    make([]Cell, numCells),
		neighbors:  make([][]int, numCells),
		log:        logrus.StandardLogger(),
	}
	for _, option := range options {
		option(engine)
	}

	prior := float64(totalMines) / float64(numCells)
	for idx := range engine.cells {
		engine.cells[idx] = UnknownCell(prior)
		engine.neighbors[idx] = engine.neighborIndexes(idx)
	}

	return engine, nil
}

func (engine *Engine) Width() int {
	return engine.width
}

func (engine *Engine) Height() int {
	return engine.height
}

func (engine *Engine) TotalMines() int {
	return engine.totalMines
}

// Err returns the inconsistency that stopped the engine, if any
func (engine *Engine) Err() error {
	return engine.err
}

func (engine *Engine) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < engine.width && y < engine.height
}

func (engine *Engine) index(x, y int) int {
	return y*engine.width + x
}

func (engine *Engine) coord(idx int) Coord {
	return Coord{X: idx % engine.width, Y: idx / engine.width}
}

// Cell returns the cell at (x, y), and false if it lies outside the board
func (engine *Engine) Cell(x, y int) (Cell, bool) {
	if !engine.inBounds(x, y) {
		return Cell{}, false
	}
	return engine.cells[engine.index(x, y)], true
}

func (engine *Engine) Probability(x, y int) float64 {
	cell, ok := engine.Cell(x, y)
	if !ok {
		return 1
	}
	return cell.Probability()
}

// Probabilities returns a copy of the current estimates, indexed [y][x]
func (engine *Engine) Probabilities() [][]float64 {
	rows := make([][]float64, engine.height)
	for y := range rows {
		rows[y] = make([]float64, engine.width)
		for x := range rows[y] {
			rows[y][x] = engine.cells[engine.index(x, y)].Probability()
		}
	}
	return rows
}

// Update marks every observed cell as known, then relaxes the probabilities
// of the remaining cells width+height times. Observations are validated
// before any of them is applied.
//
// Once an update finds contradicting observations the engine keeps
// returning that error; the game has to be restarted with a new Engine.
func (engine *Engine) Update(observations []Observation) error {
	if engine.err != nil {
		return engine.err
	}

	for _, observation := range observations {
		if err := engine.validate(observation); err != nil {
			return err
		}
	}

	for _, observation := range observations {
		engine.cells[engine.index(observation.X, observation.Y)] = KnownCell(observation.MinesAround)
	}

	// Fixed pass budget, not a convergence test
	passes := engine.width + engine.height
	for pass := 0; pass < passes; pass++ {
		if err := engine.relax(); err != nil {
			engine.err = err
			engine.log.WithFields(logrus.Fields{
				"pass":  pass,
				"error": err,
			}).Error("Observations contradict each other")
			return err
		}
	}

	engine.log.WithFields(logrus.Fields{
		"observations": len(observations),
		"passes":       passes,
	}).Debug("Relaxed probabilities")

	return nil
}

func (engine *Engine) validate(observation Observation) error {
	if !engine.inBounds(observation.X, observation.Y) {
		return &ObservationError{Observation: observation, Err: ErrOutOfBounds}
	}
	if observation.MinesAround < 0 || observation.MinesAround > 8 {
		return &ObservationError{Observation: observation, Err: ErrInvalidMinesAround}
	}
	return nil
}

// relax performs a single pass over the board. Every estimate is computed
// from engine.cells and written to engine.scratch, so the order cells are
// visited in does not matter. The buffers are swapped only if the whole
// pass succeeds.
func (engine *Engine) relax() error {
	copy(engine.scratch, engine.cells)
	totals := engine.totals()

	for idx, cell := range engine.cells {
		if cell.kind != Unknown || cell.IsPresumedMine() {
			continue
		}

		probability, err := engine.probability(idx, totals)
		if err != nil {
			return err
		}
		engine.scratch[idx].probability = probability
	}

	engine.cells, engine.scratch = engine.scratch, engine.cells
	return nil
}

func (engine *Engine) String() string {
	var b strings.Builder
	for y := 0; y < engine.height; y++ {
		for x := 0; x < engine.width; x++ {
			b.WriteString(engine.cells[engine.index(x, y)].String())
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

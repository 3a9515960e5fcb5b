package game

import (
	"fmt"
	"strings"

	"github.com/they4kman/sweepodds/engine"
	"gopkg.in/yaml.v2"
)

// Puzzle is a partially revealed board read from a file, e.g.
//
//	mines: 10
//	board: |
//	  01##
//	  12##
//	  ####
//
// Digits are revealed cells with their count of neighboring mines, while
// '#' and '?' are unrevealed. LoadPuzzle validates the rows; a Puzzle built
// any other way reads them from Board on first use.
type Puzzle struct {
	Mines uint   `yaml:"mines"`
	Board string `yaml:"board"`

	rows []string
}

func LoadPuzzle(in []byte) (*Puzzle, error) {
	var puzzle Puzzle
	if err := yaml.Unmarshal(in, &puzzle); err != nil {
		return nil, err
	}

	puzzle.rows = splitRows(puzzle.Board)
	if len(puzzle.rows) == 0 {
		return nil, fmt.Errorf("%w: puzzle has no rows", ErrInvalidBoard)
	}

	width := len(puzzle.rows[0])
	for y, row := range puzzle.rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, y, len(row), width)
		}
		for x, c := range row {
			if !isUnrevealedMark(c) && (c < '0' || c > '8') {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidBoard, c, x, y)
			}
		}
	}

	config := Config{Width: uint(width), Height: uint(len(puzzle.rows)), NumMines: puzzle.Mines}
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return &puzzle, nil
}

func splitRows(board string) []string {
	var rows []string
	for _, line := range strings.Split(board, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

func isUnrevealedMark(c rune) bool {
	return c == '#' || c == '?'
}

func (puzzle *Puzzle) lines() []string {
	if puzzle.rows == nil {
		puzzle.rows = splitRows(puzzle.Board)
	}
	return puzzle.rows
}

func (puzzle *Puzzle) Width() int {
	rows := puzzle.lines()
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

func (puzzle *Puzzle) Height() int {
	return len(puzzle.lines())
}

// Observe lists the revealed cells of the puzzle
func (puzzle *Puzzle) Observe() ([]engine.Observation, error) {
	var observations []engine.Observation
	for y, row := range puzzle.lines() {
		for x, c := range row {
			if isUnrevealedMark(c) {
				continue
			}
			observations = append(observations, engine.Observation{
				X:           x,
				Y:           y,
				MinesAround: int(c - '0'),
			})
		}
	}
	return observations, nil
}

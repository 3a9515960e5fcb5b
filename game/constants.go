package game

import "errors"

type BoardState int

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "loss"
	case Won:
		return "win"
	default:
		return "other"
	}
}

type GameMode int

const (
	Classic GameMode = iota
	Win7
)

var (
	ErrInvalidBoard = errors.New("invalid board configuration")
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrGameOver     = errors.New("game is over")
)

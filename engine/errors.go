package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions  = errors.New("width and height must be positive")
	ErrInvalidMineCount   = errors.New("mine count must be positive and less than the number of cells")
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrInvalidMinesAround = errors.New("mines around must be between 0 and 8")

	// ErrKnownCell is returned when a probability is requested for a revealed
	// cell. It indicates a bug in the caller.
	ErrKnownCell = errors.New("probability requested for a known cell")

	// ErrInconsistent matches every *InconsistencyError
	ErrInconsistent = errors.New("inconsistent observations")
)

type ObservationError struct {
	Observation Observation
	Err         error
}

func (err *ObservationError) Error() string {
	return fmt.Sprintf("observation (%d, %d, %d): %v",
		err.Observation.X, err.Observation.Y, err.Observation.MinesAround, err.Err)
}

func (err *ObservationError) Unwrap() error {
	return err.Err
}

// InconsistencyError reports a ratio outside [0, 1] computed for Cell. When
// the ratio came from a revealed neighbor, Neighbor is set and Remaining and
// Unknowns hold that neighbor's unexplained mines and undetermined cells.
// Otherwise the ratio is the global estimate.
type InconsistencyError struct {
	Cell     Coord
	Neighbor *Coord

	Remaining int
	Unknowns  int
	Ratio     float64
}

func (err *InconsistencyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: probability %.3f for cell %v", ErrInconsistent, err.Ratio, err.Cell)
	if err.Neighbor != nil {
		fmt.Fprintf(&b, " (neighbor %v has %d mines left among %d cells)",
			*err.Neighbor, err.Remaining, err.Unknowns)
	} else {
		fmt.Fprintf(&b, " (%d mines left among %d other cells)", err.Remaining, err.Unknowns)
	}
	return b.String()
}

func (err *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}

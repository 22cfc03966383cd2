package life

import (
	"errors"
	"fmt"
)

// Domain errors for grid and simulation operations.
var (
	// ErrInvalidDimension indicates a nil, zero-sized or ragged grid.
	ErrInvalidDimension = errors.New("life: invalid grid dimensions")

	// ErrInvalidArgument indicates an out-of-range argument such as a
	// negative number of timesteps.
	ErrInvalidArgument = errors.New("life: invalid argument")
)

// CoercionWarning records a non-boolean seed value that was read as alive.
// It is informational; the run continues.
type CoercionWarning struct {
	Row   int
	Col   int
	Value float64
}

func (w CoercionWarning) Error() string {
	return fmt.Sprintf("life: coerced non-boolean value %v at (%d,%d) to alive", w.Value, w.Row, w.Col)
}

// StepError wraps a failure inside a run with the generation being produced.
type StepError struct {
	Generation int
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrNumeric is matched by every *NumericError.
	ErrNumeric = errors.New("geom: numeric error")
	// ErrPrecondition is matched by every *PreconditionError.
	ErrPrecondition = errors.New("geom: precondition failed")
)

// NumericError is returned when an operation would produce
// an infinite or NaN result, such as inverting a singular matrix
// or normalizing a zero-length vector.
type NumericError struct {
	Op    string  // operation name, like "Matrix3.Inverse"
	Value float64 // offending value (determinant, length)
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("geom: %s: degenerate value %g", e.Op, e.Value)
}

func (e *NumericError) Is(target error) bool { return target == ErrNumeric }

// PreconditionError is returned when an operation is given
// fewer points than it needs.
type PreconditionError struct {
	Op   string
	Need int // minimum number of points
	Got  int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("geom: %s: need at least %d points, got %d", e.Op, e.Need, e.Got)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }

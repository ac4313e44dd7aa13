package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a bad count, precision, option, or a
	// missing curve.
	ErrInvalidArgument = errors.New("morph: invalid argument")

	// ErrDegenerateGeometry indicates an input curve that cannot be morphed,
	// such as one of zero length or with an empty parametric domain.
	ErrDegenerateGeometry = errors.New("morph: degenerate geometry")

	// ErrGeometryConstruction indicates that no curve could be fitted
	// through a set of points.
	ErrGeometryConstruction = errors.New("morph: geometry construction failed")
)

// FitError reports a sample that coincides with its predecessor, which makes
// fitting a curve through the samples impossible.
type FitError struct {
	// Index is the index of the offending sample. The sample at Index-1 is
	// the one it coincides with.
	Index int
	Point Point
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%s: sample %d at %v coincides with sample %d",
		ErrGeometryConstruction, e.Index, e.Point, e.Index-1)
}

func (e *FitError) Unwrap() error {
	return ErrGeometryConstruction
}

// BarError wraps an error with the bar whose construction failed.
type BarError struct {
	Bar     int
	Weight  float64
	Wrapped error
}

func (e *BarError) Error() string {
	return fmt.Sprintf("bar %d (weight %g): %v", e.Bar, e.Weight, e.Wrapped)
}

func (e *BarError) Unwrap() error {
	return e.Wrapped
}

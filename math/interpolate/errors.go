package interpolate

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when a table of knots and values cannot
	// describe an interpolator: mismatched lengths, too few points,
	// non-finite entries, or knots which are not strictly increasing.
	ErrInvalidInput = errors.New("interpolate: invalid input")
	// ErrUnconfigured is returned by Spline.Solve when no valid table has
	// been supplied through Init.
	ErrUnconfigured = errors.New("interpolate: spline has no points")
	// ErrUnsolved is the panic value used when a Spline is evaluated before
	// Solve has succeeded.
	ErrUnsolved = errors.New("interpolate: spline evaluated before Solve")
	// ErrSingular is returned by TriDiagAt when elimination hits a zero
	// pivot.
	ErrSingular = errors.New("interpolate: singular tridiagonal system")
)

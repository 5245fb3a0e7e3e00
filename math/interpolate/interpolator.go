/*package interpolate implements one dimensional interpolators over tables
of strictly increasing knots.
*/
package interpolate

import (
	"fmt"
	"math"
)

// Interpolator is a 1D interpolator. Implementations do not mutate
// themselves during evaluation, so a fully initialized Interpolator may be
// shared between goroutines.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
)

// checkTable returns an error wrapping ErrInvalidInput if xs and ys cannot
// be used as an interpolation table.
func checkTable(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf(
			"%w: table has len(xs) = %d but len(ys) = %d",
			ErrInvalidInput, len(xs), len(ys),
		)
	} else if len(xs) < 2 {
		return fmt.Errorf(
			"%w: table has length %d, need at least 2 points",
			ErrInvalidInput, len(xs),
		)
	}

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			return fmt.Errorf("%w: xs[%d] = %g", ErrInvalidInput, i, xs[i])
		} else if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("%w: ys[%d] = %g", ErrInvalidInput, i, ys[i])
		}
	}

	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i+1] > xs[i]) {
			return fmt.Errorf(
				"%w: xs not strictly increasing, xs[%d] = %g but xs[%d] = %g",
				ErrInvalidInput, i, xs[i], i+1, xs[i+1],
			)
		}
	}

	return nil
}

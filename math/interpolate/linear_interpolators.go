package interpolate

import (
	"fmt"
)

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points, xs, which take on the values given by vals. Both slices
// are copied.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the data
// layout.
func NewLinear(xs, vals []float64) (*Linear, error) {
	if err := checkTable(xs, vals); err != nil {
		return nil, err
	}

	lin := &Linear{}
	xsCopy := make([]float64, len(xs))
	copy(xsCopy, xs)
	lin.xs.init(xsCopy)
	lin.vals = make([]float64, len(vals))
	copy(lin.vals, vals)
	return lin, nil
}

// NewUniformLinear creates a linear interplator where a uniformly spaced
// sequence of x values starting at x0 and separated by dx and whose values are
// given by vals.
//
// Lookups will be O(1).
func NewUniformLinear(x0, dx float64, vals []float64) (*Linear, error) {
	if len(vals) < 2 {
		return nil, fmt.Errorf(
			"%w: table has length %d, need at least 2 points",
			ErrInvalidInput, len(vals),
		)
	}

	lin := &Linear{}
	lin.xs.unifInit(x0, dx, len(vals))
	if err := checkTable(lin.xs.xs, vals); err != nil {
		return nil, err
	}
	lin.vals = make([]float64, len(vals))
	copy(lin.vals, vals)
	return lin, nil
}

// Eval returns the interpolated value at x. Points outside the range of xs
// are extrapolated along the nearest segment.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	if i1 == lin.xs.len()-1 {
		i1--
	}
	i2 := i1 + 1
	x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	if x == x2 {
		return v2
	}
	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

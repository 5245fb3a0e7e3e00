package io

import (
	"fmt"
	"io"

	"github.com/phil-mansfield/table"
)

var (
	builtinTs = []float64{
		0.0, 0.055429223661391955, 0.11226802257450681, 0.16667266705943598,
		0.22107731154436516, 0.2526429623849674, 0.28730604786617,
		0.31645844615149604, 0.34755643186681057, 0.4019610763517397,
		0.510770365321598, 0.565977087139274, 0.67438162843623,
		0.8911907110301417, 1.0,
	}
	builtinXs = []float64{
		0, 4, 1, -3, -6, -4, -2, 0, 2, -1, -9, -12, -20, -8, 0,
	}
	builtinYs = []float64{
		0, -3, -7, -4, -8, -9.5, -11, -12, -14, -18, -12, -16, -10, 6, 0,
	}
	builtinZs = []float64{
		12, 13.1, 11.5, 11, 11.5, 13, 11, 12.5, 12, 11.5, 12.5, 11.5, 12, 13, 12,
	}
)

// BuiltinKnots returns a copy of the closed 15 knot curve used when no
// input table is configured.
func BuiltinKnots() (ts []float64, axes [3][]float64) {
	ts = append([]float64{}, builtinTs...)
	axes[0] = append([]float64{}, builtinXs...)
	axes[1] = append([]float64{}, builtinYs...)
	axes[2] = append([]float64{}, builtinZs...)
	return ts, axes
}

// ReadKnots reads a whitespace-separated table whose first four columns are
// t, x, y, and z. Validation of the knots is left to curve.New.
func ReadKnots(fname string) (ts []float64, axes [3][]float64, err error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3}, nil)
	if err != nil {
		return nil, axes, err
	}
	if len(cols[0]) == 0 {
		return nil, axes, fmt.Errorf("Knot table '%s' is empty.", fname)
	}

	return cols[0], [3][]float64{cols[1], cols[2], cols[3]}, nil
}

// WriteKnots writes knots in the format read by ReadKnots.
func WriteKnots(w io.Writer, ts []float64, axes [3][]float64) error {
	if _, err := fmt.Fprintln(w, "# t x y z"); err != nil {
		return err
	}
	for i := range ts {
		_, err := fmt.Fprintf(
			w, "%.17g %.17g %.17g %.17g\n",
			ts[i], axes[0][i], axes[1][i], axes[2][i],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

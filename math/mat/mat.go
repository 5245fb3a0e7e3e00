// Package mat contains a small dense matrix type and an LU solver for it.
// It is used to check banded solvers against the full, unspecialized system.
package mat

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape is returned when matrix and vector dimensions disagree.
	ErrShape = errors.New("mat: dimension mismatch")
	// ErrSingular is returned when a zero pivot is found during
	// factorization.
	ErrSingular = errors.New("mat: singular matrix")
)

// Matrix is a dense, row-major matrix.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors holds the LU decomposition of a square matrix along with the
// row permutation used to compute it.
type LUFactors struct {
	lu    Matrix
	pivot []int
	d     float64
}

// NewMatrix wraps vals as a width x height matrix. vals is not copied.
func NewMatrix(vals []float64, width, height int) (*Matrix, error) {
	if width <= 0 || height <= 0 || len(vals) != width*height {
		return nil, fmt.Errorf(
			"%w: %d values for a %d x %d matrix",
			ErrShape, len(vals), width, height,
		)
	}
	return &Matrix{Vals: vals, Width: width, Height: height}, nil
}

// Zeros returns a zeroed n x n matrix.
func Zeros(n int) *Matrix {
	return &Matrix{Vals: make([]float64, n*n), Width: n, Height: n}
}

// At returns the element in row i and column j.
func (m *Matrix) At(i, j int) float64 { return m.Vals[i*m.Width+j] }

// Set sets the element in row i and column j.
func (m *Matrix) Set(i, j int, x float64) { m.Vals[i*m.Width+j] = x }

// NewLUFactors allocates space for the factors of an n x n matrix.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)
	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1
	return luf
}

// LU returns the LU decomposition of a square matrix.
func (m *Matrix) LU() (*LUFactors, error) {
	if m.Width != m.Height {
		return nil, fmt.Errorf(
			"%w: LU of a %d x %d matrix", ErrShape, m.Width, m.Height,
		)
	}
	luf := NewLUFactors(m.Width)
	if err := m.LUFactorsAt(luf); err != nil {
		return nil, err
	}
	return luf, nil
}

// LUFactorsAt computes the LU decomposition of m into luf using partial
// pivoting with implicit row scaling.
func (m *Matrix) LUFactorsAt(luf *LUFactors) error {
	n := m.Width
	if m.Height != n || luf.lu.Width != n || len(luf.pivot) != n {
		return fmt.Errorf(
			"%w: cannot factor a %d x %d matrix into %d x %d factors",
			ErrShape, m.Width, m.Height, luf.lu.Width, luf.lu.Height,
		)
	}

	copy(luf.lu.Vals, m.Vals)
	lu := luf.lu.Vals
	luf.d = 1

	scale := make([]float64, n)
	for i := 0; i < n; i++ {
		max := 0.0
		for j := 0; j < n; j++ {
			max = math.Max(max, math.Abs(lu[i*n+j]))
		}
		if max == 0 {
			return fmt.Errorf("%w: row %d is zero", ErrSingular, i)
		}
		scale[i] = 1 / max
	}

	for k := 0; k < n; k++ {
		maxi, max := k, -1.0
		for i := k; i < n; i++ {
			if x := scale[i] * math.Abs(lu[i*n+k]); x > max {
				maxi, max = i, x
			}
		}

		if maxi != k {
			for j := 0; j < n; j++ {
				lu[maxi*n+j], lu[k*n+j] = lu[k*n+j], lu[maxi*n+j]
			}
			luf.d = -luf.d
			scale[maxi] = scale[k]
		}
		luf.pivot[k] = maxi

		pivot := lu[k*n+k]
		if pivot == 0 {
			return fmt.Errorf("%w: zero pivot in column %d", ErrSingular, k)
		}
		for i := k + 1; i < n; i++ {
			lu[i*n+k] /= pivot
			mult := lu[i*n+k]
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= mult * lu[k*n+j]
			}
		}
	}

	return nil
}

// SolveVector solves M * xs = bs for xs. bs and xs may be the same slice.
func (luf *LUFactors) SolveVector(bs, xs []float64) error {
	n := luf.lu.Width
	if len(bs) != n || len(xs) != n {
		return fmt.Errorf(
			"%w: solving a %d x %d system with len(bs) = %d, len(xs) = %d",
			ErrShape, n, n, len(bs), len(xs),
		)
	}
	if n == 0 {
		return nil
	}
	if &bs[0] != &xs[0] {
		copy(xs, bs)
	}

	lu := luf.lu.Vals

	// Forward substitution, applying the row swaps as we go.
	for i := 0; i < n; i++ {
		p := luf.pivot[i]
		sum := xs[p]
		xs[p] = xs[i]
		for j := 0; j < i; j++ {
			sum -= lu[i*n+j] * xs[j]
		}
		xs[i] = sum
	}

	for i := n - 1; i >= 0; i-- {
		sum := xs[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[i*n+j] * xs[j]
		}
		xs[i] = sum / lu[i*n+i]
	}

	return nil
}

// Determinant returns the determinant of the factored matrix.
func (luf *LUFactors) Determinant() float64 {
	n := luf.lu.Width
	d := luf.d
	for i := 0; i < n; i++ {
		d *= luf.lu.Vals[i*n+i]
	}
	return d
}

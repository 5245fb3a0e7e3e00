package mat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmat "gonum.org/v1/gonum/mat"
)

func TestLU(t *testing.T) {
	M, err := NewMatrix([]float64{
		1, 3, 5,
		2, 4, 7,
		1, 1, 0,
	}, 3, 3)
	require.NoError(t, err)

	luf, err := M.LU()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, luf.Determinant(), 1e-12)

	xs := make([]float64, 3)
	require.NoError(t, luf.SolveVector([]float64{8, 12, 0}, xs))
	assert.InDeltaSlice(t, []float64{1, -1, 2}, xs, 1e-12)

	// In-place solves give the same answer.
	bs := []float64{8, 12, 0}
	require.NoError(t, luf.SolveVector(bs, bs))
	assert.InDeltaSlice(t, xs, bs, 1e-15)

	// The input matrix is left alone.
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 7, 1, 1, 0}, M.Vals)
}

func TestLUFactorsAtReuse(t *testing.T) {
	luf := NewLUFactors(2)

	A, err := NewMatrix([]float64{2, 1, -1, 0}, 2, 2)
	require.NoError(t, err)
	require.NoError(t, A.LUFactorsAt(luf))
	assert.InDelta(t, 1.0, luf.Determinant(), 1e-15)

	B := Zeros(2)
	B.Set(0, 0, 3)
	B.Set(1, 1, -2)
	assert.Equal(t, -2.0, B.At(1, 1))
	require.NoError(t, B.LUFactorsAt(luf))
	assert.Equal(t, -6.0, luf.Determinant())

	xs := make([]float64, 2)
	require.NoError(t, luf.SolveVector([]float64{3, 4}, xs))
	assert.Equal(t, []float64{1, -2}, xs)
}

func TestErrors(t *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrShape)

	M, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	_, err = M.LU()
	assert.ErrorIs(t, err, ErrShape)

	M, err = NewMatrix([]float64{1, 2, 2, 4}, 2, 2)
	require.NoError(t, err)
	_, err = M.LU()
	assert.ErrorIs(t, err, ErrSingular)

	M, err = NewMatrix([]float64{1, 2, 0, 0}, 2, 2)
	require.NoError(t, err)
	_, err = M.LU()
	assert.ErrorIs(t, err, ErrSingular)

	luf, err := Zeros(1).LU()
	assert.ErrorIs(t, err, ErrSingular)
	assert.Nil(t, luf)

	M, err = NewMatrix([]float64{1, 0, 0, 1}, 2, 2)
	require.NoError(t, err)
	luf, err = M.LU()
	require.NoError(t, err)
	assert.ErrorIs(t, luf.SolveVector([]float64{1}, make([]float64, 2)), ErrShape)
}

func TestLUMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(8)
		vals := make([]float64, n*n)
		for i := range vals {
			vals[i] = 2*rng.Float64() - 1
		}
		// Keep the system well conditioned so the two solvers agree
		// closely.
		for i := 0; i < n; i++ {
			vals[i*n+i] += float64(n)
		}
		bs := make([]float64, n)
		for i := range bs {
			bs[i] = 10*rng.Float64() - 5
		}

		M, err := NewMatrix(append([]float64{}, vals...), n, n)
		require.NoError(t, err)
		luf, err := M.LU()
		require.NoError(t, err)
		xs := make([]float64, n)
		require.NoError(t, luf.SolveVector(bs, xs))

		A := gmat.NewDense(n, n, append([]float64{}, vals...))
		var want gmat.VecDense
		require.NoError(t, want.SolveVec(A, gmat.NewVecDense(n, bs)))

		assert.InDeltaSlice(t, want.RawVector().Data, xs, 1e-10,
			"trial %d, n = %d", trial, n)

		det := gmat.Det(A)
		assert.InDelta(t, det, luf.Determinant(), 1e-9*(1+math.Abs(det)),
			"trial %d, n = %d", trial, n)
	}
}

package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	xs := []float64{0, 1, 3, 4}
	vals := []float64{2, 4, 0, 1}
	lin, err := NewLinear(xs, vals)
	require.NoError(t, err)

	tests := []struct {
		x, want float64
	}{
		// points on the grid
		{0, 2}, {1, 4}, {3, 0}, {4, 1},
		// points between grid points
		{0.5, 3}, {2, 2}, {3.5, 0.5},
		// extrapolation continues the end segments
		{-1, 0}, {5, 2},
	}

	for _, test := range tests {
		assert.InDelta(t, test.want, lin.Eval(test.x), 1e-12, "x = %g", test.x)
	}

	out := make([]float64, 3)
	res := lin.EvalAll([]float64{0, 2, 4}, out)
	assert.Equal(t, []float64{2, 2, 1}, out)
	assert.Equal(t, out, res)
}

func TestLinearCopiesInput(t *testing.T) {
	xs := []float64{0, 1}
	vals := []float64{0, 10}
	lin, err := NewLinear(xs, vals)
	require.NoError(t, err)

	xs[1], vals[1] = 100, -10
	assert.Equal(t, 5.0, lin.Eval(0.5))
}

func TestUniformLinear(t *testing.T) {
	lin, err := NewUniformLinear(1, 0.5, []float64{0, 1, 4, 9})
	require.NoError(t, err)

	assert.Equal(t, 0.0, lin.Eval(1))
	assert.InDelta(t, 2.5, lin.Eval(1.75), 1e-12)
	assert.Equal(t, 9.0, lin.Eval(2.5))
	assert.InDelta(t, 14.0, lin.Eval(3), 1e-12)
}

func TestLinearInvalidInput(t *testing.T) {
	tables := []struct {
		name     string
		xs, vals []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{1}, []float64{1}},
		{"length mismatch", []float64{0, 1, 2}, []float64{0, 1}},
		{"duplicate knot", []float64{0, 1, 1, 2}, []float64{0, 1, 2, 3}},
		{"decreasing", []float64{2, 1, 0}, []float64{0, 1, 2}},
	}

	for _, tab := range tables {
		_, err := NewLinear(tab.xs, tab.vals)
		assert.ErrorIs(t, err, ErrInvalidInput, tab.name)
	}

	uniform := []struct {
		name   string
		x0, dx float64
		vals   []float64
	}{
		{"uniform empty", 0, 1, nil},
		{"uniform single point", 0, 1, []float64{1}},
		{"uniform negative spacing", 0, -1, []float64{0, 1}},
		{"uniform zero spacing", 0, 0, []float64{0, 1}},
	}

	for _, tab := range uniform {
		var err error
		require.NotPanics(t, func() {
			_, err = NewUniformLinear(tab.x0, tab.dx, tab.vals)
		}, tab.name)
		assert.ErrorIs(t, err, ErrInvalidInput, tab.name)
	}
}

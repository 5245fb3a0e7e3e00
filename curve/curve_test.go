package curve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/splinecurve/curve"
	"github.com/phil-mansfield/splinecurve/io"
	"github.com/phil-mansfield/splinecurve/math/interpolate"
)

func builtinCurve(t *testing.T, opts ...curve.Option) *curve.Curve {
	t.Helper()
	ts, axes := io.BuiltinKnots()
	c, err := curve.New(ts, axes, opts...)
	require.NoError(t, err)
	return c
}

func TestSampleBuiltin(t *testing.T) {
	c := builtinCurve(t)
	ts, axes := io.BuiltinKnots()

	intervals := curve.Intervals(len(ts), 50)
	require.Equal(t, 749, intervals)

	points, err := c.Sample(intervals)
	require.NoError(t, err)
	require.Len(t, points, 750)

	assert.Equal(t, curve.Point{T: 0, XYZ: [3]float64{0, 0, 12}}, points[0])
	assert.Equal(t, curve.Point{T: 1, XYZ: [3]float64{0, 0, 12}}, points[749])

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].T, points[i-1].T)
	}
	assert.InDelta(t, 100.0/749, points[100].T, 1e-15)

	// Every knot is reproduced exactly.
	for i := range ts {
		p := c.At(ts[i])
		for dim := range axes {
			assert.Equal(t, axes[dim][i], p.XYZ[dim])
		}
	}
}

func TestBuiltinGolden(t *testing.T) {
	c := builtinCurve(t)

	tests := []curve.Point{
		{T: 0.5, XYZ: [3]float64{
			-8.39671656183561, -11.96897914242665, 12.567868649377385,
		}},
		{T: 0.95, XYZ: [3]float64{
			-2.88798036176298, 4.495280358076042, 12.600003878355242,
		}},
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, want := range tests {
		if diff := cmp.Diff(want, c.At(want.T), approx); diff != "" {
			t.Errorf("At(%g) mismatch (-want +got):\n%s", want.T, diff)
		}
	}
}

func TestIndependentAxes(t *testing.T) {
	base := builtinCurve(t)
	clampedX := builtinCurve(t, curve.WithBounds(0, curve.Bounds{
		Left:  interpolate.Boundary{Kind: interpolate.Clamped, Value: 0},
		Right: interpolate.Boundary{Kind: interpolate.Free},
	}))

	p0, p1 := base.At(0.02), clampedX.At(0.02)
	assert.NotEqual(t, p0.XYZ[0], p1.XYZ[0])
	assert.Equal(t, p0.XYZ[1], p1.XYZ[1])
	assert.Equal(t, p0.XYZ[2], p1.XYZ[2])
}

func TestLinearMethod(t *testing.T) {
	ts := []float64{0, 1, 2}
	axes := [3][]float64{{0, 2, 2}, {1, 1, 1}, {0, -1, 1}}

	c, err := curve.New(ts, axes, curve.WithMethod(curve.Linear))
	require.NoError(t, err)
	assert.Equal(t, curve.Linear, c.Method())

	points, err := c.Sample(4)
	require.NoError(t, err)

	want := []curve.Point{
		{T: 0, XYZ: [3]float64{0, 1, 0}},
		{T: 0.5, XYZ: [3]float64{1, 1, -0.5}},
		{T: 1, XYZ: [3]float64{2, 1, -1}},
		{T: 1.5, XYZ: [3]float64{2, 1, 0}},
		{T: 2, XYZ: [3]float64{2, 1, 1}},
	}
	if diff := cmp.Diff(want, points, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("linear samples mismatch (-want +got):\n%s", diff)
	}
}

func TestNewErrors(t *testing.T) {
	ts := []float64{0, 1, 2, 3}
	good := []float64{0, 1, 0, 1}

	_, err := curve.New(ts, [3][]float64{good, {0, 1}, good})
	require.ErrorIs(t, err, interpolate.ErrInvalidInput)
	assert.Contains(t, err.Error(), "y axis")

	_, err = curve.New([]float64{0, 0.5, 0.3, 1}, [3][]float64{good, good, good})
	assert.ErrorIs(t, err, interpolate.ErrInvalidInput)

	_, err = curve.New(ts, [3][]float64{good, good, good},
		curve.WithMethod(curve.EndMethod))
	assert.ErrorIs(t, err, interpolate.ErrInvalidInput)

	for _, axis := range []int{-1, 3} {
		var err error
		require.NotPanics(t, func() {
			_, err = curve.New(ts, [3][]float64{good, good, good},
				curve.WithBounds(axis, curve.Bounds{}))
		})
		assert.ErrorIs(t, err, interpolate.ErrInvalidInput, "axis %d", axis)
	}

	c := builtinCurve(t)
	_, err = c.Sample(0)
	assert.ErrorIs(t, err, interpolate.ErrInvalidInput)
}

func TestCurveCopiesKnots(t *testing.T) {
	ts := []float64{0, 1, 2}
	c, err := curve.New(ts, [3][]float64{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}})
	require.NoError(t, err)

	ts[2] = 10
	lo, hi := c.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
	assert.Equal(t, []float64{0, 1, 2}, c.Knots())
}

func TestParseMethod(t *testing.T) {
	m, err := curve.ParseMethod("LINEAR")
	require.NoError(t, err)
	assert.Equal(t, curve.Linear, m)

	_, err = curve.ParseMethod("Akima")
	assert.Error(t, err)

	assert.Equal(t, 2, curve.AxisIndex(" Z "))
	assert.Equal(t, -1, curve.AxisIndex("w"))
}

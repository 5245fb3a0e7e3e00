/*package curve samples a 3D curve described by three independent 1D
interpolators which share a single parameter sequence.
*/
package curve

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/splinecurve/math/interpolate"
)

// Method is the interpolation scheme used along each axis.
type Method int

const (
	Cubic Method = iota
	Linear
	EndMethod
)

var methodNames = [EndMethod]string{"Cubic", "Linear"}

func (m Method) String() string {
	if m < 0 || m >= EndMethod {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod converts a case-insensitive method name into a Method.
func ParseMethod(s string) (Method, error) {
	name := strings.TrimSpace(s)
	for m := Method(0); m < EndMethod; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf(
		"Method '%s' not recognized. Must be one of [%s].",
		s, strings.Join(methodNames[:], " | "),
	)
}

// AxisNames are the names of the three axes, in the order used by Point.XYZ.
var AxisNames = [3]string{"x", "y", "z"}

// AxisIndex returns the index of the named axis, or -1 if there is no such
// axis. Names are case-insensitive.
func AxisIndex(name string) int {
	for i, axis := range AxisNames {
		if strings.EqualFold(axis, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// Bounds are the boundary conditions of a single axis. They only apply to
// the Cubic method.
type Bounds struct {
	Left, Right interpolate.Boundary
}

// Point is a single sample of the curve.
type Point struct {
	T   float64    `json:"t" yaml:"t"`
	XYZ [3]float64 `json:"xyz" yaml:"xyz,flow"`
}

type options struct {
	method  Method
	bounds  [3]Bounds
	badAxis []int
}

// Option configures a Curve.
type Option func(*options)

// WithMethod sets the interpolation method for all three axes. The default
// is Cubic.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithBounds sets the boundary conditions of a single axis. The default is
// not-a-knot at both ends of every axis. axis must be 0, 1, or 2.
func WithBounds(axis int, b Bounds) Option {
	return func(o *options) {
		if axis < 0 || axis >= len(o.bounds) {
			o.badAxis = append(o.badAxis, axis)
			return
		}
		o.bounds[axis] = b
	}
}

// Curve is a parametric curve in three dimensions. Once created it is read
// only.
type Curve struct {
	ts     []float64
	method Method
	axes   [3]interpolate.Interpolator
}

// New creates a curve which passes through (axes[0][i], axes[1][i],
// axes[2][i]) at parameter ts[i]. ts must be strictly increasing. Every axis
// is interpolated independently of the others.
func New(ts []float64, axes [3][]float64, opts ...Option) (*Curve, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.badAxis) > 0 {
		return nil, fmt.Errorf(
			"%w: boundary conditions given for axis %d, must be in [0, %d)",
			interpolate.ErrInvalidInput, o.badAxis[0], len(AxisNames),
		)
	}

	c := &Curve{method: o.method}
	c.ts = make([]float64, len(ts))
	copy(c.ts, ts)

	for i := range axes {
		intr, err := newAxis(o.method, ts, axes[i], o.bounds[i])
		if err != nil {
			return nil, fmt.Errorf("%s axis: %w", AxisNames[i], err)
		}
		c.axes[i] = intr
	}

	return c, nil
}

func newAxis(
	method Method, ts, vals []float64, b Bounds,
) (interpolate.Interpolator, error) {
	switch method {
	case Cubic:
		return interpolate.NewSpline(ts, vals, b.Left, b.Right)
	case Linear:
		return interpolate.NewLinear(ts, vals)
	default:
		return nil, fmt.Errorf(
			"%w: unknown method %s", interpolate.ErrInvalidInput, method,
		)
	}
}

// Method returns the interpolation method used by the curve.
func (c *Curve) Method() Method { return c.method }

// Knots returns a copy of the parameter sequence.
func (c *Curve) Knots() []float64 {
	out := make([]float64, len(c.ts))
	copy(out, c.ts)
	return out
}

// Range returns the first and last knots.
func (c *Curve) Range() (lo, hi float64) {
	return c.ts[0], c.ts[len(c.ts)-1]
}

// At evaluates the curve at t. Values of t outside Range are extrapolated.
func (c *Curve) At(t float64) Point {
	p := Point{T: t}
	for i, axis := range c.axes {
		p.XYZ[i] = axis.Eval(t)
	}
	return p
}

// Intervals returns the number of sampling intervals used for a curve with
// the given number of knots when perSegment samples are wanted for each
// knot. Sampling with this many intervals gives knots*perSegment points.
func Intervals(knots, perSegment int) int {
	return knots*perSegment - 1
}

// Sample evaluates the curve at intervals + 1 uniformly spaced parameters
// running from the first knot to the last. Points are returned in order of
// increasing parameter.
func (c *Curve) Sample(intervals int) ([]Point, error) {
	if intervals < 1 {
		return nil, fmt.Errorf(
			"%w: need at least one sampling interval, got %d",
			interpolate.ErrInvalidInput, intervals,
		)
	}

	lo, hi := c.Range()
	ts := make([]float64, intervals+1)
	for i := range ts {
		ts[i] = lo + (hi-lo)*float64(i)/float64(intervals)
	}
	ts[intervals] = hi

	out := make([]float64, len(ts))
	points := make([]Point, len(ts))
	for i := range points {
		points[i].T = ts[i]
	}
	for dim, axis := range c.axes {
		axis.EvalAll(ts, out)
		for i := range points {
			points[i].XYZ[dim] = out[i]
		}
	}

	return points, nil
}

package interpolate

import (
	"fmt"
)

// splineCoeff holds the expansion of the spline around a knot:
// f(x) = y + b*dx + c*dx^2 + d*dx^3, with dx = x - knot.
type splineCoeff struct {
	y, b, c, d float64
}

// Spline represents a 1D cubic spline which can be used to interpolate between
// points.
//
// A Spline moves through three states. The zero value has no points. Init
// supplies the points, after which SetBoundary may be called any number of
// times. Solve computes the coefficients; from then on the Spline is read
// only and Eval, Diff and EvalAll are safe to call from multiple
// goroutines. Calling Init or SetBoundary on a solved Spline discards its
// coefficients, and Solve must be called again.
type Spline struct {
	xs          searcher
	ys          []float64
	left, right Boundary

	// nil until Solve succeeds. coeffs[i] describes the segment starting at
	// xs[i]; the final entry re-expands the last segment around the last
	// knot so that evaluating exactly at it returns ys[n-1].
	coeffs []splineCoeff
}

// NewSpline creates a solved spline from a table of x and y values with the
// given boundary conditions. xs must be strictly increasing. Both slices are
// copied.
func NewSpline(xs, ys []float64, left, right Boundary) (*Spline, error) {
	sp := &Spline{}
	if err := sp.Init(xs, ys); err != nil {
		return nil, err
	}
	sp.SetBoundary(left, right)
	if err := sp.Solve(); err != nil {
		return nil, err
	}
	return sp, nil
}

// Init sets the table of points that the spline passes through. xs must be
// strictly increasing and the same length as ys, with at least two points.
// Both slices are copied.
//
// If the table is invalid, an error wrapping ErrInvalidInput is returned and
// the spline is left without points. Boundary conditions are kept either way.
func (sp *Spline) Init(xs, ys []float64) error {
	sp.xs, sp.ys, sp.coeffs = searcher{}, nil, nil

	if err := checkTable(xs, ys); err != nil {
		return err
	}

	xsCopy := make([]float64, len(xs))
	sp.ys = make([]float64, len(ys))
	copy(xsCopy, xs)
	copy(sp.ys, ys)
	sp.xs.init(xsCopy)

	return nil
}

// SetBoundary sets the conditions used at the first and last knots. The
// default for both is NotAKnot. If the spline has already been solved, its
// coefficients are discarded.
func (sp *Spline) SetBoundary(left, right Boundary) {
	sp.left, sp.right = left, right
	sp.coeffs = nil
}

// Boundary returns the current boundary conditions.
func (sp *Spline) Boundary() (left, right Boundary) {
	return sp.left, sp.right
}

// Solve computes the spline coefficients. Calling it on a solved spline does
// nothing.
func (sp *Spline) Solve() error {
	if sp.ys == nil {
		return ErrUnconfigured
	} else if sp.coeffs != nil {
		return nil
	}

	for _, b := range []Boundary{sp.left, sp.right} {
		if b.Kind < 0 || b.Kind >= EndBoundaryKind {
			return fmt.Errorf("%w: unknown boundary %s", ErrInvalidInput, b)
		}
	}

	y2s := make([]float64, len(sp.ys))
	if err := sp.calcY2s(y2s); err != nil {
		return err
	}
	sp.coeffs = sp.calcCoeffs(y2s)
	return nil
}

// Solved returns true if the spline's coefficients have been computed.
func (sp *Spline) Solved() bool { return sp.coeffs != nil }

// Len returns the number of knots in the spline.
func (sp *Spline) Len() int { return len(sp.ys) }

// Knots returns a copy of the spline's knots.
func (sp *Spline) Knots() []float64 {
	out := make([]float64, sp.xs.len())
	copy(out, sp.xs.xs)
	return out
}

// Eval computes the value of the spline at the given point. Points outside
// the range of knots are extrapolated using the polynomial of the nearest
// segment.
//
// Eval panics with ErrUnsolved if Solve has not succeeded.
func (sp *Spline) Eval(x float64) float64 {
	i, dx := sp.locate(x)
	c := &sp.coeffs[i]
	return ((c.d*dx+c.c)*dx+c.b)*dx + c.y
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = sp.Eval(x)
	}
	return out[0]
}

// Diff computes the derivative of spline at the given point to the
// specified order. Order 0 is the same as Eval, and all orders above 3 are
// zero.
//
// Diff panics if order is negative or if Solve has not succeeded.
func (sp *Spline) Diff(x float64, order int) float64 {
	if order < 0 {
		panic(fmt.Sprintf("Spline.Diff() given negative order %d.", order))
	}

	i, dx := sp.locate(x)
	c := &sp.coeffs[i]
	switch order {
	case 0:
		return ((c.d*dx+c.c)*dx+c.b)*dx + c.y
	case 1:
		return (3*c.d*dx+2*c.c)*dx + c.b
	case 2:
		return 6*c.d*dx + 2*c.c
	case 3:
		return 6 * c.d
	default:
		return 0
	}
}

// locate returns the index of the coefficients used for x and the offset of
// x from the corresponding knot.
func (sp *Spline) locate(x float64) (int, float64) {
	if sp.coeffs == nil {
		panic(ErrUnsolved)
	}
	i := sp.xs.search(x)
	return i, x - sp.xs.val(i)
}

// calcY2s computes the second derivative at every knot.
//
// Interior rows come from requiring continuous first derivatives:
//
//	h[j-1]/6 y2[j-1] + (h[j-1] + h[j])/3 y2[j] + h[j]/6 y2[j+1] = s[j] - s[j-1]
//
// where h[j] is the width of segment j and s[j] is its slope. The first and
// last rows are replaced by the boundary conditions. A not-a-knot condition
// involves three unknowns, so its end unknown is eliminated into the
// neighboring interior row, the reduced system is solved, and the end value
// is recovered afterwards.
func (sp *Spline) calcY2s(y2s []float64) error {
	xs, ys := sp.xs.xs, sp.ys
	n := len(xs)

	h := func(j int) float64 { return xs[j+1] - xs[j] }
	s := func(j int) float64 { return (ys[j+1] - ys[j]) / h(j) }

	switch {
	case n == 2:
		// A straight line, whatever was asked for at the ends.
		return nil
	case n == 3 && sp.left.Kind == NotAKnot && sp.right.Kind == NotAKnot:
		// Both conditions are the same equation. Use the parabola through
		// the three points.
		y2 := 2 * (s(1) - s(0)) / (h(0) + h(1))
		y2s[0], y2s[1], y2s[2] = y2, y2, y2
		return nil
	}

	// These arrays do not escape the call.
	as, bs := make([]float64, n), make([]float64, n)
	cs, rs := make([]float64, n), make([]float64, n)

	for j := 1; j < n-1; j++ {
		as[j] = h(j-1) / 6
		bs[j] = (h(j-1) + h(j)) / 3
		cs[j] = h(j) / 6
		rs[j] = s(j) - s(j-1)
	}

	lo, hi := 0, n-1

	switch sp.left.Kind {
	case NotAKnot:
		// y2[0] = ((h0 + h1) y2[1] - h0 y2[2]) / h1
		h0, h1 := h(0), h(1)
		lo = 1
		as[1] = 0
		bs[1] = (h0 + h1) * (h0 + 2*h1) / (6 * h1)
		cs[1] = (h1*h1 - h0*h0) / (6 * h1)
	case Free:
		bs[0], cs[0], rs[0] = 1, 0, 0
	case SecondDerivative:
		bs[0], cs[0], rs[0] = 1, 0, sp.left.Value
	case Clamped:
		bs[0], cs[0], rs[0] = h(0)/3, h(0)/6, s(0)-sp.left.Value
	}

	switch sp.right.Kind {
	case NotAKnot:
		// y2[n-1] = ((p + q) y2[n-2] - q y2[n-3]) / p
		p, q := h(n-3), h(n-2)
		hi = n - 2
		as[n-2] = (p*p - q*q) / (6 * p)
		bs[n-2] = (p + q) * (2*p + q) / (6 * p)
		cs[n-2] = 0
	case Free:
		as[n-1], bs[n-1], rs[n-1] = 0, 1, 0
	case SecondDerivative:
		as[n-1], bs[n-1], rs[n-1] = 0, 1, sp.right.Value
	case Clamped:
		as[n-1], bs[n-1], rs[n-1] = h(n-2)/6, h(n-2)/3, sp.right.Value-s(n-2)
	}

	err := TriDiagAt(
		as[lo:hi+1], bs[lo:hi+1], cs[lo:hi+1], rs[lo:hi+1], y2s[lo:hi+1],
	)
	if err != nil {
		return err
	}

	if sp.left.Kind == NotAKnot {
		h0, h1 := h(0), h(1)
		y2s[0] = ((h0+h1)*y2s[1] - h0*y2s[2]) / h1
	}
	if sp.right.Kind == NotAKnot {
		p, q := h(n-3), h(n-2)
		y2s[n-1] = ((p+q)*y2s[n-2] - q*y2s[n-3]) / p
	}

	return nil
}

func (sp *Spline) calcCoeffs(y2s []float64) []splineCoeff {
	xs, ys := sp.xs.xs, sp.ys
	n := len(xs)
	coeffs := make([]splineCoeff, n)

	for i := 0; i < n-1; i++ {
		dx := xs[i+1] - xs[i]
		coeffs[i].y = ys[i]
		coeffs[i].b = (ys[i+1]-ys[i])/dx - dx*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].c = y2s[i] / 2
		coeffs[i].d = (y2s[i+1] - y2s[i]) / (6 * dx)
	}

	dx := xs[n-1] - xs[n-2]
	coeffs[n-1].y = ys[n-1]
	coeffs[n-1].b = (ys[n-1]-ys[n-2])/dx + dx*(y2s[n-2]+2*y2s[n-1])/6
	coeffs[n-1].c = y2s[n-1] / 2
	coeffs[n-1].d = coeffs[n-2].d

	return coeffs
}

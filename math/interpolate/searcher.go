package interpolate

// searcher finds the segment of a strictly increasing knot sequence which
// contains a point.
type searcher struct {
	xs []float64

	// Usually the input data is close to uniform. This is our estimate of
	// the point spacing, used to guess before falling back to bisection.
	x0, dx float64
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}

func (s *searcher) unifInit(x0, dx float64, n int) {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	s.init(xs)
}

func (s *searcher) len() int { return len(s.xs) }

func (s *searcher) val(i int) float64 { return s.xs[i] }

// search returns the index of the largest knot which is less than or equal
// to x. Points below the first knot map to 0 and points at or above the last
// knot map to len(xs) - 1.
func (s *searcher) search(x float64) int {
	xs := s.xs
	n := len(xs)

	if !(x >= xs[0]) {
		return 0
	} else if x >= xs[n-1] {
		return n - 1
	}

	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < n-1 && xs[guess] <= x && x < xs[guess+1] {
		return guess
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

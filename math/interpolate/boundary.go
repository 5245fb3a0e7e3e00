package interpolate

import (
	"fmt"
	"strings"
)

// BoundaryKind is the type of condition imposed on one end of a Spline.
type BoundaryKind int

const (
	// NotAKnot requires the third derivative to be continuous across the
	// first (or last) interior knot, so the two end segments share one
	// polynomial. Value is ignored. This is the zero value.
	NotAKnot BoundaryKind = iota
	// Free forces the second derivative to zero (a "natural" end). Value
	// is ignored.
	Free
	// Clamped forces the first derivative to Value.
	Clamped
	// SecondDerivative forces the second derivative to Value.
	SecondDerivative

	EndBoundaryKind
)

var boundaryKindNames = [EndBoundaryKind]string{
	"NotAKnot", "Free", "Clamped", "SecondDerivative",
}

func (k BoundaryKind) String() string {
	if k < 0 || k >= EndBoundaryKind {
		return fmt.Sprintf("BoundaryKind(%d)", int(k))
	}
	return boundaryKindNames[k]
}

// ParseBoundaryKind converts a case-insensitive name, e.g. "notaknot" or
// "Clamped", into a BoundaryKind.
func ParseBoundaryKind(s string) (BoundaryKind, error) {
	name := strings.TrimSpace(s)
	for k := BoundaryKind(0); k < EndBoundaryKind; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf(
		"Boundary kind '%s' not recognized. Must be one of [%s].",
		s, strings.Join(boundaryKindNames[:], " | "),
	)
}

// Boundary is the condition imposed on one end of a Spline.
type Boundary struct {
	Kind  BoundaryKind
	Value float64
}

func (b Boundary) String() string {
	switch b.Kind {
	case Clamped, SecondDerivative:
		return fmt.Sprintf("%s(%g)", b.Kind, b.Value)
	default:
		return b.Kind.String()
	}
}

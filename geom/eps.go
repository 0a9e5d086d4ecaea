package geom

import "gonum.org/v1/gonum/floats/scalar"

// Eps is the tolerance used in place of exact floating-point comparison
// for all geometric predicates. Accumulated rounding error makes exact
// equality useless here; every sign test and near-equality check in this
// package is taken against an Eps supplied by the caller, so a single
// value governs the tie-break policy of every dependent predicate.
//
// Construct one per problem or test run. Some judge problems need a
// looser or stricter value than the default.
type Eps float64

// DefaultEps suits most judge problems with coordinates up to ~1e4.
const DefaultEps Eps = 1e-10

// Eq reports whether a and b are equal within the tolerance.
func (e Eps) Eq(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, float64(e))
}

// Sign classifies x as negative (-1), zero (0) or positive (1), treating
// the band (-e, e) as zero.
func (e Eps) Sign(x float64) int {
	switch {
	case x > float64(e):
		return 1
	case x < -float64(e):
		return -1
	default:
		return 0
	}
}

// Less reports a < b by more than the tolerance.
func (e Eps) Less(a, b float64) bool {
	return b-a > float64(e)
}

// LessEq reports a <= b, allowing b to undershoot a by up to the tolerance.
func (e Eps) LessEq(a, b float64) bool {
	return a-b < float64(e)
}

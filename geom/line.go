package geom

import "math"

// Line is the infinite line through two distinct points. Direction runs
// from P1 to P2; orientation-sensitive operations (ConvexCut, Orient)
// depend on it. The endpoints being distinct is a precondition; a
// zero-direction line makes every predicate vacuous.
type Line struct {
	P1, P2 Point
}

// NewLine validates that the two points are distinct within eps.
func NewLine(p1, p2 Point, eps Eps) (Line, error) {
	if p1.Eq(p2, eps) {
		return Line{}, ErrDegenerate
	}
	return Line{P1: p1, P2: p2}, nil
}

// Vec is the direction vector P2-P1.
func (l Line) Vec() Point {
	return l.P2.Sub(l.P1)
}

// Slope returns dy/dx, or +Inf for a vertical line.
func (l Line) Slope(eps Eps) float64 {
	if eps.Eq(l.P1.X, l.P2.X) {
		return math.Inf(1)
	}
	return (l.P2.Y - l.P1.Y) / (l.P2.X - l.P1.X)
}

// Project returns the orthogonal projection of p onto the line.
func (l Line) Project(p Point) Point {
	base := l.Vec()
	t := p.Sub(l.P1).Dot(base) / base.Norm2()
	return l.P1.Add(base.Mul(t))
}

// Reflect mirrors p across the line.
func (l Line) Reflect(p Point) Point {
	return p.Add(l.Project(p).Sub(p).Mul(2))
}

// IsParallel reports whether the two lines have parallel directions.
func (l Line) IsParallel(m Line, eps Eps) bool {
	return eps.Sign(l.Vec().Cross(m.Vec())) == 0
}

// IsOrthogonal reports whether the two lines are perpendicular.
func (l Line) IsOrthogonal(m Line, eps Eps) bool {
	return eps.Sign(l.Vec().Dot(m.Vec())) == 0
}

// ContainsPoint reports whether p lies on the line.
func (l Line) ContainsPoint(p Point, eps Eps) bool {
	return eps.Sign(l.Vec().Cross(p.Sub(l.P1))) == 0
}

// Intersects reports whether the two infinite lines share at least one
// point. Non-parallel lines always do; parallel lines only when collinear.
func (l Line) Intersects(m Line, eps Eps) bool {
	if l.ContainsPoint(m.P1, eps) {
		return true
	}
	return !l.IsParallel(m, eps)
}

// IntersectsSegment reports whether the line meets the segment.
func (l Line) IntersectsSegment(s Segment, eps Eps) bool {
	if l.ContainsPoint(s.P1, eps) || l.ContainsPoint(s.P2, eps) {
		return true
	}
	d := l.Vec()
	return eps.Sign(d.Cross(s.P1.Sub(l.P1)))*eps.Sign(d.Cross(s.P2.Sub(l.P1))) < 0
}

// CrossPoint solves the 2x2 system from the two parametric line
// equations. Parallel lines (determinant within eps of zero, collinear
// included) have no unique solution and fail with
// ErrNoUniqueIntersection.
func (l Line) CrossPoint(m Line, eps Eps) (Point, error) {
	d1 := l.Vec().Cross(m.Vec())
	if eps.Sign(d1) == 0 {
		return Point{}, ErrNoUniqueIntersection
	}
	d2 := l.Vec().Cross(l.P2.Sub(m.P1))
	return m.P1.Add(m.Vec().Mul(d2 / d1)), nil
}

// DistToPoint is the perpendicular distance from p to the line.
func (l Line) DistToPoint(p Point) float64 {
	return p.Dist(l.Project(p))
}

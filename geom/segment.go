package geom

import "math"

// Segment is the closed segment between two endpoints. Direction runs
// from P1 to P2 where it matters (Orient, ContainsPoint sub-cases).
type Segment struct {
	P1, P2 Point
}

// NewSegment validates that the endpoints are distinct within eps.
func NewSegment(p1, p2 Point, eps Eps) (Segment, error) {
	if p1.Eq(p2, eps) {
		return Segment{}, ErrDegenerate
	}
	return Segment{P1: p1, P2: p2}, nil
}

func (s Segment) Length() float64 {
	return s.P1.Dist(s.P2)
}

func (s Segment) Midpoint() Point {
	return s.P1.Add(s.P2).Div(2)
}

// Line extends the segment to the infinite line through its endpoints.
func (s Segment) Line() Line {
	return Line{P1: s.P1, P2: s.P2}
}

// Bisector is the perpendicular bisector, oriented a quarter turn
// counter-clockwise from the segment direction.
func (s Segment) Bisector() Line {
	mid := s.Midpoint()
	return Line{
		P1: s.P1.RotateAround(math.Pi/2, mid),
		P2: s.P2.RotateAround(math.Pi/2, mid),
	}
}

// ContainsPoint reports whether p lies on the segment, endpoints included.
func (s Segment) ContainsPoint(p Point, eps Eps) bool {
	return Orient(s.P1, s.P2, p, eps) == OnSegment
}

// Intersects reports whether the two segments share at least one point,
// including endpoint touching and collinear overlap. A zero-length
// segment degenerates to a point-on-segment test.
func (s Segment) Intersects(t Segment, eps Eps) bool {
	if s.P1.Eq(s.P2, eps) {
		return t.ContainsPoint(s.P1, eps)
	}
	if t.P1.Eq(t.P2, eps) {
		return s.ContainsPoint(t.P1, eps)
	}
	return int(Orient(s.P1, s.P2, t.P1, eps))*int(Orient(s.P1, s.P2, t.P2, eps)) <= 0 &&
		int(Orient(t.P1, t.P2, s.P1, eps))*int(Orient(t.P1, t.P2, s.P2, eps)) <= 0
}

// IntersectsLine reports whether the segment meets the infinite line.
func (s Segment) IntersectsLine(l Line, eps Eps) bool {
	return l.IntersectsSegment(s, eps)
}

// CrossPoint returns the unique intersection point of the two segments.
// Parallel segments (collinear overlap included) fail with
// ErrNoUniqueIntersection; disjoint segments with ErrNoIntersection.
func (s Segment) CrossPoint(t Segment, eps Eps) (Point, error) {
	if eps.Sign(s.Line().Vec().Cross(t.Line().Vec())) == 0 {
		return Point{}, ErrNoUniqueIntersection
	}
	if !s.Intersects(t, eps) {
		return Point{}, ErrNoIntersection
	}
	return s.Line().CrossPoint(t.Line(), eps)
}

// DistToPoint is the distance from p to the nearest point of the
// segment: the perpendicular distance when the projection of p falls
// within the segment, otherwise the distance to the nearer endpoint.
func (s Segment) DistToPoint(p Point, eps Eps) float64 {
	proj := s.Line().Project(p)
	if s.ContainsPoint(proj, eps) {
		return p.Dist(proj)
	}
	return math.Min(p.Dist(s.P1), p.Dist(s.P2))
}

// DistToSegment is the minimum distance between any two points of the
// segments: zero when they intersect, otherwise the minimum of the four
// endpoint-to-segment distances.
func (s Segment) DistToSegment(t Segment, eps Eps) float64 {
	if s.Intersects(t, eps) {
		return 0
	}
	d := math.Min(s.DistToPoint(t.P1, eps), s.DistToPoint(t.P2, eps))
	return math.Min(d, math.Min(t.DistToPoint(s.P1, eps), t.DistToPoint(s.P2, eps)))
}

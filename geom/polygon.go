package geom

import "math"

// Polygon is an ordered vertex sequence, implicitly closed (the last
// vertex connects back to the first). Vertices are expected in
// counter-clockwise order for the operations that assume a convention
// (ConvexCut, signed area sign); Reverse and IsCCW normalize.
//
// Area and containment need at least 3 vertices to be meaningful.
type Polygon struct {
	Points []Point
}

// NewPolygon copies the vertex list, dropping consecutive duplicates
// (within eps), wraparound included.
func NewPolygon(points []Point, eps Eps) Polygon {
	if len(points) == 0 {
		return Polygon{}
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if !out[len(out)-1].Eq(p, eps) {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[len(out)-1].Eq(out[0], eps) {
		out = out[:len(out)-1]
	}
	return Polygon{Points: out}
}

// Containment classifies a point against a closed region.
type Containment int

const (
	Outside Containment = iota
	OnBoundary
	Inside
)

func (c Containment) String() string {
	switch c {
	case Inside:
		return "INSIDE"
	case OnBoundary:
		return "ON_BOUNDARY"
	}
	return "OUTSIDE"
}

// CircularIndex gives the modular vertex index for length n, always
// non-negative, so an array can be walked as a circular buffer.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Vertex returns the i-th vertex with circular indexing.
func (pg Polygon) Vertex(i int) Point {
	return pg.Points[CircularIndex(i, len(pg.Points))]
}

// Edge returns the directed edge from vertex i to vertex i+1.
func (pg Polygon) Edge(i int) Segment {
	return Segment{P1: pg.Vertex(i), P2: pg.Vertex(i + 1)}
}

// SignedArea is the shoelace sum: positive for counter-clockwise
// vertex order, negative for clockwise.
func (pg Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range pg.Points {
		sum += p.Cross(pg.Vertex(i + 1))
	}
	return sum / 2
}

// Area is the unsigned enclosed area.
func (pg Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// IsCCW reports whether the vertices wind counter-clockwise.
func (pg Polygon) IsCCW() bool {
	return pg.SignedArea() > 0
}

// Reverse returns the polygon with the opposite winding.
func (pg Polygon) Reverse() Polygon {
	out := make([]Point, len(pg.Points))
	for i, p := range pg.Points {
		out[len(out)-1-i] = p
	}
	return Polygon{Points: out}
}

// IsConvex reports whether every turn along the boundary is in the same
// direction. Collinear triples are allowed.
func (pg Polygon) IsConvex(eps Eps) bool {
	pos, neg := false, false
	for i := range pg.Points {
		a, b, c := pg.Vertex(i), pg.Vertex(i+1), pg.Vertex(i+2)
		switch eps.Sign(b.Sub(a).Cross(c.Sub(b))) {
		case 1:
			pos = true
		case -1:
			neg = true
		}
	}
	return !(pos && neg)
}

// Contains classifies p against the polygon by the crossing-number
// method: walk the edges, and toggle an inside flag each time an edge
// crosses the horizontal ray running in +x from p. The boundary check
// per edge takes precedence over the crossing computation, so points on
// an edge or vertex always report OnBoundary. Winding order does not
// matter.
func (pg Polygon) Contains(p Point, eps Eps) Containment {
	in := false
	for i := range pg.Points {
		if pg.Edge(i).ContainsPoint(p, eps) {
			return OnBoundary
		}
		a := pg.Vertex(i).Sub(p)
		b := pg.Vertex(i + 1).Sub(p)
		if a.Y > b.Y {
			a, b = b, a
		}
		// The edge crosses the ray iff it spans y=0 upward and passes
		// to the right of p.
		if eps.Sign(a.Y) <= 0 && eps.Sign(b.Y) > 0 && eps.Sign(a.Cross(b)) > 0 {
			in = !in
		}
	}
	if in {
		return Inside
	}
	return Outside
}

// ConvexCut cuts a convex polygon with a line and returns the part on
// the counter-clockwise (left) side of l's direction. Vertices on the
// line are kept; the cut points are the edge/line intersections.
func (pg Polygon) ConvexCut(l Line, eps Eps) Polygon {
	dir := l.Vec()
	var kept []Point
	for i := range pg.Points {
		v, w := pg.Vertex(i), pg.Vertex(i+1)
		if eps.Sign(dir.Cross(v.Sub(l.P1))) >= 0 {
			kept = append(kept, v)
		}
		sv := eps.Sign(v.Sub(l.P1).Cross(dir))
		sw := eps.Sign(w.Sub(l.P1).Cross(dir))
		if sv*sw < 0 {
			cp, err := Line{P1: v, P2: w}.CrossPoint(l, eps)
			if err == nil {
				kept = append(kept, cp)
			}
		}
	}
	return ConvexHull(kept, eps)
}

// ConvexCommon returns the intersection of two convex polygons: the
// hull of every vertex of one polygon lying in or on the other, plus
// every pairwise edge crossing point. O(n*m) in the edge counts. Inputs
// are normalized through their own hulls first, so winding order does
// not matter. Disjoint polygons come back empty.
func (pg Polygon) ConvexCommon(other Polygon, eps Eps) Polygon {
	a := pg.ConvexHull(eps)
	b := other.ConvexHull(eps)

	var pts []Point
	for _, p := range a.Points {
		if b.Contains(p, eps) != Outside {
			pts = append(pts, p)
		}
	}
	for _, p := range b.Points {
		if a.Contains(p, eps) != Outside {
			pts = append(pts, p)
		}
	}
	for i := range a.Points {
		for j := range b.Points {
			// Collinear overlapping edges have no unique crossing, but
			// their shared endpoints are vertices caught above.
			if cp, err := a.Edge(i).CrossPoint(b.Edge(j), eps); err == nil {
				pts = append(pts, cp)
			}
		}
	}
	return ConvexHull(pts, eps)
}

// CommonAreaWithCircle computes the area of the intersection of the
// polygon and a circle. Each boundary edge contributes either a triangle
// (both endpoints within the circle) or a circular-arc sector, after the
// edge list is refined with the circle crossing points.
func (pg Polygon) CommonAreaWithCircle(c Circle, eps Eps) float64 {
	var refined []Point
	for i := range pg.Points {
		edge := pg.Edge(i)
		refined = append(refined, edge.P1)
		for _, p := range c.CrossPointsWithLine(edge.Line(), eps) {
			if edge.ContainsPoint(p, eps) && !p.Eq(edge.P1, eps) && !p.Eq(edge.P2, eps) {
				refined = append(refined, p)
			}
		}
	}

	var area float64
	n := len(refined)
	for i, p1 := range refined {
		p2 := refined[CircularIndex(i+1, n)]
		a := p1.Sub(c.Center)
		b := p2.Sub(c.Center)
		if c.Contains(p1, eps) == Outside || c.Contains(p2, eps) == Outside {
			theta := math.Atan2(a.Cross(b), a.Dot(b))
			area += c.Radius * c.Radius * theta / 2
		} else {
			area += a.Cross(b) / 2
		}
	}
	return math.Abs(area)
}

package geom

import "math"

// Circle is a center and a non-negative radius. A zero radius
// degenerates every intersection to the center point; the operations
// below tolerate it but the usual contract assumes radius > 0.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle validates that the radius is not negative.
func NewCircle(center Point, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, ErrDegenerate
	}
	return Circle{Center: center, Radius: radius}, nil
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Contains classifies p against the disk boundary.
func (c Circle) Contains(p Point, eps Eps) Containment {
	d := c.Center.Dist(p)
	switch {
	case eps.Eq(d, c.Radius):
		return OnBoundary
	case d < c.Radius:
		return Inside
	default:
		return Outside
	}
}

// CircleRelation classifies the relative position of two circles. The
// values are ordered by decreasing separation, so the common tangent
// count is 4 minus the value.
type CircleRelation int

const (
	CirclesApart         CircleRelation = iota // disjoint, one outside the other
	CirclesCircumscribed                       // externally tangent
	CirclesIntersect                           // two crossing points
	CirclesInscribed                           // internally tangent
	CirclesContained                           // one strictly inside the other
)

// CommonTangents is the number of common tangent lines, the encoding
// judges ask for.
func (r CircleRelation) CommonTangents() int {
	return 4 - int(r)
}

// Relation classifies two circles by comparing the center distance with
// the sum and difference of the radii. Tangency wins ties within eps.
// Coincident equal circles are degenerate and report CirclesInscribed.
func (c Circle) Relation(o Circle, eps Eps) CircleRelation {
	d := c.Center.Dist(o.Center)
	switch {
	case eps.Eq(d, c.Radius+o.Radius):
		return CirclesCircumscribed
	case eps.Eq(d, math.Abs(c.Radius-o.Radius)):
		return CirclesInscribed
	case eps.Less(c.Radius+o.Radius, d):
		return CirclesApart
	case eps.Less(d, math.Abs(c.Radius-o.Radius)):
		return CirclesContained
	default:
		return CirclesIntersect
	}
}

// CrossPointsWithLine returns the 0, 1 or 2 intersection points of the
// circle and an infinite line, via the projection of the center and the
// half-chord length. A perpendicular distance within eps of the radius
// counts as tangent. Two points come back ordered along the line
// direction.
func (c Circle) CrossPointsWithLine(l Line, eps Eps) []Point {
	dist := l.DistToPoint(c.Center)
	if eps.Sign(dist-c.Radius) > 0 {
		return nil
	}
	proj := l.Project(c.Center)
	if eps.Eq(dist, c.Radius) {
		return []Point{proj}
	}
	half := math.Sqrt(c.Radius*c.Radius - dist*dist)
	unit := l.Vec().Unit(eps)
	return []Point{proj.Sub(unit.Mul(half)), proj.Add(unit.Mul(half))}
}

// CrossPointsWithCircle returns the 0, 1 or 2 intersection points of two
// circles. Tangent circles yield the single tangency point; otherwise
// the points come from the triangle built from the two radii and the
// center distance.
func (c Circle) CrossPointsWithCircle(o Circle, eps Eps) []Point {
	unit := o.Center.Sub(c.Center).Unit(eps)
	switch c.Relation(o, eps) {
	case CirclesInscribed:
		if c.Radius > o.Radius {
			return []Point{c.Center.Add(unit.Mul(c.Radius))}
		}
		return []Point{o.Center.Sub(unit.Mul(o.Radius))}
	case CirclesCircumscribed:
		return []Point{c.Center.Add(unit.Mul(c.Radius))}
	case CirclesIntersect:
		d := c.Center.Dist(o.Center)
		cosine := (c.Radius*c.Radius - o.Radius*o.Radius + d*d) / (2 * d)
		h := math.Sqrt(c.Radius*c.Radius - cosine*cosine)
		foot := c.Center.Add(unit.Mul(cosine))
		normal := unit.Rotate(math.Pi / 2).Mul(h)
		return []Point{foot.Add(normal), foot.Sub(normal)}
	default:
		return nil
	}
}

// TangentPoints returns the tangency points of the tangent lines through
// p: two for an exterior point (via the right triangle formed by the
// center distance, the radius and the Pythagorean tangent length), the
// point itself when it lies on the circle, and ErrNoTangent for a point
// strictly inside.
func (c Circle) TangentPoints(p Point, eps Eps) ([]Point, error) {
	switch c.Contains(p, eps) {
	case Inside:
		return nil, ErrNoTangent
	case OnBoundary:
		return []Point{p}, nil
	}
	tangentLen := math.Sqrt(p.Sub(c.Center).Norm2() - c.Radius*c.Radius)
	return c.CrossPointsWithCircle(Circle{Center: p, Radius: tangentLen}, eps), nil
}

// CommonAreaWithCircle is the area of the lens shared by two circles:
// the two circular segments cut off by the chord through the crossing
// points, or the smaller disk when one circle contains the other.
func (c Circle) CommonAreaWithCircle(o Circle, eps Eps) float64 {
	switch c.Relation(o, eps) {
	case CirclesContained, CirclesInscribed:
		return math.Min(c.Area(), o.Area())
	case CirclesApart, CirclesCircumscribed:
		return 0
	}

	pts := c.CrossPointsWithCircle(o, eps)
	p1, p2 := pts[0], pts[1]
	theta1 := math.Atan2(p1.Sub(c.Center).Cross(o.Center.Sub(c.Center)), p1.Sub(c.Center).Dot(o.Center.Sub(c.Center)))
	theta2 := math.Atan2(p1.Sub(o.Center).Cross(c.Center.Sub(o.Center)), p1.Sub(o.Center).Dot(c.Center.Sub(o.Center)))
	arc1 := math.Abs(c.Radius * c.Radius * theta1)
	arc2 := math.Abs(o.Radius * o.Radius * theta2)
	tri1 := p1.Sub(c.Center).Cross(p2.Sub(c.Center)) / 2
	tri2 := p2.Sub(o.Center).Cross(p1.Sub(o.Center)) / 2
	return arc1 + arc2 + tri1 + tri2
}

// CommonAreaWithPolygon is the area of the intersection of the circle
// and a polygon.
func (c Circle) CommonAreaWithPolygon(pg Polygon, eps Eps) float64 {
	return pg.CommonAreaWithCircle(c, eps)
}

// Incircle is the inscribed circle of the triangle abc: the center is
// the side-length weighted average of the vertices, the radius twice the
// area over the perimeter. A collinear triple fails with ErrDegenerate.
func Incircle(a, b, c Point, eps Eps) (Circle, error) {
	if eps.Sign(b.Sub(a).Cross(c.Sub(a))) == 0 {
		return Circle{}, ErrDegenerate
	}
	la := b.Dist(c)
	lb := c.Dist(a)
	lc := a.Dist(b)
	perimeter := la + lb + lc
	center := a.Mul(la).Add(b.Mul(lb)).Add(c.Mul(lc)).Div(perimeter)
	radius := math.Abs(b.Sub(a).Cross(c.Sub(a))) / perimeter
	return Circle{Center: center, Radius: radius}, nil
}

// Circumcircle is the circle through the three vertices, found as the
// crossing point of two perpendicular bisectors. A collinear triple
// fails with ErrDegenerate.
func Circumcircle(a, b, c Point, eps Eps) (Circle, error) {
	if eps.Sign(b.Sub(a).Cross(c.Sub(a))) == 0 {
		return Circle{}, ErrDegenerate
	}
	center, err := Segment{P1: a, P2: b}.Bisector().CrossPoint(Segment{P1: b, P2: c}.Bisector(), eps)
	if err != nil {
		return Circle{}, ErrDegenerate
	}
	return Circle{Center: center, Radius: center.Dist(a)}, nil
}

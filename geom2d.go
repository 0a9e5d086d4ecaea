// Package geom2d provides small, numerically careful 2D computational
// geometry routines: orientation tests, segment and circle
// intersections, distances, polygon area and containment, convex hulls
// and rotating calipers.
//
// The routines were written for online-judge problems, so every
// tolerance-sensitive predicate takes an explicit Eps instead of
// relying on exact float comparison or a hidden global. This package
// re-exports the geom types and wraps the common entry points at
// DefaultEps; use the geom package directly to tune the tolerance.
package geom2d

import "github.com/ebiym/geom2d/geom"

type (
	Point       = geom.Point
	Segment     = geom.Segment
	Line        = geom.Line
	Polygon     = geom.Polygon
	Circle      = geom.Circle
	Eps         = geom.Eps
	Orientation = geom.Orientation
	Containment = geom.Containment
)

const DefaultEps = geom.DefaultEps

// Orient classifies p2 against the directed segment p0->p1.
func Orient(p0, p1, p2 Point) Orientation {
	return geom.Orient(p0, p1, p2, DefaultEps)
}

// ConvexHull builds the counter-clockwise convex hull of a point set.
func ConvexHull(points []Point) Polygon {
	return geom.ConvexHull(points, DefaultEps)
}

// Intersects reports whether two segments share at least one point.
func Intersects(s, t Segment) bool {
	return s.Intersects(t, DefaultEps)
}

// CrossPoint returns the unique intersection point of two segments.
func CrossPoint(s, t Segment) (Point, error) {
	return s.CrossPoint(t, DefaultEps)
}

// ClosestPair returns the minimum pairwise distance in a point set.
func ClosestPair(points []Point) (float64, error) {
	return geom.ClosestPair(points)
}

package geom

import "math"

// Point is a 2D coordinate pair, used both as a position and as a
// displacement vector. It is an immutable value type: every operation
// returns a new Point, and equality is tolerance based (see Eq).
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul scales the vector by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Div scales the vector by 1/s. Division by zero follows float64
// semantics; callers guard where it matters.
func (p Point) Div(s float64) Point {
	return Point{p.X / s, p.Y / s}
}

// Dot is the inner product p·q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is the z component of the 3D cross product, i.e. the signed
// area of the parallelogram spanned by p and q. Its sign is the turn
// direction from p to q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm is the Euclidean magnitude.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Norm2 is the squared magnitude, for comparisons that don't need the sqrt.
func (p Point) Norm2() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Dist is the distance from p to q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Norm()
}

// Unit returns the unit vector in the direction of p, or the zero
// vector when p has (near) zero magnitude.
func (p Point) Unit(eps Eps) Point {
	n := p.Norm()
	if eps.Eq(n, 0) {
		return Point{}
	}
	return p.Div(n)
}

// Rotate rotates the point by theta radians around the origin.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// RotateAround rotates the point by theta radians around origin.
func (p Point) RotateAround(theta float64, origin Point) Point {
	return origin.Add(p.Sub(origin).Rotate(theta))
}

// Eq reports coordinate-wise equality within the tolerance.
func (p Point) Eq(q Point, eps Eps) bool {
	return eps.Eq(p.X, q.X) && eps.Eq(p.Y, q.Y)
}

// Less orders points lexicographically by x, then y. This is the sort
// order the convex hull construction relies on.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

package geom

import "github.com/pkg/errors"

// Failure cases are part of the designed contract: degenerate input and
// "no unique solution" configurations are reported explicitly, never as
// an accidental exact-zero result.
var (
	// ErrNoIntersection is returned when an intersection point is
	// requested for shapes that do not intersect.
	ErrNoIntersection = errors.New("geom: no intersection")

	// ErrNoUniqueIntersection is returned when the inputs are parallel
	// (determinant within eps of zero), including the collinear-overlap
	// case; callers that care about overlap handle it by interval
	// comparison on the shared line.
	ErrNoUniqueIntersection = errors.New("geom: no unique intersection")

	// ErrNoTangent is returned when a tangent is requested from a point
	// strictly inside the circle.
	ErrNoTangent = errors.New("geom: no tangent from interior point")

	// ErrDegenerate is returned for inputs that violate a documented
	// precondition, e.g. a collinear triple where a proper triangle is
	// required, or fewer points than an operation needs.
	ErrDegenerate = errors.New("geom: degenerate input")
)

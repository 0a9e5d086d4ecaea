package geom

// Orientation classifies a point against a directed segment. The integer
// values follow the usual judge encoding, and they are chosen so that the
// product of two orientations decides segment intersection: two segments
// cross iff for each segment the product of the orientations of the other
// segment's endpoints is <= 0.
type Orientation int

const (
	CounterClockwise Orientation = 1  // left of the directed line
	Clockwise        Orientation = -1 // right of the directed line
	OnlineBack       Orientation = 2  // collinear, behind p0
	OnlineFront      Orientation = -2 // collinear, beyond p1
	OnSegment        Orientation = 0  // collinear, between p0 and p1 inclusive
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "COUNTER_CLOCKWISE"
	case Clockwise:
		return "CLOCKWISE"
	case OnlineBack:
		return "ONLINE_BACK"
	case OnlineFront:
		return "ONLINE_FRONT"
	case OnSegment:
		return "ON_SEGMENT"
	}
	return "UNKNOWN"
}

// Orient classifies p2 relative to the directed segment p0->p1. The cross
// product decides the turn direction; for collinear triples the dot
// product and magnitudes split the three sub-cases. All comparisons go
// through eps, so this single tie-break policy is shared by intersection,
// hull and containment code built on top of it.
func Orient(p0, p1, p2 Point, eps Eps) Orientation {
	a := p1.Sub(p0)
	b := p2.Sub(p0)
	switch {
	case eps.Sign(a.Cross(b)) > 0:
		return CounterClockwise
	case eps.Sign(a.Cross(b)) < 0:
		return Clockwise
	case eps.Sign(a.Dot(b)) < 0:
		return OnlineBack
	case eps.Less(a.Norm(), b.Norm()):
		return OnlineFront
	default:
		return OnSegment
	}
}

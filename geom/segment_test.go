package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentIntersects(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(3, 0)}

	cases := []struct {
		name string
		o    Segment
		want bool
	}{
		{"proper crossing", Segment{Pt(1, 1), Pt(2, -1)}, true},
		{"touching at an endpoint", Segment{Pt(3, 1), Pt(3, -1)}, true},
		{"near miss", Segment{Pt(3, -2), Pt(5, 0)}, false},
		{"collinear overlap", Segment{Pt(1, 0), Pt(2, 0)}, true},
		{"collinear spanning", Segment{Pt(-1, 0), Pt(4, 0)}, true},
		{"collinear disjoint", Segment{Pt(4, 0), Pt(5, 0)}, false},
		{"parallel above", Segment{Pt(0, 1), Pt(3, 1)}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, s.Intersects(c.o, DefaultEps))
			assert.Equal(t, c.want, c.o.Intersects(s, DefaultEps))
		})
	}
}

func TestSegmentIntersectsZeroLength(t *testing.T) {
	dot := Segment{Pt(1, 0), Pt(1, 0)}
	s := Segment{Pt(0, 0), Pt(3, 0)}
	assert.True(t, dot.Intersects(s, DefaultEps))
	assert.True(t, s.Intersects(dot, DefaultEps))
	off := Segment{Pt(1, 1), Pt(1, 1)}
	assert.False(t, off.Intersects(s, DefaultEps))
}

func TestSegmentIntersectsLine(t *testing.T) {
	s := Segment{Pt(1, -1), Pt(1, 1)}
	assert.True(t, s.IntersectsLine(Line{Pt(0, 0), Pt(2, 0)}, DefaultEps))
	// Touching with an endpoint counts.
	assert.True(t, s.IntersectsLine(Line{Pt(0, 1), Pt(2, 1)}, DefaultEps))
	assert.False(t, s.IntersectsLine(Line{Pt(0, 2), Pt(2, 2)}, DefaultEps))
}

func TestSegmentCrossPoint(t *testing.T) {
	cases := []struct {
		s, o Segment
		want Point
	}{
		{Segment{Pt(0, 0), Pt(2, 0)}, Segment{Pt(1, 1), Pt(1, -1)}, Pt(1, 0)},
		{Segment{Pt(0, 0), Pt(1, 1)}, Segment{Pt(0, 1), Pt(1, 0)}, Pt(0.5, 0.5)},
		{Segment{Pt(0, 0), Pt(1, 1)}, Segment{Pt(1, 0), Pt(0, 1)}, Pt(0.5, 0.5)},
		{Segment{Pt(0, 0), Pt(3, 0)}, Segment{Pt(1, -1), Pt(1, 1)}, Pt(1, 0)},
	}
	for _, c := range cases {
		p, err := c.s.CrossPoint(c.o, DefaultEps)
		require.NoError(t, err)
		assert.True(t, p.Eq(c.want, 1e-9), "got %v, want %v", p, c.want)

		// The crossing point must not depend on argument order.
		q, err := c.o.CrossPoint(c.s, DefaultEps)
		require.NoError(t, err)
		assert.True(t, p.Eq(q, 1e-9))
	}
}

func TestSegmentCrossPointFailures(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(3, 0)}

	// Collinear overlap intersects but has no unique crossing point.
	_, err := s.CrossPoint(Segment{Pt(1, 0), Pt(2, 0)}, DefaultEps)
	assert.ErrorIs(t, err, ErrNoUniqueIntersection)

	// Parallel but apart.
	_, err = s.CrossPoint(Segment{Pt(0, 1), Pt(3, 1)}, DefaultEps)
	assert.ErrorIs(t, err, ErrNoUniqueIntersection)

	// Not parallel, but the segments stop short of each other.
	_, err = s.CrossPoint(Segment{Pt(4, -1), Pt(4, 1)}, DefaultEps)
	assert.ErrorIs(t, err, ErrNoIntersection)
}

func TestSegmentIntersectsSymmetryRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	coord := func() float64 { return float64(rng.Intn(21) - 10) }
	for i := 0; i < 500; i++ {
		s := Segment{Pt(coord(), coord()), Pt(coord(), coord())}
		o := Segment{Pt(coord(), coord()), Pt(coord(), coord())}
		require.Equal(t, s.Intersects(o, DefaultEps), o.Intersects(s, DefaultEps),
			"asymmetric intersection for %v and %v", s, o)
	}
}

func TestSegmentDistToPoint(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(2, 0)}

	// Zero exactly when the point is on the segment.
	assert.InDelta(t, 0, s.DistToPoint(Pt(0, 0), DefaultEps), testDelta)
	assert.InDelta(t, 0, s.DistToPoint(Pt(1, 0), DefaultEps), testDelta)
	assert.Greater(t, s.DistToPoint(Pt(3, 0), DefaultEps), 0.5)

	// Projection inside the segment: perpendicular distance.
	assert.InDelta(t, 2, s.DistToPoint(Pt(1, 2), DefaultEps), testDelta)
	// Projection outside: nearest endpoint.
	assert.InDelta(t, math.Sqrt2, s.DistToPoint(Pt(3, 1), DefaultEps), testDelta)
	assert.InDelta(t, math.Sqrt2, s.DistToPoint(Pt(-1, -1), DefaultEps), testDelta)
}

func TestSegmentDistToSegment(t *testing.T) {
	cases := []struct {
		s, o Segment
		want float64
	}{
		{Segment{Pt(0, 0), Pt(1, 0)}, Segment{Pt(0, 1), Pt(1, 1)}, 1},
		{Segment{Pt(0, 0), Pt(1, 0)}, Segment{Pt(2, 1), Pt(1, 2)}, math.Sqrt2},
		{Segment{Pt(-1, 0), Pt(1, 0)}, Segment{Pt(0, 1), Pt(0, -1)}, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, c.s.DistToSegment(c.o, DefaultEps), testDelta)
		assert.InDelta(t, c.want, c.o.DistToSegment(c.s, DefaultEps), testDelta)
	}
}

func TestSegmentBisector(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(2, 0)}
	b := s.Bisector()
	// The bisector is the vertical line x=1.
	assert.True(t, b.ContainsPoint(Pt(1, 0), DefaultEps))
	assert.True(t, b.ContainsPoint(Pt(1, 7), DefaultEps))
	assert.True(t, b.IsOrthogonal(s.Line(), DefaultEps))
}

func TestSegmentContainsPoint(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(4, 2)}
	assert.True(t, s.ContainsPoint(Pt(0, 0), DefaultEps))
	assert.True(t, s.ContainsPoint(Pt(4, 2), DefaultEps))
	assert.True(t, s.ContainsPoint(Pt(2, 1), DefaultEps))
	assert.False(t, s.ContainsPoint(Pt(6, 3), DefaultEps)) // on the line, past the end
	assert.False(t, s.ContainsPoint(Pt(2, 2), DefaultEps))
}

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	_, err := NewLine(Pt(1, 1), Pt(1, 1), DefaultEps)
	assert.ErrorIs(t, err, ErrDegenerate)

	l, err := NewLine(Pt(0, 0), Pt(1, 0), DefaultEps)
	require.NoError(t, err)
	assert.Equal(t, Pt(1, 0), l.Vec())
}

func TestLineSlope(t *testing.T) {
	assert.InDelta(t, 0.5, Line{Pt(0, 0), Pt(2, 1)}.Slope(DefaultEps), testDelta)
	assert.True(t, math.IsInf(Line{Pt(3, 0), Pt(3, 5)}.Slope(DefaultEps), 1))
}

func TestLineProject(t *testing.T) {
	l1 := Line{Pt(0, 0), Pt(3, 4)}
	assert.True(t, l1.Project(Pt(2, 5)).Eq(Pt(3.12, 4.16), 1e-9))

	l2 := Line{Pt(0, 0), Pt(2, 0)}
	assert.True(t, l2.Project(Pt(-1, 1)).Eq(Pt(-1, 0), 1e-9))
	assert.True(t, l2.Project(Pt(0, 1)).Eq(Pt(0, 0), 1e-9))
	assert.True(t, l2.Project(Pt(1, 1)).Eq(Pt(1, 0), 1e-9))
}

func TestLineReflect(t *testing.T) {
	l1 := Line{Pt(0, 0), Pt(3, 4)}
	assert.True(t, l1.Reflect(Pt(2, 5)).Eq(Pt(4.24, 3.32), 1e-9))
	assert.True(t, l1.Reflect(Pt(1, 4)).Eq(Pt(3.56, 2.08), 1e-9))
	assert.True(t, l1.Reflect(Pt(0, 3)).Eq(Pt(2.88, 0.84), 1e-9))

	l2 := Line{Pt(0, 0), Pt(2, 0)}
	assert.True(t, l2.Reflect(Pt(-1, 1)).Eq(Pt(-1, -1), 1e-9))
	assert.True(t, l2.Reflect(Pt(0, 1)).Eq(Pt(0, -1), 1e-9))
	assert.True(t, l2.Reflect(Pt(1, 1)).Eq(Pt(1, -1), 1e-9))
}

func TestLineParallelOrthogonal(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 0)}
	assert.True(t, l.IsParallel(Line{Pt(0, 2), Pt(3, 2)}, DefaultEps))
	assert.True(t, l.IsOrthogonal(Line{Pt(1, 1), Pt(1, 4)}, DefaultEps))
	assert.False(t, l.IsParallel(Line{Pt(1, 1), Pt(2, 2)}, DefaultEps))
	assert.False(t, l.IsOrthogonal(Line{Pt(1, 1), Pt(2, 2)}, DefaultEps))
}

func TestLineContainsPoint(t *testing.T) {
	l := Line{Pt(0, 0), Pt(1, 1)}
	assert.True(t, l.ContainsPoint(Pt(5, 5), DefaultEps))
	assert.True(t, l.ContainsPoint(Pt(-3, -3), DefaultEps))
	assert.False(t, l.ContainsPoint(Pt(1, 2), DefaultEps))
}

func TestLineCrossPoint(t *testing.T) {
	l := Line{Pt(0, 0), Pt(2, 0)}
	m := Line{Pt(1, 1), Pt(1, -1)}
	p, err := l.CrossPoint(m, DefaultEps)
	require.NoError(t, err)
	assert.True(t, p.Eq(Pt(1, 0), 1e-9))

	// Parallel lines have no unique crossing, collinear ones included.
	_, err = l.CrossPoint(Line{Pt(0, 1), Pt(2, 1)}, DefaultEps)
	assert.ErrorIs(t, err, ErrNoUniqueIntersection)
	_, err = l.CrossPoint(Line{Pt(5, 0), Pt(9, 0)}, DefaultEps)
	assert.ErrorIs(t, err, ErrNoUniqueIntersection)
}

func TestLineIntersects(t *testing.T) {
	l := Line{Pt(0, 0), Pt(2, 0)}
	// Non-parallel lines always meet somewhere.
	assert.True(t, l.Intersects(Line{Pt(5, 1), Pt(5, -1)}, DefaultEps))
	// Parallel lines only when collinear.
	assert.True(t, l.Intersects(Line{Pt(5, 0), Pt(9, 0)}, DefaultEps))
	assert.False(t, l.Intersects(Line{Pt(0, 1), Pt(2, 1)}, DefaultEps))
}

func TestLineDistToPoint(t *testing.T) {
	l := Line{Pt(0, 0), Pt(2, 0)}
	assert.InDelta(t, 3, l.DistToPoint(Pt(1, 3)), testDelta)
	// Distance to the infinite line ignores the defining points.
	assert.InDelta(t, 1, l.DistToPoint(Pt(100, 1)), testDelta)
	assert.InDelta(t, 0, l.DistToPoint(Pt(-50, 0)), testDelta)
}

func TestLineIntersectsSegment(t *testing.T) {
	l := Line{Pt(0, 0), Pt(1, 0)}
	assert.True(t, l.IntersectsSegment(Segment{Pt(2, -1), Pt(2, 1)}, DefaultEps))
	assert.True(t, l.IntersectsSegment(Segment{Pt(3, 0), Pt(4, 5)}, DefaultEps))
	assert.False(t, l.IntersectsSegment(Segment{Pt(0, 1), Pt(5, 2)}, DefaultEps))
}

package judge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ebiym/geom2d/geom"
	"github.com/pkg/errors"
)

// Threading parse errors through every solver would bury the geometry
// in plumbing. Solvers panic through fatalf instead, and solve recovers
// at the boundary, converting back to an error. Panics of any other
// type keep propagating.

type solveError error

func fatalf(format string, args ...interface{}) {
	panic(solveError(errors.Errorf(format, args...)))
}

func recoverSolve(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(solveError); ok {
		return err
	}
	panic(r)
}

// tokens walks the whitespace-separated fields of a sample input.
type tokens struct {
	fields []string
	pos    int
}

func newTokens(input string) *tokens {
	return &tokens{fields: strings.Fields(input)}
}

func (t *tokens) next() string {
	if t.pos >= len(t.fields) {
		fatalf("input underrun at token %d", t.pos)
	}
	s := t.fields[t.pos]
	t.pos++
	return s
}

func (t *tokens) float() float64 {
	s := t.next()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("bad float %q", s)
	}
	return v
}

func (t *tokens) int() int {
	s := t.next()
	v, err := strconv.Atoi(s)
	if err != nil {
		fatalf("bad int %q", s)
	}
	return v
}

func (t *tokens) point() geom.Point {
	x := t.float()
	return geom.Pt(x, t.float())
}

func (t *tokens) segment() geom.Segment {
	p1 := t.point()
	return geom.Segment{P1: p1, P2: t.point()}
}

func (t *tokens) line() geom.Line {
	p1 := t.point()
	return geom.Line{P1: p1, P2: t.point()}
}

func (t *tokens) circle() geom.Circle {
	center := t.point()
	return geom.Circle{Center: center, Radius: t.float()}
}

func (t *tokens) polygon(n int, eps geom.Eps) geom.Polygon {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = t.point()
	}
	return geom.NewPolygon(pts, eps)
}

// output accumulates answer lines.
type output struct {
	lines  []string
	digits int
}

func (o *output) line(s string)            { o.lines = append(o.lines, s) }
func (o *output) float(v float64)          { o.line(FormatFloat(v, o.digits)) }
func (o *output) int(v int)                { o.line(FormatInt(v)) }
func (o *output) point(p geom.Point)       { o.line(FormatPoint(p, o.digits)) }
func (o *output) points(ps ...geom.Point) {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = FormatPoint(p, o.digits)
	}
	o.line(strings.Join(parts, " "))
}

type solverFunc func(in *tokens, out *output, eps geom.Eps)

func solve(s solverFunc, input string, digits int, eps geom.Eps) (got string, err error) {
	defer func() {
		if rerr := recoverSolve(recover()); rerr != nil {
			got = ""
			err = rerr
		}
	}()
	in := newTokens(input)
	out := &output{digits: digits}
	s(in, out, eps)
	return strings.Join(out.lines, "\n"), nil
}

func sortPointsXY(pts []geom.Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
}

// pairLine prints one or two points on a single line, duplicating a
// lone tangency point the way the judge asks for.
func pairLine(out *output, pts []geom.Point) {
	switch len(pts) {
	case 1:
		out.points(pts[0], pts[0])
	case 2:
		sortPointsXY(pts)
		out.points(pts[0], pts[1])
	default:
		fatalf("expected 1 or 2 points, got %d", len(pts))
	}
}

var solvers = map[string]solverFunc{
	// Projection of each query point onto a line.
	"CGL_1_A": func(in *tokens, out *output, eps geom.Eps) {
		l := in.line()
		for q := in.int(); q > 0; q-- {
			out.point(l.Project(in.point()))
		}
	},

	// Reflection of each query point across a line.
	"CGL_1_B": func(in *tokens, out *output, eps geom.Eps) {
		l := in.line()
		for q := in.int(); q > 0; q-- {
			out.point(l.Reflect(in.point()))
		}
	},

	// Five-way orientation of each query point against a segment.
	"CGL_1_C": func(in *tokens, out *output, eps geom.Eps) {
		p0 := in.point()
		p1 := in.point()
		for q := in.int(); q > 0; q-- {
			out.line(geom.Orient(p0, p1, in.point(), eps).String())
		}
	},

	// 2: parallel, 1: orthogonal, 0: neither.
	"CGL_2_A": func(in *tokens, out *output, eps geom.Eps) {
		for q := in.int(); q > 0; q-- {
			l := in.line()
			m := in.line()
			switch {
			case l.IsParallel(m, eps):
				out.int(2)
			case l.IsOrthogonal(m, eps):
				out.int(1)
			default:
				out.int(0)
			}
		}
	},

	// 1 if the segments intersect, else 0.
	"CGL_2_B": func(in *tokens, out *output, eps geom.Eps) {
		for q := in.int(); q > 0; q-- {
			s := in.segment()
			t := in.segment()
			if s.Intersects(t, eps) {
				out.int(1)
			} else {
				out.int(0)
			}
		}
	},

	// Cross point of two segments (guaranteed unique by the problem).
	"CGL_2_C": func(in *tokens, out *output, eps geom.Eps) {
		for q := in.int(); q > 0; q-- {
			s := in.segment()
			t := in.segment()
			p, err := s.CrossPoint(t, eps)
			if err != nil {
				fatalf("cross point: %v", err)
			}
			out.point(p)
		}
	},

	// Minimum distance between two segments.
	"CGL_2_D": func(in *tokens, out *output, eps geom.Eps) {
		for q := in.int(); q > 0; q-- {
			s := in.segment()
			t := in.segment()
			out.float(s.DistToSegment(t, eps))
		}
	},

	// Polygon area.
	"CGL_3_A": func(in *tokens, out *output, eps geom.Eps) {
		pg := in.polygon(in.int(), eps)
		out.float(pg.Area())
	},

	// 1 if the polygon is convex, else 0.
	"CGL_3_B": func(in *tokens, out *output, eps geom.Eps) {
		pg := in.polygon(in.int(), eps)
		if pg.IsConvex(eps) {
			out.int(1)
		} else {
			out.int(0)
		}
	},

	// 2: inside, 1: on an edge, 0: outside.
	"CGL_3_C": func(in *tokens, out *output, eps geom.Eps) {
		pg := in.polygon(in.int(), eps)
		for q := in.int(); q > 0; q-- {
			switch pg.Contains(in.point(), eps) {
			case geom.Inside:
				out.int(2)
			case geom.OnBoundary:
				out.int(1)
			default:
				out.int(0)
			}
		}
	},

	// Convex hull: vertex count, then the vertices counter-clockwise
	// starting from the lowest (then leftmost) one.
	"CGL_4_A": func(in *tokens, out *output, eps geom.Eps) {
		n := in.int()
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = in.point()
		}
		hull := geom.ConvexHull(pts, eps)
		start := 0
		for i, p := range hull.Points {
			s := hull.Points[start]
			if p.Y < s.Y || (p.Y == s.Y && p.X < s.X) {
				start = i
			}
		}
		out.int(len(hull.Points))
		for i := range hull.Points {
			out.point(hull.Vertex(start + i))
		}
	},

	// Diameter of a convex polygon.
	"CGL_4_B": func(in *tokens, out *output, eps geom.Eps) {
		pg := in.polygon(in.int(), eps)
		out.float(pg.Diameter(eps))
	},

	// Area of the counter-clockwise side after cutting with each line.
	"CGL_4_C": func(in *tokens, out *output, eps geom.Eps) {
		pg := in.polygon(in.int(), eps)
		for q := in.int(); q > 0; q-- {
			out.float(pg.ConvexCut(in.line(), eps).Area())
		}
	},

	// Closest pair of points.
	"CGL_5_A": func(in *tokens, out *output, eps geom.Eps) {
		n := in.int()
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = in.point()
		}
		d, err := geom.ClosestPair(pts)
		if err != nil {
			fatalf("closest pair: %v", err)
		}
		out.float(d)
	},

	// Number of common tangent lines of two circles.
	"CGL_7_A": func(in *tokens, out *output, eps geom.Eps) {
		c1 := in.circle()
		c2 := in.circle()
		out.int(c1.Relation(c2, eps).CommonTangents())
	},

	// Incircle of a triangle: center and radius.
	"CGL_7_B": func(in *tokens, out *output, eps geom.Eps) {
		a, b, c := in.point(), in.point(), in.point()
		circle, err := geom.Incircle(a, b, c, eps)
		if err != nil {
			fatalf("incircle: %v", err)
		}
		out.line(FormatPoint(circle.Center, out.digits) + " " + FormatFloat(circle.Radius, out.digits))
	},

	// Circumcircle of a triangle: center and radius.
	"CGL_7_C": func(in *tokens, out *output, eps geom.Eps) {
		a, b, c := in.point(), in.point(), in.point()
		circle, err := geom.Circumcircle(a, b, c, eps)
		if err != nil {
			fatalf("circumcircle: %v", err)
		}
		out.line(FormatPoint(circle.Center, out.digits) + " " + FormatFloat(circle.Radius, out.digits))
	},

	// Cross points of a circle and each query line, smaller (x, y)
	// first, a tangency point printed twice.
	"CGL_7_D": func(in *tokens, out *output, eps geom.Eps) {
		c := in.circle()
		for q := in.int(); q > 0; q-- {
			pairLine(out, c.CrossPointsWithLine(in.line(), eps))
		}
	},

	// Cross points of two circles (guaranteed at least one).
	"CGL_7_E": func(in *tokens, out *output, eps geom.Eps) {
		c1 := in.circle()
		c2 := in.circle()
		pairLine(out, c1.CrossPointsWithCircle(c2, eps))
	},

	// Tangency points of the tangent lines from a point to a circle.
	"CGL_7_F": func(in *tokens, out *output, eps geom.Eps) {
		p := in.point()
		c := in.circle()
		pts, err := c.TangentPoints(p, eps)
		if err != nil {
			fatalf("tangent points: %v", err)
		}
		sortPointsXY(pts)
		for _, q := range pts {
			out.point(q)
		}
	},

	// Area shared by a polygon and a circle centered at the origin.
	"CGL_7_H": func(in *tokens, out *output, eps geom.Eps) {
		n := in.int()
		r := in.float()
		pg := in.polygon(n, eps)
		c := geom.Circle{Center: geom.Pt(0, 0), Radius: r}
		out.float(pg.CommonAreaWithCircle(c, eps))
	},

	// Area shared by two circles.
	"CGL_7_I": func(in *tokens, out *output, eps geom.Eps) {
		c1 := in.circle()
		c2 := in.circle()
		out.float(c1.CommonAreaWithCircle(c2, eps))
	},
}

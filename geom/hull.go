package geom

import "sort"

// ConvexHull builds the convex hull of a point set with Andrew's
// monotone chain: sort by (x, y), then grow a lower and an upper chain,
// popping the chain tail while the last three points turn clockwise.
// Collinear boundary points are kept. The result winds counter-clockwise
// and starts at the lexicographically smallest point. Sets of fewer than
// three distinct points come back as-is (sorted), a documented
// degenerate case.
func ConvexHull(points []Point, eps Eps) Polygon {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	// Exact duplicates would show up as spurious collinear hull points.
	uniq := pts[:0]
	for _, p := range pts {
		if len(uniq) == 0 || !uniq[len(uniq)-1].Eq(p, eps) {
			uniq = append(uniq, p)
		}
	}
	pts = uniq

	if len(pts) < 3 {
		return Polygon{Points: pts}
	}

	// An all-collinear set has no proper hull: the two chains would be
	// the same run walked both ways, duplicating every interior point
	// at the concatenation. Return the single sorted chain instead.
	collinear := true
	dir := pts[len(pts)-1].Sub(pts[0])
	for _, p := range pts[1 : len(pts)-1] {
		if eps.Sign(dir.Cross(p.Sub(pts[0]))) != 0 {
			collinear = false
			break
		}
	}
	if collinear {
		return Polygon{Points: pts}
	}

	chain := func(src []Point) []Point {
		var h []Point
		for _, p := range src {
			for len(h) >= 2 && Orient(h[len(h)-2], h[len(h)-1], p, eps) == Clockwise {
				h = h[:len(h)-1]
			}
			h = append(h, p)
		}
		return h
	}

	lower := chain(pts)
	rev := make([]Point, len(pts))
	for i, p := range pts {
		rev[len(rev)-1-i] = p
	}
	upper := chain(rev)

	// Each chain ends where the other begins; drop the duplicates.
	hull := append(lower, upper[1:len(upper)-1]...)
	return Polygon{Points: hull}
}

// ConvexHull builds the hull of the polygon's own vertices.
func (pg Polygon) ConvexHull(eps Eps) Polygon {
	return ConvexHull(pg.Points, eps)
}

// Diameter is the farthest vertex pair distance, found by rotating
// calipers over the convex hull: two antipodal pointers advance around
// the hull, the cross product of the current edge directions deciding
// which one moves, so the scan is linear after the hull construction.
func (pg Polygon) Diameter(eps Eps) float64 {
	ch := pg.ConvexHull(eps)
	n := len(ch.Points)
	if n < 2 {
		return 0
	}
	if n == 2 {
		return ch.Points[0].Dist(ch.Points[1])
	}

	// A zero-area hull means every point is collinear. The calipers
	// below would spin: no cross product is ever negative, so i could
	// never advance to meet its exit condition. The farthest pair of a
	// collinear set is its lexicographic extremes.
	if eps.Sign(ch.SignedArea()) == 0 {
		lo, hi := ch.Points[0], ch.Points[0]
		for _, p := range ch.Points[1:] {
			if p.Less(lo) {
				lo = p
			}
			if hi.Less(p) {
				hi = p
			}
		}
		return lo.Dist(hi)
	}

	var i, j int
	for k, p := range ch.Points {
		if p.X < ch.Points[i].X {
			i = k
		}
		if p.X > ch.Points[j].X {
			j = k
		}
	}

	var res float64
	si, sj := i, j
	for i != sj || j != si {
		if d := ch.Points[i].Dist(ch.Points[j]); d > res {
			res = d
		}
		vi := ch.Vertex(i + 1).Sub(ch.Points[i])
		vj := ch.Vertex(j + 1).Sub(ch.Points[j])
		if eps.Sign(vi.Cross(vj)) < 0 {
			i = CircularIndex(i+1, n)
		} else {
			j = CircularIndex(j+1, n)
		}
	}
	return res
}

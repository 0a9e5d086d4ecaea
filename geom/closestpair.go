package geom

import (
	"math"
	"sort"
)

// ClosestPair returns the minimum pairwise distance in a point set by
// divide and conquer: split on the median x, recurse, then scan the
// strip around the split line in y order, where each point has at most a
// constant number of candidates. Fewer than two points is degenerate.
func ClosestPair(points []Point) (float64, error) {
	if len(points) < 2 {
		return 0, ErrDegenerate
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return closestRec(pts), nil
}

func closestRec(pts []Point) float64 {
	n := len(pts)
	if n <= 3 {
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d := pts[i].Dist(pts[j]); d < best {
					best = d
				}
			}
		}
		return best
	}

	mid := n / 2
	splitX := pts[mid].X
	best := math.Min(closestRec(pts[:mid]), closestRec(pts[mid:]))

	var strip []Point
	for _, p := range pts {
		if math.Abs(p.X-splitX) < best {
			strip = append(strip, p)
		}
	}
	sort.Slice(strip, func(i, j int) bool { return strip[i].Y < strip[j].Y })
	for i := range strip {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best; j++ {
			if d := strip[i].Dist(strip[j]); d < best {
				best = d
			}
		}
	}
	return best
}

package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/ebiym/geom2d/dbg"
	"github.com/ebiym/geom2d/draw"
	"github.com/ebiym/geom2d/geom"
)

// Computes the convex hull of each point set read from stdin and prints
// the hull vertices. Input is newline separated points in the form
// "x y", with each point set separated by an extra newline. With --png
// or --cat, the sets and their hulls are rendered too.
var (
	pngFlag = kingpin.Flag("png", "write a rendering of the sets and hulls to this path").
		String()
	catFlag = kingpin.Flag("cat", "print the rendering inline (iTerm2)").
		Bool()
	epsFlag = kingpin.Flag("eps", "comparison tolerance for geometric predicates").
		Default("1e-10").Float64()
)

func main() {
	kingpin.Parse()
	eps := geom.Eps(*epsFlag)

	sets := readPointSets(os.Stdin)
	fmt.Printf("Read %d point sets\n", len(sets))

	hulls := make([]geom.Polygon, len(sets))
	for i, set := range sets {
		hulls[i] = geom.ConvexHull(set, eps)
		fmt.Printf("%s: %d points, hull of %d vertices, area %g\n",
			dbg.Name(i), len(set), len(hulls[i].Points), hulls[i].Area())
		for _, p := range hulls[i].Points {
			fmt.Printf("  %g %g\n", p.X, p.Y)
		}
	}

	if *pngFlag == "" && !*catFlag {
		return
	}
	path := *pngFlag
	if path == "" {
		path = "/tmp/hulldraw.png"
	}
	if err := render(sets, hulls, path, *catFlag); err != nil {
		log.Fatalf("rendering: %v", err)
	}
}

func render(sets [][]geom.Point, hulls []geom.Polygon, path string, cat bool) error {
	bottom, top := window(sets)
	c := draw.New(draw.Options{Bottom: bottom, Top: top, Axis: true})
	for i, hull := range hulls {
		c.FillPolygon(hull)
		for _, p := range sets[i] {
			c.Point(p)
		}
		if len(hull.Points) > 0 {
			c.Label(hull.Points[0], dbg.Name(i))
		}
	}
	if cat {
		return c.Cat(path, os.Stdout)
	}
	return c.SavePNG(path)
}

// window picks a square world window covering every point, with a
// margin so nothing touches the border.
func window(sets [][]geom.Point) (bottom, top float64) {
	bottom = math.Inf(1)
	top = math.Inf(-1)
	for _, set := range sets {
		for _, p := range set {
			bottom = math.Min(bottom, math.Min(p.X, p.Y))
			top = math.Max(top, math.Max(p.X, p.Y))
		}
	}
	if bottom > top {
		return 0, 500
	}
	margin := (top - bottom) * 0.05
	if margin == 0 {
		margin = 1
	}
	return bottom - margin, top + margin
}

func readPointSets(in *os.File) [][]geom.Point {
	sets := [][]geom.Point{}
	scanner := bufio.NewScanner(in)
	points := []geom.Point{}
	for scanner.Scan() {
		line := scanner.Text()

		// A blank line ends the current set, if we collected anything.
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				sets = append(sets, points)
				points = []geom.Point{}
			}
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			log.Fatalf("bad input line %q: %v", line, err)
		}
		points = append(points, p)
	}

	if len(points) > 0 {
		sets = append(sets, points)
	}
	return sets
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("want two fields, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(x, y), nil
}

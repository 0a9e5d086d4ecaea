package draw

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebiym/geom2d/geom"
)

func TestCanvasSavePNG(t *testing.T) {
	c := New(Options{Bottom: -10, Top: 10, Axis: true, Grid: 5})
	c.Point(geom.Pt(1, 2))
	c.Segment(geom.Segment{P1: geom.Pt(-5, -5), P2: geom.Pt(5, 5)})
	c.Line(geom.Line{P1: geom.Pt(0, 1), P2: geom.Pt(1, 3)})
	c.Line(geom.Line{P1: geom.Pt(1, 0), P2: geom.Pt(1, 1)}) // vertical
	c.Polygon(geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, geom.DefaultEps))
	c.FillPolygon(geom.NewPolygon([]geom.Point{{X: -8, Y: -8}, {X: -4, Y: -8}, {X: -6, Y: -4}}, geom.DefaultEps))
	c.Circle(geom.Circle{Center: geom.Pt(0, 0), Radius: 7})
	c.Label(geom.Pt(1, 2), "p")

	path := filepath.Join(t.TempDir(), "canvas.png")
	require.NoError(t, c.SavePNG(path))
}

func TestCanvasConvert(t *testing.T) {
	c := New(Options{Bottom: 0, Top: 500})

	// World origin maps to the bottom-left pixel corner.
	x, y := c.convert(geom.Pt(0, 0))
	assert.Equal(t, 0.0, x)
	assert.Equal(t, float64(Size), y)

	// The window's top-right corner maps to the top-right pixel corner.
	x, y = c.convert(geom.Pt(500, 500))
	assert.Equal(t, float64(Size), x)
	assert.Equal(t, 0.0, y)
}

func TestCanvasDefaultWindow(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, 0.0, c.bottom)
	assert.Equal(t, 500.0, c.top)
}

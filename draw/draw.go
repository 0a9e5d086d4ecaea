// Package draw renders geometry onto a raster canvas. It exists for
// eyeballing results while debugging: dump a hull or a cut onto a PNG,
// or cat it straight into an iTerm2 pane.
package draw

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/ebiym/geom2d/geom"
)

// Size is the canvas edge length in pixels. Both axes share it, so the
// world window is always square.
const Size = 1000

const pointRadius = Size / 150

// Options configures a Canvas. The zero value gives a white square with
// no axes or grid.
type Options struct {
	Bottom float64 // smallest world coordinate on both axes
	Top    float64 // largest world coordinate on both axes
	Axis   bool    // highlight the x=0 and y=0 lines
	Grid   float64 // spacing of faint guide lines, 0 for none
}

// Canvas draws geometry in world coordinates onto a fixed-size image.
// Coordinates are converted by hand rather than with a context
// transform, so stroke widths stay in pixels no matter the zoom.
type Canvas struct {
	ctx         *gg.Context
	bottom, top float64
	eps         geom.Eps
}

// New creates a canvas showing the world window [opt.Bottom, opt.Top]
// on both axes. A zero window defaults to [0, 500].
func New(opt Options) *Canvas {
	if opt.Top == opt.Bottom {
		opt.Bottom, opt.Top = 0, 500
	}
	ctx := gg.NewContext(Size, Size)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	c := &Canvas{ctx: ctx, bottom: opt.Bottom, top: opt.Top, eps: geom.DefaultEps}

	if opt.Grid > 0 {
		c.grid(opt.Grid)
	}
	if opt.Axis {
		c.axis()
	}
	return c
}

// convert maps a world point to pixel coordinates, flipping y so the
// world origin sits at the bottom left.
func (c *Canvas) convert(p geom.Point) (x, y float64) {
	magn := Size / (c.top - c.bottom)
	x = (p.X - c.bottom) * magn
	y = Size - (p.Y-c.bottom)*magn
	return x, y
}

func (c *Canvas) axis() {
	c.ctx.SetRGB255(200, 200, 200)
	c.ctx.SetLineWidth(3)
	c.strokeSegment(geom.Segment{P1: geom.Pt(c.bottom, 0), P2: geom.Pt(c.top, 0)})
	c.strokeSegment(geom.Segment{P1: geom.Pt(0, c.bottom), P2: geom.Pt(0, c.top)})
}

func (c *Canvas) grid(step float64) {
	c.ctx.SetRGB255(200, 200, 200)
	c.ctx.SetLineWidth(1)
	for v := math.Ceil(c.bottom/step) * step; v <= c.top; v += step {
		c.strokeSegment(geom.Segment{P1: geom.Pt(v, c.bottom), P2: geom.Pt(v, c.top)})
		c.strokeSegment(geom.Segment{P1: geom.Pt(c.bottom, v), P2: geom.Pt(c.top, v)})
	}
}

func (c *Canvas) strokeSegment(s geom.Segment) {
	x1, y1 := c.convert(s.P1)
	x2, y2 := c.convert(s.P2)
	c.ctx.DrawLine(x1, y1, x2, y2)
	c.ctx.Stroke()
}

// Point draws a filled dot.
func (c *Canvas) Point(p geom.Point) {
	x, y := c.convert(p)
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.DrawCircle(x, y, pointRadius)
	c.ctx.Fill()
}

// Segment draws a segment.
func (c *Canvas) Segment(s geom.Segment) {
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.SetLineWidth(2)
	c.strokeSegment(s)
}

// Line draws a line clipped to the canvas window. A shallow line is
// clipped against the left and right borders, a steep one against the
// top and bottom, so the crossing points always exist.
func (c *Canvas) Line(l geom.Line) {
	lb := geom.Pt(c.bottom, c.bottom)
	lt := geom.Pt(c.bottom, c.top)
	rb := geom.Pt(c.top, c.bottom)
	rt := geom.Pt(c.top, c.top)

	var e1, e2 geom.Line
	if s := l.Slope(c.eps); -1 < s && s < 1 {
		e1 = geom.Line{P1: lb, P2: lt}
		e2 = geom.Line{P1: rt, P2: rb}
	} else {
		e1 = geom.Line{P1: lb, P2: rb}
		e2 = geom.Line{P1: rt, P2: lt}
	}
	p1, err1 := e1.CrossPoint(l, c.eps)
	p2, err2 := e2.CrossPoint(l, c.eps)
	if err1 != nil || err2 != nil {
		return
	}
	c.Segment(geom.Segment{P1: p1, P2: p2})
}

// Polygon strokes a polygon outline.
func (c *Canvas) Polygon(pg geom.Polygon) {
	c.tracePolygon(pg)
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.SetLineWidth(2)
	c.ctx.Stroke()
}

// FillPolygon fills a polygon and strokes its outline, in the style of
// a debug overlay.
func (c *Canvas) FillPolygon(pg geom.Polygon) {
	c.tracePolygon(pg)
	c.ctx.SetRGB(0, 0.5, 0)
	c.ctx.FillPreserve()
	c.ctx.SetRGB(0, 1, 1)
	c.ctx.SetLineWidth(2)
	c.ctx.Stroke()
}

func (c *Canvas) tracePolygon(pg geom.Polygon) {
	if len(pg.Points) == 0 {
		return
	}
	x, y := c.convert(pg.Points[0])
	c.ctx.MoveTo(x, y)
	for _, p := range pg.Points[1:] {
		x, y = c.convert(p)
		c.ctx.LineTo(x, y)
	}
	c.ctx.ClosePath()
}

// Circle strokes a circle outline.
func (c *Canvas) Circle(circle geom.Circle) {
	x, y := c.convert(circle.Center)
	magn := Size / (c.top - c.bottom)
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.SetLineWidth(2)
	c.ctx.DrawCircle(x, y, circle.Radius*magn)
	c.ctx.Stroke()
}

// Label writes text anchored at a world point, offset slightly so it
// does not sit on top of the point's dot.
func (c *Canvas) Label(p geom.Point, text string) {
	x, y := c.convert(p)
	c.ctx.SetRGB(0, 0, 0)
	c.ctx.DrawString(text, x+pointRadius*2, y-pointRadius*2)
}

// SavePNG writes the canvas to a file.
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

// Cat writes the canvas to path and then prints it inline to w using
// the iTerm2 image protocol.
func (c *Canvas) Cat(path string, w io.Writer) error {
	if err := c.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}

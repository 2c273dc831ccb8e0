package plot3d

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Axes draws the three back panes of the projector's box with grid lines,
// and labeled, ticked axes along the front-bottom edges.
type Axes struct {
	Projector Projector

	XLabel, YLabel, ZLabel string

	PaneColor color.Color
	GridStyle draw.LineStyle
	LineStyle draw.LineStyle
	Ticker    plot.Ticker

	// TickOffset and LabelOffset push text away from the box center.
	TickOffset  vg.Length
	LabelOffset vg.Length
}

var (
	_ plot.Plotter    = (*Axes)(nil)
	_ plot.DataRanger = (*Axes)(nil)
)

// NewAxes returns axes with matplotlib-like defaults.
func NewAxes(proj Projector, xlabel, ylabel, zlabel string) *Axes {
	return &Axes{
		Projector:   proj,
		XLabel:      xlabel,
		YLabel:      ylabel,
		ZLabel:      zlabel,
		PaneColor:   color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff},
		GridStyle:   draw.LineStyle{Color: color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}, Width: vg.Points(0.5)},
		LineStyle:   draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)},
		Ticker:      plot.DefaultTicks{},
		TickOffset:  vg.Points(12),
		LabelOffset: vg.Points(30),
	}
}

// Edge is one labeled axis: the data-space segment it runs along.
type Edge struct {
	Axis     int // 0 x, 1 y, 2 z
	From, To [3]float64
}

// Edges returns the x, y and z axis edges in that order.
//
// x and y run along the floor on the side nearest the viewer. z runs up
// the vertical edge that projects furthest left.
func (a *Axes) Edges() [3]Edge {
	b := a.Projector.Box
	back := a.Projector.backSide()
	front := func(axis int, lo, hi float64) float64 {
		if back[axis] {
			return lo
		}
		return hi
	}
	floor := b.ZMin
	if back[2] {
		floor = b.ZMax
	}
	yFront := front(1, b.YMin, b.YMax)
	xFront := front(0, b.XMin, b.XMax)

	zx, zy := b.XMin, b.YMin
	best := math.Inf(1)
	for _, x := range []float64{b.XMin, b.XMax} {
		for _, y := range []float64{b.YMin, b.YMax} {
			if u, _, _ := a.Projector.Project(x, y, floor); u < best {
				best, zx, zy = u, x, y
			}
		}
	}
	return [3]Edge{
		{Axis: 0, From: [3]float64{b.XMin, yFront, floor}, To: [3]float64{b.XMax, yFront, floor}},
		{Axis: 1, From: [3]float64{xFront, b.YMin, floor}, To: [3]float64{xFront, b.YMax, floor}},
		{Axis: 2, From: [3]float64{zx, zy, b.ZMin}, To: [3]float64{zx, zy, b.ZMax}},
	}
}

// Plot implements plot.Plotter.
func (a *Axes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pt := func(p [3]float64) vg.Point {
		u, v, _ := a.Projector.Project(p[0], p[1], p[2])
		return vg.Point{X: trX(u), Y: trY(v)}
	}

	a.drawPanes(&c, pt)

	center := a.center(pt)
	labels := [3]string{a.XLabel, a.YLabel, a.ZLabel}
	lo, hi := a.bounds()
	for _, e := range a.Edges() {
		from, to := pt(e.From), pt(e.To)
		c.StrokeLine2(a.LineStyle, from.X, from.Y, to.X, to.Y)

		tickSty := plt.X.Tick.Label
		tickSty.XAlign, tickSty.YAlign = draw.XCenter, draw.YCenter
		for _, t := range a.Ticker.Ticks(lo[e.Axis], hi[e.Axis]) {
			if t.IsMinor() {
				continue
			}
			p := e.From
			p[e.Axis] = t.Value
			at := pt(p)
			c.FillText(tickSty, away(at, center, a.TickOffset), t.Label)
		}

		if labels[e.Axis] == "" {
			continue
		}
		labelSty := plt.X.Label.TextStyle
		labelSty.XAlign, labelSty.YAlign = draw.XCenter, draw.YCenter
		mid := vg.Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
		c.FillText(labelSty, away(mid, center, a.LabelOffset), labels[e.Axis])
	}
}

func (a *Axes) bounds() (lo, hi [3]float64) {
	b := a.Projector.Box
	return [3]float64{b.XMin, b.YMin, b.ZMin}, [3]float64{b.XMax, b.YMax, b.ZMax}
}

// drawPanes fills the three back faces of the box and draws grid lines
// across them at the major tick positions.
func (a *Axes) drawPanes(c *draw.Canvas, pt func([3]float64) vg.Point) {
	lo, hi := a.bounds()
	back := a.Projector.backSide()
	for axis := 0; axis < 3; axis++ {
		fixed := lo[axis]
		if back[axis] {
			fixed = hi[axis]
		}
		// The two axes spanning this pane.
		p, q := (axis+1)%3, (axis+2)%3
		corner := func(pv, qv float64) [3]float64 {
			var v [3]float64
			v[axis], v[p], v[q] = fixed, pv, qv
			return v
		}
		poly := []vg.Point{
			pt(corner(lo[p], lo[q])),
			pt(corner(hi[p], lo[q])),
			pt(corner(hi[p], hi[q])),
			pt(corner(lo[p], hi[q])),
		}
		if a.PaneColor != nil {
			c.FillPolygon(a.PaneColor, poly)
		}
		for _, dim := range [2]int{p, q} {
			other := q
			if dim == q {
				other = p
			}
			for _, t := range a.Ticker.Ticks(lo[dim], hi[dim]) {
				if t.IsMinor() {
					continue
				}
				var from, to [3]float64
				from[axis], to[axis] = fixed, fixed
				from[dim], to[dim] = t.Value, t.Value
				from[other], to[other] = lo[other], hi[other]
				f, e := pt(from), pt(to)
				c.StrokeLine2(a.GridStyle, f.X, f.Y, e.X, e.Y)
			}
		}
	}
}

func (a *Axes) center(pt func([3]float64) vg.Point) vg.Point {
	lo, hi := a.bounds()
	return pt([3]float64{(lo[0] + hi[0]) / 2, (lo[1] + hi[1]) / 2, (lo[2] + hi[2]) / 2})
}

// away moves p by dist along the direction from center to p.
func away(p, center vg.Point, dist vg.Length) vg.Point {
	dx, dy := float64(p.X-center.X), float64(p.Y-center.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return vg.Point{X: p.X, Y: p.Y - dist}
	}
	return vg.Point{
		X: p.X + vg.Length(dx/n)*dist,
		Y: p.Y + vg.Length(dy/n)*dist,
	}
}

// DataRange implements plot.DataRanger.
func (a *Axes) DataRange() (xmin, xmax, ymin, ymax float64) {
	return a.Projector.Bounds()
}

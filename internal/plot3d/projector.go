package plot3d

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// Camera is a viewing direction in degrees.
type Camera struct {
	Azimuth   float64
	Elevation float64
}

// Box is the data volume shown by a projector.
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// GridBox returns the box spanned by g, with z taken from its finite values.
func GridBox(g plotter.GridXYZ) Box {
	c, r := g.Dims()
	b := Box{
		XMin: g.X(0), XMax: g.X(c - 1),
		YMin: g.Y(0), YMax: g.Y(r - 1),
		ZMin: math.Inf(1), ZMax: math.Inf(-1),
	}
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			z := g.Z(i, j)
			if math.IsNaN(z) || math.IsInf(z, 0) {
				continue
			}
			b.ZMin = math.Min(b.ZMin, z)
			b.ZMax = math.Max(b.ZMax, z)
		}
	}
	if b.ZMin > b.ZMax {
		b.ZMin, b.ZMax = 0, 1
	}
	return b
}

// Aspect is the relative size of the normalized cube along x, y and z.
var Aspect = [3]float64{1, 1, 0.75}

// Projector maps data coordinates to screen coordinates.
type Projector struct {
	Camera Camera
	Box    Box

	u, v, d [3]float64 // screen right, screen up, toward viewer
}

// NewProjector returns a projector for box seen from cam.
func NewProjector(cam Camera, box Box) Projector {
	a := cam.Azimuth * math.Pi / 180
	e := cam.Elevation * math.Pi / 180
	sa, ca := math.Sincos(a)
	se, ce := math.Sincos(e)
	return Projector{
		Camera: cam,
		Box:    box,
		u:      [3]float64{-sa, ca, 0},
		v:      [3]float64{-ca * se, -sa * se, ce},
		d:      [3]float64{ca * ce, sa * ce, se},
	}
}

func span(lo, hi float64) float64 {
	if hi > lo {
		return hi - lo
	}
	return 1
}

// normalize maps a data point into the aspect-scaled cube centered on 0.
func (p Projector) normalize(x, y, z float64) [3]float64 {
	b := p.Box
	return [3]float64{
		((x-b.XMin)/span(b.XMin, b.XMax) - 0.5) * Aspect[0],
		((y-b.YMin)/span(b.YMin, b.YMax) - 0.5) * Aspect[1],
		((z-b.ZMin)/span(b.ZMin, b.ZMax) - 0.5) * Aspect[2],
	}
}

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Project returns the screen position (u right, v up) of a data point and
// its depth; larger depth is nearer the viewer.
func (p Projector) Project(x, y, z float64) (u, v, depth float64) {
	n := p.normalize(x, y, z)
	return dot(n, p.u), dot(n, p.v), dot(n, p.d)
}

// Corners returns the eight box corners in data coordinates.
func (p Projector) Corners() [8][3]float64 {
	b := p.Box
	var out [8][3]float64
	for i := range out {
		out[i] = [3]float64{b.XMin, b.YMin, b.ZMin}
		if i&1 != 0 {
			out[i][0] = b.XMax
		}
		if i&2 != 0 {
			out[i][1] = b.YMax
		}
		if i&4 != 0 {
			out[i][2] = b.ZMax
		}
	}
	return out
}

// Margin is the fraction of the projected extent added around the box so
// tick and axis labels stay inside the plot.
const Margin = 0.12

// Bounds returns the projected extent of the box, padded by Margin. All
// plotters sharing a projector report the same range.
func (p Projector) Bounds() (umin, umax, vmin, vmax float64) {
	umin, vmin = math.Inf(1), math.Inf(1)
	umax, vmax = math.Inf(-1), math.Inf(-1)
	for _, c := range p.Corners() {
		u, v, _ := p.Project(c[0], c[1], c[2])
		umin, umax = math.Min(umin, u), math.Max(umax, u)
		vmin, vmax = math.Min(vmin, v), math.Max(vmax, v)
	}
	du, dv := (umax-umin)*Margin, (vmax-vmin)*Margin
	return umin - du, umax + du, vmin - dv, vmax + dv
}

// backSide reports, per axis, whether the back pane sits at the maximum
// of that axis.
func (p Projector) backSide() [3]bool {
	return [3]bool{p.d[0] < 0, p.d[1] < 0, p.d[2] < 0}
}

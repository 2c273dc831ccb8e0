package plot3d

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Surface draws a grid as colored quadrilateral faces.
type Surface struct {
	Grid      plotter.GridXYZ
	ColorMap  palette.ColorMap
	Projector Projector

	// EdgeStyle strokes each face; a nil Color reuses the face color,
	// which hides anti-aliasing seams between faces. Zero width disables
	// it.
	EdgeStyle draw.LineStyle
}

var (
	_ plot.Plotter    = (*Surface)(nil)
	_ plot.DataRanger = (*Surface)(nil)
)

// NewSurface returns a surface over g, projected for cam, with the color
// map's range set to the grid's z range.
func NewSurface(g plotter.GridXYZ, cm palette.ColorMap, cam Camera) *Surface {
	box := GridBox(g)
	cm.SetMin(box.ZMin)
	cm.SetMax(box.ZMax)
	return &Surface{
		Grid:      g,
		ColorMap:  cm,
		Projector: NewProjector(cam, box),
		EdgeStyle: draw.LineStyle{Width: vg.Points(0.4)},
	}
}

type face struct {
	pts   [4][2]float64
	depth float64
	clr   color.Color
}

// Faces returns the number of faces Plot would draw.
func (s *Surface) Faces() int { return len(s.faces()) }

func (s *Surface) faces() []face {
	cols, rows := s.Grid.Dims()
	out := make([]face, 0, (cols-1)*(rows-1))
	for r := 0; r < rows-1; r++ {
	cells:
		for c := 0; c < cols-1; c++ {
			var f face
			sum := 0.0
			for k := 0; k < 4; k++ {
				ci, ri := c+dc[k], r+dr[k]
				z := s.Grid.Z(ci, ri)
				if math.IsNaN(z) || math.IsInf(z, 0) {
					continue cells
				}
				u, v, d := s.Projector.Project(s.Grid.X(ci), s.Grid.Y(ri), z)
				f.pts[k] = [2]float64{u, v}
				f.depth += d / 4
				sum += z
			}
			f.clr = colorAt(s.ColorMap, sum/4)
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].depth < out[j].depth })
	return out
}

// corner order around a cell: (c,r), (c+1,r), (c+1,r+1), (c,r+1)
var (
	dc = [4]int{0, 1, 1, 0}
	dr = [4]int{0, 0, 1, 1}
)

// Plot implements plot.Plotter.
func (s *Surface) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, f := range s.faces() {
		poly := make([]vg.Point, 0, 5)
		for _, p := range f.pts {
			poly = append(poly, vg.Point{X: trX(p[0]), Y: trY(p[1])})
		}
		c.FillPolygon(f.clr, poly)
		if s.EdgeStyle.Width > 0 {
			sty := s.EdgeStyle
			if sty.Color == nil {
				sty.Color = f.clr
			}
			c.StrokeLines(sty, append(poly, poly[0]))
		}
	}
}

// DataRange implements plot.DataRanger.
func (s *Surface) DataRange() (xmin, xmax, ymin, ymax float64) {
	return s.Projector.Bounds()
}

// colorAt looks v up in cm after clamping it into the map's range.
func colorAt(cm palette.ColorMap, v float64) color.Color {
	v = math.Max(cm.Min(), math.Min(cm.Max(), v))
	clr, err := cm.At(v)
	if err != nil {
		return color.Transparent
	}
	return clr
}

package plot3d

import (
	"github.com/iburimskiy/waf-visualization/internal/isoline"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Contour draws iso-lines of a grid in 3-D. Lines sit at their level
// height unless Flat is set, in which case they are projected onto the
// plane z = Z.
type Contour struct {
	Grid      plotter.GridXYZ
	Levels    []float64
	ColorMap  palette.ColorMap
	Projector Projector
	LineWidth vg.Length

	Flat bool
	Z    float64

	segs [][]isoline.Segment
}

var (
	_ plot.Plotter    = (*Contour)(nil)
	_ plot.DataRanger = (*Contour)(nil)
)

// NewContour traces levels over g. The color map range is set to the
// level range.
func NewContour(g plotter.GridXYZ, levels []float64, cm palette.ColorMap, proj Projector) (*Contour, error) {
	segs, err := isoline.TraceAll(g, levels)
	if err != nil {
		return nil, err
	}
	if len(levels) > 0 {
		cm.SetMin(levels[0])
		cm.SetMax(levels[len(levels)-1])
	}
	return &Contour{
		Grid:      g,
		Levels:    levels,
		ColorMap:  cm,
		Projector: proj,
		LineWidth: vg.Points(1),
		segs:      segs,
	}, nil
}

// NewBaseContour is NewContour with the lines flattened onto z.
func NewBaseContour(g plotter.GridXYZ, levels []float64, cm palette.ColorMap, proj Projector, z float64) (*Contour, error) {
	cnt, err := NewContour(g, levels, cm, proj)
	if err != nil {
		return nil, err
	}
	cnt.Flat, cnt.Z = true, z
	return cnt, nil
}

// Segments returns the traced segments grouped by level.
func (cnt *Contour) Segments() [][]isoline.Segment { return cnt.segs }

// Plot implements plot.Plotter.
func (cnt *Contour) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, segs := range cnt.segs {
		lv := cnt.Levels[i]
		z := lv
		if cnt.Flat {
			z = cnt.Z
		}
		sty := draw.LineStyle{Color: colorAt(cnt.ColorMap, lv), Width: cnt.LineWidth}
		for _, s := range segs {
			u0, v0, _ := cnt.Projector.Project(s.A.X, s.A.Y, z)
			u1, v1, _ := cnt.Projector.Project(s.B.X, s.B.Y, z)
			c.StrokeLine2(sty, trX(u0), trY(v0), trX(u1), trY(v1))
		}
	}
}

// DataRange implements plot.DataRanger.
func (cnt *Contour) DataRange() (xmin, xmax, ymin, ymax float64) {
	return cnt.Projector.Bounds()
}

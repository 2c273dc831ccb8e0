package figure

import (
	"math"

	"github.com/iburimskiy/waf-visualization/internal/ambiguity"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

// grid adapts a scale × delay matrix to plotter.GridXYZ: columns follow
// delay (x) and rows follow scale (y).
type grid struct {
	x, y []float64
	z    mat.Matrix
}

var _ plotter.GridXYZ = grid{}

func newGrid(delay, scale []float64, z mat.Matrix) grid {
	return grid{x: delay, y: scale, z: z}
}

func (g grid) Dims() (c, r int)   { return len(g.x), len(g.y) }
func (g grid) Z(c, r int) float64 { return g.z.At(r, c) }
func (g grid) X(c int) float64    { return g.x[c] }
func (g grid) Y(r int) float64    { return g.y[r] }

// refined subdivides every cell of src into factor×factor cells using
// bilinear interpolation.
type refined struct {
	src    plotter.GridXYZ
	factor int
}

func refine(src plotter.GridXYZ, factor int) refined {
	if factor < 1 {
		factor = 1
	}
	return refined{src: src, factor: factor}
}

func (g refined) Dims() (c, r int) {
	c, r = g.src.Dims()
	return (c-1)*g.factor + 1, (r-1)*g.factor + 1
}

// split maps a refined index to a source cell and fraction within it.
func (g refined) split(i, n int) (lo int, t float64) {
	lo = i / g.factor
	if lo >= n-1 {
		return n - 2, 1
	}
	return lo, float64(i%g.factor) / float64(g.factor)
}

func (g refined) X(c int) float64 {
	n, _ := g.src.Dims()
	i, t := g.split(c, n)
	return lerp(g.src.X(i), g.src.X(i+1), t)
}

func (g refined) Y(r int) float64 {
	_, n := g.src.Dims()
	j, t := g.split(r, n)
	return lerp(g.src.Y(j), g.src.Y(j+1), t)
}

func (g refined) Z(c, r int) float64 {
	nc, nr := g.src.Dims()
	i, tx := g.split(c, nc)
	j, ty := g.split(r, nr)
	bottom := lerp(g.src.Z(i, j), g.src.Z(i+1, j), tx)
	top := lerp(g.src.Z(i, j+1), g.src.Z(i+1, j+1), tx)
	return lerp(bottom, top, ty)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// stretched spreads the cells of a grid evenly over a sample's extent so
// that a heat map drawn from it covers exactly that box, instead of
// overhanging the outer grid points by half a cell.
type stretched struct {
	plotter.GridXYZ
	xmin, xmax, ymin, ymax float64
}

func stretch(src plotter.GridXYZ, s ambiguity.Sample) stretched {
	g := stretched{GridXYZ: src}
	g.xmin, g.xmax, g.ymin, g.ymax = s.Extent()
	return g
}

func (g stretched) X(c int) float64 {
	n, _ := g.Dims()
	return g.xmin + (float64(c)+0.5)*(g.xmax-g.xmin)/float64(n)
}

func (g stretched) Y(r int) float64 {
	_, n := g.Dims()
	return g.ymin + (float64(r)+0.5)*(g.ymax-g.ymin)/float64(n)
}

// banded replaces every value by the index of the band it falls in:
// 0 below edges[0], len(edges) at or above the last edge.
type banded struct {
	plotter.GridXYZ
	edges []float64
}

func (g banded) Z(c, r int) float64 {
	v := g.GridXYZ.Z(c, r)
	if math.IsNaN(v) {
		return v
	}
	k := 0
	for k < len(g.edges) && v >= g.edges[k] {
		k++
	}
	return float64(k)
}

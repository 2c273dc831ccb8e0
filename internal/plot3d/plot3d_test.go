package plot3d_test

import (
	"math"
	"testing"

	"github.com/iburimskiy/waf-visualization/internal/colormap"
	"github.com/iburimskiy/waf-visualization/internal/isoline"
	"github.com/iburimskiy/waf-visualization/internal/plot3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// bump is a Gaussian on an n×n grid over [-1, 1]².
type bump int

func (b bump) Dims() (c, r int) { return int(b), int(b) }
func (b bump) X(c int) float64 { return -1 + 2*float64(c)/float64(b-1) }
func (b bump) Y(r int) float64 { return -1 + 2*float64(r)/float64(b-1) }
func (b bump) Z(c, r int) float64 {
	x, y := b.X(c), b.Y(r)
	return math.Exp(-(x*x + y*y))
}

var defaultCam = plot3d.Camera{Azimuth: -60, Elevation: 30}

//----------------------------------------------------------------------------//
// Projector
//----------------------------------------------------------------------------//

func TestProjector_TopView(t *testing.T) {
	box := plot3d.Box{XMin: 0, XMax: 1, YMin: 0, YMax: 1, ZMin: 0, ZMax: 1}
	p := plot3d.NewProjector(plot3d.Camera{Azimuth: -90, Elevation: 90}, box)

	// Looking straight down with azimuth -90: x to the right, y up.
	u0, v0, _ := p.Project(0, 0, 0.5)
	u1, v1, _ := p.Project(1, 0, 0.5)
	u2, v2, _ := p.Project(0, 1, 0.5)
	assert.InDelta(t, 1, u1-u0, 1e-12)
	assert.InDelta(t, 0, v1-v0, 1e-12)
	assert.InDelta(t, 0, u2-u0, 1e-12)
	assert.InDelta(t, 1, v2-v0, 1e-12)

	_, _, dLow := p.Project(0.5, 0.5, 0)
	_, _, dHigh := p.Project(0.5, 0.5, 1)
	assert.Greater(t, dHigh, dLow, "higher points are nearer a camera above")
}

func TestProjector_SideView(t *testing.T) {
	box := plot3d.Box{XMin: -1, XMax: 1, YMin: -1, YMax: 1, ZMin: 0, ZMax: 2}
	p := plot3d.NewProjector(plot3d.Camera{Azimuth: 0, Elevation: 0}, box)

	_, vLow, _ := p.Project(0, 0, 0)
	_, vHigh, _ := p.Project(0, 0, 2)
	assert.InDelta(t, plot3d.Aspect[2], vHigh-vLow, 1e-12)
}

func TestProjector_BoundsContainCorners(t *testing.T) {
	p := plot3d.NewProjector(defaultCam, plot3d.GridBox(bump(5)))
	umin, umax, vmin, vmax := p.Bounds()
	for _, c := range p.Corners() {
		u, v, _ := p.Project(c[0], c[1], c[2])
		assert.True(t, u > umin && u < umax && v > vmin && v < vmax, "corner %v", c)
	}
}

func TestGridBox(t *testing.T) {
	b := plot3d.GridBox(bump(5))
	assert.Equal(t, -1.0, b.XMin)
	assert.Equal(t, 1.0, b.XMax)
	assert.InDelta(t, 1, b.ZMax, 1e-12)
	assert.InDelta(t, math.Exp(-2), b.ZMin, 1e-12)
}

//----------------------------------------------------------------------------//
// Plotters
//----------------------------------------------------------------------------//

func TestSurface_Faces(t *testing.T) {
	cm, err := colormap.New("viridis")
	require.NoError(t, err)
	s := plot3d.NewSurface(bump(10), cm, defaultCam)

	assert.Equal(t, 81, s.Faces())
	assert.Equal(t, plot3d.GridBox(bump(10)).ZMax, cm.Max())
}

func TestAxes_Edges(t *testing.T) {
	box := plot3d.Box{XMin: -2, XMax: 2, YMin: -1, YMax: 1, ZMin: 0, ZMax: 1}
	a := plot3d.NewAxes(plot3d.NewProjector(defaultCam, box), "x", "y", "z")
	e := a.Edges()

	// Default camera looks from +x, -y: x runs along y=min, y along x=max.
	assert.Equal(t, [3]float64{-2, -1, 0}, e[0].From)
	assert.Equal(t, [3]float64{2, -1, 0}, e[0].To)
	assert.Equal(t, [3]float64{2, -1, 0}, e[1].From)
	assert.Equal(t, [3]float64{2, 1, 0}, e[1].To)
	assert.Equal(t, 0.0, e[2].From[2])
	assert.Equal(t, 1.0, e[2].To[2])
}

func TestContour_Levels(t *testing.T) {
	g := bump(20)
	cm, err := colormap.New("viridis")
	require.NoError(t, err)
	levels := isoline.Levels(math.Exp(-2), 1, 50)
	proj := plot3d.NewProjector(defaultCam, plot3d.GridBox(g))

	cnt, err := plot3d.NewContour(g, levels, cm, proj)
	require.NoError(t, err)
	assert.Len(t, cnt.Segments(), 50)
	assert.False(t, cnt.Flat)

	base, err := plot3d.NewBaseContour(g, levels[:10], cm, proj, 0)
	require.NoError(t, err)
	assert.True(t, base.Flat)
	assert.Len(t, base.Segments(), 10)
}

func TestPlotters_Draw(t *testing.T) {
	g := bump(12)
	box := plot3d.GridBox(g)
	proj := plot3d.NewProjector(defaultCam, box)
	cm, err := colormap.New("viridis")
	require.NoError(t, err)
	lcm, err := colormap.New("viridis")
	require.NoError(t, err)
	cnt, err := plot3d.NewBaseContour(g, isoline.Levels(box.ZMin, box.ZMax, 5), lcm, proj, box.ZMin)
	require.NoError(t, err)

	p := plot.New()
	p.HideAxes()
	p.Add(plot3d.NewAxes(proj, "x", "y", "z"), cnt, plot3d.NewSurface(g, cm, defaultCam))

	img := vgimg.New(4*vg.Inch, 3*vg.Inch)
	require.NotPanics(t, func() { p.Draw(draw.New(img)) })
}

package figure

import (
	"image/color"
	"math"
	"strconv"

	"github.com/iburimskiy/waf-visualization/internal/ambiguity"
	"github.com/iburimskiy/waf-visualization/internal/colormap"
	"github.com/iburimskiy/waf-visualization/internal/config"
	"github.com/iburimskiy/waf-visualization/internal/isoline"
	"github.com/iburimskiy/waf-visualization/internal/plot3d"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// refineFactor subdivides grid cells for the filled contour bands.
const refineFactor = 4

type panelFunc func(s ambiguity.Sample) (*Panel, error)

func camera() plot3d.Camera {
	return plot3d.Camera{Azimuth: config.CameraAzimuth, Elevation: config.CameraElevation}
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = config.DelayLabel
	p.Y.Label.Text = config.ScaleLabel
	return p
}

func new3DPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	return p
}

func newColorBar(cm palette.ColorMap, label string, steps int) *plot.Plot {
	p := plot.New()
	p.HideX()
	p.Y.Label.Text = label
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: steps})
	return p
}

// imagePanel draws view as a heat map over the sample's extent.
func imagePanel(kind Kind, title string, s ambiguity.Sample, view *mat.Dense, name, legend string) (*Panel, error) {
	lo, hi := ambiguity.Range(view)
	cm, err := colormap.NewRange(name, lo, hi)
	if err != nil {
		return nil, err
	}
	h := plotter.NewHeatMap(stretch(newGrid(s.Delay, s.Scale, view), s), cm.Palette(config.PaletteSteps))
	h.Min, h.Max = cm.Min(), cm.Max()
	h.Rasterized = true

	p := newPlot(title)
	p.Add(h)
	return &Panel{
		Kind:     kind,
		Title:    title,
		Palette:  name,
		Legend:   legend,
		Data:     view,
		Plot:     p,
		ColorBar: newColorBar(cm, legend, config.PaletteSteps),
	}, nil
}

func heatmapPanel(s ambiguity.Sample) (*Panel, error) {
	return imagePanel(KindHeatmap, "Heatmap", s, ambiguity.Magnitude(s.Values),
		config.LinearPalette, config.AmplitudeLabel)
}

func logHeatmapPanel(s ambiguity.Sample) (*Panel, error) {
	return imagePanel(KindLogHeatmap, "Log-scale heatmap", s, ambiguity.LogMagnitude(s.Values),
		config.LogPalette, config.LogLabel)
}

func dbHeatmapPanel(s ambiguity.Sample) (*Panel, error) {
	return imagePanel(KindDBHeatmap, "dB-scale heatmap", s, ambiguity.DBMagnitude(s.Values),
		config.DBPalette, config.DBLabel)
}

// palettePanel is the magnitude heat map under an arbitrary palette. view
// is shared, not copied, so every palette encodes the same array.
func palettePanel(s ambiguity.Sample, view *mat.Dense, name string) (*Panel, error) {
	return imagePanel(KindHeatmap, name+" colormap", s, view, name, config.AmplitudeLabel)
}

func filledContourPanel(s ambiguity.Sample) (*Panel, error) {
	view := ambiguity.Magnitude(s.Values)
	lo, hi := ambiguity.Range(view)
	edges := isoline.Levels(lo, hi, config.FilledContourLevels)
	cm, err := colormap.NewRange(config.LinearPalette, lo, hi)
	if err != nil {
		return nil, err
	}

	bands := len(edges) + 1
	g := banded{GridXYZ: refine(newGrid(s.Delay, s.Scale, view), refineFactor), edges: edges}
	h := plotter.NewHeatMap(stretch(g, s), cm.Palette(bands))
	h.Min, h.Max = 0, float64(len(edges))
	h.Rasterized = true

	title := "Filled contour"
	p := newPlot(title)
	p.Add(h)
	return &Panel{
		Kind:     KindFilledContour,
		Title:    title,
		Palette:  config.LinearPalette,
		Legend:   config.AmplitudeLabel,
		Levels:   len(edges),
		Data:     view,
		Plot:     p,
		ColorBar: newColorBar(cm, config.AmplitudeLabel, bands),
	}, nil
}

func contourPanel(s ambiguity.Sample) (*Panel, error) {
	view := ambiguity.Magnitude(s.Values)
	lo, hi := ambiguity.Range(view)
	levels := isoline.Levels(lo, hi, config.ContourLevels)
	g := newGrid(s.Delay, s.Scale, view)

	title := "Contour lines"
	p := newPlot(title)
	p.Add(plotter.NewGrid(), plotter.NewContour(g, levels, colormap.Single(color.Black)))
	labels, err := levelLabels(g, levels)
	if err != nil {
		return nil, err
	}
	if labels != nil {
		p.Add(labels)
	}
	return &Panel{Kind: KindContour, Title: title, Levels: len(levels), Data: view, Plot: p}, nil
}

// levelLabels places one value label per level on its longest segment.
func levelLabels(g plotter.GridXYZ, levels []float64) (*plotter.Labels, error) {
	all, err := isoline.TraceAll(g, levels)
	if err != nil {
		return nil, err
	}
	var d plotter.XYLabels
	for i, segs := range all {
		at, ok := isoline.LabelAnchor(segs)
		if !ok {
			continue
		}
		d.XYs = append(d.XYs, plotter.XY{X: at.X, Y: at.Y})
		d.Labels = append(d.Labels, strconv.FormatFloat(levels[i], 'f', 3, 64))
	}
	if len(d.XYs) == 0 {
		return nil, nil
	}
	l, err := plotter.NewLabels(d)
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = vg.Points(7)
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YCenter
	}
	return l, nil
}

func surfacePanel(s ambiguity.Sample) (*Panel, error) {
	view := ambiguity.Magnitude(s.Values)
	cm, err := colormap.New(config.LinearPalette)
	if err != nil {
		return nil, err
	}
	cm.SetAlpha(config.SurfaceAlpha)
	surf := plot3d.NewSurface(newGrid(s.Delay, s.Scale, view), cm, camera())

	title := "3D surface"
	p := new3DPlot(title)
	axes := plot3d.NewAxes(surf.Projector, config.DelayLabel, config.ScaleLabel, config.AmplitudeLabel)
	p.Add(axes, surf)
	return &Panel{Kind: KindSurface, Title: title, Palette: config.LinearPalette, Data: view, Plot: p, Axes: axes}, nil
}

func contour3DPanel(s ambiguity.Sample) (*Panel, error) {
	view := ambiguity.Magnitude(s.Values)
	cm, err := colormap.New(config.LinearPalette)
	if err != nil {
		return nil, err
	}
	g := newGrid(s.Delay, s.Scale, view)
	box := plot3d.GridBox(g)
	proj := plot3d.NewProjector(camera(), box)
	levels := isoline.Levels(box.ZMin, box.ZMax, config.Contour3DLevels)
	cnt, err := plot3d.NewContour(g, levels, cm, proj)
	if err != nil {
		return nil, err
	}

	title := "3D contour"
	p := new3DPlot(title)
	axes := plot3d.NewAxes(proj, config.DelayLabel, config.ScaleLabel, config.AmplitudeLabel)
	p.Add(axes, cnt)
	return &Panel{
		Kind:    KindContour3D,
		Title:   title,
		Palette: config.LinearPalette,
		Levels:  len(levels),
		Data:    view,
		Plot:    p,
		Axes:    axes,
	}, nil
}

// projectionPanel is a translucent surface over its contour lines drawn on
// the z = 0 plane.
func projectionPanel(s ambiguity.Sample) (*Panel, error) {
	view := ambiguity.Magnitude(s.Values)
	g := newGrid(s.Delay, s.Scale, view)
	box := plot3d.GridBox(g)
	lo, hi := box.ZMin, box.ZMax
	box.ZMin = math.Min(box.ZMin, 0)
	proj := plot3d.NewProjector(camera(), box)

	surfCM, err := colormap.New(config.LinearPalette)
	if err != nil {
		return nil, err
	}
	surfCM.SetAlpha(config.SurfaceAlpha)
	surf := plot3d.NewSurface(g, surfCM, camera())
	surf.Projector = proj

	lineCM, err := colormap.New(config.LinearPalette)
	if err != nil {
		return nil, err
	}
	levels := isoline.Levels(lo, hi, config.BaseContourLevels)
	base, err := plot3d.NewBaseContour(g, levels, lineCM, proj, 0)
	if err != nil {
		return nil, err
	}

	barCM, err := colormap.NewRange(config.LinearPalette, lo, hi)
	if err != nil {
		return nil, err
	}

	title := "Interactive 3D ambiguity function"
	p := new3DPlot(title)
	axes := plot3d.NewAxes(proj, config.DelayLabel, config.ScaleLabel, config.AmplitudeLabel)
	p.Add(axes, base, surf)
	return &Panel{
		Kind:     KindSurfaceProjection,
		Title:    title,
		Palette:  config.LinearPalette,
		Legend:   config.AmplitudeLabel,
		Levels:   len(levels),
		Data:     view,
		Plot:     p,
		ColorBar: newColorBar(barCM, config.AmplitudeLabel, config.PaletteSteps),
		Axes:     axes,
	}, nil
}

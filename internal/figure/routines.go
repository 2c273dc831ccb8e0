package figure

import (
	"fmt"

	"github.com/iburimskiy/waf-visualization/internal/ambiguity"
	"github.com/iburimskiy/waf-visualization/internal/config"
	"gonum.org/v1/plot/vg"
)

func single(build panelFunc) (*Figure, error) {
	p, err := build(ambiguity.Generate())
	if err != nil {
		return nil, err
	}
	return &Figure{
		Title:  p.Title,
		Rows:   1,
		Cols:   1,
		Width:  config.SinglePanelW,
		Height: config.SinglePanelH,
		Panels: []*Panel{p},
	}, nil
}

// Heatmap draws the magnitude as a linear-scale image.
func Heatmap() (*Figure, error) { return single(heatmapPanel) }

// Surface draws the magnitude as a 3-D surface.
func Surface() (*Figure, error) { return single(surfacePanel) }

// Contour3D draws stacked magnitude iso-lines in 3-D.
func Contour3D() (*Figure, error) { return single(contour3DPanel) }

// FilledContour draws filled magnitude iso-bands.
func FilledContour() (*Figure, error) { return single(filledContourPanel) }

// LogHeatmap draws log10 of the floored magnitude.
func LogHeatmap() (*Figure, error) { return single(logHeatmapPanel) }

// DBHeatmap draws the floored magnitude in decibels.
func DBHeatmap() (*Figure, error) { return single(dbHeatmapPanel) }

// Interactive3D draws a surface over its base-plane contour projection.
func Interactive3D() (*Figure, error) {
	f, err := single(projectionPanel)
	if err != nil {
		return nil, err
	}
	f.Width, f.Height = config.Interactive3DW, config.Interactive3DH
	return f, nil
}

func compose(title string, rows, cols int, w, h vg.Length, s ambiguity.Sample, builds ...panelFunc) (*Figure, error) {
	f := &Figure{Title: title, Rows: rows, Cols: cols, Width: w, Height: h}
	for _, build := range builds {
		p, err := build(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", title, err)
		}
		f.Panels = append(f.Panels, p)
	}
	return f, nil
}

// Gallery shows the six encodings side by side in a 2×3 grid.
func Gallery() (*Figure, error) {
	return compose("Alternatives to contour plots", 2, 3,
		config.GalleryWidth, config.GalleryHeight, ambiguity.Generate(),
		heatmapPanel, surfacePanel, contour3DPanel,
		filledContourPanel, logHeatmapPanel, dbHeatmapPanel)
}

// ContourComparison sets plain contour lines next to the filled contour,
// the heat map and the dB heat map in a 2×2 grid.
func ContourComparison() (*Figure, error) {
	return compose("Contour plot compared with other methods", 2, 2,
		config.ComparisonWidth, config.ComparisonHeight, ambiguity.Generate(),
		contourPanel, filledContourPanel, heatmapPanel, dbHeatmapPanel)
}

// PaletteComparison draws the same magnitude array once per palette, two
// panels per row. With no names it uses config.ComparisonPalettes.
func PaletteComparison(names ...string) (*Figure, error) {
	if len(names) == 0 {
		names = config.ComparisonPalettes
	}
	s := ambiguity.Generate()
	view := ambiguity.Magnitude(s.Values)

	cols := 2
	if len(names) == 1 {
		cols = 1
	}
	builds := make([]panelFunc, len(names))
	for i, name := range names {
		builds[i] = func(s ambiguity.Sample) (*Panel, error) {
			return palettePanel(s, view, name)
		}
	}
	return compose("Colormap examples", (len(names)+cols-1)/cols, cols,
		config.ComparisonWidth, config.ComparisonHeight, s, builds...)
}

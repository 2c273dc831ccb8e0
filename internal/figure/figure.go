package figure

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/iburimskiy/waf-visualization/internal/plot3d"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Kind is the visual encoding of a panel.
type Kind int

const (
	KindHeatmap Kind = iota
	KindSurface
	KindContour3D
	KindFilledContour
	KindLogHeatmap
	KindDBHeatmap
	KindContour
	KindSurfaceProjection
)

var kindNames = [...]string{
	KindHeatmap:           "heatmap",
	KindSurface:           "surface",
	KindContour3D:         "contour3d",
	KindFilledContour:     "filled-contour",
	KindLogHeatmap:        "log-heatmap",
	KindDBHeatmap:         "db-heatmap",
	KindContour:           "contour",
	KindSurfaceProjection: "surface-projection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Panel is one subplot.
type Panel struct {
	Kind    Kind
	Title   string
	Palette string // "" for monochrome panels
	Legend  string // colorbar label, "" when there is no colorbar
	Levels  int    // iso-levels drawn, 0 for images

	// Data is the matrix the panel encodes, rows = scale, columns = delay.
	Data *mat.Dense

	Plot     *plot.Plot
	ColorBar *plot.Plot

	// Axes holds the labeled box axes of 3-D panels, nil otherwise.
	Axes *plot3d.Axes
}

// legendShare is the fraction of a panel's width given to its colorbar.
const legendShare = 0.14

// Draw draws the panel, and its colorbar on the right when present.
func (p *Panel) Draw(c draw.Canvas) {
	if p.ColorBar == nil {
		p.Plot.Draw(c)
		return
	}
	size := c.Rectangle.Size()
	w := size.X * legendShare
	if minW := vg.Points(60); w < minW {
		w = minW
	}
	// Keep the bar clear of the main plot's title.
	top := p.Plot.Title.TextStyle.Height(p.Plot.Title.Text) + p.Plot.Title.Padding
	p.Plot.Draw(draw.Crop(c, 0, -w, 0, 0))
	p.ColorBar.Draw(draw.Crop(c, size.X-w, 0, 0, -top))
}

// Figure is a grid of panels with an overall title.
type Figure struct {
	Title      string
	Rows, Cols int
	Width      vg.Length
	Height     vg.Length
	Panels     []*Panel
}

// Subplots returns the number of panels.
func (f *Figure) Subplots() int { return len(f.Panels) }

// Palettes returns the palette name of every panel, in order.
func (f *Figure) Palettes() []string {
	out := make([]string, len(f.Panels))
	for i, p := range f.Panels {
		out[i] = p.Palette
	}
	return out
}

func (f *Figure) titleStyle() text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(16)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
}

// Draw lays the panels out row-major on dc.
func (f *Figure) Draw(dc draw.Canvas) error {
	if len(f.Panels) == 0 {
		return ErrEmptyFigure
	}
	if f.Rows*f.Cols < len(f.Panels) {
		return fmt.Errorf("%w: %d panels on %d×%d", ErrLayout, len(f.Panels), f.Rows, f.Cols)
	}

	pad := vg.Points(12)
	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadX:      pad * 2,
		PadY:      pad * 2,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	if f.Title != "" {
		sty := f.titleStyle()
		dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - pad}, f.Title)
		tiles.PadTop += sty.Height(f.Title) + pad
	}

	for i, p := range f.Panels {
		p.Draw(tiles.At(dc, i%f.Cols, i/f.Cols))
	}
	return nil
}

// Render draws the figure into a new image at the figure's size.
func (f *Figure) Render() (image.Image, error) {
	c, err := f.canvas()
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// WritePNG encodes the figure as PNG to w.
func (f *Figure) WritePNG(w io.Writer) error {
	c, err := f.canvas()
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("figure %q: encode png: %w", f.Title, err)
	}
	return nil
}

func (f *Figure) canvas() (*vgimg.Canvas, error) {
	c := vgimg.New(f.Width, f.Height)
	if err := f.Draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// Package colormap provides the named color palettes used by the gallery as
// gonum/plot color maps.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Gradient is a palette.ColorMap that blends linearly in RGB between
// control colors placed at increasing stops on [0, 1].
type Gradient struct {
	stops []float64
	ctrl  []colorful.Color

	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*Gradient)(nil)

// NewGradient builds a gradient over ctrl. stops may be nil for evenly
// spaced controls; otherwise it must match ctrl in length and be ascending
// from 0 to 1.
func NewGradient(name string, ctrl []color.Color, stops []float64) (*Gradient, error) {
	if len(ctrl) < 2 {
		return nil, fmt.Errorf("colormap %q: need at least two control colors", name)
	}
	if stops == nil {
		stops = make([]float64, len(ctrl))
		for i := range stops {
			stops[i] = float64(i) / float64(len(ctrl)-1)
		}
	}
	if len(stops) != len(ctrl) || !ascending(stops) || stops[0] != 0 || stops[len(stops)-1] != 1 {
		return nil, fmt.Errorf("colormap %q: stops must strictly ascend from 0 to 1, one per control color", name)
	}
	g := &Gradient{stops: stops, alpha: 1, max: 1}
	for _, c := range ctrl {
		cf, _ := colorful.MakeColor(c)
		g.ctrl = append(g.ctrl, cf)
	}
	return g, nil
}

// ascending reports whether stops strictly increase.
func ascending(stops []float64) bool {
	for i := 1; i < len(stops); i++ {
		if !(stops[i] > stops[i-1]) {
			return false
		}
	}
	return true
}

// At implements palette.ColorMap.
func (g *Gradient) At(v float64) (color.Color, error) {
	switch {
	case g.max < g.min:
		return nil, ErrRange
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < g.min:
		return nil, palette.ErrUnderflow
	case v > g.max:
		return nil, palette.ErrOverflow
	}
	t := 0.0
	if g.max > g.min {
		t = (v - g.min) / (g.max - g.min)
	}
	return g.blend(t), nil
}

// blend maps t in [0, 1] to a color.
func (g *Gradient) blend(t float64) color.Color {
	i := sort.SearchFloat64s(g.stops, t)
	var c colorful.Color
	switch {
	case i == 0:
		c = g.ctrl[0]
	case i >= len(g.stops):
		c = g.ctrl[len(g.ctrl)-1]
	default:
		lo, hi := g.stops[i-1], g.stops[i]
		c = g.ctrl[i-1].BlendRgb(g.ctrl[i], (t-lo)/(hi-lo))
	}
	r, gr, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: gr, B: b, A: uint8(math.Round(g.alpha * 255))}
}

// Palette implements palette.ColorMap. The colors span the whole gradient
// regardless of Min and Max.
func (g *Gradient) Palette(colors int) palette.Palette {
	out := make(colorList, colors)
	for i := range out {
		t := 0.0
		if colors > 1 {
			t = float64(i) / float64(colors-1)
		}
		out[i] = g.blend(t)
	}
	return out
}

func (g *Gradient) Min() float64 { return g.min }
func (g *Gradient) Max() float64 { return g.max }
func (g *Gradient) SetMin(v float64) { g.min = v }
func (g *Gradient) SetMax(v float64) { g.max = v }
func (g *Gradient) Alpha() float64 { return g.alpha }
func (g *Gradient) SetAlpha(a float64) { g.alpha = math.Max(0, math.Min(1, a)) }

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }

// Single returns a palette of one color, for monochrome contour lines.
func Single(c color.Color) palette.Palette { return colorList{c} }

// New returns a fresh color map for the named palette with range [0, 1].
func New(name string) (palette.ColorMap, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	cm := mk()
	cm.SetMin(0)
	cm.SetMax(1)
	return cm, nil
}

// NewRange is New with Min and Max already set.
func NewRange(name string, min, max float64) (palette.ColorMap, error) {
	cm, err := New(name)
	if err != nil {
		return nil, err
	}
	if max <= min {
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return cm, nil
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var registry = map[string]func() palette.ColorMap{
	"viridis":  gradient("viridis", viridis, nil),
	"plasma":   gradient("plasma", plasma, nil),
	"inferno":  gradient("inferno", inferno, nil),
	"magma":    gradient("magma", magma, nil),
	"jet":      gradient("jet", jet, jetStops),
	"hot":      gradient("hot", hot, hotStops),
	"coolwarm": func() palette.ColorMap { return moreland.SmoothBlueRed() },
}

func gradient(name string, ctrl []color.Color, stops []float64) func() palette.ColorMap {
	return func() palette.ColorMap {
		g, err := NewGradient(name, ctrl, stops)
		if err != nil {
			panic(err)
		}
		return g
	}
}

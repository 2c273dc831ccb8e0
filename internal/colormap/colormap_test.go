package colormap_test

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/waf-visualization/internal/colormap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
)

func TestNames(t *testing.T) {
	assert.Equal(t,
		[]string{"coolwarm", "hot", "inferno", "jet", "magma", "plasma", "viridis"},
		colormap.Names())
}

func TestNew_Unknown(t *testing.T) {
	_, err := colormap.New("rainbow")
	assert.True(t, errors.Is(err, colormap.ErrUnknown), "err = %v", err)
}

func TestNew_EveryPaletteMapsItsRange(t *testing.T) {
	for _, name := range colormap.Names() {
		t.Run(name, func(t *testing.T) {
			cm, err := colormap.NewRange(name, -200, 0)
			require.NoError(t, err)
			for _, v := range []float64{-200, -100, 0} {
				c, err := cm.At(v)
				require.NoError(t, err, "At(%v)", v)
				require.NotNil(t, c)
			}
			assert.Len(t, cm.Palette(16).Colors(), 16)
		})
	}
}

func TestNewRange_DegenerateRange(t *testing.T) {
	cm, err := colormap.NewRange("viridis", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cm.Min())
	assert.Equal(t, 4.0, cm.Max())
}

func TestGradient_Errors(t *testing.T) {
	cm, err := colormap.New("viridis")
	require.NoError(t, err)

	cases := []struct {
		name string
		v    float64
		err  error
	}{
		{"NaN", math.NaN(), palette.ErrNaN},
		{"Underflow", -0.1, palette.ErrUnderflow},
		{"Overflow", 1.1, palette.ErrOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cm.At(tc.v)
			assert.Equal(t, tc.err, err)
		})
	}

	cm.SetMin(2)
	_, err = cm.At(0.5)
	assert.Equal(t, colormap.ErrRange, err)
}

func TestGradient_EndpointsAndMidpoint(t *testing.T) {
	black := color.RGBA{A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	g, err := colormap.NewGradient("bw", []color.Color{black, white}, nil)
	require.NoError(t, err)

	lo, err := g.At(0)
	require.NoError(t, err)
	hi, err := g.At(1)
	require.NoError(t, err)
	mid, err := g.At(0.5)
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{A: 0xff}, lo)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, hi)
	m := mid.(color.NRGBA)
	assert.InDelta(t, 128, int(m.R), 1)
	assert.Equal(t, m.R, m.G)
}

func TestGradient_Alpha(t *testing.T) {
	cm, err := colormap.New("hot")
	require.NoError(t, err)
	cm.SetAlpha(0.5)
	c, err := cm.At(0.5)
	require.NoError(t, err)
	assert.Equal(t, uint8(128), c.(color.NRGBA).A)
}

func TestNewGradient_BadStops(t *testing.T) {
	ctrl := []color.Color{color.Black, color.White}
	for _, stops := range [][]float64{{0}, {0.2, 1}, {0, 0.9}, {1, 0}} {
		_, err := colormap.NewGradient("x", ctrl, stops)
		assert.Error(t, err, "stops %v", stops)
	}
	_, err := colormap.NewGradient("x", ctrl[:1], nil)
	assert.Error(t, err)
}

func TestNewGradient_RepeatedStop(t *testing.T) {
	ctrl := []color.Color{color.Black, color.Gray{Y: 0x80}, color.White}
	_, err := colormap.NewGradient("x", ctrl, []float64{0, 1, 1})
	assert.Error(t, err)
	_, err = colormap.NewGradient("x", ctrl, []float64{0, 0, 1})
	assert.Error(t, err)
}

func TestNew_Coolwarm(t *testing.T) {
	cm, err := colormap.New("coolwarm")
	require.NoError(t, err)
	for _, v := range []float64{0, 0.5, 1} {
		_, err := cm.At(v)
		assert.NoError(t, err, "v=%v", v)
	}
}

func TestSingle(t *testing.T) {
	assert.Equal(t, []color.Color{color.Black}, colormap.Single(color.Black).Colors())
}

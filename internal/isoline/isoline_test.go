package isoline_test

import (
	"errors"
	"math"
	"testing"

	"github.com/iburimskiy/waf-visualization/internal/isoline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid is a row-major test grid with unit spacing.
type grid [][]float64

func (g grid) Dims() (c, r int) { return len(g[0]), len(g) }
func (g grid) Z(c, r int) float64 { return g[r][c] }
func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

func TestLevels(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, isoline.Levels(0, 4, 3))
	assert.Nil(t, isoline.Levels(0, 4, 0))
	assert.Nil(t, isoline.Levels(1, 1, 5))

	lv := isoline.Levels(0, 1, 50)
	require.Len(t, lv, 50)
	assert.Greater(t, lv[0], 0.0)
	assert.Less(t, lv[49], 1.0)
}

func TestTrace_Shape(t *testing.T) {
	_, err := isoline.Trace(grid{{1, 2}}, 1.5)
	assert.True(t, errors.Is(err, isoline.ErrShape))
}

func TestTrace_SingleCellEdge(t *testing.T) {
	// Left column 0, right column 1: the 0.25 line is vertical at x=0.25.
	g := grid{
		{0, 1},
		{0, 1},
	}
	segs, err := isoline.Trace(g, 0.25)
	require.NoError(t, err)
	require.Len(t, segs, 1)

	s := segs[0]
	assert.InDelta(t, 0.25, s.A.X, 1e-12)
	assert.InDelta(t, 0.25, s.B.X, 1e-12)
	assert.InDelta(t, 1, math.Abs(s.A.Y-s.B.Y), 1e-12)
	assert.Equal(t, 0.25, s.Level)
}

func TestTrace_NoCrossing(t *testing.T) {
	segs, err := isoline.Trace(grid{{0, 0}, {0, 0}}, 1)
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestTrace_Saddle(t *testing.T) {
	g := grid{
		{1, 0},
		{0, 1},
	}
	cases := []struct {
		name  string
		level float64
	}{
		{"CenterAbove", 0.4},
		{"CenterBelow", 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs, err := isoline.Trace(g, tc.level)
			require.NoError(t, err)
			assert.Len(t, segs, 2)
		})
	}
}

func TestTrace_NaNSkipped(t *testing.T) {
	g := grid{
		{0, 1, 1},
		{0, math.NaN(), 1},
		{0, 1, 1},
	}
	segs, err := isoline.Trace(g, 0.5)
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestTrace_ClosedRing(t *testing.T) {
	g := grid{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	segs, err := isoline.Trace(g, 0.5)
	require.NoError(t, err)
	assert.Len(t, segs, 4)
	for _, s := range segs {
		for _, p := range []isoline.Point{s.A, s.B} {
			assert.InDelta(t, 0.5, math.Abs(p.X-1)+math.Abs(p.Y-1), 1e-12)
		}
	}
}

func TestTraceAll(t *testing.T) {
	g := grid{{0, 1}, {0, 1}}
	out, err := isoline.TraceAll(g, []float64{0.2, 0.8, 2})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Len(t, out[0], 1)
	assert.Len(t, out[1], 1)
	assert.Empty(t, out[2])
}

func TestLabelAnchor(t *testing.T) {
	_, ok := isoline.LabelAnchor(nil)
	assert.False(t, ok)

	p, ok := isoline.LabelAnchor([]isoline.Segment{
		{A: isoline.Point{X: 0, Y: 0}, B: isoline.Point{X: 1, Y: 0}},
		{A: isoline.Point{X: 0, Y: 2}, B: isoline.Point{X: 4, Y: 2}},
	})
	require.True(t, ok)
	assert.Equal(t, isoline.Point{X: 2, Y: 2}, p)
}

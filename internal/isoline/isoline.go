// Package isoline extracts iso-level line segments from a regular grid
// using marching squares.
//
// Grids use gonum/plot's plotter.GridXYZ convention: Z(c, r) is the value
// at column c (X axis) and row r (Y axis). Crossings are placed by linear
// interpolation along cell edges; saddle cells are disambiguated by the
// mean of their four corners. Cells touching a NaN are skipped.
package isoline

import (
	"errors"
	"math"

	"gonum.org/v1/plot/plotter"
)

// ErrShape indicates a grid with fewer than two rows or columns.
var ErrShape = errors.New("isoline: grid must be at least 2×2")

// Point is a position in grid data coordinates.
type Point struct{ X, Y float64 }

// Segment is one straight piece of an iso-line.
type Segment struct {
	A, B  Point
	Level float64
}

// Mid returns the segment midpoint.
func (s Segment) Mid() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Len returns the segment length in data units.
func (s Segment) Len() float64 {
	return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y)
}

// Levels returns n evenly spaced levels strictly between min and max.
func Levels(min, max float64, n int) []float64 {
	if n <= 0 || !(max > min) {
		return nil
	}
	lv := make([]float64, n)
	step := (max - min) / float64(n+1)
	for i := range lv {
		lv[i] = min + step*float64(i+1)
	}
	return lv
}

// Trace returns every segment where g crosses level.
func Trace(g plotter.GridXYZ, level float64) ([]Segment, error) {
	cols, rows := g.Dims()
	if cols < 2 || rows < 2 {
		return nil, ErrShape
	}
	var segs []Segment
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			segs = cell(segs, g, c, r, level)
		}
	}
	return segs, nil
}

// TraceAll traces every level and returns the segments grouped by level,
// in the order given.
func TraceAll(g plotter.GridXYZ, levels []float64) ([][]Segment, error) {
	out := make([][]Segment, len(levels))
	for i, lv := range levels {
		segs, err := Trace(g, lv)
		if err != nil {
			return nil, err
		}
		out[i] = segs
	}
	return out, nil
}

// corner order: (c,r), (c+1,r), (c+1,r+1), (c,r+1)
var (
	dc = [4]int{0, 1, 1, 0}
	dr = [4]int{0, 0, 1, 1}
)

func cell(segs []Segment, g plotter.GridXYZ, c, r int, level float64) []Segment {
	var (
		z     [4]float64
		p     [4]Point
		above [4]bool
	)
	for k := 0; k < 4; k++ {
		z[k] = g.Z(c+dc[k], r+dr[k])
		if math.IsNaN(z[k]) {
			return segs
		}
		p[k] = Point{X: g.X(c + dc[k]), Y: g.Y(r + dr[k])}
		above[k] = z[k] > level
	}

	// Edge k joins corner k and corner k+1.
	var (
		cross [4]Point
		hit   [4]bool
		n     int
	)
	for k := 0; k < 4; k++ {
		a, b := k, (k+1)%4
		if above[a] == above[b] {
			continue
		}
		t := (level - z[a]) / (z[b] - z[a])
		cross[k] = Point{X: p[a].X + t*(p[b].X-p[a].X), Y: p[a].Y + t*(p[b].Y-p[a].Y)}
		hit[k] = true
		n++
	}

	switch n {
	case 2:
		var ends []Point
		for k := 0; k < 4; k++ {
			if hit[k] {
				ends = append(ends, cross[k])
			}
		}
		segs = append(segs, Segment{A: ends[0], B: ends[1], Level: level})
	case 4:
		center := (z[0]+z[1]+z[2]+z[3])/4 > level
		if center == above[0] {
			segs = append(segs,
				Segment{A: cross[0], B: cross[1], Level: level},
				Segment{A: cross[2], B: cross[3], Level: level})
		} else {
			segs = append(segs,
				Segment{A: cross[3], B: cross[0], Level: level},
				Segment{A: cross[1], B: cross[2], Level: level})
		}
	}
	return segs
}

// LabelAnchor picks where to print a level label: the midpoint of the
// longest segment. ok is false when segs is empty.
func LabelAnchor(segs []Segment) (p Point, ok bool) {
	best := -1.0
	for _, s := range segs {
		if l := s.Len(); l > best {
			best, p, ok = l, s.Mid(), true
		}
	}
	return p, ok
}

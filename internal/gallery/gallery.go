// Package gallery lists the figures the program shows, in order.
package gallery

import (
	"fmt"
	"io"

	"github.com/iburimskiy/waf-visualization/internal/export"
	"github.com/iburimskiy/waf-visualization/internal/figure"
)

// Header is printed once before the first stage.
const Header = "=== Alternative visualizations to contour plots ==="

// Stage is one figure of the sequence.
type Stage struct {
	Announce string // printed before the figure is built
	Slug     string // file-safe name for exports
	Build    func() (*figure.Figure, error)
}

// Stages returns the fixed sequence: the six-panel gallery, the contour
// comparison, the colormap comparison and the 3-D overlay.
func Stages() []Stage {
	return []Stage{
		{
			Announce: "1. Show all alternative methods",
			Slug:     "1-gallery",
			Build:    figure.Gallery,
		},
		{
			Announce: "2. Compare contour plot with other methods",
			Slug:     "2-contour-comparison",
			Build:    figure.ContourComparison,
		},
		{
			Announce: "3. Colormap examples",
			Slug:     "3-colormaps",
			Build:    func() (*figure.Figure, error) { return figure.PaletteComparison() },
		},
		{
			Announce: "4. Interactive 3D plot",
			Slug:     "4-interactive-3d",
			Build:    figure.Interactive3D,
		},
	}
}

// Cursor walks the stages once, front to back.
type Cursor struct {
	stages []Stage
	next   int
}

// NewCursor returns a cursor positioned before the first stage.
func NewCursor(stages []Stage) *Cursor {
	return &Cursor{stages: stages}
}

// Next returns the following stage, or false once all stages are used.
func (c *Cursor) Next() (Stage, bool) {
	if c.next >= len(c.stages) {
		return Stage{}, false
	}
	s := c.stages[c.next]
	c.next++
	return s, true
}

// Position returns the 1-based index of the last stage returned by Next
// and the total number of stages.
func (c *Cursor) Position() (n, total int) {
	return c.next, len(c.stages)
}

// Announce prints the progress line for the n-th stage (1-based). Stages
// after the first are separated by a blank line.
func Announce(w io.Writer, n int, s Stage) {
	if n > 1 {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, s.Announce)
}

// Export builds every stage headless and saves it to store under its slug,
// announcing each on w. The first failure stops the run.
func Export(w io.Writer, stages []Stage, store *export.Store) error {
	for i, s := range stages {
		Announce(w, i+1, s)

		fig, err := s.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", s.Slug, err)
		}
		if err := store.Save(s.Slug, fig); err != nil {
			return fmt.Errorf("%s: %w", s.Slug, err)
		}
		fmt.Fprintf(w, "Saved figure to %s\n", export.Path(s.Slug))
	}
	return nil
}

// Package figure builds the gallery's figures.
//
// Each routine generates a fresh ambiguity.Sample, derives the view it
// encodes and lays one or more Panels out on a grid. A Panel is a gonum/plot
// plot plus an optional colorbar plot; 3-D panels draw through plot3d on a
// plot with hidden axes.
//
// Single-panel routines:
//
//   - Heatmap, LogHeatmap, DBHeatmap: rasterized heat maps.
//   - Surface, Contour3D: projected 3-D views with three labeled axes.
//   - FilledContour: banded heat map over a bilinearly refined grid.
//
// Composite routines: Gallery (2×3), ContourComparison (2×2),
// PaletteComparison (one panel per palette) and Interactive3D.
//
// Figures render to an in-memory image or PNG through vgimg; nothing is
// displayed here.
package figure

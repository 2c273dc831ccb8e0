// Package plot3d draws three-dimensional views inside an ordinary gonum/plot
// plot.
//
// A Projector maps a data Box onto a normalized cube and projects it
// orthographically for a Camera given in degrees of azimuth and elevation,
// the same parameters matplotlib's mplot3d uses. Projected coordinates are
// the plot's data coordinates, so the host plot should hide its own axes and
// let Axes draw the three labeled box edges.
//
// Plotters:
//
//   - Surface: height-mapped faces, far to near (painter's algorithm).
//   - Contour: iso-lines drawn at their level height, or flat on a base
//     plane when Flat is set.
//   - Axes: back panes, grid lines, ticks and axis labels.
package plot3d

package figure

import "errors"

var (
	// ErrEmptyFigure indicates a figure with no panels.
	ErrEmptyFigure = errors.New("figure: no panels to draw")
	// ErrLayout indicates more panels than grid cells.
	ErrLayout = errors.New("figure: panels do not fit the grid")
)

package colormap

import "errors"

var (
	// ErrUnknown indicates a palette name that is not registered.
	ErrUnknown = errors.New("colormap: unknown palette")
	// ErrRange indicates Max is below Min.
	ErrRange = errors.New("colormap: max must not be below min")
)

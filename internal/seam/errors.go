package seam

import "errors"

var (
	// ErrInvalidInput is returned for images or grids with no pixels,
	// for which no seam exists.
	ErrInvalidInput = errors.New("seam: invalid input")

	// ErrInvalidSeam is returned by Seam.Validate.
	ErrInvalidSeam = errors.New("seam: invalid seam")
)

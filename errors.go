package carver

import "errors"

var (
	// ErrInvalidDimension is returned when a resize request would leave
	// the image with a zero or negative dimension, or asks for enlargement.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrEmptyInput is returned for a nil image or an image without pixels.
	ErrEmptyInput = errors.New("empty input image")

	// ErrDegenerateSeam reports a seam which is not a connected top to bottom path.
	// It indicates a bug in the seam finder, not a user error.
	ErrDegenerateSeam = errors.New("degenerate seam")

	// ErrShapeMismatch is returned when the energy map does not cover the image.
	ErrShapeMismatch = errors.New("image and energy map shapes differ")
)

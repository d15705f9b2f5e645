package mtm

import (
	"errors"
)

var (
	// ErrShapeMismatch is returned when a template is larger than the
	// search image or does not have the same channel count and bit depth
	ErrShapeMismatch = errors.New("template shape mismatch")

	// ErrInvalidThreshold is returned when the score threshold is outside
	// the range of the correlation score
	ErrInvalidThreshold = errors.New("score threshold out of range")

	// ErrInvalidOverlap is returned when the maximum overlap ratio is
	// outside the range 0 to 1
	ErrInvalidOverlap = errors.New("max overlap out of range")

	// ErrInvalidMaxObjects is returned when a negative number of expected
	// objects is given
	ErrInvalidMaxObjects = errors.New("max objects must not be negative")

	// ErrInvalidDownscale is returned when a negative downscale factor
	// is given
	ErrInvalidDownscale = errors.New("downscale factor must be 1 or greater")

	// ErrLabelCount is returned when the number of labels does not match
	// the number of templates
	ErrLabelCount = errors.New("label count does not match template count")
)

package frame

import (
	"errors"
	"fmt"
	"image"
)

// ErrUnsupportedFormat is returned when a frame carries a format tag no decoder understands.
var ErrUnsupportedFormat = errors.New("unsupported format")

func unsupported(f Format) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// SizeError tells the caller that the frame buffer doesn't match the size implied
// by its dimensions and format.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("frame length (%d) not expected size (%d)", e.Actual, e.Expected)
}

// DimensionMismatchError is returned when a frame's dimensions differ from the
// dimensions of a raster that has already been allocated.
type DimensionMismatchError struct {
	Want image.Point
	Got  image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("frame dimensions %dx%d differ from raster dimensions %dx%d",
		e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

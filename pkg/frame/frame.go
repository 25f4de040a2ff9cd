package frame

import (
	"fmt"
	"image"
	"math"
)

// RawColorFrame is a single colour frame as delivered by the sensor. Data is
// borrowed for the duration of one decode call and never retained.
type RawColorFrame struct {
	Width  int
	Height int
	Format Format
	Data   []byte
}

// Size returns the frame dimensions.
func (f RawColorFrame) Size() image.Point {
	return image.Pt(f.Width, f.Height)
}

// Validate checks that the format is known and that Data holds exactly one
// frame worth of pixels.
func (f RawColorFrame) Validate() error {
	switch f.Format {
	case FormatBGR32:
	case FormatUYVY:
		if f.Width%2 != 0 {
			return fmt.Errorf("UYVY frame width (%d) must be even", f.Width)
		}
	default:
		return unsupported(f.Format)
	}

	if err := validateDimensions(f.Width, f.Height); err != nil {
		return err
	}

	expectedSize, err := FrameSize(f.Format, f.Width, f.Height)
	if err != nil {
		return err
	}
	if len(f.Data) != expectedSize {
		return &SizeError{Expected: expectedSize, Actual: len(f.Data)}
	}
	return nil
}

// RawDepthFrame is a single depth frame. Each sample packs a segmentation tag
// in its low TagBits bits and a distance in the remaining 13 bits.
type RawDepthFrame struct {
	Width   int
	Height  int
	Samples []int16
}

// Size returns the frame dimensions.
func (f RawDepthFrame) Size() image.Point {
	return image.Pt(f.Width, f.Height)
}

// Validate checks that Samples holds exactly Width*Height entries.
func (f RawDepthFrame) Validate() error {
	if err := validateDimensions(f.Width, f.Height); err != nil {
		return err
	}
	if expected := f.Width * f.Height; len(f.Samples) != expected {
		return &SizeError{Expected: expected, Actual: len(f.Samples)}
	}
	return nil
}

// maxBytesPerPixel bounds every buffer derived from frame dimensions: raw
// frames and the 4 byte per pixel raster alike.
const maxBytesPerPixel = 4

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}
	if width > math.MaxInt/maxBytesPerPixel/height {
		return fmt.Errorf("frame dimensions %dx%d overflow the frame size", width, height)
	}
	return nil
}

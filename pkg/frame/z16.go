package frame

import (
	"encoding/binary"
)

// ParseZ16 reads a little-endian Z16 buffer into a RawDepthFrame. Samples are
// laid out line by line, low byte first:
//
//	[Z_low(x_0,y_0), Z_high(x_0,y_0), Z_low(x_1,y_0), Z_high(x_1,y_0), ...
//	 Z_low(x_0,y_1), Z_high(x_0,y_1), ...]
func ParseZ16(data []byte, width, height int) (RawDepthFrame, error) {
	if err := validateDimensions(width, height); err != nil {
		return RawDepthFrame{}, err
	}
	expectedSize, _ := FrameSize(FormatZ16, width, height)
	if expectedSize != len(data) {
		return RawDepthFrame{}, &SizeError{Expected: expectedSize, Actual: len(data)}
	}

	samples := make([]int16, width*height)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[2*i : 2*i+2]))
	}
	return RawDepthFrame{
		Width:   width,
		Height:  height,
		Samples: samples,
	}, nil
}

package frame

// Return the number of bytes a single pixel occupies in the given format
var bytesPerPixelMap = map[Format]int{
	FormatBGR32: 4,
	FormatUYVY:  2, // 4 bytes per horizontal pixel pair
	FormatZ16:   2,
}

// BytesPerPixel returns the size of one pixel in f, or 0 if f is not supported.
func BytesPerPixel(f Format) int {
	return bytesPerPixelMap[f]
}

// FrameSize returns the number of bytes a width x height frame will occupy in f.
func FrameSize(f Format, width, height int) (int, error) {
	bpp, ok := bytesPerPixelMap[f]
	if !ok {
		return 0, unsupported(f)
	}
	return bpp * width * height, nil
}

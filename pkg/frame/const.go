package frame

type Format string

const (
	// Packed Formats

	// FormatBGR32 is a packed format with 4 bytes per pixel in B, G, R, X order.
	// The fourth byte is carried through untouched.
	FormatBGR32 Format = "BGR32"

	// YUV Formats

	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY Format = "UYVY"

	// Depth Formats

	// FormatZ16 https://www.kernel.org/doc/html/latest/userspace-api/media/v4l/pixfmt-z16.html
	FormatZ16 Format = "Z16"
)

// BGR aliases

// FormatBGRA is an alias of FormatBGR32
const FormatBGRA = FormatBGR32

const (
	// TagBits is the number of low bits of a depth sample holding the segmentation tag.
	TagBits = 3
	// TagMask extracts the segmentation tag from a depth sample.
	TagMask = 1<<TagBits - 1
	// MaxDepthDistance is the far clip of the sensor, in raw distance units.
	MaxDepthDistance = 8191
)

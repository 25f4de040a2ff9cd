package frame

// SplitDepth separates a depth sample into its segmentation tag and distance.
// The sample is read as 16 raw bits so the distance spans [0, MaxDepthDistance].
func SplitDepth(sample int16) (tag uint8, distance int) {
	bits := uint16(sample)
	return uint8(bits & TagMask), int(bits >> TagBits)
}

// DepthIntensity maps a distance to a brightness: 255 is nearest, 0 is at
// the far clip. Any int is accepted: distances at or below 0 give 255 and
// distances at or beyond MaxDepthDistance give 0.
func DepthIntensity(distance int) uint8 {
	switch {
	case distance <= 0:
		return 255
	case distance >= MaxDepthDistance:
		return 0
	}
	return uint8(255 - 255*distance/MaxDepthDistance)
}

// TagColor returns the false colour for a segmentation tag. Tag 0 means no
// tracked region and is drawn in grey at half intensity.
func TagColor(tag, intensity uint8) (r, g, b uint8) {
	switch tag & TagMask {
	case 0:
		half := intensity / 2
		return half, half, half
	case 1:
		return intensity, 0, 0
	case 2:
		return 0, intensity, 0
	case 3:
		return 0, 0, intensity
	case 4:
		return intensity, intensity, 0
	case 5:
		return intensity, 0, intensity
	case 6:
		return 0, intensity, intensity
	default:
		return intensity, intensity, intensity
	}
}

// DecodeDepth writes the false-colour visualisation of samples into pix, 4
// bytes per sample in B, G, R, A order. pix must hold 4*len(samples) bytes.
func DecodeDepth(pix []uint8, samples []int16) {
	for i, sample := range samples {
		tag, distance := SplitDepth(sample)
		r, g, b := TagColor(tag, DepthIntensity(distance))

		s := pix[4*i : 4*i+4 : 4*i+4]
		s[0] = b
		s[1] = g
		s[2] = r
		s[3] = 0xff
	}
}

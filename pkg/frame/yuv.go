package frame

func clamp(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// YUVToRGB converts one studio-swing YUV sample to RGB. Channels are clamped
// to [0, 255] and truncated.
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	yy := 1.164 * (float64(y) - 16)
	uu := float64(u) - 128
	vv := float64(v) - 128

	b = clamp(yy + 2.018*uu)
	g = clamp(yy - 0.813*vv - 0.391*uu)
	r = clamp(yy + 1.596*vv)
	return
}

// DecodeUYVY decodes the U, Y0, V, Y1 groups of src into dst, one PackBGRA
// value per pixel. Both pixels of a group share U and V. dst must hold at
// least len(src)/2 entries.
func DecodeUYVY(dst []uint32, src []byte) {
	j := 0
	for i := 0; i+3 < len(src); i += 4 {
		u, y0, v, y1 := src[i], src[i+1], src[i+2], src[i+3]

		r, g, b := YUVToRGB(y0, u, v)
		dst[j] = PackBGRA(r, g, b, 0xff)
		r, g, b = YUVToRGB(y1, u, v)
		dst[j+1] = PackBGRA(r, g, b, 0xff)
		j += 2
	}
}

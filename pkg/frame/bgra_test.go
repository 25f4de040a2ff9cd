package frame

import (
	"image"
	"image/color"
	"testing"
)

var image2x1 = image.Rect(0, 0, 2, 1)

func TestBGRA(t *testing.T) {
	raster := NewBGRA(image.Rect(0, 0, 2, 2))
	if raster.Stride != 8 || len(raster.Pix) != 16 {
		t.Fatalf("unexpected layout: stride %d, len %d", raster.Stride, len(raster.Pix))
	}

	copy(raster.Pix[raster.PixOffset(1, 1):], []uint8{0x10, 0x20, 0x30, 0xff})

	if c := raster.At(1, 1); c != (color.NRGBA{R: 0x30, G: 0x20, B: 0x10, A: 0xff}) {
		t.Errorf("At(1, 1) = %v", c)
	}
	if c := raster.At(0, 0); c != (color.NRGBA{}) {
		t.Errorf("At(0, 0) = %v, expected transparent black", c)
	}
	if c := raster.At(5, 5); c != (color.NRGBA{}) {
		t.Errorf("out of bounds At = %v", c)
	}
	if raster.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", raster.Bounds())
	}
}

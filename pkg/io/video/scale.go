package video

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Scaler used by Scale.
var (
	ScalerNearestNeighbor = draw.Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = draw.Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = draw.Scaler(draw.BiLinear)
	ScalerCatmullRom      = draw.Scaler(draw.CatmullRom)
)

// Scale resizes src into a new RGBA image of width x height for presentation.
// If one of width or height is 0, it is derived from the other to keep the
// aspect ratio of src.
func Scale(src image.Image, width, height int, scaler draw.Scaler) (*image.RGBA, error) {
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("can't scale an empty image")
	}

	switch {
	case width <= 0 && height <= 0:
		return nil, fmt.Errorf("invalid scale target %dx%d", width, height)
	case width <= 0:
		width = bounds.Dx() * height / bounds.Dy()
	case height <= 0:
		height = bounds.Dy() * width / bounds.Dx()
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scale target %dx%d collapses to zero", width, height)
	}

	if scaler == nil {
		scaler = ScalerNearestNeighbor
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Rect, src, bounds, draw.Src, nil)
	return dst, nil
}

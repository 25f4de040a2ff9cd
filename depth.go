package kinectframe

import (
	"github.com/pion/kinectframe/pkg/frame"
)

// DepthFrameDecoder converts depth frames into a false-colour BGRA raster.
// Hue encodes the segmentation tag and brightness encodes proximity.
type DepthFrameDecoder struct {
	rasterHolder
}

// NewDepthFrameDecoder creates a decoder with no raster allocated yet.
func NewDepthFrameDecoder() *DepthFrameDecoder {
	return &DepthFrameDecoder{
		rasterHolder: rasterHolder{name: "depth"},
	}
}

// Decode overwrites every pixel of the raster with the visualisation of f and
// notifies subscribers. Errors follow the same rules as ColorFrameDecoder.Decode.
func (d *DepthFrameDecoder) Decode(f frame.RawDepthFrame) error {
	if err := f.Validate(); err != nil {
		return d.reject(err)
	}

	raster, err := d.prepare(f.Size())
	if err != nil {
		return d.reject(err)
	}

	frame.DecodeDepth(raster.Pix, f.Samples)

	return d.notifier.NotifyChanged()
}

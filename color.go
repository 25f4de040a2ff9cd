package kinectframe

import (
	"github.com/pion/kinectframe/pkg/frame"
)

// ColorFrameDecoder converts BGR32 or UYVY colour frames into a BGRA raster.
type ColorFrameDecoder struct {
	rasterHolder

	// scratch holds one packed BGRA pixel per raster pixel for the UYVY path.
	// It is sized once and reused.
	scratch []uint32
}

// NewColorFrameDecoder creates a decoder with no raster allocated yet.
func NewColorFrameDecoder() *ColorFrameDecoder {
	return &ColorFrameDecoder{
		rasterHolder: rasterHolder{name: "color"},
	}
}

// Decode overwrites the raster with f and notifies subscribers. On a
// validation error the raster is left untouched and nobody is notified. A
// subscriber error is returned as a *notify.SubscriberError after the raster
// has been fully written.
func (d *ColorFrameDecoder) Decode(f frame.RawColorFrame) error {
	if err := f.Validate(); err != nil {
		return d.reject(err)
	}

	raster, err := d.prepare(f.Size())
	if err != nil {
		return d.reject(err)
	}

	switch f.Format {
	case frame.FormatBGR32:
		copy(raster.Pix, f.Data)
	case frame.FormatUYVY:
		if d.scratch == nil {
			d.scratch = make([]uint32, f.Width*f.Height)
		}
		frame.DecodeUYVY(d.scratch, f.Data)
		raster.SetPacked(d.scratch)
	}

	return d.notifier.NotifyChanged()
}

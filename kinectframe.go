// Package kinectframe turns raw Kinect colour and depth frames into BGRA
// display rasters.
//
// Each decoder owns a single raster. It is allocated by the first successful
// Decode, keeps its dimensions and identity for the decoder's lifetime, and is
// overwritten in place by every later Decode. Subscribers are notified
// synchronously after each successful Decode and read the raster by
// reference.
//
// Decoders are not safe for concurrent use. Frames for one decoder must be
// delivered from a single goroutine, and a reader on another goroutine must
// synchronise with it, for example by taking a copy with video.FrameBuffer
// from inside a subscriber.
package kinectframe

import (
	"image"

	"github.com/pion/kinectframe/internal/logging"
	"github.com/pion/kinectframe/pkg/frame"
	"github.com/pion/kinectframe/pkg/notify"
)

var logger = logging.NewLogger("kinectframe")

// rasterHolder carries the state shared by both decoders: the owned raster
// and its subscribers.
type rasterHolder struct {
	name     string
	raster   *frame.BGRA
	notifier notify.Notifier
}

// Raster returns the decoder's raster, or nil before the first successful
// Decode. The returned raster is overwritten by every Decode and must be
// treated as read-only.
func (h *rasterHolder) Raster() *frame.BGRA {
	return h.raster
}

// Subscribe registers fn to be called after every successful Decode.
func (h *rasterHolder) Subscribe(fn func() error) notify.Handle {
	return h.notifier.Subscribe(fn)
}

// Unsubscribe removes a subscription created by Subscribe.
func (h *rasterHolder) Unsubscribe(handle notify.Handle) bool {
	return h.notifier.Unsubscribe(handle)
}

// prepare returns the raster for a frame of the given size, allocating it on
// first use.
func (h *rasterHolder) prepare(size image.Point) (*frame.BGRA, error) {
	if h.raster == nil {
		h.raster = frame.NewBGRA(image.Rectangle{Max: size})
		logger.Debugf("%s: allocated %dx%d raster", h.name, size.X, size.Y)
		return h.raster, nil
	}

	if want := h.raster.Rect.Size(); want != size {
		return nil, &frame.DimensionMismatchError{Want: want, Got: size}
	}
	return h.raster, nil
}

func (h *rasterHolder) reject(err error) error {
	logger.Debugf("%s: frame rejected: %v", h.name, err)
	return err
}

var (
	_ notify.Subject = &ColorFrameDecoder{}
	_ notify.Subject = &DepthFrameDecoder{}
)

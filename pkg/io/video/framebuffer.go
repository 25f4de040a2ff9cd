package video

import (
	"sync"

	"github.com/pion/kinectframe/pkg/frame"
)

// FrameBuffer keeps a private copy of a raster so it can be read from a
// goroutine other than the one decoding frames. Call StoreCopy from a decoder
// subscriber and Load from the reader.
type FrameBuffer struct {
	mu     sync.Mutex
	buffer []uint8
	tmp    *frame.BGRA
}

// NewFrameBuffer creates a new FrameBuffer instance and initialize internal buffer
// with initialSize
func NewFrameBuffer(initialSize int) *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]uint8, initialSize),
	}
}

func (buff *FrameBuffer) store(src []uint8) {
	neededSize := len(src)
	if len(buff.buffer) < neededSize {
		if cap(buff.buffer) >= neededSize {
			buff.buffer = buff.buffer[:neededSize]
		} else {
			buff.buffer = make([]uint8, neededSize)
		}
	}
	copy(buff.buffer, src)
}

// StoreCopy makes a copy of src and store its copy. StoreCopy will reuse as much memory as it can
// from the previous copies. If src has the same resolution as the previous call, no memory is
// allocated and only the content is copied.
func (buff *FrameBuffer) StoreCopy(src *frame.BGRA) {
	buff.mu.Lock()
	defer buff.mu.Unlock()

	if buff.tmp == nil {
		buff.tmp = &frame.BGRA{}
	}
	*buff.tmp = *src

	buff.store(src.Pix)
	buff.tmp.Pix = buff.buffer[:len(src.Pix):len(src.Pix)]
}

// Load returns a copy of the last stored raster, or nil if nothing has been
// stored yet. The returned raster is owned by the caller.
func (buff *FrameBuffer) Load() *frame.BGRA {
	buff.mu.Lock()
	defer buff.mu.Unlock()

	if buff.tmp == nil {
		return nil
	}
	clone := *buff.tmp
	clone.Pix = append([]uint8(nil), buff.tmp.Pix...)
	return &clone
}

package video

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/kinectframe/pkg/frame"
)

func TestFrameBuffer(t *testing.T) {
	buffer := NewFrameBuffer(0)
	assert.Nil(t, buffer.Load())

	src := frame.NewBGRA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	buffer.StoreCopy(src)

	loaded := buffer.Load()
	require.NotNil(t, loaded)
	assert.Equal(t, src.Pix, loaded.Pix)
	assert.Equal(t, src.Rect, loaded.Rect)
	assert.Equal(t, src.Stride, loaded.Stride)

	// Neither the source nor the loaded copy share memory with the buffer.
	src.Pix[0] = 0xff
	loaded.Pix[1] = 0xff
	again := buffer.Load()
	assert.Equal(t, uint8(0), again.Pix[0])
	assert.Equal(t, uint8(1), again.Pix[1])
}

func TestFrameBufferReusesMemory(t *testing.T) {
	buffer := NewFrameBuffer(16)
	src := frame.NewBGRA(image.Rect(0, 0, 2, 2))

	buffer.StoreCopy(src)
	first := &buffer.buffer[0]

	src.Pix[3] = 0x80
	buffer.StoreCopy(src)
	assert.Same(t, first, &buffer.buffer[0], "same-size copies must not reallocate")
	assert.Equal(t, uint8(0x80), buffer.Load().Pix[3])

	bigger := frame.NewBGRA(image.Rect(0, 0, 4, 4))
	buffer.StoreCopy(bigger)
	assert.Len(t, buffer.Load().Pix, 64)
}

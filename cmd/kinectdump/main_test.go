package main

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/pion/kinectframe/pkg/frame"
)

func decodeFile(t *testing.T, path string, decode func(r io.Reader) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := decode(f)
	require.NoError(t, err)
	return img
}

func TestRunColor(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "color.raw")
	out := filepath.Join(dir, "color.png")

	// 2x2 BGR32, every pixel opaque blue
	data := []byte{
		0xff, 0, 0, 0xff, 0xff, 0, 0, 0xff,
		0xff, 0, 0, 0xff, 0xff, 0, 0, 0xff,
	}
	require.NoError(t, os.WriteFile(in, data, 0o644))

	require.NoError(t, run(options{
		kind:   "color",
		format: frame.FormatBGR32,
		width:  2,
		height: 2,
		in:     in,
		out:    out,
	}))

	img := decodeFile(t, out, png.Decode)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestRunDepthScaled(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "depth.raw")
	out := filepath.Join(dir, "depth.bmp")

	// 4x2 frame, tag 2 at distance 0 everywhere
	data := make([]byte, 2*4*2)
	for i := 0; i < len(data); i += 2 {
		binary.LittleEndian.PutUint16(data[i:], 0x0002)
	}
	require.NoError(t, os.WriteFile(in, data, 0o644))

	require.NoError(t, run(options{
		kind:       "depth",
		width:      4,
		height:     2,
		in:         in,
		out:        out,
		scaleWidth: 8,
	}))

	img := decodeFile(t, out, bmp.Decode)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(color.RGBA{G: 0xff, A: 0xff}), color.RGBAModel.Convert(img.At(3, 2)))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "short.raw")
	require.NoError(t, os.WriteFile(in, make([]byte, 3), 0o644))

	cases := map[string]options{
		"MissingInput":      {kind: "color", format: frame.FormatBGR32, width: 2, height: 2, out: filepath.Join(dir, "a.png")},
		"UnknownKind":       {kind: "skeleton", width: 2, height: 2, in: in, out: filepath.Join(dir, "b.png")},
		"ShortColorFrame":   {kind: "color", format: frame.FormatBGR32, width: 2, height: 2, in: in, out: filepath.Join(dir, "c.png")},
		"ShortDepthFrame":   {kind: "depth", width: 2, height: 2, in: in, out: filepath.Join(dir, "d.png")},
		"InvalidDimensions": {kind: "color", format: frame.FormatUYVY, width: 0, height: 0, in: in, out: filepath.Join(dir, "e.gif")},
	}
	for name, opts := range cases {
		opts := opts
		t.Run(name, func(t *testing.T) {
			assert.Error(t, run(opts))
		})
	}

	t.Run("UnsupportedExtension", func(t *testing.T) {
		assert.Error(t, writeImage(filepath.Join(dir, "f.gif"), frame.NewBGRA(image.Rect(0, 0, 1, 1))))
	})
}

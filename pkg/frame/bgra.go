package frame

import (
	"encoding/binary"
	"image"
	"image/color"
)

// BGRA is the display raster produced by the decoders.
type BGRA struct {
	// Pix holds the image's pixels, in B, G, R, A order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewBGRA returns a new BGRA raster with the given bounds.
func NewBGRA(r image.Rectangle) *BGRA {
	return &BGRA{
		Pix:    make([]uint8, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

func (p *BGRA) ColorModel() color.Model {
	return color.NRGBAModel
}

func (p *BGRA) Bounds() image.Rectangle {
	return p.Rect
}

func (p *BGRA) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *BGRA) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Rect) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+4 : i+4] // Small capacity improves performance, see https://golang.org/issue/27857
	return color.NRGBA{s[2], s[1], s[0], s[3]}
}

// SetPacked overwrites Pix with src, one PackBGRA value per pixel in row-major order.
func (p *BGRA) SetPacked(src []uint32) {
	for i, v := range src {
		binary.LittleEndian.PutUint32(p.Pix[4*i:], v)
	}
}

// PackBGRA packs a pixel into a uint32 whose little-endian byte layout is B, G, R, A.
func PackBGRA(r, g, b, a uint8) uint32 {
	return uint32(b) | uint32(g)<<8 | uint32(r)<<16 | uint32(a)<<24
}

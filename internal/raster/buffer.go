package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Buffer is a rectangular raster of non-premultiplied RGBA, 4 bytes per
// pixel, row-major with no row padding.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// New returns a zeroed (transparent black) buffer of the given dimensions.
func New(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// FromImage copies an image into a new buffer, converting to
// non-premultiplied RGBA.
func FromImage(img image.Image) *Buffer {
	src := imaging.Clone(img)
	b := New(src.Rect.Dx(), src.Rect.Dy())
	copy(b.pix, src.Pix)
	return b
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Data returns the raw pixel data.
func (b *Buffer) Data() []uint8 {
	return b.pix
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := New(b.width, b.height)
	copy(out.pix, b.pix)
	return out
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// ignored.
func (b *Buffer) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// PixelAt returns the color of a single pixel. Out-of-range coordinates
// return transparent black.
func (b *Buffer) PixelAt(x, y int) color.NRGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}
	}
	i := (y*b.width + x) * 4
	return color.NRGBA{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// ToImage converts the buffer to an image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.PixelAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

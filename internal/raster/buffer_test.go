package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	b := New(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("New() size = %dx%d, want 4x3", b.Width(), b.Height())
	}
	if len(b.Data()) != 4*3*4 {
		t.Errorf("New() data length = %d, want %d", len(b.Data()), 4*3*4)
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("New() data[%d] = %d, want 0", i, v)
		}
	}
}

func TestNewZeroSize(t *testing.T) {
	b := New(0, 0)
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("New(0,0) size = %dx%d, want 0x0", b.Width(), b.Height())
	}
	if len(b.Data()) != 0 {
		t.Errorf("New(0,0) data length = %d, want 0", len(b.Data()))
	}
}

func TestSetPixelPixelAt(t *testing.T) {
	b := New(3, 3)
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	b.SetPixel(1, 2, c)

	if got := b.PixelAt(1, 2); got != c {
		t.Errorf("PixelAt(1,2) = %v, want %v", got, c)
	}
	if got := b.PixelAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("PixelAt(0,0) = %v, want zero", got)
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	b := New(2, 2)
	b.SetPixel(-1, 0, color.NRGBA{R: 255})
	b.SetPixel(2, 0, color.NRGBA{R: 255})
	b.SetPixel(0, -1, color.NRGBA{R: 255})
	b.SetPixel(0, 2, color.NRGBA{R: 255})

	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("out-of-range SetPixel wrote data[%d] = %d", i, v)
		}
	}
	if got := b.PixelAt(5, 5); got != (color.NRGBA{}) {
		t.Errorf("PixelAt(5,5) = %v, want zero", got)
	}
}

func TestClone(t *testing.T) {
	b := New(2, 2)
	b.SetPixel(0, 0, color.NRGBA{R: 100, G: 150, B: 200, A: 255})

	c := b.Clone()
	if c.Width() != b.Width() || c.Height() != b.Height() {
		t.Fatalf("Clone() size = %dx%d, want %dx%d", c.Width(), c.Height(), b.Width(), b.Height())
	}
	if c.PixelAt(0, 0) != b.PixelAt(0, 0) {
		t.Errorf("Clone() pixel = %v, want %v", c.PixelAt(0, 0), b.PixelAt(0, 0))
	}

	c.SetPixel(0, 0, color.NRGBA{})
	if b.PixelAt(0, 0) == (color.NRGBA{}) {
		t.Error("mutating the clone changed the original")
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	b := FromImage(img)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("FromImage() size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if got := b.PixelAt(0, 0); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("PixelAt(0,0) = %v", got)
	}
	if got := b.PixelAt(2, 1); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("PixelAt(2,1) = %v", got)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	b := FromImage(img)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("FromImage() size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if got := b.PixelAt(0, 0); got != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("PixelAt(0,0) = %v, want {9 8 7 255}", got)
	}
}

func TestToImageRoundTrip(t *testing.T) {
	b := New(2, 2)
	b.SetPixel(0, 0, color.NRGBA{R: 11, G: 22, B: 33, A: 44})
	b.SetPixel(1, 1, color.NRGBA{R: 55, G: 66, B: 77, A: 88})

	img := b.ToImage()
	back := FromImage(img)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if back.PixelAt(x, y) != b.PixelAt(x, y) {
				t.Errorf("round trip pixel (%d,%d) = %v, want %v", x, y, back.PixelAt(x, y), b.PixelAt(x, y))
			}
		}
	}
}

func TestImageInterface(t *testing.T) {
	b := New(2, 2)
	b.SetPixel(1, 0, color.NRGBA{R: 255, A: 255})

	var img image.Image = b
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(2,2)", img.Bounds())
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() != color.NRGBAModel")
	}
	r, _, _, a := img.At(1, 0).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("At(1,0).RGBA() r=%d a=%d, want 65535 65535", r, a)
	}
}

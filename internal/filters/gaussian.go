package filters

import (
	"github.com/vfshera/defocus/internal/kernel"
	"github.com/vfshera/defocus/internal/raster"
)

// Gaussian blurs src with a separable Gaussian kernel and returns a new
// buffer of the same dimensions.
func Gaussian(src *raster.Buffer, s GaussianSettings) *raster.Buffer {
	radius := clampRadius(s.Radius)
	Logger().Debug("gaussian blur", "radius", radius, "width", src.Width(), "height", src.Height())
	return convolveSeparable(src, kernel.Gaussian(radius), radius)
}

// Box blurs src with a flat separable kernel and returns a new buffer of
// the same dimensions.
func Box(src *raster.Buffer, s BoxSettings) *raster.Buffer {
	radius := clampRadius(s.Radius)
	Logger().Debug("box blur", "radius", radius, "width", src.Width(), "height", src.Height())
	return convolveSeparable(src, kernel.Box(radius), radius)
}

func convolveSeparable(src *raster.Buffer, weights []float64, radius int) *raster.Buffer {
	tmp := convolvePass(src, weights, radius, true)
	return convolvePass(tmp, weights, radius, false)
}

// convolvePass applies a 1-D kernel along one axis with clamp-to-edge
// sampling.
func convolvePass(src *raster.Buffer, weights []float64, radius int, horizontal bool) *raster.Buffer {
	w, h := src.Width(), src.Height()
	out := raster.New(w, h)
	in := src.Data()
	dst := out.Data()

	forEachRow(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				var r, g, b, a float64
				for k := -radius; k <= radius; k++ {
					sx, sy := x, y
					if horizontal {
						sx = clampInt(x+k, 0, w-1)
					} else {
						sy = clampInt(y+k, 0, h-1)
					}
					wk := weights[k+radius]
					p := (sy*w + sx) * 4
					r += wk * float64(in[p])
					g += wk * float64(in[p+1])
					b += wk * float64(in[p+2])
					a += wk * float64(in[p+3])
				}
				o := (y*w + x) * 4
				dst[o] = clampByte(r)
				dst[o+1] = clampByte(g)
				dst[o+2] = clampByte(b)
				dst[o+3] = clampByte(a)
			}
		}
	})
	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package filters

import (
	"github.com/vfshera/defocus/internal/kernel"
	"github.com/vfshera/defocus/internal/raster"
)

// Lens blurs src with an iris-shaped kernel and returns a new buffer.
// Samples brighter than the highlight threshold get extra weight, which
// makes specular highlights bloom into the iris shape.
func Lens(src *raster.Buffer, s LensSettings) *raster.Buffer {
	w, h := src.Width(), src.Height()
	radius := clampRadius(s.Radius)
	taps := kernel.Iris(radius, s.IrisShape, s.IrisRotation)
	brightness := s.HighlightBrightness / 100
	threshold := s.HighlightThreshold
	boost := threshold < 255
	Logger().Debug("lens blur", "radius", radius, "taps", len(taps), "width", w, "height", h)

	out := raster.New(w, h)
	in := src.Data()
	dst := out.Data()

	forEachRow(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				var r, g, b, a, total float64
				for _, tap := range taps {
					sx := x + tap.DX
					sy := y + tap.DY
					if sx < 0 || sx >= w || sy < 0 || sy >= h {
						continue
					}
					p := (sy*w + sx) * 4
					pr := float64(in[p])
					pg := float64(in[p+1])
					pb := float64(in[p+2])
					weight := tap.Weight
					if boost {
						lum := 0.299*pr + 0.587*pg + 0.114*pb
						if lum > threshold {
							weight *= 1 + brightness*(lum-threshold)/(255-threshold)
						}
					}
					r += weight * pr
					g += weight * pg
					b += weight * pb
					a += weight * float64(in[p+3])
					total += weight
				}
				o := (y*w + x) * 4
				if total == 0 {
					copy(dst[o:o+4], in[o:o+4])
					continue
				}
				dst[o] = clampByte(r / total)
				dst[o+1] = clampByte(g / total)
				dst[o+2] = clampByte(b / total)
				dst[o+3] = clampByte(a / total)
			}
		}
	})
	return out
}

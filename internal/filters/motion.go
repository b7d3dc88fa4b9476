package filters

import (
	"math"

	"github.com/vfshera/defocus/internal/raster"
)

// Motion blurs src along a straight line at the given angle and returns a
// new buffer. Samples falling outside the buffer are dropped, so border
// pixels average over fewer taps than interior pixels.
func Motion(src *raster.Buffer, s MotionSettings) *raster.Buffer {
	w, h := src.Width(), src.Height()
	span := clampRadius(s.Distance)
	sin, cos := math.Sincos(s.Angle * math.Pi / 180)
	Logger().Debug("motion blur", "angle", s.Angle, "span", span, "width", w, "height", h)

	out := raster.New(w, h)
	in := src.Data()
	dst := out.Data()

	forEachRow(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				var r, g, b, a float64
				count := 0
				for i := -span; i <= span; i++ {
					sx := int(math.Round(float64(x) + cos*float64(i)))
					sy := int(math.Round(float64(y) + sin*float64(i)))
					if sx < 0 || sx >= w || sy < 0 || sy >= h {
						continue
					}
					p := (sy*w + sx) * 4
					r += float64(in[p])
					g += float64(in[p+1])
					b += float64(in[p+2])
					a += float64(in[p+3])
					count++
				}
				// the i = 0 tap is always in range
				n := float64(count)
				o := (y*w + x) * 4
				dst[o] = clampByte(r / n)
				dst[o+1] = clampByte(g / n)
				dst[o+2] = clampByte(b / n)
				dst[o+3] = clampByte(a / n)
			}
		}
	})
	return out
}

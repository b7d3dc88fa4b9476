package filters

import (
	"math"

	"github.com/vfshera/defocus/internal/raster"
)

// Radial blurs src around a center point and returns a new buffer. Spin
// rotates each pixel's angle, zoom scales its distance from the center.
// Sampled coordinates are clamped into the buffer, unlike motion blur's
// drop policy.
func Radial(src *raster.Buffer, s RadialSettings) *raster.Buffer {
	w, h := src.Width(), src.Height()
	samples := radialSamples(s.Quality)
	amount := s.Amount / 100
	cx := float64(w) * s.CenterX
	cy := float64(h) * s.CenterY
	zoom := s.Method == MethodZoom
	Logger().Debug("radial blur", "method", string(s.Method), "samples", samples, "amount", s.Amount, "width", w, "height", h)

	out := raster.New(w, h)
	in := src.Data()
	dst := out.Data()
	n := float64(samples)

	forEachRow(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				dist := math.Sqrt(dx*dx + dy*dy)
				angle := math.Atan2(dy, dx)

				var r, g, b, a float64
				for i := 0; i < samples; i++ {
					t := (float64(i)/n - 0.5) * amount
					var fx, fy float64
					if zoom {
						fx = cx + dx*(1+t)
						fy = cy + dy*(1+t)
					} else {
						sin, cos := math.Sincos(angle + t)
						fx = cx + cos*dist
						fy = cy + sin*dist
					}
					sx := clampInt(int(math.Round(fx)), 0, w-1)
					sy := clampInt(int(math.Round(fy)), 0, h-1)
					p := (sy*w + sx) * 4
					r += float64(in[p])
					g += float64(in[p+1])
					b += float64(in[p+2])
					a += float64(in[p+3])
				}
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

// radialSamples maps quality to tap count; unrecognized values fall back
// to the better bucket.
func radialSamples(q RadialQuality) int {
	switch q {
	case QualityDraft:
		return 8
	case QualityBest:
		return 32
	default:
		return 16
	}
}

package filters

import (
	"math"

	"github.com/vfshera/defocus/internal/raster"
)

// TiltShift keeps a horizontal band of src sharp and blends the rest toward
// a Gaussian-blurred copy, with a quadratic falloff through the transition
// band. The band can be tilted by angle degrees. Alpha is always taken from
// the sharp input.
func TiltShift(src *raster.Buffer, s TiltShiftSettings) *raster.Buffer {
	w, h := src.Width(), src.Height()
	blurred := Gaussian(src, GaussianSettings{Radius: s.Blur})
	focusCenter := float64(h) * s.FocusY
	focusHalf := float64(h) * s.FocusHeight / 2
	transition := float64(h) * s.TransitionSize
	tan := math.Tan(s.Angle * math.Pi / 180)
	halfWidth := float64(w) / 2
	Logger().Debug("tilt shift", "blur", s.Blur, "focusY", s.FocusY, "angle", s.Angle, "width", w, "height", h)

	out := raster.New(w, h)
	sharp := src.Data()
	soft := blurred.Data()
	dst := out.Data()

	forEachRow(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				adjusted := float64(y) + tan*(float64(x)-halfWidth)
				d := math.Abs(adjusted - focusCenter)

				var t float64
				switch {
				case d < focusHalf:
					t = 0
				case d < focusHalf+transition:
					e := (d - focusHalf) / transition
					t = e * e
				default:
					t = 1
				}

				o := (y*w + x) * 4
				dst[o] = clampByte(lerp(float64(sharp[o]), float64(soft[o]), t))
				dst[o+1] = clampByte(lerp(float64(sharp[o+1]), float64(soft[o+1]), t))
				dst[o+2] = clampByte(lerp(float64(sharp[o+2]), float64(soft[o+2]), t))
				dst[o+3] = sharp[o+3]
			}
		}
	})
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

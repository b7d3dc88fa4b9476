package filters

import (
	"math"

	"github.com/vfshera/defocus/internal/raster"
)

// Surface blurs src while preserving edges: neighbors are weighted by both
// color similarity to the center pixel and spatial distance, so smooth
// regions blend while contrasting regions stay put.
func Surface(src *raster.Buffer, s SurfaceSettings) *raster.Buffer {
	w, h := src.Width(), src.Height()
	radius := clampRadius(s.Radius)
	threshold := s.Threshold
	if threshold < 1 {
		threshold = 1
	}
	Logger().Debug("surface blur", "radius", radius, "threshold", threshold, "width", w, "height", h)

	out := raster.New(w, h)
	in := src.Data()
	dst := out.Data()

	forEachRow(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				c := (y*w + x) * 4
				cr := float64(in[c])
				cg := float64(in[c+1])
				cb := float64(in[c+2])

				var r, g, b, a, total float64
				for dy := -radius; dy <= radius; dy++ {
					sy := y + dy
					if sy < 0 || sy >= h {
						continue
					}
					for dx := -radius; dx <= radius; dx++ {
						sx := x + dx
						if sx < 0 || sx >= w {
							continue
						}
						p := (sy*w + sx) * 4
						pr := float64(in[p])
						pg := float64(in[p+1])
						pb := float64(in[p+2])

						diff := math.Abs(pr-cr) + math.Abs(pg-cg) + math.Abs(pb-cb)
						colorWeight := 1 - diff/(3*threshold)
						if colorWeight <= 0 {
							continue
						}
						weight := colorWeight / (1 + math.Sqrt(float64(dx*dx+dy*dy)))
						r += weight * pr
						g += weight * pg
						b += weight * pb
						a += weight * float64(in[p+3])
						total += weight
					}
				}
				// the center tap has diff 0, so total is never zero
				o := c
				dst[o] = clampByte(r / total)
				dst[o+1] = clampByte(g / total)
				dst[o+2] = clampByte(b / total)
				dst[o+3] = clampByte(a / total)
			}
		}
	})
	return out
}

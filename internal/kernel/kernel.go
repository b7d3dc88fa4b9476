package kernel

import "math"

// Gaussian returns normalized 1-D weights covering offsets [-radius, radius]
// with sigma = radius/3. The weights sum to 1.
func Gaussian(radius int) []float64 {
	if radius < 1 {
		radius = 1
	}
	sigma := float64(radius) / 3.0
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range weights {
		x := float64(i - radius)
		w := math.Exp(-(x * x) / (2 * sigma * sigma))
		weights[i] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// Box returns flat 1-D weights covering offsets [-radius, radius].
func Box(radius int) []float64 {
	if radius < 1 {
		radius = 1
	}
	weights := make([]float64, 2*radius+1)
	w := 1.0 / float64(len(weights))
	for i := range weights {
		weights[i] = w
	}
	return weights
}

// Tap is a single 2-D kernel sample: an integer offset and its weight.
type Tap struct {
	DX, DY int
	Weight float64
}

// Iris returns the tap set of an iris-shaped kernel: every integer offset
// within radius that falls inside a regular polygon with the given number of
// sides, rotated by rotation degrees. Side counts below 3 are raised to 3.
// Weights are uniform and sum to 1. The set is never empty: if no offset
// passes the polygon test the single center tap is returned.
func Iris(radius int, sides, rotation float64) []Tap {
	if radius < 1 {
		radius = 1
	}
	n := int(math.Round(sides))
	if n < 3 {
		n = 3
	}
	angleStep := 2 * math.Pi / float64(n)
	sin, cos := math.Sincos(-rotation * math.Pi / 180)

	var taps []Tap
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			fx := float64(dx)*cos - float64(dy)*sin
			fy := float64(dx)*sin + float64(dy)*cos
			dist := math.Sqrt(fx*fx + fy*fy)
			angle := math.Atan2(fy, fx)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			sector := math.Mod(angle, angleStep) - angleStep/2
			polyRadius := float64(radius)
			if c := math.Cos(sector); math.Abs(c) > 1e-6 {
				polyRadius = float64(radius) / c
			}
			if dist <= polyRadius {
				taps = append(taps, Tap{DX: dx, DY: dy})
			}
		}
	}
	if len(taps) == 0 {
		return []Tap{{Weight: 1}}
	}
	w := 1 / float64(len(taps))
	for i := range taps {
		taps[i].Weight = w
	}
	return taps
}

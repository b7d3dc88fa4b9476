package filters

import (
	"math"

	"github.com/vfshera/defocus/internal/raster"
)

// Settings is the closed set of per-filter parameter variants. Each variant
// knows how to apply itself, so callers never dispatch on strings.
type Settings interface {
	apply(src *raster.Buffer) *raster.Buffer
}

// Apply runs the filter selected by the settings variant and returns a new
// buffer. The input buffer is never modified.
func Apply(src *raster.Buffer, s Settings) *raster.Buffer {
	return s.apply(src)
}

type GaussianSettings struct {
	Radius float64
}

func DefaultGaussian() GaussianSettings {
	return GaussianSettings{Radius: 5}
}

func (s GaussianSettings) apply(src *raster.Buffer) *raster.Buffer { return Gaussian(src, s) }

type BoxSettings struct {
	Radius float64
}

func DefaultBox() BoxSettings {
	return BoxSettings{Radius: 5}
}

func (s BoxSettings) apply(src *raster.Buffer) *raster.Buffer { return Box(src, s) }

type MotionSettings struct {
	Angle    float64
	Distance float64
}

func DefaultMotion() MotionSettings {
	return MotionSettings{Angle: 0, Distance: 10}
}

func (s MotionSettings) apply(src *raster.Buffer) *raster.Buffer { return Motion(src, s) }

type RadialMethod string

const (
	MethodSpin RadialMethod = "spin"
	MethodZoom RadialMethod = "zoom"
)

type RadialQuality string

const (
	QualityDraft  RadialQuality = "draft"
	QualityBetter RadialQuality = "better"
	QualityBest   RadialQuality = "best"
)

type RadialSettings struct {
	Amount  float64
	Method  RadialMethod
	Quality RadialQuality
	CenterX float64
	CenterY float64
}

func DefaultRadial() RadialSettings {
	return RadialSettings{
		Amount:  50,
		Method:  MethodSpin,
		Quality: QualityBetter,
		CenterX: 0.5,
		CenterY: 0.5,
	}
}

func (s RadialSettings) apply(src *raster.Buffer) *raster.Buffer { return Radial(src, s) }

type LensSettings struct {
	Radius              float64
	IrisShape           float64
	IrisRotation        float64
	IrisCurvature       float64
	HighlightBrightness float64
	HighlightThreshold  float64
}

func DefaultLens() LensSettings {
	return LensSettings{
		Radius:             15,
		IrisShape:          6,
		HighlightThreshold: 255,
	}
}

func (s LensSettings) apply(src *raster.Buffer) *raster.Buffer { return Lens(src, s) }

type SurfaceSettings struct {
	Radius    float64
	Threshold float64
}

func DefaultSurface() SurfaceSettings {
	return SurfaceSettings{Radius: 5, Threshold: 15}
}

func (s SurfaceSettings) apply(src *raster.Buffer) *raster.Buffer { return Surface(src, s) }

type TiltShiftSettings struct {
	Blur           float64
	FocusY         float64
	FocusHeight    float64
	TransitionSize float64
	Angle          float64
}

func DefaultTiltShift() TiltShiftSettings {
	return TiltShiftSettings{
		Blur:           15,
		FocusY:         0.5,
		FocusHeight:    0.25,
		TransitionSize: 0.25,
	}
}

func (s TiltShiftSettings) apply(src *raster.Buffer) *raster.Buffer { return TiltShift(src, s) }

func clampRadius(v float64) int {
	r := int(math.Round(v))
	if r < 1 {
		return 1
	}
	return r
}

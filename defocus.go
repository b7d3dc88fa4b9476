package defocus

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/vfshera/defocus/internal/filters"
	"github.com/vfshera/defocus/internal/pipeline"
	"github.com/vfshera/defocus/internal/raster"
)

type Buffer = raster.Buffer

type (
	Settings          = filters.Settings
	GaussianSettings  = filters.GaussianSettings
	BoxSettings       = filters.BoxSettings
	MotionSettings    = filters.MotionSettings
	RadialSettings    = filters.RadialSettings
	LensSettings      = filters.LensSettings
	SurfaceSettings   = filters.SurfaceSettings
	TiltShiftSettings = filters.TiltShiftSettings
)

type (
	RadialMethod  = filters.RadialMethod
	RadialQuality = filters.RadialQuality
)

const (
	MethodSpin RadialMethod = filters.MethodSpin
	MethodZoom RadialMethod = filters.MethodZoom

	QualityDraft  RadialQuality = filters.QualityDraft
	QualityBetter RadialQuality = filters.QualityBetter
	QualityBest   RadialQuality = filters.QualityBest
)

type Step = pipeline.Step

type Options struct {
	Steps []Step
}

func DefaultOptions() Options {
	return Options{
		Steps: []Step{{Filter: "gaussian"}},
	}
}

func New(width, height int) *Buffer { return raster.New(width, height) }

func FromImage(img image.Image) *Buffer { return raster.FromImage(img) }

func Apply(src *Buffer, s Settings) *Buffer { return filters.Apply(src, s) }

func Gaussian(src *Buffer, s GaussianSettings) *Buffer { return filters.Gaussian(src, s) }

func Box(src *Buffer, s BoxSettings) *Buffer { return filters.Box(src, s) }

func Motion(src *Buffer, s MotionSettings) *Buffer { return filters.Motion(src, s) }

func Radial(src *Buffer, s RadialSettings) *Buffer { return filters.Radial(src, s) }

func Lens(src *Buffer, s LensSettings) *Buffer { return filters.Lens(src, s) }

func Surface(src *Buffer, s SurfaceSettings) *Buffer { return filters.Surface(src, s) }

func TiltShift(src *Buffer, s TiltShiftSettings) *Buffer { return filters.TiltShift(src, s) }

func DefaultGaussian() GaussianSettings { return filters.DefaultGaussian() }

func DefaultBox() BoxSettings { return filters.DefaultBox() }

func DefaultMotion() MotionSettings { return filters.DefaultMotion() }

func DefaultRadial() RadialSettings { return filters.DefaultRadial() }

func DefaultLens() LensSettings { return filters.DefaultLens() }

func DefaultSurface() SurfaceSettings { return filters.DefaultSurface() }

func DefaultTiltShift() TiltShiftSettings { return filters.DefaultTiltShift() }

func ProcessImage(img image.Image, settings ...Settings) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}

	buf := raster.FromImage(img)
	for _, s := range settings {
		buf = filters.Apply(buf, s)
	}
	return buf.ToImage(), nil
}

func Process(inputPath, outputPath string, opts Options) error {
	pipelineOpts := pipeline.Options{
		Steps: opts.Steps,
	}
	return pipeline.Process(inputPath, outputPath, pipelineOpts)
}

func LoadPreset(path string) ([]Step, error) {
	return pipeline.LoadPreset(path)
}

func FilterNames() []string {
	return pipeline.FilterNames()
}

func SetLogger(l *slog.Logger) {
	filters.SetLogger(l)
}

func SetParallelism(n int) {
	filters.SetParallelism(n)
}

func Parallelism() int {
	return filters.Parallelism()
}

package pipeline

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // webp decode

	"github.com/vfshera/defocus/internal/filters"
	"github.com/vfshera/defocus/internal/raster"
)

type Processor struct {
	inputPath string
	buffer    *raster.Buffer
}

type Options struct {
	Steps []Step
}

func New(inputPath string) *Processor {
	return &Processor{
		inputPath: inputPath,
	}
}

func (p *Processor) Load() error {
	if _, err := os.Stat(p.inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", p.inputPath)
	}

	img, err := imaging.Open(p.inputPath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	p.buffer = raster.FromImage(img)
	filters.Logger().Debug("image loaded",
		"path", p.inputPath,
		"width", p.buffer.Width(),
		"height", p.buffer.Height())
	return nil
}

func (p *Processor) ApplyStep(step Step) error {
	if p.buffer == nil {
		return fmt.Errorf("no image loaded")
	}

	s, err := step.settings()
	if err != nil {
		return err
	}

	p.buffer = filters.Apply(p.buffer, s)
	return nil
}

func (p *Processor) ApplySteps(steps []Step) error {
	for i, step := range steps {
		if err := p.ApplyStep(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Filter, err)
		}
	}
	return nil
}

func (p *Processor) Save(outputPath string) error {
	if p.buffer == nil {
		return fmt.Errorf("no image to save")
	}

	err := imaging.Save(p.buffer.ToImage(), outputPath)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	filters.Logger().Debug("image saved", "path", outputPath)
	return nil
}

func (p *Processor) Image() image.Image {
	if p.buffer == nil {
		return nil
	}
	return p.buffer.ToImage()
}

func Process(inputPath, outputPath string, opts Options) error {
	proc := New(inputPath)

	if err := proc.Load(); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	if err := proc.ApplySteps(opts.Steps); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	if err := proc.Save(outputPath); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}

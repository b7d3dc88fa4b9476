package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vfshera/defocus/internal/filters"
)

// Step is one filter invocation in a preset. Parameter fields are pointers
// so that an absent key falls back to the filter's default.
type Step struct {
	Filter      string   `yaml:"filter"`
	Radius      *float64 `yaml:"radius,omitempty"`
	Angle       *float64 `yaml:"angle,omitempty"`
	Distance    *float64 `yaml:"distance,omitempty"`
	Amount      *float64 `yaml:"amount,omitempty"`
	Method      *string  `yaml:"method,omitempty"`
	Quality     *string  `yaml:"quality,omitempty"`
	CenterX     *float64 `yaml:"center_x,omitempty"`
	CenterY     *float64 `yaml:"center_y,omitempty"`
	Shape       *float64 `yaml:"shape,omitempty"`
	Rotation    *float64 `yaml:"rotation,omitempty"`
	Curvature   *float64 `yaml:"curvature,omitempty"`
	Brightness  *float64 `yaml:"brightness,omitempty"`
	Threshold   *float64 `yaml:"threshold,omitempty"`
	Blur        *float64 `yaml:"blur,omitempty"`
	FocusY      *float64 `yaml:"focus_y,omitempty"`
	FocusHeight *float64 `yaml:"focus_height,omitempty"`
	Transition  *float64 `yaml:"transition,omitempty"`
}

type preset struct {
	Steps []Step `yaml:"steps"`
}

func (s Step) settings() (filters.Settings, error) {
	switch s.Filter {
	case "gaussian":
		v := filters.DefaultGaussian()
		if s.Radius != nil {
			v.Radius = *s.Radius
		}
		return v, nil
	case "box":
		v := filters.DefaultBox()
		if s.Radius != nil {
			v.Radius = *s.Radius
		}
		return v, nil
	case "motion":
		v := filters.DefaultMotion()
		if s.Angle != nil {
			v.Angle = *s.Angle
		}
		if s.Distance != nil {
			v.Distance = *s.Distance
		}
		return v, nil
	case "radial":
		v := filters.DefaultRadial()
		if s.Amount != nil {
			v.Amount = *s.Amount
		}
		if s.Method != nil {
			v.Method = filters.RadialMethod(*s.Method)
		}
		if s.Quality != nil {
			v.Quality = filters.RadialQuality(*s.Quality)
		}
		if s.CenterX != nil {
			v.CenterX = *s.CenterX
		}
		if s.CenterY != nil {
			v.CenterY = *s.CenterY
		}
		return v, nil
	case "lens":
		v := filters.DefaultLens()
		if s.Radius != nil {
			v.Radius = *s.Radius
		}
		if s.Shape != nil {
			v.IrisShape = *s.Shape
		}
		if s.Rotation != nil {
			v.IrisRotation = *s.Rotation
		}
		if s.Curvature != nil {
			v.IrisCurvature = *s.Curvature
		}
		if s.Brightness != nil {
			v.HighlightBrightness = *s.Brightness
		}
		if s.Threshold != nil {
			v.HighlightThreshold = *s.Threshold
		}
		return v, nil
	case "surface":
		v := filters.DefaultSurface()
		if s.Radius != nil {
			v.Radius = *s.Radius
		}
		if s.Threshold != nil {
			v.Threshold = *s.Threshold
		}
		return v, nil
	case "tiltshift":
		v := filters.DefaultTiltShift()
		if s.Blur != nil {
			v.Blur = *s.Blur
		}
		if s.FocusY != nil {
			v.FocusY = *s.FocusY
		}
		if s.FocusHeight != nil {
			v.FocusHeight = *s.FocusHeight
		}
		if s.Transition != nil {
			v.TransitionSize = *s.Transition
		}
		if s.Angle != nil {
			v.Angle = *s.Angle
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown filter %q", s.Filter)
}

// LoadPreset reads an ordered filter step list from a YAML file.
func LoadPreset(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}

	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("preset %s has no steps", path)
	}
	for i, step := range p.Steps {
		if _, err := step.settings(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return p.Steps, nil
}

// FilterNames lists the filter names a Step accepts.
func FilterNames() []string {
	return []string{"gaussian", "box", "motion", "radial", "lens", "surface", "tiltshift"}
}

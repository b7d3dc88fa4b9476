package scene

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/vfshera/defocus/internal/raster"
)

type SceneType string

const (
	SceneCard    SceneType = "card"
	SceneLights  SceneType = "lights"
	SceneStripes SceneType = "stripes"
)

// Render draws a deterministic synthetic test scene. The same type and size
// always produce the same pixels.
func Render(sceneType SceneType, width, height int) (*raster.Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid scene size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	w, h := float64(width), float64(height)

	switch sceneType {
	case SceneCard:
		drawCard(dc, w, h)
	case SceneLights:
		drawLights(dc, w, h)
	case SceneStripes:
		drawStripes(dc, w, h)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}

	return raster.FromImage(dc.Image()), nil
}

func drawCard(dc *gg.Context, w, h float64) {
	dc.SetColor(color.RGBA{28, 28, 32, 255})
	dc.Clear()

	tile := 16.0
	dc.SetColor(color.RGBA{40, 40, 46, 255})
	for row := 0; float64(row)*tile < h; row++ {
		for col := row % 2; float64(col)*tile < w; col += 2 {
			dc.DrawRectangle(float64(col)*tile, float64(row)*tile, tile, tile)
		}
	}
	dc.Fill()

	dc.SetColor(color.RGBA{208, 64, 56, 255})
	dc.DrawRegularPolygon(3, w*0.25, h*0.40, w*0.12, 0)
	dc.Fill()
	dc.SetColor(color.RGBA{56, 160, 96, 255})
	dc.DrawRegularPolygon(4, w*0.55, h*0.45, w*0.10, 0.4)
	dc.Fill()
	dc.SetColor(color.RGBA{72, 108, 208, 255})
	dc.DrawRegularPolygon(6, w*0.80, h*0.35, w*0.09, 0)
	dc.Fill()

	dc.SetColor(color.White)
	for i := 1; i <= 9; i++ {
		dc.DrawCircle(w*float64(i)/10, h*0.8, 2.5)
	}
	dc.Fill()
}

func drawLights(dc *gg.Context, w, h float64) {
	dc.SetColor(color.RGBA{8, 8, 12, 255})
	dc.Clear()

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if (i+j)%2 == 0 {
				dc.SetColor(color.RGBA{255, 244, 214, 255})
			} else {
				dc.SetColor(color.RGBA{214, 230, 255, 255})
			}
			radius := 1.5 + float64((i+j)%3)
			dc.DrawCircle(w*float64(i+1)/6, h*float64(j+1)/6, radius)
			dc.Fill()
		}
	}
}

func drawStripes(dc *gg.Context, w, h float64) {
	bands := []color.RGBA{
		{214, 84, 58, 255},
		{230, 168, 58, 255},
		{96, 168, 84, 255},
		{58, 120, 196, 255},
		{128, 84, 168, 255},
		{220, 220, 220, 255},
	}
	bandH := h / float64(len(bands))
	for i, c := range bands {
		dc.SetColor(c)
		dc.DrawRectangle(0, float64(i)*bandH, w, bandH)
		dc.Fill()
	}

	dc.SetColor(color.RGBA{20, 20, 20, 255})
	dc.SetLineWidth(1)
	for i := 1; i < 8; i++ {
		x := w * float64(i) / 8
		dc.DrawLine(x, 0, x, h)
		dc.Stroke()
	}
}

func ValidSceneTypes() []SceneType {
	return []SceneType{
		SceneCard,
		SceneLights,
		SceneStripes,
	}
}

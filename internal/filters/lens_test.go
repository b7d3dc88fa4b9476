package filters

import (
	"image/color"
	"testing"

	"github.com/vfshera/defocus/internal/raster"
)

func TestLensUniformUnchanged(t *testing.T) {
	src := createUniformBuffer(20, 20, color.NRGBA{R: 90, G: 140, B: 200, A: 255})
	out := Lens(src, LensSettings{Radius: 6, IrisShape: 6, HighlightThreshold: 255})
	if bufferFingerprint(out) != bufferFingerprint(src) {
		t.Error("uniform image changed")
	}
}

func TestLensUniformWithBoostUnchanged(t *testing.T) {
	// every tap gets the same boost, so renormalization cancels it
	src := createUniformBuffer(20, 20, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	out := Lens(src, LensSettings{
		Radius:              6,
		IrisShape:           6,
		HighlightBrightness: 300,
		HighlightThreshold:  100,
	})
	if bufferFingerprint(out) != bufferFingerprint(src) {
		t.Error("uniform image changed under highlight boost")
	}
}

func TestLensHighlightBoostBrightens(t *testing.T) {
	src := createUniformBuffer(21, 21, color.NRGBA{A: 255})
	for y := 9; y < 12; y++ {
		for x := 9; x < 12; x++ {
			src.SetPixel(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	plain := Lens(src, LensSettings{Radius: 4, IrisShape: 6, HighlightThreshold: 100})
	boosted := Lens(src, LensSettings{Radius: 4, IrisShape: 6, HighlightBrightness: 200, HighlightThreshold: 100})

	if sumRed(boosted) <= sumRed(plain) {
		t.Errorf("boosted red sum = %d, want more than plain %d", sumRed(boosted), sumRed(plain))
	}
}

func TestLensThresholdAtMaxDisablesBoost(t *testing.T) {
	src := createNoiseBuffer(20, 20)
	want := bufferFingerprint(Lens(src, LensSettings{Radius: 5, IrisShape: 6, HighlightThreshold: 255}))

	for _, threshold := range []float64{255, 300} {
		s := LensSettings{
			Radius:              5,
			IrisShape:           6,
			HighlightBrightness: 400,
			HighlightThreshold:  threshold,
		}
		if got := bufferFingerprint(Lens(src, s)); got != want {
			t.Errorf("threshold %v fingerprint = %d, want boost disabled (%d)", threshold, got, want)
		}
	}
}

func TestLensIrisRotationMatters(t *testing.T) {
	src := createNoiseBuffer(24, 24)
	s := LensSettings{Radius: 5, IrisShape: 4, HighlightThreshold: 255}
	straight := bufferFingerprint(Lens(src, s))

	s.IrisRotation = 45
	rotated := bufferFingerprint(Lens(src, s))
	if straight == rotated {
		t.Error("rotating a square iris did not change the output")
	}
}

func TestLensIrisShapeMatters(t *testing.T) {
	src := createNoiseBuffer(24, 24)
	s := LensSettings{Radius: 5, IrisShape: 3, HighlightThreshold: 255}
	triangle := bufferFingerprint(Lens(src, s))

	s.IrisShape = 100
	disc := bufferFingerprint(Lens(src, s))
	if triangle == disc {
		t.Error("triangle and near-circular irises produced identical output")
	}
}

func TestLensRadiusClamped(t *testing.T) {
	src := createNoiseBuffer(16, 16)
	want := bufferFingerprint(Lens(src, LensSettings{Radius: 1, IrisShape: 6, HighlightThreshold: 255}))

	for _, radius := range []float64{0, -3, 0.4} {
		got := bufferFingerprint(Lens(src, LensSettings{Radius: radius, IrisShape: 6, HighlightThreshold: 255}))
		if got != want {
			t.Errorf("radius %v fingerprint = %d, want clamped to 1 (%d)", radius, got, want)
		}
	}
}

func TestLensAlphaUniformPreserved(t *testing.T) {
	src := createNoiseBuffer(20, 20)
	out := Lens(src, LensSettings{
		Radius:              5,
		IrisShape:           6,
		HighlightBrightness: 200,
		HighlightThreshold:  100,
	})

	data := out.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != 255 {
			t.Fatalf("alpha at offset %d = %d, want 255", i, data[i])
		}
	}
}

func sumRed(b *raster.Buffer) int {
	var sum int
	data := b.Data()
	for i := 0; i < len(data); i += 4 {
		sum += int(data[i])
	}
	return sum
}

package filters

import (
	"testing"
)

func TestRadialAmountZeroIdentity(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		method RadialMethod
	}{
		{"spin even", 16, 12, MethodSpin},
		{"spin odd", 15, 11, MethodSpin},
		{"zoom even", 16, 12, MethodZoom},
		{"zoom odd", 15, 11, MethodZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createNoiseBuffer(tt.width, tt.height)
			out := Radial(src, RadialSettings{
				Amount:  0,
				Method:  tt.method,
				Quality: QualityBetter,
				CenterX: 0.5,
				CenterY: 0.5,
			})
			if bufferFingerprint(out) != bufferFingerprint(src) {
				t.Error("amount 0 changed the image")
			}
		})
	}
}

func TestRadialUnrecognizedQualityMatchesBetter(t *testing.T) {
	src := createNoiseBuffer(24, 20)
	s := RadialSettings{Amount: 50, Method: MethodSpin, Quality: QualityBetter, CenterX: 0.5, CenterY: 0.5}
	want := bufferFingerprint(Radial(src, s))

	for _, q := range []RadialQuality{"", "ultra", "BEST"} {
		s.Quality = q
		if got := bufferFingerprint(Radial(src, s)); got != want {
			t.Errorf("quality %q fingerprint = %d, want better bucket (%d)", q, got, want)
		}
	}
}

func TestRadialUnrecognizedMethodMatchesSpin(t *testing.T) {
	src := createNoiseBuffer(24, 20)
	s := RadialSettings{Amount: 50, Method: MethodSpin, Quality: QualityDraft, CenterX: 0.5, CenterY: 0.5}
	want := bufferFingerprint(Radial(src, s))

	for _, m := range []RadialMethod{"", "swirl"} {
		s.Method = m
		if got := bufferFingerprint(Radial(src, s)); got != want {
			t.Errorf("method %q fingerprint = %d, want spin (%d)", m, got, want)
		}
	}
}

func TestRadialQualityBucketsDiffer(t *testing.T) {
	src := createNoiseBuffer(32, 32)
	s := RadialSettings{Amount: 60, Method: MethodSpin, CenterX: 0.5, CenterY: 0.5}

	s.Quality = QualityDraft
	draft := bufferFingerprint(Radial(src, s))
	s.Quality = QualityBest
	best := bufferFingerprint(Radial(src, s))
	if draft == best {
		t.Error("draft and best quality produced identical output on a noise image")
	}
}

func TestRadialSpinDiffersFromZoom(t *testing.T) {
	src := createNoiseBuffer(32, 32)
	s := RadialSettings{Amount: 60, Quality: QualityBetter, CenterX: 0.5, CenterY: 0.5}

	s.Method = MethodSpin
	spin := bufferFingerprint(Radial(src, s))
	s.Method = MethodZoom
	zoom := bufferFingerprint(Radial(src, s))
	if spin == zoom {
		t.Error("spin and zoom produced identical output on a noise image")
	}
}

func TestRadialCenterMatters(t *testing.T) {
	src := createNoiseBuffer(32, 32)
	s := RadialSettings{Amount: 60, Method: MethodZoom, Quality: QualityBetter, CenterX: 0.5, CenterY: 0.5}
	centered := bufferFingerprint(Radial(src, s))

	s.CenterX, s.CenterY = 0.2, 0.8
	offCenter := bufferFingerprint(Radial(src, s))
	if centered == offCenter {
		t.Error("moving the center did not change the output")
	}
}

func TestRadialCenterPixelStable(t *testing.T) {
	src := createNoiseBuffer(16, 16)
	out := Radial(src, RadialSettings{Amount: 90, Method: MethodSpin, Quality: QualityBest, CenterX: 0.5, CenterY: 0.5})

	// the pixel at the exact center has zero distance, so every tap
	// resamples the center itself
	if got, want := out.PixelAt(8, 8), src.PixelAt(8, 8); got != want {
		t.Errorf("center pixel = %v, want unchanged %v", got, want)
	}
}

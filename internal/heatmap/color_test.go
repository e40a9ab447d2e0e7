package heatmap

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want RGBA
	}{
		{name: "zero is blue", n: 0, want: RGBA{R: 0, G: 0, B: 255, A: ZoneAlpha}},
		{name: "yellow stop", n: 0.33, want: RGBA{R: 255, G: 255, B: 0, A: ZoneAlpha}},
		{name: "mid orange segment", n: 0.5, want: RGBA{R: 255, G: 189, B: 0, A: ZoneAlpha}},
		{name: "orange stop", n: 0.66, want: RGBA{R: 255, G: 127, B: 0, A: ZoneAlpha}},
		{name: "one is red", n: 1, want: RGBA{R: 255, G: 0, B: 0, A: ZoneAlpha}},
		{name: "above one clamps", n: 3, want: RGBA{R: 255, G: 0, B: 0, A: ZoneAlpha}},
		{name: "negative clamps", n: -1, want: RGBA{R: 0, G: 0, B: 255, A: ZoneAlpha}},
		{name: "NaN treated as zero", n: math.NaN(), want: RGBA{R: 0, G: 0, B: 255, A: ZoneAlpha}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ramp(tt.n); got != tt.want {
				t.Errorf("Ramp(%v) = %+v, want %+v", tt.n, got, tt.want)
			}
		})
	}
}

func TestRampContinuousAtStops(t *testing.T) {
	const eps = 1e-9
	for _, stop := range []float64{yellowStop, orangeStop} {
		below := Ramp(stop - eps)
		at := Ramp(stop)
		if absDiff(below.R, at.R) > 1 || absDiff(below.G, at.G) > 1 || absDiff(below.B, at.B) > 1 {
			t.Errorf("discontinuity at %v: below=%+v at=%+v", stop, below, at)
		}
	}
}

func TestRampGreenNonIncreasing(t *testing.T) {
	// Green falls monotonically once the ramp has reached yellow.
	prev := Ramp(yellowStop)
	for n := yellowStop; n <= 1; n += 0.01 {
		c := Ramp(n)
		if c.G > prev.G {
			t.Fatalf("green rose from %d to %d at %v", prev.G, c.G, n)
		}
		prev = c
	}
}

func TestRGBACSS(t *testing.T) {
	got := RGBA{R: 255, G: 189, B: 0, A: 0.7}.CSS()
	if want := "rgba(255, 189, 0, 0.7)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

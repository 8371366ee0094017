package mathcanvas

import (
	"math"
	"testing"
)

func TestHexParsing(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", RGBA{R: 1, A: 1}},
		{"00ff00", RGBA{G: 1, A: 1}},
		{"#f00", RGBA{R: 1, A: 1}},
		{"#f00f", RGBA{R: 1, A: 1}},
		{"#00000080", RGBA{A: 128.0 / 255.0}},
		{"", RGBA{A: 1}},          // invalid: opaque black
		{"#zzzzzz", RGBA{A: 1}},   // invalid digits
		{"#12345", RGBA{A: 1}},    // invalid length
	}
	for _, tt := range tests {
		got := Hex(tt.in)
		if math.Abs(got.R-tt.want.R) > 1e-9 ||
			math.Abs(got.G-tt.want.G) > 1e-9 ||
			math.Abs(got.B-tt.want.B) > 1e-9 ||
			math.Abs(got.A-tt.want.A) > 1e-9 {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.G-0.5) > 1e-9 || math.Abs(mid.B-0.5) > 1e-9 {
		t.Errorf("midpoint of black and white = %+v", mid)
	}
	if Black.Lerp(White, 0) != Black || Black.Lerp(White, 1) != White {
		t.Error("lerp endpoints should be exact")
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	if c.A != 0.25 || c.R != Red.R {
		t.Errorf("WithAlpha = %+v", c)
	}
}

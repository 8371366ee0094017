package render

import (
	"math"
	"testing"

	"github.com/mathud/mathcanvas"
)

func zoomedMapper(scale float64) *mathcanvas.Mapper {
	m := mathcanvas.NewMapper(800, 600)
	m.ApplyZoom(scale)
	return m
}

func TestZoomAdjustedFontSize(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		refScale float64
		scale    float64
		want     float64
	}{
		{"same zoom keeps base", 14, 1, 1, 14},
		{"zoom in never grows", 14, 1, 4, 14},
		{"mild zoom out clamps to minimum", 10, 1, 0.7, minLabelFontPx},
		{"deep zoom out vanishes", 14, 1, 0.2, 0},
		{"above clamp passes through", 40, 1, 0.5, 20},
		{"reference from zoomed-in creation", 14, 2, 1, 7},
		{"zero base", 0, 1, 1, 0},
		{"negative base", -3, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZoomAdjustedFontSize(tt.base, tt.refScale, zoomedMapper(tt.scale))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ZoomAdjustedFontSize(%v, %v) at scale %v = %v, want %v",
					tt.base, tt.refScale, tt.scale, got, tt.want)
			}
		})
	}
}

func TestZoomAdjustedFontSizeBadRefScale(t *testing.T) {
	m := zoomedMapper(1)
	for _, ref := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := ZoomAdjustedFontSize(14, ref, m); got != 14 {
			t.Errorf("refScale %v: got %v, want 14", ref, got)
		}
	}
}

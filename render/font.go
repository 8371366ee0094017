package render

import "math"

const (
	// minLabelFontPx is the smallest legible label size when zoomed
	// out but not yet vanished.
	minLabelFontPx = 6.0

	// vanishFontPx is the size at or below which a label is dropped
	// entirely instead of being clamped up to minLabelFontPx.
	vanishFontPx = 4.0
)

// ZoomAdjustedFontSize shrinks a base font size in proportion to how
// far the view has zoomed out since the element was created. Zooming
// in never grows labels beyond base. A zero return means the label
// should not be drawn at all.
func ZoomAdjustedFontSize(base, refScale float64, m Mapper) float64 {
	if base <= 0 {
		return 0
	}
	if refScale <= 0 || math.IsNaN(refScale) || math.IsInf(refScale, 0) {
		refScale = 1
	}
	ratio := m.ScaleFactor() / refScale
	if ratio >= 1 {
		return base
	}
	scaled := base * ratio
	if scaled <= vanishFontPx {
		return 0
	}
	return math.Max(scaled, minLabelFontPx)
}

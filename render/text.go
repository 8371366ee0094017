package render

// TextMeasurer reports the pixel extent of a string at a font size.
// Backends that can shape text inject a real implementation; the
// default is a width heuristic good enough for overlap resolution.
type TextMeasurer interface {
	MeasureText(text string, size float64) (width, height float64)
}

// approxMeasurer estimates extents from the glyph count. Label overlap
// resolution only needs a stable, roughly proportional box.
type approxMeasurer struct{}

func (approxMeasurer) MeasureText(text string, size float64) (float64, float64) {
	if size <= 0 {
		return 0, 0
	}
	return float64(len([]rune(text))) * size * 0.6, size * 1.2
}

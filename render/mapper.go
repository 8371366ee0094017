package render

import "github.com/mathud/mathcanvas"

// Mapper is the coordinate projection consumed by handlers and area
// builders. *mathcanvas.Mapper satisfies it; tests substitute fixed
// projections.
type Mapper interface {
	// MathToScreen projects a math-space point. ok is false when the
	// input or the resulting screen position is not finite.
	MathToScreen(x, y float64) (mathcanvas.Point, bool)

	// ScreenToMath inverts MathToScreen.
	ScreenToMath(sx, sy float64) (mathcanvas.Point, bool)

	// ScaleValue converts a math-space length to screen pixels.
	ScaleValue(v float64) (float64, bool)

	// ScaleFactor reports the current pixels-per-unit scale.
	ScaleFactor() float64

	Width() float64
	Height() float64

	// Visible bounds of the viewport in math coordinates.
	VisibleLeft() float64
	VisibleRight() float64
	VisibleTop() float64
	VisibleBottom() float64
}

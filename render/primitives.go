package render

import "github.com/mathud/mathcanvas"

// StrokeStyle describes an outline.
type StrokeStyle struct {
	Color mathcanvas.RGBA
	Width float64
}

// FillStyle describes an interior fill. Opacity is in [0, 1] and is
// applied on top of the color's own alpha.
type FillStyle struct {
	Color   mathcanvas.RGBA
	Opacity float64
}

// FontStyle describes text rendering parameters.
type FontStyle struct {
	Family string
	Size   float64
}

// HAlign is the horizontal anchor of drawn text relative to its
// position.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// Primitives is the drawing surface a backend exposes to the render
// core. All coordinates are screen-space pixels with the origin at the
// top-left corner and y growing downward.
//
// BeginShape and EndShape bracket the primitives belonging to one
// logical element. Backends that batch or group output (SVG <g>
// elements, GPU draw batches) use these; immediate backends may treat
// them as no-ops. Calls are never nested.
type Primitives interface {
	BeginFrame()
	EndFrame()

	// Clear erases the surface to the backend's background color.
	Clear()

	// Resize adjusts the surface to a new pixel size and clears it.
	Resize(width, height int)

	BeginShape()
	EndShape()

	StrokeLine(a, b mathcanvas.Point, s StrokeStyle)

	// StrokePolyline draws connected line segments through pts. Fewer
	// than two points draws nothing.
	StrokePolyline(pts []mathcanvas.Point, s StrokeStyle)

	StrokeCircle(center mathcanvas.Point, radius float64, s StrokeStyle)
	FillCircle(center mathcanvas.Point, radius float64, f FillStyle)

	// StrokeEllipse draws an axis-aligned ellipse rotated by rotation
	// radians about its center.
	StrokeEllipse(center mathcanvas.Point, rx, ry, rotation float64, s StrokeStyle)

	// StrokeArc draws a circular arc from startRad to endRad,
	// counter-clockwise in math orientation (clockwise on screen).
	StrokeArc(center mathcanvas.Point, radius, startRad, endRad float64, s StrokeStyle)

	// FillPolygon fills the closed polygon through pts, optionally
	// stroking its outline when stroke is non-nil.
	FillPolygon(pts []mathcanvas.Point, f FillStyle, stroke *StrokeStyle)

	// FillLoop fills the region enclosed by walking forward, then
	// reverse, then closing back to the first forward point.
	FillLoop(forward, reverse []mathcanvas.Point, f FillStyle)

	DrawText(text string, at mathcanvas.Point, font FontStyle, color mathcanvas.RGBA, align HAlign)
}

// withShape runs emit inside a BeginShape/EndShape scope so the scope
// is released even if emit panics.
func withShape(p Primitives, emit func()) {
	p.BeginShape()
	defer p.EndShape()
	emit()
}

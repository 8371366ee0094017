package mathcanvas

import "math"

// Zoom limits keep the scale factor inside a range where tick spacing
// and label sizing stay meaningful.
const (
	minScaleFactor  = 0.01
	maxScaleFactor  = 100.0
	defaultZoomStep = 0.1
)

// Mapper converts between math-space coordinates and screen pixels.
// It owns the scale factor (pixels per math unit), the pan offset and
// the canvas origin, so drawables never carry transformation logic.
//
// A Mapper is owned by a single render pass at a time; callers
// serialize access when the host is multi-threaded.
type Mapper struct {
	width, height float64

	scale  float64
	origin Point
	offset Point

	zoomStep float64
}

// NewMapper creates a mapper for a canvas of the given pixel size with
// the origin at the canvas center, unit scale, and no pan offset.
func NewMapper(width, height float64) *Mapper {
	return &Mapper{
		width:    width,
		height:   height,
		scale:    1.0,
		origin:   Pt(width/2, height/2),
		zoomStep: defaultZoomStep,
	}
}

// sanitized returns the scale factor coerced to a usable value: a
// non-finite or non-positive scale is replaced with 1.0. The stored
// value is left untouched.
func (m *Mapper) sanitized() float64 {
	if !isFinite(m.scale) || m.scale <= 0 {
		return 1.0
	}
	return m.scale
}

// ScaleFactor returns the current zoom level in pixels per math unit.
func (m *Mapper) ScaleFactor() float64 {
	return m.sanitized()
}

// Width returns the canvas width in pixels.
func (m *Mapper) Width() float64 { return m.width }

// Height returns the canvas height in pixels.
func (m *Mapper) Height() float64 { return m.height }

// Resize updates the canvas dimensions, recentering the origin.
func (m *Mapper) Resize(width, height float64) {
	m.width = width
	m.height = height
	m.origin = Pt(width/2, height/2)
}

// MathToScreen converts math coordinates to screen pixels with Y-axis
// flipping. Reports ok == false when the input or the projection is not
// finite; callers skip the element in that case.
func (m *Mapper) MathToScreen(x, y float64) (Point, bool) {
	scale := m.sanitized()
	p := Pt(
		m.origin.X+x*scale+m.offset.X,
		m.origin.Y-y*scale+m.offset.Y,
	)
	if !p.IsFinite() {
		return Point{}, false
	}
	return p, true
}

// ScreenToMath converts screen pixels back to math coordinates.
func (m *Mapper) ScreenToMath(sx, sy float64) (Point, bool) {
	scale := m.sanitized()
	p := Pt(
		(sx-m.offset.X-m.origin.X)/scale,
		(m.origin.Y+m.offset.Y-sy)/scale,
	)
	if !p.IsFinite() {
		return Point{}, false
	}
	return p, true
}

// ScaleValue scales a math-space length to screen pixels. Used for
// radii and other measurements that grow with zoom.
func (m *Mapper) ScaleValue(v float64) (float64, bool) {
	out := v * m.sanitized()
	if !isFinite(out) {
		return 0, false
	}
	return out, true
}

// UnscaleValue converts a screen length back to math units.
func (m *Mapper) UnscaleValue(v float64) (float64, bool) {
	out := v / m.sanitized()
	if !isFinite(out) {
		return 0, false
	}
	return out, true
}

// ApplyZoom multiplies the scale factor, clamped to the supported
// range. Factors > 1 zoom in.
func (m *Mapper) ApplyZoom(factor float64) {
	if !isFinite(factor) || factor <= 0 {
		return
	}
	m.scale = m.sanitized() * factor
	m.scale = math.Max(minScaleFactor, math.Min(maxScaleFactor, m.scale))
}

// ApplyZoomStep zooms by the configured step. direction < 0 zooms in.
func (m *Mapper) ApplyZoomStep(direction int) {
	if direction < 0 {
		m.ApplyZoom(1 + m.zoomStep)
	} else {
		m.ApplyZoom(1 - m.zoomStep)
	}
}

// ApplyPan adds a screen-pixel offset to the current pan state.
func (m *Mapper) ApplyPan(dx, dy float64) {
	m.offset.X += dx
	m.offset.Y += dy
}

// ResetTransforms restores unit scale, zero pan, and a centered origin.
func (m *Mapper) ResetTransforms() {
	m.scale = 1.0
	m.offset = Point{}
	m.origin = Pt(m.width/2, m.height/2)
}

// VisibleLeft returns the math x coordinate at the left canvas edge.
func (m *Mapper) VisibleLeft() float64 {
	return -(m.origin.X + m.offset.X) / m.sanitized()
}

// VisibleRight returns the math x coordinate at the right canvas edge.
func (m *Mapper) VisibleRight() float64 {
	return (m.width - m.origin.X - m.offset.X) / m.sanitized()
}

// VisibleTop returns the math y coordinate at the top canvas edge.
func (m *Mapper) VisibleTop() float64 {
	return (m.origin.Y + m.offset.Y) / m.sanitized()
}

// VisibleBottom returns the math y coordinate at the bottom canvas edge.
func (m *Mapper) VisibleBottom() float64 {
	return (m.origin.Y + m.offset.Y - m.height) / m.sanitized()
}

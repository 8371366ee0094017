package mathcanvas

// Rect is an axis-aligned rectangle described by its coordinate
// extents. Used for label bounding boxes and collision tests.
type Rect struct {
	MinX, MaxX, MinY, MaxY float64
}

// RectFromSize builds a Rect from an origin and a width/height.
func RectFromSize(x, y, w, h float64) Rect {
	return Rect{MinX: x, MaxX: x + w, MinY: y, MaxY: y + h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Inflate returns the rectangle expanded by pad on all four sides.
// A non-positive pad returns the rectangle unchanged.
func (r Rect) Inflate(pad float64) Rect {
	if pad <= 0 {
		return r
	}
	return Rect{
		MinX: r.MinX - pad,
		MaxX: r.MaxX + pad,
		MinY: r.MinY - pad,
		MaxY: r.MaxY + pad,
	}
}

// ShiftY returns the rectangle displaced vertically by dy.
func (r Rect) ShiftY(dy float64) Rect {
	if dy == 0 {
		return r
	}
	return Rect{MinX: r.MinX, MaxX: r.MaxX, MinY: r.MinY + dy, MaxY: r.MaxY + dy}
}

// Intersects reports whether two rectangles overlap with positive area.
// Touching edges count as non-overlapping so labels can stack flush.
func (r Rect) Intersects(o Rect) bool {
	return !(r.MaxX <= o.MinX || r.MinX >= o.MaxX || r.MaxY <= o.MinY || r.MinY >= o.MaxY)
}

package drawable

import "github.com/mathud/mathcanvas"

// DefaultAreaSamples is the number of abscissas a function-bounded area
// is sampled at when the model does not specify its own count.
const DefaultAreaSamples = 100

// ClosedShape is implemented by drawables whose boundary is already a
// closed loop (polygons, circles, ellipses). BoundaryPoints returns the
// boundary in declared order; resolution bounds the sample count for
// curved shapes and is ignored by polygonal ones.
type ClosedShape interface {
	BoundaryPoints(resolution int) []mathcanvas.Point
}

// areaCommon extends the shared drawable fields with fill opacity.
type areaCommon struct {
	common
	Opacity float64
}

// FunctionsArea is the region bounded above and below by two functions
// over the intersection of their declared domains, optionally further
// clipped by the area's own bounds.
type FunctionsArea struct {
	areaCommon
	F1, F2      *Function
	Left, Right *float64
	Samples     int
}

// NewFunctionsArea creates a colored area between two functions.
func NewFunctionsArea(name string, f1, f2 *Function, color mathcanvas.RGBA, opacity float64) *FunctionsArea {
	return &FunctionsArea{
		areaCommon: areaCommon{common: common{name: name, color: color}, Opacity: opacity},
		F1:         f1,
		F2:         f2,
		Samples:    DefaultAreaSamples,
	}
}

// Kind implements Drawable.
func (*FunctionsArea) Kind() Kind { return KindFunctionsArea }

// FunctionSegmentArea is the region between a function curve and a
// straight segment, over the intersection of the segment's horizontal
// extent and the function's domain.
type FunctionSegmentArea struct {
	areaCommon
	F       *Function
	Seg     *Segment
	Samples int
}

// NewFunctionSegmentArea creates a colored area between a function and
// a segment.
func NewFunctionSegmentArea(name string, f *Function, seg *Segment, color mathcanvas.RGBA, opacity float64) *FunctionSegmentArea {
	return &FunctionSegmentArea{
		areaCommon: areaCommon{common: common{name: name, color: color}, Opacity: opacity},
		F:          f,
		Seg:        seg,
		Samples:    DefaultAreaSamples,
	}
}

// Kind implements Drawable.
func (*FunctionSegmentArea) Kind() Kind { return KindFunctionSegmentArea }

// SegmentsArea is the region bounded by one segment against the x axis,
// or by two segments over their horizontal overlap. Seg2 may be nil for
// the single-segment trapezoid form.
type SegmentsArea struct {
	areaCommon
	Seg1, Seg2 *Segment
}

// NewSegmentsArea creates a colored area bounded by one or two
// segments. seg2 may be nil.
func NewSegmentsArea(name string, seg1, seg2 *Segment, color mathcanvas.RGBA, opacity float64) *SegmentsArea {
	return &SegmentsArea{
		areaCommon: areaCommon{common: common{name: name, color: color}, Opacity: opacity},
		Seg1:       seg1,
		Seg2:       seg2,
	}
}

// Kind implements Drawable.
func (*SegmentsArea) Kind() Kind { return KindSegmentsArea }

// ClosedShapeArea fills the interior of an already-closed shape.
type ClosedShapeArea struct {
	areaCommon
	Shape      ClosedShape
	Resolution int
}

// NewClosedShapeArea creates a colored area filling a closed shape.
func NewClosedShapeArea(name string, shape ClosedShape, color mathcanvas.RGBA, opacity float64) *ClosedShapeArea {
	return &ClosedShapeArea{
		areaCommon: areaCommon{common: common{name: name, color: color}, Opacity: opacity},
		Shape:      shape,
		Resolution: 96,
	}
}

// Kind implements Drawable.
func (*ClosedShapeArea) Kind() Kind { return KindClosedShapeArea }

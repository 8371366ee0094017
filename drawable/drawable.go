// Package drawable defines the math-space models the rendering core
// reads: points, segments, shapes, functions, colored areas, grids and
// the polygon family. The rendering core never mutates a drawable; it
// only reads geometry and color.
package drawable

import (
	"errors"

	"github.com/mathud/mathcanvas"
)

// ErrInvalidShape is returned by shape constructors when the input does
// not satisfy the shape's structural requirements (wrong side count,
// open or branching boundary, degenerate geometry).
var ErrInvalidShape = errors.New("drawable: invalid shape")

// Kind is the dispatch tag a renderer uses to locate the handler for a
// drawable. Handlers are registered per Kind; the renderer never
// branches on concrete types.
type Kind string

// Built-in drawable kinds.
const (
	KindPoint               Kind = "point"
	KindSegment             Kind = "segment"
	KindVector              Kind = "vector"
	KindCircle              Kind = "circle"
	KindEllipse             Kind = "ellipse"
	KindAngle               Kind = "angle"
	KindArc                 Kind = "arc"
	KindFunction            Kind = "function"
	KindFunctionsArea       Kind = "functions_area"
	KindFunctionSegmentArea Kind = "function_segment_area"
	KindSegmentsArea        Kind = "segments_area"
	KindClosedShapeArea     Kind = "closed_shape_area"
	KindPolygon             Kind = "polygon"
	KindCartesian           Kind = "cartesian"
	KindPolar               Kind = "polar"
)

// Drawable is the read-only contract every canvas object satisfies.
type Drawable interface {
	// Name is the stable user-facing identifier of the drawable.
	Name() string

	// Color is the drawable's base color.
	Color() mathcanvas.RGBA

	// Kind is the dispatch tag for handler lookup.
	Kind() Kind
}

// common carries the fields every drawable shares. Embedding types get
// the Drawable accessors for free; Kind stays per-type.
type common struct {
	name  string
	color mathcanvas.RGBA
}

func (c common) Name() string              { return c.name }
func (c common) Color() mathcanvas.RGBA    { return c.color }
func (c *common) SetColor(v mathcanvas.RGBA) { c.color = v }

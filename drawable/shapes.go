package drawable

import (
	"fmt"
	"math"

	"github.com/mathud/mathcanvas"
)

// Point is a named position in math space. RefScale snapshots the
// mapper's scale factor at creation; label sizing shrinks relative to
// it as the user zooms out.
type Point struct {
	common
	X, Y     float64
	RefScale float64
}

// NewPoint creates a named point at (x, y).
func NewPoint(name string, x, y float64, color mathcanvas.RGBA) *Point {
	return &Point{
		common:   common{name: name, color: color},
		X:        x,
		Y:        y,
		RefScale: 1.0,
	}
}

// Kind implements Drawable.
func (*Point) Kind() Kind { return KindPoint }

// Pos returns the point's math-space position.
func (p *Point) Pos() mathcanvas.Point { return mathcanvas.Pt(p.X, p.Y) }

// Move repositions the point. Shapes holding this point see the change
// on their next classification or render.
func (p *Point) Move(x, y float64) {
	p.X = x
	p.Y = y
}

// Segment is a straight line between two endpoints. The endpoints are
// shared: a segment holds the same *Point instances its polygon or
// vector holds. ShowLabel draws the segment name at its midpoint.
type Segment struct {
	common
	P1, P2    *Point
	ShowLabel bool
}

// NewSegment creates a segment between two existing points. The
// segment's name is the concatenation of its endpoint names.
func NewSegment(p1, p2 *Point, color mathcanvas.RGBA) *Segment {
	return &Segment{
		common: common{name: p1.Name() + p2.Name(), color: color},
		P1:     p1,
		P2:     p2,
	}
}

// Kind implements Drawable.
func (*Segment) Kind() Kind { return KindSegment }

// XExtent returns the segment's horizontal extent in math space,
// ordered min first.
func (s *Segment) XExtent() (float64, float64) {
	if s.P1.X <= s.P2.X {
		return s.P1.X, s.P2.X
	}
	return s.P2.X, s.P1.X
}

// Length returns the segment length in math units.
func (s *Segment) Length() float64 {
	return s.P1.Pos().Distance(s.P2.Pos())
}

// Vector is a directed segment drawn with an arrow head at P2.
type Vector struct {
	common
	Segment *Segment
}

// NewVector creates a vector from tail to tip.
func NewVector(name string, tail, tip *Point, color mathcanvas.RGBA) *Vector {
	return &Vector{
		common:  common{name: name, color: color},
		Segment: NewSegment(tail, tip, color),
	}
}

// Kind implements Drawable.
func (*Vector) Kind() Kind { return KindVector }

// Circle is a circle described by its center point and radius.
type Circle struct {
	common
	Center *Point
	Radius float64
}

// NewCircle creates a circle. A non-positive or non-finite radius is a
// construction error.
func NewCircle(name string, center *Point, radius float64, color mathcanvas.RGBA) (*Circle, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%w: circle radius must be positive, got %v", ErrInvalidShape, radius)
	}
	return &Circle{
		common: common{name: name, color: color},
		Center: center,
		Radius: radius,
	}, nil
}

// Kind implements Drawable.
func (*Circle) Kind() Kind { return KindCircle }

// Arc is a circular arc swept counterclockwise from StartAngle to
// EndAngle, in radians, around a center point.
type Arc struct {
	common
	Center               *Point
	Radius               float64
	StartAngle, EndAngle float64
}

// NewArc creates a circular arc. The radius must be positive and the
// sweep non-empty; angles outside [0, 2pi) are accepted as given.
func NewArc(name string, center *Point, radius, startAngle, endAngle float64, color mathcanvas.RGBA) (*Arc, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%w: arc radius must be positive, got %v", ErrInvalidShape, radius)
	}
	if math.IsNaN(startAngle) || math.IsInf(startAngle, 0) ||
		math.IsNaN(endAngle) || math.IsInf(endAngle, 0) {
		return nil, fmt.Errorf("%w: arc angles must be finite", ErrInvalidShape)
	}
	if endAngle <= startAngle {
		return nil, fmt.Errorf("%w: arc sweep must be positive, got [%v, %v]", ErrInvalidShape, startAngle, endAngle)
	}
	return &Arc{
		common:     common{name: name, color: color},
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}, nil
}

// Kind implements Drawable.
func (*Arc) Kind() Kind { return KindArc }

// BoundaryPoints samples the circle boundary counterclockwise starting
// at angle 0. Implements ClosedShape.
func (c *Circle) BoundaryPoints(resolution int) []mathcanvas.Point {
	return sampleEllipse(c.Center.Pos(), c.Radius, c.Radius, 0, resolution)
}

// Ellipse is an axis-aligned ellipse with an optional rotation about
// its center, in radians.
type Ellipse struct {
	common
	Center   *Point
	RX, RY   float64
	Rotation float64
}

// NewEllipse creates an ellipse. Non-positive radii are a construction
// error.
func NewEllipse(name string, center *Point, rx, ry, rotation float64, color mathcanvas.RGBA) (*Ellipse, error) {
	if rx <= 0 || ry <= 0 || math.IsNaN(rx) || math.IsNaN(ry) {
		return nil, fmt.Errorf("%w: ellipse radii must be positive, got (%v, %v)", ErrInvalidShape, rx, ry)
	}
	return &Ellipse{
		common:   common{name: name, color: color},
		Center:   center,
		RX:       rx,
		RY:       ry,
		Rotation: rotation,
	}, nil
}

// Kind implements Drawable.
func (*Ellipse) Kind() Kind { return KindEllipse }

// BoundaryPoints samples the ellipse boundary. Implements ClosedShape.
func (e *Ellipse) BoundaryPoints(resolution int) []mathcanvas.Point {
	return sampleEllipse(e.Center.Pos(), e.RX, e.RY, e.Rotation, resolution)
}

// Angle is the angle at Vertex between the rays toward A and B. The
// renderer draws an arc at a fixed screen radius plus a degree label.
type Angle struct {
	common
	Vertex, A, B *Point
}

// NewAngle creates an angle at vertex between the rays toward a and b.
func NewAngle(name string, vertex, a, b *Point, color mathcanvas.RGBA) *Angle {
	return &Angle{
		common: common{name: name, color: color},
		Vertex: vertex,
		A:      a,
		B:      b,
	}
}

// Kind implements Drawable.
func (*Angle) Kind() Kind { return KindAngle }

// Degrees returns the unsigned angle between the two rays in degrees,
// or ok == false when a ray is degenerate.
func (a *Angle) Degrees() (float64, bool) {
	v1 := a.A.Pos().Sub(a.Vertex.Pos())
	v2 := a.B.Pos().Sub(a.Vertex.Pos())
	if v1.Length() == 0 || v2.Length() == 0 {
		return 0, false
	}
	rad := math.Atan2(math.Abs(v1.Cross(v2)), v1.Dot(v2))
	return rad * 180 / math.Pi, true
}

// sampleEllipse samples an ellipse boundary at evenly spaced angles.
// resolution values below 3 are raised to the default of 96.
func sampleEllipse(center mathcanvas.Point, rx, ry, rotation float64, resolution int) []mathcanvas.Point {
	if resolution < 3 {
		resolution = 96
	}
	sinR, cosR := math.Sincos(rotation)
	pts := make([]mathcanvas.Point, 0, resolution)
	for i := 0; i < resolution; i++ {
		theta := 2 * math.Pi * float64(i) / float64(resolution)
		x := rx * math.Cos(theta)
		y := ry * math.Sin(theta)
		pts = append(pts, mathcanvas.Pt(
			center.X+x*cosR-y*sinR,
			center.Y+x*sinR+y*cosR,
		))
	}
	return pts
}

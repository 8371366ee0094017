package drawable

import (
	"fmt"
	"sort"

	"github.com/mathud/mathcanvas"
)

// GenericPolygonMinSides is the smallest side count accepted by
// NewNGon. Shapes with fewer sides have dedicated constructors.
const GenericPolygonMinSides = 11

// Polygon is a closed cycle of segments with a fixed expected side
// count per subtype. The vertex cycle shares *Point instances with its
// segments, so moving a point is visible to the next classification.
//
// Polygon math models are not rendered directly; their segments are
// drawn individually and their interior can be filled through a
// ClosedShapeArea. Renderable therefore defaults to false.
type Polygon struct {
	common
	subtype  string
	segments []*Segment
	points   []*Point
}

// Fixed-count polygon constructors. Each requires exactly its side
// count and a boundary that closes into a simple cycle.

// NewTriangle creates a three-sided polygon from its boundary segments.
func NewTriangle(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("triangle", 3, 3, segments, color)
}

// NewQuadrilateral creates a four-sided polygon from its boundary
// segments.
func NewQuadrilateral(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("quadrilateral", 4, 4, segments, color)
}

// NewPentagon creates a five-sided polygon from its boundary segments.
func NewPentagon(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("pentagon", 5, 5, segments, color)
}

// NewHexagon creates a six-sided polygon from its boundary segments.
func NewHexagon(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("hexagon", 6, 6, segments, color)
}

// NewHeptagon creates a seven-sided polygon from its boundary segments.
func NewHeptagon(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("heptagon", 7, 7, segments, color)
}

// NewOctagon creates an eight-sided polygon from its boundary segments.
func NewOctagon(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("octagon", 8, 8, segments, color)
}

// NewNonagon creates a nine-sided polygon from its boundary segments.
func NewNonagon(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("nonagon", 9, 9, segments, color)
}

// NewDecagon creates a ten-sided polygon from its boundary segments.
func NewDecagon(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("decagon", 10, 10, segments, color)
}

// NewNGon creates a generic polygon with at least
// GenericPolygonMinSides sides.
func NewNGon(segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	return newPolygon("polygon", len(segments), GenericPolygonMinSides, segments, color)
}

// newPolygon validates the side count and boundary topology, orders the
// segments into a vertex cycle, and names the polygon after its
// vertices.
func newPolygon(subtype string, want, min int, segments []*Segment, color mathcanvas.RGBA) (*Polygon, error) {
	if len(segments) != want {
		return nil, fmt.Errorf("%w: %s requires exactly %d segments, got %d",
			ErrInvalidShape, subtype, want, len(segments))
	}
	if len(segments) < min {
		return nil, fmt.Errorf("%w: %s requires at least %d segments, got %d",
			ErrInvalidShape, subtype, min, len(segments))
	}

	points, err := orderSegmentsIntoLoop(segments)
	if err != nil {
		return nil, fmt.Errorf("%w: segments do not form a closed %s: %v",
			ErrInvalidShape, subtype, err)
	}

	name := ""
	for _, p := range points {
		name += p.Name()
	}

	// Validate the cycle geometry once up front so a degenerate
	// polygon fails at construction, not at first classification.
	if _, err := ClassifyPolygon(coords(points)); err != nil {
		return nil, err
	}

	return &Polygon{
		common:   common{name: name, color: color},
		subtype:  subtype,
		segments: append([]*Segment(nil), segments...),
		points:   points,
	}, nil
}

// Kind implements Drawable.
func (*Polygon) Kind() Kind { return KindPolygon }

// Subtype returns the polygon's subtype name ("triangle" … "polygon").
func (p *Polygon) Subtype() string { return p.subtype }

// Sides returns the polygon's side count.
func (p *Polygon) Sides() int { return len(p.segments) }

// Segments returns the boundary segments in construction order.
func (p *Polygon) Segments() []*Segment {
	return append([]*Segment(nil), p.segments...)
}

// Vertices returns the current vertex positions in cycle order.
func (p *Polygon) Vertices() []mathcanvas.Point {
	return coords(p.points)
}

// BoundaryPoints implements ClosedShape; resolution is ignored since
// the boundary is already discrete.
func (p *Polygon) BoundaryPoints(int) []mathcanvas.Point {
	return p.Vertices()
}

// Classify recomputes the regularity flags from the current vertex
// positions. The result is never cached: vertices may have moved since
// the last call.
func (p *Polygon) Classify() (PolygonFlags, error) {
	return ClassifyPolygon(p.Vertices())
}

// Renderable reports whether the renderer should draw the polygon
// itself. Always false: rendering is delegated to the boundary
// segments and to colored areas built over the shape.
func (p *Polygon) Renderable() bool { return false }

func coords(points []*Point) []mathcanvas.Point {
	out := make([]mathcanvas.Point, 0, len(points))
	for _, p := range points {
		out = append(out, p.Pos())
	}
	return out
}

// orderSegmentsIntoLoop checks that the segments form a single simple
// cycle (every vertex has exactly two incident segments, all segments
// connected) and returns the vertices in traversal order without
// repeating the first. The traversal starts at the segment whose
// sorted endpoint-name pair is smallest, so the result is
// deterministic regardless of input order.
func orderSegmentsIntoLoop(segments []*Segment) ([]*Point, error) {
	if len(segments) < 3 {
		return nil, fmt.Errorf("need at least 3 segments, got %d", len(segments))
	}

	incident := make(map[string][]*Segment)
	pointByName := make(map[string]*Point)
	for _, s := range segments {
		if s == nil || s.P1 == nil || s.P2 == nil {
			return nil, fmt.Errorf("nil segment or endpoint")
		}
		incident[s.P1.Name()] = append(incident[s.P1.Name()], s)
		incident[s.P2.Name()] = append(incident[s.P2.Name()], s)
		pointByName[s.P1.Name()] = s.P1
		pointByName[s.P2.Name()] = s.P2
	}

	if len(pointByName) != len(segments) {
		return nil, fmt.Errorf("%d vertices for %d segments", len(pointByName), len(segments))
	}
	for name, segs := range incident {
		if len(segs) != 2 {
			return nil, fmt.Errorf("vertex %s has degree %d, want 2", name, len(segs))
		}
	}

	ordered := append([]*Segment(nil), segments...)
	sort.Slice(ordered, func(i, j int) bool {
		return segmentKey(ordered[i]) < segmentKey(ordered[j])
	})

	current := ordered[0]
	point := current.P1
	loop := []*Point{point}
	visited := map[*Segment]bool{current: true}

	for len(visited) < len(segments) {
		next := current.P2
		if point != current.P1 {
			next = current.P1
		}
		loop = append(loop, next)

		var following *Segment
		for _, cand := range incident[next.Name()] {
			if !visited[cand] {
				following = cand
				break
			}
		}
		if following == nil {
			return nil, fmt.Errorf("cycle breaks at vertex %s", next.Name())
		}
		visited[following] = true
		current, point = following, next
	}

	// The final segment must return to the start to close the loop.
	closing := current.P2
	if point != current.P1 {
		closing = current.P1
	}
	if closing.Name() != loop[0].Name() {
		return nil, fmt.Errorf("boundary does not close: ends at %s", closing.Name())
	}
	return loop, nil
}

func segmentKey(s *Segment) string {
	a, b := s.P1.Name(), s.P2.Name()
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

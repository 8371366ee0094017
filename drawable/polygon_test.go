package drawable

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/mathud/mathcanvas"
)

// ringPoints returns n named points evenly spaced on a circle.
func ringPoints(n int, radius float64) []*Point {
	pts := make([]*Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = NewPoint(fmt.Sprintf("P%02d", i),
			radius*math.Cos(theta), radius*math.Sin(theta), mathcanvas.Black)
	}
	return pts
}

// ringSegments closes a point ring into boundary segments.
func ringSegments(pts []*Point) []*Segment {
	segs := make([]*Segment, len(pts))
	for i := range pts {
		segs[i] = NewSegment(pts[i], pts[(i+1)%len(pts)], mathcanvas.Black)
	}
	return segs
}

func TestRegularPolygonsClassifyRegular(t *testing.T) {
	constructors := map[int]func([]*Segment, mathcanvas.RGBA) (*Polygon, error){
		5:  NewPentagon,
		6:  NewHexagon,
		7:  NewHeptagon,
		8:  NewOctagon,
		9:  NewNonagon,
		10: NewDecagon,
		11: NewNGon,
		15: NewNGon,
	}
	for n, construct := range constructors {
		t.Run(fmt.Sprintf("%d-gon", n), func(t *testing.T) {
			p, err := construct(ringSegments(ringPoints(n, 3)), mathcanvas.Black)
			if err != nil {
				t.Fatalf("construction failed: %v", err)
			}
			if p.Sides() != n {
				t.Errorf("Sides = %d, want %d", p.Sides(), n)
			}
			flags, err := p.Classify()
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if !flags.Regular || flags.Irregular {
				t.Errorf("flags = %+v, want regular", flags)
			}
		})
	}
}

func TestMovedVertexReclassifiesIrregular(t *testing.T) {
	pts := ringPoints(5, 3)
	p, err := NewPentagon(ringSegments(pts), mathcanvas.Black)
	if err != nil {
		t.Fatal(err)
	}

	// Vertex positions are shared with the segments, so moving the
	// point must be visible to the polygon's next classification.
	pts[0].Move(pts[0].X+0.05, pts[0].Y)

	flags, err := p.Classify()
	if err != nil {
		t.Fatal(err)
	}
	if !flags.Irregular || flags.Regular {
		t.Errorf("flags after perturbation = %+v, want irregular", flags)
	}

	// Moving it back restores regularity: nothing was cached.
	pts[0].Move(3*math.Cos(0), 3*math.Sin(0))
	flags, err = p.Classify()
	if err != nil {
		t.Fatal(err)
	}
	if !flags.Regular {
		t.Errorf("flags after restoring = %+v, want regular", flags)
	}
}

// quadSegments closes four named corner positions into a boundary.
func quadSegments(coords [4][2]float64) []*Segment {
	pts := make([]*Point, 4)
	for i, c := range coords {
		pts[i] = NewPoint(fmt.Sprintf("Q%d", i), c[0], c[1], mathcanvas.Black)
	}
	return ringSegments(pts)
}

func TestTriangleClassification(t *testing.T) {
	a := NewPoint("A", 0, 0, mathcanvas.Black)
	b := NewPoint("B", 4, 0, mathcanvas.Black)
	c := NewPoint("C", 0, 3, mathcanvas.Black)
	tri, err := NewTriangle([]*Segment{
		NewSegment(a, b, mathcanvas.Black),
		NewSegment(b, c, mathcanvas.Black),
		NewSegment(c, a, mathcanvas.Black),
	}, mathcanvas.Black)
	if err != nil {
		t.Fatal(err)
	}
	if tri.Subtype() != "triangle" || tri.Sides() != 3 {
		t.Errorf("subtype %q sides %d, want triangle with 3", tri.Subtype(), tri.Sides())
	}
	flags, err := tri.Classify()
	if err != nil {
		t.Fatal(err)
	}
	if !flags.Scalene || !flags.Right || flags.Isosceles || flags.Equilateral {
		t.Errorf("3-4-5 triangle flags = %+v, want scalene right", flags)
	}

	// Stretching one leg to match the other turns it isosceles; nothing
	// is cached between classifications.
	b.Move(3, 0)
	flags, err = tri.Classify()
	if err != nil {
		t.Fatal(err)
	}
	if !flags.Isosceles || flags.Scalene {
		t.Errorf("flags after move = %+v, want isosceles", flags)
	}
}

func TestQuadrilateralClassification(t *testing.T) {
	tests := []struct {
		name   string
		coords [4][2]float64
		check  func(PolygonFlags) bool
	}{
		{"square", [4][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
			func(f PolygonFlags) bool { return f.Square && f.Rectangle && f.Rhombus && f.Regular }},
		{"rectangle", [4][2]float64{{0, 0}, {5, 0}, {5, 2}, {0, 2}},
			func(f PolygonFlags) bool { return f.Rectangle && !f.Square && !f.Rhombus && !f.Irregular }},
		{"rhombus", [4][2]float64{{0, 0}, {2, 1}, {4, 0}, {2, -1}},
			func(f PolygonFlags) bool { return f.Rhombus && !f.Square && !f.Rectangle && !f.Irregular }},
		{"irregular", [4][2]float64{{0, 0}, {5, 0}, {4, 2}, {1, 2}},
			func(f PolygonFlags) bool { return f.Irregular && !f.Square && !f.Rectangle && !f.Rhombus }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuadrilateral(quadSegments(tt.coords), mathcanvas.Black)
			if err != nil {
				t.Fatal(err)
			}
			if q.Subtype() != "quadrilateral" {
				t.Errorf("subtype = %q, want quadrilateral", q.Subtype())
			}
			flags, err := q.Classify()
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(flags) {
				t.Errorf("flags = %+v", flags)
			}
		})
	}
}

func TestPolygonWrongSideCount(t *testing.T) {
	hexRing := ringSegments(ringPoints(6, 2))
	if _, err := NewHeptagon(hexRing, mathcanvas.Black); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("heptagon from 6 segments: err = %v, want ErrInvalidShape", err)
	}
}

func TestNGonMinimumSides(t *testing.T) {
	if _, err := NewNGon(ringSegments(ringPoints(10, 2)), mathcanvas.Black); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("10-segment n-gon: err = %v, want ErrInvalidShape", err)
	}
	if _, err := NewNGon(ringSegments(ringPoints(11, 2)), mathcanvas.Black); err != nil {
		t.Errorf("11-segment n-gon failed: %v", err)
	}
}

func TestPolygonOpenChainRejected(t *testing.T) {
	pts := ringPoints(6, 2)
	segs := make([]*Segment, 0, 5)
	for i := 0; i < 5; i++ {
		segs = append(segs, NewSegment(pts[i], pts[i+1], mathcanvas.Black))
	}
	if _, err := NewPentagon(segs, mathcanvas.Black); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("open chain: err = %v, want ErrInvalidShape", err)
	}
}

func TestPolygonCoincidentVerticesRejected(t *testing.T) {
	pts := ringPoints(5, 2)
	// Two distinct points at the same position give a zero-length side.
	pts[1].Move(pts[0].X, pts[0].Y)
	if _, err := NewPentagon(ringSegments(pts), mathcanvas.Black); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("coincident vertices: err = %v, want ErrInvalidShape", err)
	}
}

func TestPolygonVertexOrderDeterministic(t *testing.T) {
	build := func(order []int) *Polygon {
		pts := ringPoints(5, 2)
		ring := ringSegments(pts)
		segs := make([]*Segment, len(ring))
		for i, idx := range order {
			segs[i] = ring[idx]
		}
		p, err := NewPentagon(segs, mathcanvas.Black)
		if err != nil {
			t.Fatal(err)
		}
		return p
	}
	a := build([]int{0, 1, 2, 3, 4})
	b := build([]int{3, 1, 4, 0, 2})
	if a.Name() != b.Name() {
		t.Errorf("vertex order depends on input order: %q vs %q", a.Name(), b.Name())
	}
}

func TestPolygonNotRenderable(t *testing.T) {
	p, err := NewPentagon(ringSegments(ringPoints(5, 2)), mathcanvas.Black)
	if err != nil {
		t.Fatal(err)
	}
	if p.Renderable() {
		t.Error("polygon models should not be rendered directly")
	}
	if p.Kind() != KindPolygon {
		t.Errorf("Kind = %q", p.Kind())
	}
}

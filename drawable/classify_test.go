package drawable

import (
	"errors"
	"math"
	"testing"

	"github.com/mathud/mathcanvas"
)

func square(side float64) []mathcanvas.Point {
	return []mathcanvas.Point{
		mathcanvas.Pt(0, 0),
		mathcanvas.Pt(side, 0),
		mathcanvas.Pt(side, side),
		mathcanvas.Pt(0, side),
	}
}

func TestClassifySquareRegular(t *testing.T) {
	flags, err := ClassifyPolygon(square(4))
	if err != nil {
		t.Fatal(err)
	}
	if !flags.Regular || flags.Irregular {
		t.Errorf("square flags = %+v, want regular", flags)
	}
	// A square is also a rectangle and a rhombus.
	if !flags.Square || !flags.Rectangle || !flags.Rhombus {
		t.Errorf("square flags = %+v, want all quadrilateral subtypes", flags)
	}
}

func TestClassifyQuadrilateralSubtypes(t *testing.T) {
	tests := []struct {
		name     string
		vertices []mathcanvas.Point
		want     PolygonFlags
	}{
		{
			name: "rectangle",
			vertices: []mathcanvas.Point{
				mathcanvas.Pt(0, 0), mathcanvas.Pt(6, 0),
				mathcanvas.Pt(6, 2), mathcanvas.Pt(0, 2),
			},
			// Not regular, but also not irregular: it has a subtype.
			want: PolygonFlags{Rectangle: true},
		},
		{
			name: "rhombus",
			vertices: []mathcanvas.Point{
				mathcanvas.Pt(0, 0), mathcanvas.Pt(2, 1),
				mathcanvas.Pt(4, 0), mathcanvas.Pt(2, -1),
			},
			want: PolygonFlags{Rhombus: true},
		},
		{
			name: "trapezoid",
			vertices: []mathcanvas.Point{
				mathcanvas.Pt(0, 0), mathcanvas.Pt(5, 0),
				mathcanvas.Pt(4, 2), mathcanvas.Pt(1, 2),
			},
			want: PolygonFlags{Irregular: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := ClassifyPolygon(tt.vertices)
			if err != nil {
				t.Fatal(err)
			}
			if flags != tt.want {
				t.Errorf("flags = %+v, want %+v", flags, tt.want)
			}
		})
	}
}

func TestClassifyTriangleSubtypes(t *testing.T) {
	tests := []struct {
		name     string
		vertices []mathcanvas.Point
		want     PolygonFlags
	}{
		{
			name: "equilateral",
			vertices: []mathcanvas.Point{
				mathcanvas.Pt(0, 0), mathcanvas.Pt(2, 0),
				mathcanvas.Pt(1, math.Sqrt(3)),
			},
			// Equilateral implies isosceles.
			want: PolygonFlags{Regular: true, Equilateral: true, Isosceles: true},
		},
		{
			name: "isosceles right",
			vertices: []mathcanvas.Point{
				mathcanvas.Pt(0, 0), mathcanvas.Pt(2, 0),
				mathcanvas.Pt(0, 2),
			},
			want: PolygonFlags{Irregular: true, Isosceles: true, Right: true},
		},
		{
			name: "scalene right",
			vertices: []mathcanvas.Point{
				mathcanvas.Pt(0, 0), mathcanvas.Pt(4, 0),
				mathcanvas.Pt(0, 3),
			},
			want: PolygonFlags{Irregular: true, Scalene: true, Right: true},
		},
		{
			name: "scalene",
			vertices: []mathcanvas.Point{
				mathcanvas.Pt(0, 0), mathcanvas.Pt(6, 0),
				mathcanvas.Pt(1, 3),
			},
			want: PolygonFlags{Irregular: true, Scalene: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := ClassifyPolygon(tt.vertices)
			if err != nil {
				t.Fatal(err)
			}
			if flags != tt.want {
				t.Errorf("flags = %+v, want %+v", flags, tt.want)
			}
		})
	}
}

func TestClassifyToleranceScalesWithSize(t *testing.T) {
	// A large square with floating point noise well below the relative
	// tolerance still counts as regular.
	big := square(1e6)
	big[2].X += 1e-4 // relative error 1e-10
	flags, err := ClassifyPolygon(big)
	if err != nil {
		t.Fatal(err)
	}
	if !flags.Regular {
		t.Errorf("large square with tiny noise = %+v, want regular", flags)
	}
}

func TestClassifyOverlappingVertices(t *testing.T) {
	bad := []mathcanvas.Point{
		mathcanvas.Pt(0, 0), mathcanvas.Pt(0, 0),
		mathcanvas.Pt(1, 1), mathcanvas.Pt(0, 1),
	}
	if _, err := ClassifyPolygon(bad); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("err = %v, want ErrInvalidShape", err)
	}
}

func TestInteriorAnglesOfSquare(t *testing.T) {
	angles, err := interiorAngles(square(2))
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range angles {
		if math.Abs(a-90) > 1e-9 {
			t.Errorf("angle[%d] = %v, want 90", i, a)
		}
	}
}

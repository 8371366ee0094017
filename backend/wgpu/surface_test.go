package wgpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/render"
)

func TestNDCMapping(t *testing.T) {
	s := newSurface(800, 600, nil, nil)
	tests := []struct {
		px, py float64
		nx, ny float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{800, 0, 1, 1},
	}
	for _, tt := range tests {
		x, y := s.ndc(mathcanvas.Pt(tt.px, tt.py))
		if x != tt.nx || y != tt.ny {
			t.Errorf("ndc(%v, %v) = (%v, %v), want (%v, %v)", tt.px, tt.py, x, y, tt.nx, tt.ny)
		}
	}
}

func TestStrokeLineVertexStream(t *testing.T) {
	s := newSurface(100, 100, nil, nil)
	s.StrokeLine(mathcanvas.Pt(10, 50), mathcanvas.Pt(90, 50),
		render.StrokeStyle{Color: mathcanvas.Red, Width: 2})

	// One segment is a quad, two triangles.
	if got := s.VertexCount(); got != 6 {
		t.Fatalf("vertex count %d, want 6", got)
	}
	data := s.VertexData()
	if len(data) != 6*floatsPerVertex {
		t.Fatalf("stream length %d", len(data))
	}
	// Every vertex carries opaque red.
	for i := 0; i < len(data); i += floatsPerVertex {
		r, g, b, a := data[i+2], data[i+3], data[i+4], data[i+5]
		if r != 1 || g != 0 || b != 0 || a != 1 {
			t.Fatalf("vertex %d color (%v %v %v %v)", i/floatsPerVertex, r, g, b, a)
		}
	}
}

func TestFillPolygonFanCount(t *testing.T) {
	s := newSurface(100, 100, nil, nil)
	pts := []mathcanvas.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}, {X: 5, Y: 50}}
	s.FillPolygon(pts, render.FillStyle{Color: mathcanvas.Blue, Opacity: 1}, nil)

	// A fan over n points yields n-2 triangles.
	if got := s.VertexCount(); got != (len(pts)-2)*3 {
		t.Errorf("vertex count %d, want %d", got, (len(pts)-2)*3)
	}
}

func TestFillLoopPairsEqualLengthPaths(t *testing.T) {
	s := newSurface(100, 100, nil, nil)
	forward := []mathcanvas.Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 90, Y: 10}}
	reverse := []mathcanvas.Point{{X: 90, Y: 40}, {X: 50, Y: 40}, {X: 10, Y: 40}}
	s.FillLoop(forward, reverse, render.FillStyle{Color: mathcanvas.Blue, Opacity: 1})

	// n-1 quads between paired columns, two triangles each.
	want := (len(forward) - 1) * 2 * 3
	if got := s.VertexCount(); got != want {
		t.Errorf("vertex count %d, want %d", got, want)
	}
}

func TestOpacityClampsAlpha(t *testing.T) {
	s := newSurface(100, 100, nil, nil)
	s.FillPolygon([]mathcanvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}},
		render.FillStyle{Color: mathcanvas.Blue, Opacity: 4}, nil)
	data := s.VertexData()
	if a := data[5]; a != 1 {
		t.Errorf("alpha %v, want clamped to 1", a)
	}
}

func TestClearAndResizeDropGeometry(t *testing.T) {
	s := newSurface(100, 100, nil, nil)
	s.StrokeLine(mathcanvas.Pt(0, 0), mathcanvas.Pt(1, 1),
		render.StrokeStyle{Color: mathcanvas.Black, Width: 1})
	s.DrawText("x", mathcanvas.Pt(0, 0), render.FontStyle{Size: 10},
		mathcanvas.Black, render.AlignLeft)

	s.Clear()
	if s.VertexCount() != 0 || len(s.TextRuns()) != 0 {
		t.Error("Clear left geometry behind")
	}

	s.StrokeLine(mathcanvas.Pt(0, 0), mathcanvas.Pt(1, 1),
		render.StrokeStyle{Color: mathcanvas.Black, Width: 1})
	s.Resize(200, 100)
	if s.VertexCount() != 0 {
		t.Error("Resize left geometry behind")
	}
}

func TestDrawTextDefersRun(t *testing.T) {
	s := newSurface(100, 100, nil, nil)
	s.DrawText("label", mathcanvas.Pt(12, 34), render.FontStyle{Size: 10},
		mathcanvas.Black, render.AlignCenter)

	runs := s.TextRuns()
	if len(runs) != 1 {
		t.Fatalf("got %d text runs", len(runs))
	}
	run := runs[0]
	if run.Text != "label" || run.X != 12 || run.Y != 34 || run.Align != render.AlignCenter {
		t.Errorf("unexpected run %+v", run)
	}
	if s.VertexCount() != 0 {
		t.Error("text should not tessellate geometry")
	}
}

func TestStrokeCircleCloses(t *testing.T) {
	s := newSurface(100, 100, nil, nil)
	s.StrokeCircle(mathcanvas.Pt(50, 50), 20, render.StrokeStyle{Color: mathcanvas.Black, Width: 1})
	// A closed ring of arcSegments chords, two triangles per chord.
	if got := s.VertexCount(); got != arcSegments*2*3 {
		t.Errorf("vertex count %d, want %d", got, arcSegments*2*3)
	}
}

func TestSpirvWords(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:], 0x07230203)
	binary.LittleEndian.PutUint32(buf[4:], 0x00010000)

	words, err := spirvWords(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[0] != 0x07230203 || words[1] != 0x00010000 {
		t.Errorf("words = %#x", words)
	}

	if _, err := spirvWords(buf[:7]); err == nil {
		t.Error("truncated module accepted")
	}
	bad := make([]byte, 8)
	binary.LittleEndian.PutUint32(bad[0:], 0xdeadbeef)
	if _, err := spirvWords(bad); err == nil {
		t.Error("wrong magic accepted")
	}
	if _, err := spirvWords(nil); err == nil {
		t.Error("empty module accepted")
	}
}

func TestFillCircleStaysInBounds(t *testing.T) {
	s := newSurface(200, 200, nil, nil)
	s.FillCircle(mathcanvas.Pt(100, 100), 50, render.FillStyle{Color: mathcanvas.Red, Opacity: 1})

	// Every tessellated vertex must stay within the circle's NDC
	// bounding box.
	data := s.VertexData()
	for i := 0; i < len(data); i += floatsPerVertex {
		x := float64(data[i])
		y := float64(data[i+1])
		if math.Abs(x) > 0.51 || math.Abs(y) > 0.51 {
			t.Fatalf("vertex (%v, %v) escapes circle bounds", x, y)
		}
	}
}

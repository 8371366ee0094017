package wgpu

import (
	"math"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/render"
	"github.com/mathud/mathcanvas/textmeasure"
)

// floatsPerVertex is the vertex layout of the fill shader: xy position
// in normalized device coordinates plus rgba color.
const floatsPerVertex = 6

const arcSegments = 64

// TextRun is a deferred text draw. Glyph rasterization happens on the
// host side; the surface only records placement.
type TextRun struct {
	Text  string
	X, Y  float64
	Size  float64
	Color mathcanvas.RGBA
	Align render.HAlign
}

// Surface tessellates primitives into flat-colored triangles for the
// fill pipeline and keeps the rasterized pixels of the last completed
// frame. It implements render.Primitives.
type Surface struct {
	width, height int
	verts         []float32
	texts         []TextRun
	pix           []uint8
	gpu           *rasterizer
	measurer      *textmeasure.Measurer
}

func newSurface(width, height int, measurer *textmeasure.Measurer, gpu *rasterizer) *Surface {
	s := &Surface{width: width, height: height, measurer: measurer, gpu: gpu}
	s.resetPixels()
	return s
}

// resetPixels reallocates the pixel buffer filled with opaque white.
func (s *Surface) resetPixels() {
	s.pix = make([]uint8, s.width*s.height*4)
	for i := range s.pix {
		s.pix[i] = 0xFF
	}
}

// VertexData returns the accumulated vertex stream, six float32 per
// vertex, three vertices per triangle.
func (s *Surface) VertexData() []float32 { return s.verts }

// VertexCount returns the number of tessellated vertices.
func (s *Surface) VertexCount() int { return len(s.verts) / floatsPerVertex }

// TextRuns returns the deferred text draws of the current frame.
func (s *Surface) TextRuns() []TextRun { return s.texts }

// BeginFrame implements render.Primitives.
func (s *Surface) BeginFrame() { s.Clear() }

// EndFrame submits the frame's triangles to the compute pipeline and
// reads the composited pixels back. A dispatch failure keeps the
// previous frame's pixels; text runs stay deferred for the host
// compositor either way.
func (s *Surface) EndFrame() {
	if s.gpu == nil {
		return
	}
	if err := s.gpu.Fill(s.width, s.height, s.verts, s.pix); err != nil {
		mathcanvas.Logger().Warn("gpu frame dispatch failed", "error", err)
	}
}

// Pixels returns the rasterized RGBA pixels of the last completed
// frame, row-major.
func (s *Surface) Pixels() []uint8 { return s.pix }

// BeginShape implements render.Primitives.
func (s *Surface) BeginShape() {}

// EndShape implements render.Primitives.
func (s *Surface) EndShape() {}

// Clear drops all tessellated geometry and text runs and resets the
// pixel buffer to the background.
func (s *Surface) Clear() {
	s.verts = s.verts[:0]
	s.texts = s.texts[:0]
	s.resetPixels()
}

// Resize implements render.Primitives.
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.Clear()
}

// ndc converts a screen pixel position to normalized device
// coordinates with y up.
func (s *Surface) ndc(p mathcanvas.Point) (float32, float32) {
	return float32(2*p.X/float64(s.width) - 1), float32(1 - 2*p.Y/float64(s.height))
}

func (s *Surface) triangle(a, b, c mathcanvas.Point, col mathcanvas.RGBA, opacity float64) {
	alpha := col.A * opacity
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	for _, p := range [3]mathcanvas.Point{a, b, c} {
		x, y := s.ndc(p)
		s.verts = append(s.verts,
			x, y,
			float32(col.R), float32(col.G), float32(col.B), float32(alpha))
	}
}

// StrokeLine implements render.Primitives.
func (s *Surface) StrokeLine(a, b mathcanvas.Point, st render.StrokeStyle) {
	s.strokeSegments([]mathcanvas.Point{a, b}, st)
}

// StrokePolyline implements render.Primitives.
func (s *Surface) StrokePolyline(pts []mathcanvas.Point, st render.StrokeStyle) {
	s.strokeSegments(pts, st)
}

// StrokeCircle implements render.Primitives.
func (s *Surface) StrokeCircle(center mathcanvas.Point, radius float64, st render.StrokeStyle) {
	s.strokeSegments(arcPolyline(center, radius, radius, 0, 0, 2*math.Pi, true), st)
}

// FillCircle implements render.Primitives.
func (s *Surface) FillCircle(center mathcanvas.Point, radius float64, f render.FillStyle) {
	s.fillFan(arcPolyline(center, radius, radius, 0, 0, 2*math.Pi, false), f)
}

// StrokeEllipse implements render.Primitives.
func (s *Surface) StrokeEllipse(center mathcanvas.Point, rx, ry, rotation float64, st render.StrokeStyle) {
	s.strokeSegments(arcPolyline(center, rx, ry, rotation, 0, 2*math.Pi, true), st)
}

// StrokeArc implements render.Primitives.
func (s *Surface) StrokeArc(center mathcanvas.Point, radius, startRad, endRad float64, st render.StrokeStyle) {
	s.strokeSegments(arcPolyline(center, radius, radius, 0, startRad, endRad, false), st)
}

// FillPolygon implements render.Primitives.
func (s *Surface) FillPolygon(pts []mathcanvas.Point, f render.FillStyle, stroke *render.StrokeStyle) {
	s.fillFan(pts, f)
	if stroke != nil {
		closed := append(append([]mathcanvas.Point(nil), pts...), pts[0])
		s.strokeSegments(closed, *stroke)
	}
}

// FillLoop implements render.Primitives. When the two paths pair up
// sample for sample the region is tessellated as quads between them,
// which stays correct for the concave regions between curves; uneven
// paths fall back to fan tessellation of the whole loop.
func (s *Surface) FillLoop(forward, reverse []mathcanvas.Point, f render.FillStyle) {
	if len(forward) >= 2 && len(forward) == len(reverse) {
		n := len(forward)
		for i := 0; i < n-1; i++ {
			// reverse runs backward, so pair index i with n-1-i.
			a, b := forward[i], forward[i+1]
			c, d := reverse[n-2-i], reverse[n-1-i]
			s.triangle(a, b, c, f.Color, f.Opacity)
			s.triangle(a, c, d, f.Color, f.Opacity)
		}
		return
	}
	loop := make([]mathcanvas.Point, 0, len(forward)+len(reverse))
	loop = append(loop, forward...)
	loop = append(loop, reverse...)
	s.fillFan(loop, f)
}

// DrawText implements render.Primitives.
func (s *Surface) DrawText(text string, at mathcanvas.Point, fs render.FontStyle, col mathcanvas.RGBA, align render.HAlign) {
	if text == "" || fs.Size <= 0 {
		return
	}
	s.texts = append(s.texts, TextRun{
		Text:  text,
		X:     at.X,
		Y:     at.Y,
		Size:  fs.Size,
		Color: col,
		Align: align,
	})
}

// Measurer exposes the shaping measurer so a host compositor can lay
// out the recorded text runs.
func (s *Surface) Measurer() *textmeasure.Measurer { return s.measurer }

func (s *Surface) fillFan(pts []mathcanvas.Point, f render.FillStyle) {
	if len(pts) < 3 {
		return
	}
	for i := 1; i < len(pts)-1; i++ {
		s.triangle(pts[0], pts[i], pts[i+1], f.Color, f.Opacity)
	}
}

func (s *Surface) strokeSegments(pts []mathcanvas.Point, st render.StrokeStyle) {
	if len(pts) < 2 {
		return
	}
	width := st.Width
	if width <= 0 {
		width = 1
	}
	half := width / 2
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}
		n := mathcanvas.Pt(-d.Y/length*half, d.X/length*half)
		p1, p2, p3, p4 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
		s.triangle(p1, p2, p3, st.Color, 1)
		s.triangle(p1, p3, p4, st.Color, 1)
	}
}

func arcPolyline(center mathcanvas.Point, rx, ry, rotation, startRad, endRad float64, closed bool) []mathcanvas.Point {
	if endRad < startRad {
		startRad, endRad = endRad, startRad
	}
	sinR, cosR := math.Sincos(rotation)
	span := endRad - startRad
	n := int(float64(arcSegments) * span / (2 * math.Pi))
	if n < 8 {
		n = 8
	}
	pts := make([]mathcanvas.Point, 0, n+2)
	for i := 0; i <= n; i++ {
		theta := startRad + span*float64(i)/float64(n)
		x := rx * math.Cos(theta)
		y := ry * math.Sin(theta)
		pts = append(pts, mathcanvas.Pt(
			center.X+x*cosR-y*sinR,
			center.Y+x*sinR+y*cosR,
		))
	}
	if closed {
		pts = append(pts, pts[0])
	}
	return pts
}

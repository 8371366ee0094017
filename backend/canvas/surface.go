package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/render"
)

// circleSegments is the polyline resolution circles, ellipses, and
// arcs are flattened at before rasterization.
const circleSegments = 64

// Surface is an immediate raster drawing surface backed by an RGBA
// image. It implements render.Primitives.
type Surface struct {
	img   *image.RGBA
	fnt   *opentype.Font
	faces map[float64]font.Face
	bg    color.NRGBA
}

// Image exposes the underlying pixels, for encoding or inspection.
func (s *Surface) Image() *image.RGBA { return s.img }

// SetBackground changes the color Clear fills with.
func (s *Surface) SetBackground(c mathcanvas.RGBA) {
	s.bg = toNRGBA(c, 1)
}

// BeginFrame implements render.Primitives. The raster surface draws
// immediately, so frames only clear.
func (s *Surface) BeginFrame() { s.Clear() }

// EndFrame implements render.Primitives.
func (s *Surface) EndFrame() {}

// BeginShape implements render.Primitives.
func (s *Surface) BeginShape() {}

// EndShape implements render.Primitives.
func (s *Surface) EndShape() {}

// Clear fills the surface with the background color.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
}

// Resize replaces the surface with a cleared one of the new size.
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.Clear()
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
	s.strokeSegments(flattenArc(center, radius, radius, 0, 0, 2*math.Pi, true), st)
}

// FillCircle implements render.Primitives.
func (s *Surface) FillCircle(center mathcanvas.Point, radius float64, f render.FillStyle) {
	s.fillPath(flattenArc(center, radius, radius, 0, 0, 2*math.Pi, true), f)
}

// StrokeEllipse implements render.Primitives.
func (s *Surface) StrokeEllipse(center mathcanvas.Point, rx, ry, rotation float64, st render.StrokeStyle) {
	s.strokeSegments(flattenArc(center, rx, ry, rotation, 0, 2*math.Pi, true), st)
}

// StrokeArc implements render.Primitives.
func (s *Surface) StrokeArc(center mathcanvas.Point, radius, startRad, endRad float64, st render.StrokeStyle) {
	s.strokeSegments(flattenArc(center, radius, radius, 0, startRad, endRad, false), st)
}

// FillPolygon implements render.Primitives.
func (s *Surface) FillPolygon(pts []mathcanvas.Point, f render.FillStyle, stroke *render.StrokeStyle) {
	s.fillPath(pts, f)
	if stroke != nil {
		closed := append(append([]mathcanvas.Point(nil), pts...), pts[0])
		s.strokeSegments(closed, *stroke)
	}
}

// FillLoop implements render.Primitives.
func (s *Surface) FillLoop(forward, reverse []mathcanvas.Point, f render.FillStyle) {
	loop := make([]mathcanvas.Point, 0, len(forward)+len(reverse))
	loop = append(loop, forward...)
	loop = append(loop, reverse...)
	s.fillPath(loop, f)
}

// DrawText implements render.Primitives. The position is the text
// baseline origin before alignment.
func (s *Surface) DrawText(text string, at mathcanvas.Point, fs render.FontStyle, col mathcanvas.RGBA, align render.HAlign) {
	if text == "" || fs.Size <= 0 {
		return
	}
	face, err := s.face(fs.Size)
	if err != nil {
		mathcanvas.Logger().Warn("font face creation failed", "size", fs.Size, "error", err)
		return
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(toNRGBA(col, 1)),
		Face: face,
	}
	width := d.MeasureString(text)
	x := at.X
	switch align {
	case render.AlignCenter:
		x -= float64(width) / 64 / 2
	case render.AlignRight:
		x -= float64(width) / 64
	}
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(at.Y * 64),
	}
	d.DrawString(text)
}

// fillPath rasterizes a closed polygon with the nonzero winding rule.
func (s *Surface) fillPath(pts []mathcanvas.Point, f render.FillStyle) {
	if len(pts) < 3 {
		return
	}
	bounds := s.img.Bounds()
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
	ras.Draw(s.img, bounds, image.NewUniform(toNRGBA(f.Color, f.Opacity)), image.Point{})
}

// strokeSegments draws each polyline segment as a filled quad of the
// stroke width. Joins are butt joins; the canvas draws hairline-scale
// strokes where that is not visible.
func (s *Surface) strokeSegments(pts []mathcanvas.Point, st render.StrokeStyle) {
	if len(pts) < 2 {
		return
	}
	width := st.Width
	if width <= 0 {
		width = 1
	}
	half := width / 2
	fill := render.FillStyle{Color: st.Color, Opacity: 1}
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}
		// Unit normal of the segment.
		n := mathcanvas.Pt(-d.Y/length*half, d.X/length*half)
		s.fillPath([]mathcanvas.Point{
			a.Add(n), b.Add(n), b.Sub(n), a.Sub(n),
		}, fill)
	}
}

// flattenArc samples an elliptical arc into a polyline. closed repeats
// the first point so stroking forms a ring.
func flattenArc(center mathcanvas.Point, rx, ry, rotation, startRad, endRad float64, closed bool) []mathcanvas.Point {
	if endRad < startRad {
		startRad, endRad = endRad, startRad
	}
	sinR, cosR := math.Sincos(rotation)
	span := endRad - startRad
	n := int(float64(circleSegments) * span / (2 * math.Pi))
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

// toNRGBA converts a color and an extra opacity multiplier to 8-bit.
func toNRGBA(c mathcanvas.RGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return color.NRGBA{
		R: clamp(c.R * 255),
		G: clamp(c.G * 255),
		B: clamp(c.B * 255),
		A: clamp(c.A * opacity * 255),
	}
}

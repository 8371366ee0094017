package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/render"
)

// Surface records primitives as SVG elements. It implements
// render.Primitives; Document returns the serialized frame.
type Surface struct {
	width, height int
	bg            mathcanvas.RGBA
	body          bytes.Buffer
	inGroup       bool
}

// NewSurface creates an empty SVG surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		bg:     mathcanvas.White,
	}
}

// SetBackground changes the document background color.
func (s *Surface) SetBackground(c mathcanvas.RGBA) { s.bg = c }

// BeginFrame implements render.Primitives. Recording restarts, so one
// surface serializes only its latest frame.
func (s *Surface) BeginFrame() {
	s.body.Reset()
	s.inGroup = false
}

// EndFrame implements render.Primitives.
func (s *Surface) EndFrame() {
	if s.inGroup {
		s.body.WriteString("</g>\n")
		s.inGroup = false
	}
}

// BeginShape opens an element group.
func (s *Surface) BeginShape() {
	s.body.WriteString("<g>\n")
	s.inGroup = true
}

// EndShape closes the current element group.
func (s *Surface) EndShape() {
	if s.inGroup {
		s.body.WriteString("</g>\n")
		s.inGroup = false
	}
}

// Clear discards all recorded elements.
func (s *Surface) Clear() {
	s.body.Reset()
	s.inGroup = false
}

// Resize implements render.Primitives.
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.Clear()
}

// StrokeLine implements render.Primitives.
func (s *Surface) StrokeLine(a, b mathcanvas.Point, st render.StrokeStyle) {
	fmt.Fprintf(&s.body, `<line x1=%q y1=%q x2=%q y2=%q %s/>`+"\n",
		num(a.X), num(a.Y), num(b.X), num(b.Y), strokeAttrs(st))
}

// StrokePolyline implements render.Primitives.
func (s *Surface) StrokePolyline(pts []mathcanvas.Point, st render.StrokeStyle) {
	if len(pts) < 2 {
		return
	}
	fmt.Fprintf(&s.body, `<polyline points=%q fill="none" %s/>`+"\n",
		pointList(pts), strokeAttrs(st))
}

// StrokeCircle implements render.Primitives.
func (s *Surface) StrokeCircle(center mathcanvas.Point, radius float64, st render.StrokeStyle) {
	fmt.Fprintf(&s.body, `<circle cx=%q cy=%q r=%q fill="none" %s/>`+"\n",
		num(center.X), num(center.Y), num(radius), strokeAttrs(st))
}

// FillCircle implements render.Primitives.
func (s *Surface) FillCircle(center mathcanvas.Point, radius float64, f render.FillStyle) {
	fmt.Fprintf(&s.body, `<circle cx=%q cy=%q r=%q %s/>`+"\n",
		num(center.X), num(center.Y), num(radius), fillAttrs(f))
}

// StrokeEllipse implements render.Primitives.
func (s *Surface) StrokeEllipse(center mathcanvas.Point, rx, ry, rotation float64, st render.StrokeStyle) {
	transform := ""
	if rotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%s %s %s)"`,
			num(rotation*180/math.Pi), num(center.X), num(center.Y))
	}
	fmt.Fprintf(&s.body, `<ellipse cx=%q cy=%q rx=%q ry=%q fill="none" %s%s/>`+"\n",
		num(center.X), num(center.Y), num(rx), num(ry), strokeAttrs(st), transform)
}

// StrokeArc implements render.Primitives.
func (s *Surface) StrokeArc(center mathcanvas.Point, radius, startRad, endRad float64, st render.StrokeStyle) {
	if endRad < startRad {
		startRad, endRad = endRad, startRad
	}
	start := mathcanvas.Pt(
		center.X+radius*math.Cos(startRad),
		center.Y+radius*math.Sin(startRad),
	)
	end := mathcanvas.Pt(
		center.X+radius*math.Cos(endRad),
		center.Y+radius*math.Sin(endRad),
	)
	largeArc := 0
	if endRad-startRad > math.Pi {
		largeArc = 1
	}
	fmt.Fprintf(&s.body, `<path d="M %s %s A %s %s 0 %d 1 %s %s" fill="none" %s/>`+"\n",
		num(start.X), num(start.Y), num(radius), num(radius), largeArc,
		num(end.X), num(end.Y), strokeAttrs(st))
}

// FillPolygon implements render.Primitives.
func (s *Surface) FillPolygon(pts []mathcanvas.Point, f render.FillStyle, stroke *render.StrokeStyle) {
	if len(pts) < 3 {
		return
	}
	extra := `stroke="none"`
	if stroke != nil {
		extra = strokeAttrs(*stroke)
	}
	fmt.Fprintf(&s.body, `<polygon points=%q %s %s/>`+"\n",
		pointList(pts), fillAttrs(f), extra)
}

// FillLoop implements render.Primitives.
func (s *Surface) FillLoop(forward, reverse []mathcanvas.Point, f render.FillStyle) {
	loop := make([]mathcanvas.Point, 0, len(forward)+len(reverse))
	loop = append(loop, forward...)
	loop = append(loop, reverse...)
	if len(loop) < 3 {
		return
	}
	fmt.Fprintf(&s.body, `<polygon points=%q %s stroke="none"/>`+"\n",
		pointList(loop), fillAttrs(f))
}

// DrawText implements render.Primitives.
func (s *Surface) DrawText(text string, at mathcanvas.Point, fs render.FontStyle, col mathcanvas.RGBA, align render.HAlign) {
	if text == "" || fs.Size <= 0 {
		return
	}
	anchor := "start"
	switch align {
	case render.AlignCenter:
		anchor = "middle"
	case render.AlignRight:
		anchor = "end"
	}
	family := fs.Family
	if family == "" {
		family = "sans-serif"
	}
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text))
	fmt.Fprintf(&s.body,
		`<text x=%q y=%q font-family=%q font-size=%q fill=%q text-anchor=%q>%s</text>`+"\n",
		num(at.X), num(at.Y), family, num(fs.Size), rgb(col), anchor, escaped.String())
}

// Document returns the frame as a complete SVG document.
func (s *Surface) Document() string {
	var sb strings.Builder
	_ = s.writeTo(&sb)
	return sb.String()
}

// WriteTo serializes the frame into w.
func (s *Surface) WriteTo(w io.Writer) error {
	return s.writeTo(w)
}

func (s *Surface) writeTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.width, s.height, s.width, s.height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<rect width="100%%" height="100%%" fill=%q/>`+"\n", rgb(s.bg)); err != nil {
		return err
	}
	if _, err := w.Write(s.body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

// num formats a coordinate with short, stable precision.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pointList(pts []mathcanvas.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(',')
		sb.WriteString(num(p.Y))
	}
	return sb.String()
}

func rgb(c mathcanvas.RGBA) string {
	to255 := func(v float64) int {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", to255(c.R), to255(c.G), to255(c.B))
}

func opacity(alpha, mul float64) string {
	v := alpha * mul
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func strokeAttrs(st render.StrokeStyle) string {
	width := st.Width
	if width <= 0 {
		width = 1
	}
	return fmt.Sprintf(`stroke=%q stroke-width=%q stroke-opacity=%q`,
		rgb(st.Color), num(width), opacity(st.Color.A, 1))
}

func fillAttrs(f render.FillStyle) string {
	return fmt.Sprintf(`fill=%q fill-opacity=%q`, rgb(f.Color), opacity(f.Color.A, f.Opacity))
}

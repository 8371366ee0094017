package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/drawable"
)

// drawLabel sizes, places, and draws one text label. The overlap
// resolver may push the label vertically; the chosen offset is cached
// under id for the rest of the frame. A label whose zoom-adjusted size
// reaches zero is not drawn.
func drawLabel(ctx *Context, m Mapper, id, text string, anchor mathcanvas.Point, baseSize, refScale float64, color mathcanvas.RGBA) {
	if text == "" {
		return
	}
	size := ZoomAdjustedFontSize(baseSize, refScale, m)
	if size <= 0 {
		return
	}
	w, h := ctx.Measure.MeasureText(text, size)
	box := mathcanvas.RectFromSize(anchor.X, anchor.Y-h, w, h)
	dy := ctx.Labels.GetOrPlaceDY(id, box, h)
	font := FontStyle{Family: ctx.Style.String("font_family", "Arial"), Size: size}
	ctx.Prim.DrawText(text, mathcanvas.Pt(anchor.X, anchor.Y+dy), font, color, AlignLeft)
}

// formatCoord formats a coordinate with up to three decimals, trailing
// zeros trimmed.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}

func renderPoint(ctx *Context, d drawable.Drawable, m Mapper) bool {
	p, ok := d.(*drawable.Point)
	if !ok {
		return false
	}
	sp, ok := m.MathToScreen(p.X, p.Y)
	if !ok {
		mathcanvas.Logger().Debug("point projection failed", "name", p.Name())
		return false
	}
	radius := ctx.Style.Float("point_radius", 2)
	withShape(ctx.Prim, func() {
		ctx.Prim.FillCircle(sp, radius, FillStyle{Color: p.Color(), Opacity: 1})
	})
	text := fmt.Sprintf("%s (%s, %s)", p.Name(), formatCoord(p.X), formatCoord(p.Y))
	anchor := mathcanvas.Pt(sp.X+radius+2, sp.Y-radius-2)
	drawLabel(ctx, m, "point:"+p.Name(), text, anchor,
		ctx.Style.Float("point_label_font_size", 10), p.RefScale,
		ctx.Style.ColorVal("label_text_color", mathcanvas.Black))
	return true
}

func renderSegment(ctx *Context, d drawable.Drawable, m Mapper) bool {
	s, ok := d.(*drawable.Segment)
	if !ok || s.P1 == nil || s.P2 == nil {
		return false
	}
	a, ok1 := m.MathToScreen(s.P1.X, s.P1.Y)
	b, ok2 := m.MathToScreen(s.P2.X, s.P2.Y)
	if !ok1 || !ok2 {
		mathcanvas.Logger().Debug("segment projection failed", "name", s.Name())
		return false
	}
	withShape(ctx.Prim, func() {
		ctx.Prim.StrokeLine(a, b, StrokeStyle{
			Color: s.Color(),
			Width: ctx.Style.Float("segment_stroke_width", 1),
		})
	})
	if s.ShowLabel {
		anchor := mathcanvas.Pt((a.X+b.X)/2+4, (a.Y+b.Y)/2-4)
		drawLabel(ctx, m, "segment:"+s.Name(), s.Name(), anchor,
			ctx.Style.Float("label_font_size", 14), s.P1.RefScale,
			ctx.Style.ColorVal("label_text_color", mathcanvas.Black))
	}
	return true
}

func renderArc(ctx *Context, d drawable.Drawable, m Mapper) bool {
	a, ok := d.(*drawable.Arc)
	if !ok || a.Center == nil {
		return false
	}
	center, ok1 := m.MathToScreen(a.Center.X, a.Center.Y)
	radius, ok2 := m.ScaleValue(a.Radius)
	if !ok1 || !ok2 || radius <= 0 {
		mathcanvas.Logger().Debug("arc projection failed", "name", a.Name())
		return false
	}
	// A counterclockwise math sweep runs clockwise once y flips, so the
	// screen interval is the negated sweep in reverse order.
	withShape(ctx.Prim, func() {
		ctx.Prim.StrokeArc(center, radius, -a.EndAngle, -a.StartAngle, StrokeStyle{
			Color: a.Color(),
			Width: ctx.Style.Float("circle_stroke_width", 1),
		})
	})
	return true
}

func renderVector(ctx *Context, d drawable.Drawable, m Mapper) bool {
	v, ok := d.(*drawable.Vector)
	if !ok || v.Segment == nil || v.Segment.P1 == nil || v.Segment.P2 == nil {
		return false
	}
	tail, ok1 := m.MathToScreen(v.Segment.P1.X, v.Segment.P1.Y)
	tip, ok2 := m.MathToScreen(v.Segment.P2.X, v.Segment.P2.Y)
	if !ok1 || !ok2 {
		mathcanvas.Logger().Debug("vector projection failed", "name", v.Name())
		return false
	}

	side := ctx.Style.Float("vector_tip_size", 8)
	halfBase := side / 2
	height := math.Sqrt(side*side - halfBase*halfBase)
	dir := math.Atan2(tip.Y-tail.Y, tip.X-tail.X)
	sin, cos := math.Sincos(dir)
	baseCenter := mathcanvas.Pt(tip.X-height*cos, tip.Y-height*sin)
	base1 := mathcanvas.Pt(baseCenter.X-halfBase*sin, baseCenter.Y+halfBase*cos)
	base2 := mathcanvas.Pt(baseCenter.X+halfBase*sin, baseCenter.Y-halfBase*cos)

	stroke := StrokeStyle{Color: v.Color(), Width: ctx.Style.Float("segment_stroke_width", 1)}
	withShape(ctx.Prim, func() {
		ctx.Prim.StrokeLine(tail, baseCenter, stroke)
		ctx.Prim.FillPolygon([]mathcanvas.Point{tip, base1, base2},
			FillStyle{Color: v.Color(), Opacity: 1}, nil)
	})
	anchor := mathcanvas.Pt(tip.X+side, tip.Y-side)
	drawLabel(ctx, m, "vector:"+v.Name(), v.Name(), anchor,
		ctx.Style.Float("label_font_size", 14), v.Segment.P1.RefScale,
		ctx.Style.ColorVal("label_text_color", mathcanvas.Black))
	return true
}

func renderCircle(ctx *Context, d drawable.Drawable, m Mapper) bool {
	c, ok := d.(*drawable.Circle)
	if !ok || c.Center == nil {
		return false
	}
	center, ok1 := m.MathToScreen(c.Center.X, c.Center.Y)
	radius, ok2 := m.ScaleValue(c.Radius)
	if !ok1 || !ok2 || radius <= 0 {
		mathcanvas.Logger().Debug("circle projection failed", "name", c.Name())
		return false
	}
	withShape(ctx.Prim, func() {
		ctx.Prim.StrokeCircle(center, radius, StrokeStyle{
			Color: c.Color(),
			Width: ctx.Style.Float("circle_stroke_width", 1),
		})
	})
	return true
}

func renderEllipse(ctx *Context, d drawable.Drawable, m Mapper) bool {
	e, ok := d.(*drawable.Ellipse)
	if !ok || e.Center == nil {
		return false
	}
	center, ok1 := m.MathToScreen(e.Center.X, e.Center.Y)
	rx, ok2 := m.ScaleValue(e.RX)
	ry, ok3 := m.ScaleValue(e.RY)
	if !ok1 || !ok2 || !ok3 || rx <= 0 || ry <= 0 {
		mathcanvas.Logger().Debug("ellipse projection failed", "name", e.Name())
		return false
	}
	withShape(ctx.Prim, func() {
		// Math-space counterclockwise rotation appears clockwise once y
		// flips to screen space.
		ctx.Prim.StrokeEllipse(center, rx, ry, -e.Rotation, StrokeStyle{
			Color: e.Color(),
			Width: ctx.Style.Float("ellipse_stroke_width", 1),
		})
	})
	return true
}

func renderAngle(ctx *Context, d drawable.Drawable, m Mapper) bool {
	a, ok := d.(*drawable.Angle)
	if !ok || a.Vertex == nil || a.A == nil || a.B == nil {
		return false
	}
	deg, ok := a.Degrees()
	if !ok {
		mathcanvas.Logger().Debug("degenerate angle skipped", "name", a.Name())
		return false
	}
	vertex, ok1 := m.MathToScreen(a.Vertex.X, a.Vertex.Y)
	pa, ok2 := m.MathToScreen(a.A.X, a.A.Y)
	pb, ok3 := m.MathToScreen(a.B.X, a.B.Y)
	if !ok1 || !ok2 || !ok3 {
		mathcanvas.Logger().Debug("angle projection failed", "name", a.Name())
		return false
	}

	// Minor arc between the two rays, in screen angles.
	a1 := math.Atan2(pa.Y-vertex.Y, pa.X-vertex.X)
	a2 := math.Atan2(pb.Y-vertex.Y, pb.X-vertex.X)
	delta := math.Mod(a2-a1, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta < -math.Pi {
		delta += 2 * math.Pi
	}
	start, end := a1, a1+delta
	if delta < 0 {
		start, end = end, start
	}

	radius := ctx.Style.Float("angle_arc_radius", 25)
	withShape(ctx.Prim, func() {
		ctx.Prim.StrokeArc(vertex, radius, start, end, StrokeStyle{
			Color: a.Color(),
			Width: ctx.Style.Float("segment_stroke_width", 1),
		})
	})

	factor := ctx.Style.Float("angle_text_arc_radius_factor", 1.6)
	mid := (start + end) / 2
	anchor := mathcanvas.Pt(
		vertex.X+radius*factor*math.Cos(mid),
		vertex.Y+radius*factor*math.Sin(mid),
	)
	text := fmt.Sprintf("%.1f°", deg)
	drawLabel(ctx, m, "angle:"+a.Name(), text, anchor,
		ctx.Style.Float("angle_label_font_size", 10), a.Vertex.RefScale,
		ctx.Style.ColorVal("label_text_color", mathcanvas.Black))
	return true
}

func renderFunctionsArea(ctx *Context, d drawable.Drawable, m Mapper) bool {
	a, ok := d.(*drawable.FunctionsArea)
	if !ok {
		return false
	}
	region, ok := BuildFunctionsArea(a, m)
	if !ok {
		mathcanvas.Logger().Debug("empty functions area", "name", a.Name())
		return false
	}
	fillClosedArea(ctx, a, a.Opacity, region)
	return true
}

func renderFunctionSegmentArea(ctx *Context, d drawable.Drawable, m Mapper) bool {
	a, ok := d.(*drawable.FunctionSegmentArea)
	if !ok {
		return false
	}
	region, ok := BuildFunctionSegmentArea(a, m)
	if !ok {
		mathcanvas.Logger().Debug("empty function segment area", "name", a.Name())
		return false
	}
	fillClosedArea(ctx, a, a.Opacity, region)
	return true
}

func renderSegmentsArea(ctx *Context, d drawable.Drawable, m Mapper) bool {
	a, ok := d.(*drawable.SegmentsArea)
	if !ok {
		return false
	}
	region, ok := BuildSegmentsArea(a, m)
	if !ok {
		mathcanvas.Logger().Debug("empty segments area", "name", a.Name())
		return false
	}
	fillClosedArea(ctx, a, a.Opacity, region)
	return true
}

func renderClosedShapeArea(ctx *Context, d drawable.Drawable, m Mapper) bool {
	a, ok := d.(*drawable.ClosedShapeArea)
	if !ok {
		return false
	}
	region, ok := BuildClosedShapeArea(a, m)
	if !ok {
		mathcanvas.Logger().Debug("empty closed shape area", "name", a.Name())
		return false
	}
	fillClosedArea(ctx, a, a.Opacity, region)
	return true
}

// fillClosedArea fills a built region using the drawable's own color
// and opacity, falling back to the style defaults when unset.
func fillClosedArea(ctx *Context, d drawable.Drawable, opacity float64, region *ClosedArea) {
	color := d.Color()
	if color == (mathcanvas.RGBA{}) {
		color = ctx.Style.ColorVal("area_fill_color", mathcanvas.Hex("#ffa500"))
	}
	if opacity <= 0 || opacity > 1 {
		opacity = ctx.Style.Float("area_opacity", 0.3)
	}
	withShape(ctx.Prim, func() {
		ctx.Prim.FillLoop(region.Forward, region.Reverse, FillStyle{Color: color, Opacity: opacity})
	})
}

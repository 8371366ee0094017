package render

import (
	"math"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/drawable"
)

func renderPolarGrid(ctx *Context, g *drawable.Polar, m Mapper) bool {
	origin, ok := m.MathToScreen(0, 0)
	if !ok {
		return false
	}
	w, h := m.Width(), m.Height()
	scale := m.ScaleFactor()

	spacing := g.TickSpacing
	if spacing <= 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		spacing = 1
	}
	displayTick := spacing * scale
	if displayTick < minDisplayTickPx {
		return false
	}

	spokeStep := g.SpokeDegrees
	if spokeStep <= 0 || spokeStep >= 360 {
		spokeStep = 30
	}

	// Rings must reach the farthest viewport corner so panning never
	// exposes an unruled region.
	maxR := 0.0
	for _, corner := range [4]mathcanvas.Point{
		mathcanvas.Pt(0, 0), mathcanvas.Pt(w, 0),
		mathcanvas.Pt(0, h), mathcanvas.Pt(w, h),
	} {
		if d := origin.Distance(corner); d > maxR {
			maxR = d
		}
	}

	axisStroke := StrokeStyle{Color: ctx.Style.ColorVal("polar_axis_color", mathcanvas.Black), Width: 1}
	ringStroke := StrokeStyle{Color: ctx.Style.ColorVal("polar_circle_color", mathcanvas.LightGrey), Width: 1}
	spokeStroke := StrokeStyle{Color: ctx.Style.ColorVal("polar_radial_color", mathcanvas.LightGrey), Width: 1}
	labelColor := ctx.Style.ColorVal("polar_label_color", mathcanvas.Grey)
	fontSize := ctx.Style.Float("polar_label_font_size", 8)
	font := FontStyle{Family: ctx.Style.String("polar_font_family", "Arial"), Size: fontSize}
	precision := tickPrecision(spacing)

	withShape(ctx.Prim, func() {
		for deg := 0.0; deg < 360; deg += spokeStep {
			rad := deg * math.Pi / 180
			sin, cos := math.Sincos(rad)
			end := mathcanvas.Pt(origin.X+maxR*cos, origin.Y-maxR*sin)
			stroke := spokeStroke
			if deg == 0 || deg == 90 || deg == 180 || deg == 270 {
				stroke = axisStroke
			}
			ctx.Prim.StrokeLine(origin, end, stroke)
		}

		for k := 1; float64(k)*displayTick <= maxR; k++ {
			r := float64(k) * displayTick
			ctx.Prim.StrokeCircle(origin, r, ringStroke)
			ctx.Prim.DrawText(formatTickValue(float64(k)*spacing, precision),
				mathcanvas.Pt(origin.X+r+2, origin.Y-2), font, labelColor, AlignLeft)
		}

		ctx.Prim.DrawText("O", mathcanvas.Pt(origin.X-4, origin.Y+fontSize+2), font, labelColor, AlignRight)
	})
	return true
}

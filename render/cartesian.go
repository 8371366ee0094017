package render

import (
	"fmt"
	"math"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/drawable"
)

// minDisplayTickPx is the smallest on-screen tick spacing grid lines
// are drawn at; below it the grid would degenerate into solid fill.
const minDisplayTickPx = 2.0

// tickPrecision returns the number of decimals needed to distinguish
// consecutive tick values at the given math-space spacing.
func tickPrecision(spacing float64) int {
	if spacing >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(spacing)))
}

// formatTickValue renders one tick value. Very large magnitudes and
// sub-0.0001 spacings switch to scientific notation.
func formatTickValue(v float64, precision int) string {
	if v == 0 {
		return "0"
	}
	if math.Abs(v) >= 1e6 || precision > 4 {
		return fmt.Sprintf("%.1e", v)
	}
	return fmt.Sprintf("%.*f", precision, v)
}

func renderCartesianGrid(ctx *Context, g *drawable.Cartesian, m Mapper) bool {
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

	axisStroke := StrokeStyle{Color: ctx.Style.ColorVal("cartesian_axis_color", mathcanvas.Black), Width: 1}
	gridStroke := StrokeStyle{Color: ctx.Style.ColorVal("cartesian_grid_color", mathcanvas.LightGrey), Width: 1}
	labelColor := ctx.Style.ColorVal("cartesian_label_color", mathcanvas.Grey)
	tickSize := ctx.Style.Float("cartesian_tick_size", 3)
	fontSize := ctx.Style.Float("cartesian_tick_font_size", 8)
	font := FontStyle{Family: ctx.Style.String("cartesian_font_family", "Arial"), Size: fontSize}
	precision := tickPrecision(spacing)

	withShape(ctx.Prim, func() {
		if displayTick >= minDisplayTickPx {
			// Grid lines both sides of each axis, clipped by the
			// viewport loop bounds.
			for x := origin.X + displayTick; x <= w; x += displayTick {
				ctx.Prim.StrokeLine(mathcanvas.Pt(x, 0), mathcanvas.Pt(x, h), gridStroke)
			}
			for x := origin.X - displayTick; x >= 0; x -= displayTick {
				ctx.Prim.StrokeLine(mathcanvas.Pt(x, 0), mathcanvas.Pt(x, h), gridStroke)
			}
			for y := origin.Y + displayTick; y <= h; y += displayTick {
				ctx.Prim.StrokeLine(mathcanvas.Pt(0, y), mathcanvas.Pt(w, y), gridStroke)
			}
			for y := origin.Y - displayTick; y >= 0; y -= displayTick {
				ctx.Prim.StrokeLine(mathcanvas.Pt(0, y), mathcanvas.Pt(w, y), gridStroke)
			}
		}

		// Axes last so they cover the grid.
		ctx.Prim.StrokeLine(mathcanvas.Pt(0, origin.Y), mathcanvas.Pt(w, origin.Y), axisStroke)
		ctx.Prim.StrokeLine(mathcanvas.Pt(origin.X, 0), mathcanvas.Pt(origin.X, h), axisStroke)

		if displayTick >= minDisplayTickPx {
			// Tick marks and value labels. k counts ticks outward from
			// the origin so values stay exact multiples of spacing.
			for k := 1; ; k++ {
				x := origin.X + float64(k)*displayTick
				xNeg := origin.X - float64(k)*displayTick
				if x > w && xNeg < 0 {
					break
				}
				if x <= w {
					ctx.Prim.StrokeLine(mathcanvas.Pt(x, origin.Y-tickSize), mathcanvas.Pt(x, origin.Y+tickSize), axisStroke)
					ctx.Prim.DrawText(formatTickValue(float64(k)*spacing, precision),
						mathcanvas.Pt(x, origin.Y+tickSize+fontSize+2), font, labelColor, AlignCenter)
				}
				if xNeg >= 0 {
					ctx.Prim.StrokeLine(mathcanvas.Pt(xNeg, origin.Y-tickSize), mathcanvas.Pt(xNeg, origin.Y+tickSize), axisStroke)
					ctx.Prim.DrawText(formatTickValue(float64(-k)*spacing, precision),
						mathcanvas.Pt(xNeg, origin.Y+tickSize+fontSize+2), font, labelColor, AlignCenter)
				}
			}
			for k := 1; ; k++ {
				y := origin.Y + float64(k)*displayTick
				yNeg := origin.Y - float64(k)*displayTick
				if y > h && yNeg < 0 {
					break
				}
				if y <= h {
					ctx.Prim.StrokeLine(mathcanvas.Pt(origin.X-tickSize, y), mathcanvas.Pt(origin.X+tickSize, y), axisStroke)
					ctx.Prim.DrawText(formatTickValue(float64(-k)*spacing, precision),
						mathcanvas.Pt(origin.X-tickSize-2, y+fontSize/2), font, labelColor, AlignRight)
				}
				if yNeg >= 0 {
					ctx.Prim.StrokeLine(mathcanvas.Pt(origin.X-tickSize, yNeg), mathcanvas.Pt(origin.X+tickSize, yNeg), axisStroke)
					ctx.Prim.DrawText(formatTickValue(float64(k)*spacing, precision),
						mathcanvas.Pt(origin.X-tickSize-2, yNeg+fontSize/2), font, labelColor, AlignRight)
				}
			}
		}

		// Origin marker.
		ctx.Prim.DrawText("O", mathcanvas.Pt(origin.X-tickSize-2, origin.Y+tickSize+fontSize+2), font, labelColor, AlignRight)
	})
	return true
}

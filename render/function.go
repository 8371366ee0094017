package render

import (
	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/drawable"
)

const (
	minFunctionSamples = 16
	maxFunctionSamples = 2048
)

// sampleFunctionPaths samples f across the visible range intersected
// with its domain and splits the projected curve into continuous runs.
// An undefined sample or a failed projection ends the current run, so
// discontinuities are drawn as separate polylines rather than joined
// by a spurious vertical line.
func sampleFunctionPaths(f *drawable.Function, m Mapper) [][]mathcanvas.Point {
	bounds := drawable.Interval{Left: m.VisibleLeft(), Right: m.VisibleRight()}
	if f.Domain != nil {
		bounds = bounds.Intersect(*f.Domain)
	}
	if bounds.Left >= bounds.Right {
		return nil
	}

	// One sample per screen pixel column, within limits.
	n := int(m.Width())
	if n < minFunctionSamples {
		n = minFunctionSamples
	}
	if n > maxFunctionSamples {
		n = maxFunctionSamples
	}

	var paths [][]mathcanvas.Point
	var run []mathcanvas.Point
	flush := func() {
		if len(run) >= 2 {
			paths = append(paths, run)
		}
		run = nil
	}

	dx := (bounds.Right - bounds.Left) / float64(n-1)
	for i := 0; i < n; i++ {
		x := bounds.Left + float64(i)*dx
		y, ok := f.EvalAt(x)
		if !ok {
			flush()
			continue
		}
		p, ok := m.MathToScreen(x, y)
		if !ok {
			flush()
			continue
		}
		run = append(run, p)
	}
	flush()
	return paths
}

func renderFunction(ctx *Context, d drawable.Drawable, m Mapper) bool {
	f, ok := d.(*drawable.Function)
	if !ok {
		return false
	}
	paths := sampleFunctionPaths(f, m)
	if len(paths) == 0 {
		mathcanvas.Logger().Debug("function has no visible samples", "name", f.Name())
		return false
	}
	stroke := StrokeStyle{
		Color: f.Color(),
		Width: ctx.Style.Float("function_stroke_width", 1),
	}
	withShape(ctx.Prim, func() {
		for _, path := range paths {
			ctx.Prim.StrokePolyline(path, stroke)
		}
	})

	first := paths[0][0]
	anchor := mathcanvas.Pt(first.X+4, first.Y-4)
	drawLabel(ctx, m, "function:"+f.Name(), f.Name(), anchor,
		ctx.Style.Float("function_label_font_size", 10), f.RefScale,
		f.Color())
	return true
}

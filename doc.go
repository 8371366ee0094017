// Package mathcanvas provides the screen-space rendering and geometric
// layout pipeline of an interactive mathematical drawing canvas.
//
// Drawable objects (points, segments, polygons, functions, colored
// areas, grids) are defined in math space and converted to device
// pixels by a Mapper. The render package dispatches each drawable to a
// registered handler that draws through a backend-neutral Primitives
// surface; the backend package selects a concrete backend (software
// canvas, SVG, or GPU via wgpu) with automatic fallback.
//
// The root package holds the leaf types shared by every layer: 2D
// points and rectangles, RGBA colors, the flat style dictionary, the
// coordinate Mapper, and the package logger.
//
// # Quick Start
//
//	r, err := backend.CreateRenderer("")
//	if err != nil {
//		// no rendering available in this environment
//	}
//	m := mathcanvas.NewMapper(800, 600)
//
//	r.BeginFrame()
//	for _, d := range drawables {
//		r.Render(d, m)
//	}
//	r.EndFrame()
package mathcanvas

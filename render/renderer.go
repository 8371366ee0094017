package render

import (
	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/drawable"
)

// Handler renders one drawable kind. It reports whether the element
// was drawn; a false return means the element was skipped for this
// frame (projection failure, degenerate geometry, empty region).
type Handler func(ctx *Context, d drawable.Drawable, m Mapper) bool

// Context carries the per-frame collaborators a handler needs.
type Context struct {
	Prim    Primitives
	Style   mathcanvas.Style
	Labels  *OverlapResolver
	Measure TextMeasurer
}

// Renderer dispatches drawables to registered handlers by kind.
type Renderer struct {
	prim     Primitives
	style    mathcanvas.Style
	measure  TextMeasurer
	handlers map[drawable.Kind]Handler
	labels   *OverlapResolver
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle replaces the default style table.
func WithStyle(st mathcanvas.Style) Option {
	return func(r *Renderer) {
		if st != nil {
			r.style = st
		}
	}
}

// WithTextMeasurer installs a shaping-backed text measurer.
func WithTextMeasurer(tm TextMeasurer) Option {
	return func(r *Renderer) {
		if tm != nil {
			r.measure = tm
		}
	}
}

// New builds a Renderer over a backend's primitive surface with the
// default drawable handlers registered.
func New(prim Primitives, opts ...Option) *Renderer {
	r := &Renderer{
		prim:     prim,
		style:    mathcanvas.DefaultStyle(),
		measure:  approxMeasurer{},
		handlers: make(map[drawable.Kind]Handler),
		labels:   NewOverlapResolver(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.RegisterDefaultDrawables()
	return r
}

// Primitives returns the backend surface the renderer draws through.
func (r *Renderer) Primitives() Primitives { return r.prim }

// Style returns the active style table.
func (r *Renderer) Style() mathcanvas.Style { return r.style }

// Register installs or replaces the handler for a kind.
func (r *Renderer) Register(kind drawable.Kind, h Handler) {
	if h == nil {
		delete(r.handlers, kind)
		return
	}
	r.handlers[kind] = h
}

// IsRegistered reports whether a handler exists for kind.
func (r *Renderer) IsRegistered(kind drawable.Kind) bool {
	_, ok := r.handlers[kind]
	return ok
}

// RegisterDefaultDrawables installs the built-in handler set. Existing
// registrations for the same kinds are replaced.
func (r *Renderer) RegisterDefaultDrawables() {
	r.Register(drawable.KindPoint, renderPoint)
	r.Register(drawable.KindSegment, renderSegment)
	r.Register(drawable.KindVector, renderVector)
	r.Register(drawable.KindCircle, renderCircle)
	r.Register(drawable.KindEllipse, renderEllipse)
	r.Register(drawable.KindAngle, renderAngle)
	r.Register(drawable.KindArc, renderArc)
	r.Register(drawable.KindFunction, renderFunction)
	r.Register(drawable.KindFunctionsArea, renderFunctionsArea)
	r.Register(drawable.KindFunctionSegmentArea, renderFunctionSegmentArea)
	r.Register(drawable.KindSegmentsArea, renderSegmentsArea)
	r.Register(drawable.KindClosedShapeArea, renderClosedShapeArea)
}

// BeginFrame starts a frame. Label placements from the previous frame
// are discarded so labels re-resolve against the new layout.
func (r *Renderer) BeginFrame() {
	r.labels = NewOverlapResolver()
	r.prim.BeginFrame()
}

// EndFrame finishes the current frame.
func (r *Renderer) EndFrame() {
	r.prim.EndFrame()
}

// Clear erases the surface.
func (r *Renderer) Clear() {
	r.prim.Clear()
}

// Render draws a single drawable. It reports false when no handler is
// registered for the drawable's kind or the handler skipped the
// element; rendering is repeatable, so calling Render twice with the
// same inputs emits the same primitives.
func (r *Renderer) Render(d drawable.Drawable, m Mapper) bool {
	if d == nil || m == nil {
		return false
	}
	h, ok := r.handlers[d.Kind()]
	if !ok {
		mathcanvas.Logger().Debug("no handler for drawable kind",
			"kind", string(d.Kind()), "name", d.Name())
		return false
	}
	ctx := &Context{Prim: r.prim, Style: r.style, Labels: r.labels, Measure: r.measure}
	return h(ctx, d, m)
}

// RenderCartesian draws a cartesian grid sized to the mapper's
// viewport, with axes, grid lines, and numeric tick labels.
func (r *Renderer) RenderCartesian(g *drawable.Cartesian, m Mapper) bool {
	if g == nil || m == nil {
		return false
	}
	ctx := &Context{Prim: r.prim, Style: r.style, Labels: r.labels, Measure: r.measure}
	return renderCartesianGrid(ctx, g, m)
}

// RenderPolar draws a polar grid of concentric rings and radial
// spokes sized to the mapper's viewport.
func (r *Renderer) RenderPolar(g *drawable.Polar, m Mapper) bool {
	if g == nil || m == nil {
		return false
	}
	ctx := &Context{Prim: r.prim, Style: r.style, Labels: r.labels, Measure: r.measure}
	return renderPolarGrid(ctx, g, m)
}

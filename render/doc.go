// Package render is the backend-neutral rendering core: it dispatches
// drawables to per-kind handlers, builds screen-space colored areas,
// resolves label collisions, and draws coordinate grids. Handlers emit
// through the Primitives surface implemented by each backend
// (backend/canvas, backend/svg, backend/wgpu).
//
// The core is single-threaded and synchronous: one frame is a
// BeginFrame, a sequence of Render calls, then EndFrame. A projection
// or evaluation failure is a terminal "skip this element" decision for
// the frame, never an error that propagates.
package render

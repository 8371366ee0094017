// Package backend holds the rendering backend registry and the
// renderer factory. Backend implementations self-register from their
// package init, so callers pick them up with a blank import:
//
//	import (
//		"github.com/mathud/mathcanvas/backend"
//		_ "github.com/mathud/mathcanvas/backend/canvas"
//		_ "github.com/mathud/mathcanvas/backend/svg"
//	)
//
//	r, err := backend.CreateRenderer("svg")
package backend

import (
	"errors"

	"github.com/mathud/mathcanvas/render"
)

// Built-in backend identifiers.
const (
	// BackendCanvas is the immediate software rasterizer.
	BackendCanvas = "canvas"

	// BackendSVG emits an SVG document.
	BackendSVG = "svg"

	// BackendWGPU renders through a GPU device.
	BackendWGPU = "wgpu"
)

// Common backend errors.
var (
	// ErrNoBackend is returned by CreateRenderer when every candidate
	// backend failed to construct.
	ErrNoBackend = errors.New("backend: no backend available")

	// ErrNotRegistered is returned by Lookup for an unknown name.
	ErrNotRegistered = errors.New("backend: not registered")
)

// RenderBackend is a rendering implementation. Init acquires the
// backend's resources and reports failure without side effects, so the
// factory can fall through to the next candidate.
type RenderBackend interface {
	// Name returns the backend identifier ("canvas", "svg", "wgpu").
	Name() string

	// Init initializes the backend. An error means the backend cannot
	// run in this environment.
	Init() error

	// Close releases backend resources.
	Close()

	// NewPrimitives creates a drawing surface of the given pixel size.
	NewPrimitives(width, height int) (render.Primitives, error)
}

// TextMeasuring is implemented by backends that can shape text; the
// factory wires the measurer into the renderer it builds.
type TextMeasuring interface {
	TextMeasurer() render.TextMeasurer
}

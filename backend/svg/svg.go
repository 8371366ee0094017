// Package svg is the vector backend. It records primitives as SVG
// elements and serializes the finished frame as a standalone SVG
// document.
package svg

import (
	"fmt"
	"io"

	"github.com/mathud/mathcanvas/backend"
	"github.com/mathud/mathcanvas/render"
	"github.com/mathud/mathcanvas/textmeasure"
)

func init() {
	backend.Register(backend.BackendSVG, func() backend.RenderBackend {
		return &Backend{}
	})
}

// Backend is the SVG document backend.
type Backend struct {
	measurer *textmeasure.Measurer
}

// Name implements backend.RenderBackend.
func (*Backend) Name() string { return backend.BackendSVG }

// Init implements backend.RenderBackend.
func (b *Backend) Init() error {
	measurer, err := textmeasure.NewDefault()
	if err != nil {
		return fmt.Errorf("svg: init measurer: %w", err)
	}
	b.measurer = measurer
	return nil
}

// Close implements backend.RenderBackend.
func (b *Backend) Close() { b.measurer = nil }

// TextMeasurer implements backend.TextMeasuring.
func (b *Backend) TextMeasurer() render.TextMeasurer { return b.measurer }

// NewPrimitives creates an SVG recording surface.
func (b *Backend) NewPrimitives(width, height int) (render.Primitives, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg: invalid surface size %dx%d", width, height)
	}
	return NewSurface(width, height), nil
}

// WriteDocument serializes a surface produced by this backend.
func WriteDocument(w io.Writer, p render.Primitives) error {
	s, ok := p.(*Surface)
	if !ok {
		return fmt.Errorf("svg: primitives are not an svg surface")
	}
	return s.WriteTo(w)
}

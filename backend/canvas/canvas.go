// Package canvas is the immediate software raster backend. It draws
// into an in-memory RGBA image with the x/image vector rasterizer and
// writes frames out as PNG.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/mathud/mathcanvas/backend"
	"github.com/mathud/mathcanvas/render"
	"github.com/mathud/mathcanvas/textmeasure"
)

func init() {
	backend.Register(backend.BackendCanvas, func() backend.RenderBackend {
		return &Backend{}
	})
}

// Backend is the software raster backend.
type Backend struct {
	fnt      *opentype.Font
	measurer *textmeasure.Measurer
}

// Name implements backend.RenderBackend.
func (*Backend) Name() string { return backend.BackendCanvas }

// Init parses the bundled typeface. It cannot otherwise fail: software
// rasterization has no environment requirements.
func (b *Backend) Init() error {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("canvas: parse font: %w", err)
	}
	measurer, err := textmeasure.NewDefault()
	if err != nil {
		return fmt.Errorf("canvas: init measurer: %w", err)
	}
	b.fnt = fnt
	b.measurer = measurer
	return nil
}

// Close implements backend.RenderBackend.
func (b *Backend) Close() {
	b.fnt = nil
	b.measurer = nil
}

// TextMeasurer implements backend.TextMeasuring.
func (b *Backend) TextMeasurer() render.TextMeasurer { return b.measurer }

// NewPrimitives creates a raster surface of the given pixel size.
func (b *Backend) NewPrimitives(width, height int) (render.Primitives, error) {
	if b.fnt == nil {
		return nil, fmt.Errorf("canvas: %w", backend.ErrNoBackend)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid surface size %dx%d", width, height)
	}
	s := &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		fnt:   b.fnt,
		faces: make(map[float64]font.Face),
		bg:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	s.Clear()
	return s, nil
}

// WritePNG encodes a surface produced by this backend as PNG.
func WritePNG(w io.Writer, p render.Primitives) error {
	s, ok := p.(*Surface)
	if !ok {
		return fmt.Errorf("canvas: primitives are not a raster surface")
	}
	return png.Encode(w, s.img)
}

// face returns a cached font.Face for a pixel size.
func (s *Surface) face(size float64) (font.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}

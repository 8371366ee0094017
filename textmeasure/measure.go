// Package textmeasure reports pixel extents for label text using
// HarfBuzz shaping, so label collision boxes match what a backend
// actually draws. The default measurer shapes with the Go Regular
// typeface.
package textmeasure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Measurer shapes text with a single parsed font and reports extents.
// It is safe for concurrent use: the read-only *font.Font is shared
// while per-call font.Face and HarfbuzzShaper instances come from
// pools.
type Measurer struct {
	fnt        *font.Font
	shaperPool sync.Pool
	facePool   sync.Pool
}

// New parses TTF font data into a Measurer.
func New(fontData []byte) (*Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font: %w", err)
	}
	m := &Measurer{fnt: face.Font}
	m.shaperPool = sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }}
	m.facePool = sync.Pool{New: func() any { return font.NewFace(m.fnt) }}
	return m, nil
}

// NewDefault returns a Measurer over the bundled Go Regular typeface.
func NewDefault() (*Measurer, error) {
	return New(goregular.TTF)
}

// MeasureText returns the shaped width and line height of text at the
// given pixel size. Empty text or a non-positive size measures zero.
func (m *Measurer) MeasureText(text string, size float64) (width, height float64) {
	if text == "" || size <= 0 {
		return 0, 0
	}
	out := m.shape(text, size)
	w := fixedToFloat(out.Advance)
	if w < 0 {
		w = -w
	}
	h := fixedToFloat(out.LineBounds.Ascent - out.LineBounds.Descent)
	return w, h
}

// Ascent returns the font ascent in pixels at the given size, used to
// convert a text baseline to a bounding box top.
func (m *Measurer) Ascent(size float64) float64 {
	if size <= 0 {
		return 0
	}
	out := m.shape("M", size)
	return fixedToFloat(out.LineBounds.Ascent)
}

func (m *Measurer) shape(text string, size float64) shaping.Output {
	runes := []rune(text)
	face := m.facePool.Get().(*font.Face)
	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: DetectDirection(text),
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	m.shaperPool.Put(shaper)
	m.facePool.Put(face)
	return out
}

// DetectDirection resolves the base direction of a paragraph of text.
// Neutral text resolves to left-to-right.
func DetectDirection(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	if p.IsLeftToRight() {
		return di.DirectionLTR
	}
	return di.DirectionRTL
}

// detectScript picks the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

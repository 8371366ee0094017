package render

import (
	"math"

	"github.com/mathud/mathcanvas"
)

const (
	defaultMaxSteps = 10
	defaultPadding  = 2.0
)

// OverlapResolver assigns vertical offsets to label boxes so labels
// placed earlier in a frame are not covered by labels placed later.
// Offsets are cached by label id: asking again for an id returns the
// offset chosen the first time, so re-rendering an element within a
// frame does not move its label.
type OverlapResolver struct {
	maxSteps int
	padding  float64
	placed   []mathcanvas.Rect
	dyByID   map[string]float64
}

// ResolverOption configures an OverlapResolver.
type ResolverOption func(*OverlapResolver)

// WithMaxSteps bounds the displacement search to n step multiples in
// each direction.
func WithMaxSteps(n int) ResolverOption {
	return func(r *OverlapResolver) {
		if n > 0 {
			r.maxSteps = n
		}
	}
}

// WithPadding inflates every candidate box by pad pixels on all sides
// before overlap testing.
func WithPadding(pad float64) ResolverOption {
	return func(r *OverlapResolver) {
		if pad >= 0 && !math.IsInf(pad, 0) && !math.IsNaN(pad) {
			r.padding = pad
		}
	}
}

// NewOverlapResolver returns an empty resolver.
func NewOverlapResolver(opts ...ResolverOption) *OverlapResolver {
	r := &OverlapResolver{
		maxSteps: defaultMaxSteps,
		padding:  defaultPadding,
		dyByID:   make(map[string]float64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset forgets all placements and cached offsets.
func (r *OverlapResolver) Reset() {
	r.placed = r.placed[:0]
	r.dyByID = make(map[string]float64)
}

// GetOrPlaceDY returns the vertical offset for the label identified by
// id whose unshifted bounding box is box. The first call for an id
// searches offsets 0, +step, -step, +2*step, ... until the shifted box
// clears every box placed so far; if the search exhausts its step
// budget the last offset tried is accepted, overlap and all. The
// chosen box is then recorded so later labels avoid it.
func (r *OverlapResolver) GetOrPlaceDY(id string, box mathcanvas.Rect, step float64) float64 {
	if dy, ok := r.dyByID[id]; ok {
		return dy
	}
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		step = 1
	}

	padded := box.Inflate(r.padding)
	dy := 0.0
	if r.collides(padded) {
		found := false
	search:
		for i := 1; i <= r.maxSteps; i++ {
			for _, cand := range [2]float64{float64(i) * step, -float64(i) * step} {
				dy = cand
				if !r.collides(padded.ShiftY(cand)) {
					found = true
					break search
				}
			}
		}
		if !found {
			mathcanvas.Logger().Debug("label overlap unresolved", "id", id, "dy", dy)
		}
	}

	r.dyByID[id] = dy
	r.placed = append(r.placed, padded.ShiftY(dy))
	return dy
}

func (r *OverlapResolver) collides(box mathcanvas.Rect) bool {
	for _, p := range r.placed {
		if box.Intersects(p) {
			return true
		}
	}
	return false
}

package render

import (
	"math"
	"testing"

	"github.com/mathud/mathcanvas"
)

func TestOverlapResolverFirstLabelStays(t *testing.T) {
	r := NewOverlapResolver()
	dy := r.GetOrPlaceDY("a", mathcanvas.RectFromSize(0, 0, 40, 12), 14)
	if dy != 0 {
		t.Errorf("first label dy = %v, want 0", dy)
	}
}

func TestOverlapResolverCachesByID(t *testing.T) {
	r := NewOverlapResolver()
	box := mathcanvas.RectFromSize(0, 0, 40, 12)
	first := r.GetOrPlaceDY("a", box, 14)

	// Same id asks again, possibly with a different box; the cached
	// offset wins so re-rendering never moves a label mid-frame.
	second := r.GetOrPlaceDY("a", mathcanvas.RectFromSize(100, 100, 5, 5), 3)
	if first != second {
		t.Errorf("cached dy = %v, first was %v", second, first)
	}
}

func TestOverlapResolverDisplacesCollidingLabel(t *testing.T) {
	r := NewOverlapResolver()
	box := mathcanvas.RectFromSize(0, 0, 40, 12)
	r.GetOrPlaceDY("a", box, 14)

	dy := r.GetOrPlaceDY("b", box, 14)
	if dy == 0 {
		t.Fatal("colliding label was not displaced")
	}
	if math.Abs(dy) < 14 {
		t.Errorf("|dy| = %v, want at least one step of 14", math.Abs(dy))
	}
	// The chosen position must actually clear the first label's
	// padded box.
	if box.Inflate(defaultPadding).ShiftY(dy).Intersects(box.Inflate(defaultPadding)) {
		t.Error("displaced label still overlaps")
	}
}

func TestOverlapResolverTallerBlockPushesFurther(t *testing.T) {
	r := NewOverlapResolver()
	tall := mathcanvas.RectFromSize(0, -40, 40, 100)
	r.GetOrPlaceDY("tall", tall, 14)

	small := mathcanvas.RectFromSize(0, 0, 40, 12)
	dy := r.GetOrPlaceDY("small", small, 14)
	if dy == 0 {
		t.Fatal("label under a tall block was not displaced")
	}
	// Clearing a 100px tall padded block from inside takes several
	// 14px steps, not just one.
	if math.Abs(dy) <= 28 {
		t.Errorf("|dy| = %v, want more than two steps to clear the tall block", math.Abs(dy))
	}
}

func TestOverlapResolverExhaustionKeepsLastTried(t *testing.T) {
	r := NewOverlapResolver(WithMaxSteps(2))
	// A giant block no candidate offset can escape.
	r.GetOrPlaceDY("wall", mathcanvas.RectFromSize(-10, -1000, 100, 2000), 10)

	dy := r.GetOrPlaceDY("trapped", mathcanvas.RectFromSize(0, 0, 20, 10), 5)
	// Candidates were 0, +5, -5, +10, -10; the last one tried is
	// accepted even though it still overlaps.
	if dy != -10 {
		t.Errorf("dy = %v, want the last tried offset -10", dy)
	}

	// The chosen placement participates in later collision checks.
	next := r.GetOrPlaceDY("later", mathcanvas.RectFromSize(0, -10, 20, 10), 5)
	if next == 0 {
		t.Error("placement of an exhausted label was not recorded")
	}
}

func TestOverlapResolverInvalidStep(t *testing.T) {
	r := NewOverlapResolver()
	box := mathcanvas.RectFromSize(0, 0, 20, 10)
	r.GetOrPlaceDY("a", box, 10)

	// A non-positive step falls back to 1 instead of looping in place.
	dy := r.GetOrPlaceDY("b", box, 0)
	if dy == 0 {
		t.Error("colliding label with zero step was not displaced")
	}
}

func TestOverlapResolverReset(t *testing.T) {
	r := NewOverlapResolver()
	box := mathcanvas.RectFromSize(0, 0, 20, 10)
	r.GetOrPlaceDY("a", box, 10)
	r.Reset()

	if dy := r.GetOrPlaceDY("b", box, 10); dy != 0 {
		t.Errorf("after Reset dy = %v, want 0", dy)
	}
}

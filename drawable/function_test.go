package drawable

import (
	"math"
	"testing"

	"github.com/mathud/mathcanvas"
)

func TestFunctionEvalAt(t *testing.T) {
	f := NewFunction("f", func(x float64) float64 { return x * x }, nil, mathcanvas.Black)
	y, ok := f.EvalAt(3)
	if !ok || y != 9 {
		t.Errorf("EvalAt(3) = (%v, %v), want (9, true)", y, ok)
	}
}

func TestFunctionDomainBounds(t *testing.T) {
	f := NewFunction("f", math.Sqrt, &Interval{Left: 0, Right: 4}, mathcanvas.Black)

	if _, ok := f.EvalAt(-1); ok {
		t.Error("x below domain should be undefined")
	}
	if _, ok := f.EvalAt(5); ok {
		t.Error("x above domain should be undefined")
	}
	if y, ok := f.EvalAt(4); !ok || y != 2 {
		t.Errorf("domain boundary is inclusive, got (%v, %v)", y, ok)
	}
}

func TestFunctionUndefinedSamples(t *testing.T) {
	f := NewFunction("f", func(x float64) float64 { return 1 / x }, nil, mathcanvas.Black)
	if _, ok := f.EvalAt(0); ok {
		t.Error("infinite result should be undefined")
	}

	g := NewFunction("g", func(float64) float64 { return math.NaN() }, nil, mathcanvas.Black)
	if _, ok := g.EvalAt(1); ok {
		t.Error("NaN result should be undefined")
	}
}

func TestFunctionPanicRecovered(t *testing.T) {
	f := NewFunction("f", func(float64) float64 { panic("bad expression") }, nil, mathcanvas.Black)
	if _, ok := f.EvalAt(1); ok {
		t.Error("panicking function should be treated as undefined")
	}
	// The panic must not escape to the caller at all; reaching this
	// line is the assertion.
}

func TestFunctionNilFn(t *testing.T) {
	f := NewFunction("f", nil, nil, mathcanvas.Black)
	if _, ok := f.EvalAt(0); ok {
		t.Error("nil Fn should be undefined everywhere")
	}
}

func TestIntervalIntersect(t *testing.T) {
	a := Interval{Left: -2, Right: 5}
	b := Interval{Left: 0, Right: 10}
	got := a.Intersect(b)
	if got.Left != 0 || got.Right != 5 {
		t.Errorf("Intersect = %+v", got)
	}

	empty := a.Intersect(Interval{Left: 7, Right: 9})
	if empty.Left < empty.Right {
		t.Errorf("disjoint intervals should intersect empty, got %+v", empty)
	}
}

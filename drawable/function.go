package drawable

import (
	"math"

	"github.com/mathud/mathcanvas"
)

// Interval is a closed interval of math x values.
type Interval struct {
	Left, Right float64
}

// Intersect narrows the interval by another. The result may be empty
// (Left >= Right); callers decide what emptiness means.
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{
		Left:  math.Max(iv.Left, o.Left),
		Right: math.Min(iv.Right, o.Right),
	}
}

// Function is a single-variable function drawable. Fn evaluates the
// function at a math x coordinate; a NaN or infinite result marks the
// sample as undefined and the renderer skips it. Domain optionally
// restricts the x range the function is defined on. RefScale snapshots
// the mapper's scale factor at creation, like Point.RefScale, so the
// curve label shrinks with the rest of the scene on zoom out.
type Function struct {
	common
	Fn       func(x float64) float64
	Domain   *Interval
	RefScale float64
}

// NewFunction creates a function drawable over an optional domain.
// Passing a nil domain means the function is defined everywhere
// visible.
func NewFunction(name string, fn func(float64) float64, domain *Interval, color mathcanvas.RGBA) *Function {
	return &Function{
		common:   common{name: name, color: color},
		Fn:       fn,
		Domain:   domain,
		RefScale: 1.0,
	}
}

// Kind implements Drawable.
func (*Function) Kind() Kind { return KindFunction }

// EvalAt evaluates the function at x. Reports ok == false when the
// function is nil, x lies outside the declared domain, or the result is
// not finite. Panics inside user functions are recovered and treated
// as an undefined sample, so one bad expression cannot break a frame.
func (f *Function) EvalAt(x float64) (y float64, ok bool) {
	if f.Fn == nil {
		return 0, false
	}
	if f.Domain != nil && (x < f.Domain.Left || x > f.Domain.Right) {
		return 0, false
	}
	defer func() {
		if recover() != nil {
			y, ok = 0, false
		}
	}()
	y = f.Fn(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return y, true
}

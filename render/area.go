package render

import (
	"math"

	"github.com/mathud/mathcanvas"
	"github.com/mathud/mathcanvas/drawable"
)

// ClosedArea is a fillable screen-space region bounded by a forward
// path and a reverse path. Walking Forward, then Reverse, then closing
// back to Forward[0] traces the region's boundary exactly once.
type ClosedArea struct {
	Forward []mathcanvas.Point
	Reverse []mathcanvas.Point
}

// Loop returns the full boundary, forward then reverse.
func (a *ClosedArea) Loop() []mathcanvas.Point {
	loop := make([]mathcanvas.Point, 0, len(a.Forward)+len(a.Reverse))
	loop = append(loop, a.Forward...)
	loop = append(loop, a.Reverse...)
	return loop
}

// BuildFunctionsArea constructs the region between two function curves
// over the intersection of the visible range, both domains, and the
// area's own bounds. Both functions are sampled at the same x values;
// an x where either evaluation fails splits the region, and the
// longest unbroken run wins. ok is false when no run of at least two
// valid sample pairs exists.
func BuildFunctionsArea(a *drawable.FunctionsArea, m Mapper) (*ClosedArea, bool) {
	if a == nil || a.F1 == nil || a.F2 == nil {
		return nil, false
	}

	left, right := m.VisibleLeft(), m.VisibleRight()
	bounds := drawable.Interval{Left: left, Right: right}
	if a.F1.Domain != nil {
		bounds = bounds.Intersect(*a.F1.Domain)
	}
	if a.F2.Domain != nil {
		bounds = bounds.Intersect(*a.F2.Domain)
	}
	if a.Left != nil {
		bounds = bounds.Intersect(drawable.Interval{Left: *a.Left, Right: bounds.Right})
	}
	if a.Right != nil {
		bounds = bounds.Intersect(drawable.Interval{Left: bounds.Left, Right: *a.Right})
	}
	if bounds.Left >= bounds.Right {
		// Degenerate range: widen symmetrically around its center so
		// a single shared boundary point still yields a sliver.
		mid := (bounds.Left + bounds.Right) / 2
		bounds = drawable.Interval{Left: mid - 0.1, Right: mid + 0.1}
	}

	n := a.Samples
	if n < 2 {
		n = drawable.DefaultAreaSamples
	}

	type pair struct {
		top, bottom mathcanvas.Point
		ok          bool
	}
	pairs := make([]pair, 0, n)
	dx := (bounds.Right - bounds.Left) / float64(n-1)
	for i := 0; i < n; i++ {
		x := bounds.Left + float64(i)*dx
		y1, ok1 := a.F1.EvalAt(x)
		y2, ok2 := a.F2.EvalAt(x)
		if !ok1 || !ok2 {
			pairs = append(pairs, pair{})
			continue
		}
		p1, ok1 := m.MathToScreen(x, y1)
		p2, ok2 := m.MathToScreen(x, y2)
		if !ok1 || !ok2 {
			pairs = append(pairs, pair{})
			continue
		}
		pairs = append(pairs, pair{top: p1, bottom: p2, ok: true})
	}

	// Longest unbroken run of valid pairs.
	bestStart, bestLen := 0, 0
	runStart := -1
	for i := 0; i <= len(pairs); i++ {
		if i < len(pairs) && pairs[i].ok {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 && i-runStart > bestLen {
			bestStart, bestLen = runStart, i-runStart
		}
		runStart = -1
	}
	if bestLen < 2 {
		return nil, false
	}

	forward := make([]mathcanvas.Point, 0, bestLen)
	reverse := make([]mathcanvas.Point, 0, bestLen)
	for i := bestStart; i < bestStart+bestLen; i++ {
		forward = append(forward, pairs[i].top)
	}
	for i := bestStart + bestLen - 1; i >= bestStart; i-- {
		reverse = append(reverse, pairs[i].bottom)
	}
	return &ClosedArea{Forward: forward, Reverse: reverse}, true
}

// BuildFunctionSegmentArea constructs the region between a function
// curve and a straight segment, over the intersection of the segment's
// x extent and the function's domain. The reverse path is the segment
// walked tip to tail. ok is false when fewer than two function samples
// survive evaluation and projection.
func BuildFunctionSegmentArea(a *drawable.FunctionSegmentArea, m Mapper) (*ClosedArea, bool) {
	if a == nil || a.F == nil || a.Seg == nil || a.Seg.P1 == nil || a.Seg.P2 == nil {
		return nil, false
	}

	segLeft, segRight := a.Seg.XExtent()
	bounds := drawable.Interval{Left: segLeft, Right: segRight}
	if a.F.Domain != nil {
		bounds = bounds.Intersect(*a.F.Domain)
	}
	if bounds.Left >= bounds.Right {
		return nil, false
	}

	n := a.Samples
	if n < 2 {
		n = drawable.DefaultAreaSamples
	}

	forward := make([]mathcanvas.Point, 0, n)
	dx := (bounds.Right - bounds.Left) / float64(n-1)
	for i := 0; i < n; i++ {
		x := bounds.Left + float64(i)*dx
		y, ok := a.F.EvalAt(x)
		if !ok {
			continue
		}
		p, ok := m.MathToScreen(x, y)
		if !ok {
			continue
		}
		forward = append(forward, p)
	}
	if len(forward) < 2 {
		return nil, false
	}

	s2, ok2 := m.MathToScreen(a.Seg.P2.X, a.Seg.P2.Y)
	s1, ok1 := m.MathToScreen(a.Seg.P1.X, a.Seg.P1.Y)
	if !ok1 || !ok2 {
		return nil, false
	}
	return &ClosedArea{
		Forward: forward,
		Reverse: []mathcanvas.Point{s2, s1},
	}, true
}

// BuildSegmentsArea constructs the region for one or two segments. A
// single segment is closed against the horizontal axis, forming a
// trapezoid. Two segments are closed against each other over the
// horizontal overlap of their screen extents, with each segment's y
// interpolated linearly at the overlap bounds. ok is false when the
// segments do not overlap horizontally or projection fails.
func BuildSegmentsArea(a *drawable.SegmentsArea, m Mapper) (*ClosedArea, bool) {
	if a == nil || a.Seg1 == nil || a.Seg1.P1 == nil || a.Seg1.P2 == nil {
		return nil, false
	}
	if a.Seg2 == nil {
		return buildSegmentAxisArea(a.Seg1, m)
	}
	if a.Seg2.P1 == nil || a.Seg2.P2 == nil {
		return nil, false
	}
	return buildTwoSegmentArea(a.Seg1, a.Seg2, m)
}

func buildSegmentAxisArea(seg *drawable.Segment, m Mapper) (*ClosedArea, bool) {
	p1, ok1 := m.MathToScreen(seg.P1.X, seg.P1.Y)
	p2, ok2 := m.MathToScreen(seg.P2.X, seg.P2.Y)
	b2, ok3 := m.MathToScreen(seg.P2.X, 0)
	b1, ok4 := m.MathToScreen(seg.P1.X, 0)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}
	return &ClosedArea{
		Forward: []mathcanvas.Point{p1, p2},
		Reverse: []mathcanvas.Point{b2, b1},
	}, true
}

func buildTwoSegmentArea(s1, s2 *drawable.Segment, m Mapper) (*ClosedArea, bool) {
	a1, ok1 := m.MathToScreen(s1.P1.X, s1.P1.Y)
	a2, ok2 := m.MathToScreen(s1.P2.X, s1.P2.Y)
	b1, ok3 := m.MathToScreen(s2.P1.X, s2.P1.Y)
	b2, ok4 := m.MathToScreen(s2.P2.X, s2.P2.Y)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}

	overlapMin := math.Max(math.Min(a1.X, a2.X), math.Min(b1.X, b2.X))
	overlapMax := math.Min(math.Max(a1.X, a2.X), math.Max(b1.X, b2.X))
	if overlapMax <= overlapMin {
		return nil, false
	}

	fwdStart := mathcanvas.Pt(overlapMin, segmentYAt(a1, a2, overlapMin))
	fwdEnd := mathcanvas.Pt(overlapMax, segmentYAt(a1, a2, overlapMax))
	revStart := mathcanvas.Pt(overlapMax, segmentYAt(b1, b2, overlapMax))
	revEnd := mathcanvas.Pt(overlapMin, segmentYAt(b1, b2, overlapMin))
	return &ClosedArea{
		Forward: []mathcanvas.Point{fwdStart, fwdEnd},
		Reverse: []mathcanvas.Point{revStart, revEnd},
	}, true
}

// segmentYAt interpolates a segment's y at screen x. A vertical
// segment has a single x, so its y is taken as constant.
func segmentYAt(p1, p2 mathcanvas.Point, x float64) float64 {
	if p2.X == p1.X {
		return p1.Y
	}
	t := (x - p1.X) / (p2.X - p1.X)
	return p1.Y + t*(p2.Y-p1.Y)
}

// BuildClosedShapeArea constructs the region enclosed by a shape that
// already has a closed boundary. The boundary is projected vertex by
// vertex and split across the forward and reverse paths so the two
// halves together trace it exactly once. ok is false for boundaries of
// fewer than three points or any projection failure.
func BuildClosedShapeArea(a *drawable.ClosedShapeArea, m Mapper) (*ClosedArea, bool) {
	if a == nil || a.Shape == nil {
		return nil, false
	}
	boundary := a.Shape.BoundaryPoints(a.Resolution)
	if len(boundary) < 3 {
		return nil, false
	}

	projected := make([]mathcanvas.Point, 0, len(boundary))
	for _, p := range boundary {
		sp, ok := m.MathToScreen(p.X, p.Y)
		if !ok {
			return nil, false
		}
		projected = append(projected, sp)
	}

	half := (len(projected) + 1) / 2
	return &ClosedArea{
		Forward: projected[:half],
		Reverse: projected[half:],
	}, true
}

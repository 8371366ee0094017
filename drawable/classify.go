package drawable

import (
	"fmt"
	"math"

	"github.com/mathud/mathcanvas"
)

// Classification tolerances. Side lengths compare with a tolerance
// relative to their magnitude; interior angles compare in degrees.
const (
	lengthTolerance = 1e-6
	angleTolerance  = 1e-3
)

// PolygonFlags is the classification result for a polygon vertex cycle.
// The flags are independent booleans rather than an enum because
// subtypes overlap: a square is also a rectangle and a rhombus, an
// equilateral triangle is also isosceles.
//
// Regular means all sides and all interior angles are equal. Irregular
// is the complement, except for quadrilaterals, where it means the
// cycle matches none of the named subtypes; a non-square rectangle is
// neither regular nor irregular.
type PolygonFlags struct {
	Regular   bool
	Irregular bool

	// Triangle subtypes, set only for three-vertex cycles.
	Equilateral bool
	Isosceles   bool
	Scalene     bool
	Right       bool

	// Quadrilateral subtypes, set only for four-vertex cycles.
	Square    bool
	Rectangle bool
	Rhombus   bool
}

// ClassifyPolygon computes the classification flags for an ordered
// vertex cycle: the polygon is regular iff all side lengths are equal
// within a relative tolerance and all interior angles are equal within
// tolerance. Three- and four-vertex cycles additionally get their
// triangle and quadrilateral subtype flags. The result is computed
// fresh from the given vertices; nothing is cached because vertices may
// move between calls.
//
// Overlapping consecutive vertices make the interior angles undefined
// and yield an ErrInvalidShape error.
func ClassifyPolygon(vertices []mathcanvas.Point) (PolygonFlags, error) {
	lengths := sideLengths(vertices)
	angles, err := interiorAngles(vertices)
	if err != nil {
		return PolygonFlags{}, err
	}

	regular := allClose(lengths, relativeTolerance) && allClose(angles, fixedAngleTolerance)
	flags := PolygonFlags{Regular: regular, Irregular: !regular}

	switch len(vertices) {
	case 3:
		classifyTriangle(&flags, lengths, angles)
	case 4:
		classifyQuadrilateral(&flags, lengths, angles)
	}
	return flags, nil
}

// classifyTriangle fills the triangle subtype flags. Isosceles holds
// whenever any side pair is equal, so every equilateral triangle is
// also isosceles.
func classifyTriangle(flags *PolygonFlags, lengths, angles []float64) {
	equalPair := hasEqualSidePair(lengths)
	flags.Equilateral = allClose(lengths, relativeTolerance)
	flags.Isosceles = flags.Equilateral || equalPair
	flags.Scalene = !equalPair
	for _, a := range angles {
		if math.Abs(a-90) <= angleTolerance {
			flags.Right = true
			break
		}
	}
}

// classifyQuadrilateral fills the quadrilateral subtype flags. Square
// implies both Rectangle and Rhombus; Irregular is redefined as
// matching no subtype at all.
func classifyQuadrilateral(flags *PolygonFlags, lengths, angles []float64) {
	allSidesEqual := allClose(lengths, relativeTolerance)
	oppositeSidesEqual := pairClose(lengths[0], lengths[2]) && pairClose(lengths[1], lengths[3])
	rightAngles := true
	for _, a := range angles {
		if math.Abs(a-90) > angleTolerance {
			rightAngles = false
			break
		}
	}

	flags.Square = allSidesEqual && rightAngles
	flags.Rectangle = rightAngles && oppositeSidesEqual
	flags.Rhombus = allSidesEqual
	flags.Irregular = !(flags.Square || flags.Rectangle || flags.Rhombus)
}

// sideLengths returns the length of each side of the closed vertex
// cycle, including the closing side from the last vertex back to the
// first.
func sideLengths(vertices []mathcanvas.Point) []float64 {
	n := len(vertices)
	lengths := make([]float64, 0, n)
	for i, v := range vertices {
		next := vertices[(i+1)%n]
		lengths = append(lengths, v.Distance(next))
	}
	return lengths
}

// interiorAngles returns the interior angle at each vertex in degrees.
func interiorAngles(vertices []mathcanvas.Point) ([]float64, error) {
	n := len(vertices)
	angles := make([]float64, 0, n)
	for i := range vertices {
		prev := vertices[(i+n-1)%n]
		curr := vertices[i]
		next := vertices[(i+1)%n]

		v1 := prev.Sub(curr)
		v2 := next.Sub(curr)
		if v1.Length() == 0 || v2.Length() == 0 {
			return nil, fmt.Errorf("%w: overlapping polygon vertices", ErrInvalidShape)
		}

		rad := math.Atan2(math.Abs(v1.Cross(v2)), v1.Dot(v2))
		angles = append(angles, rad*180/math.Pi)
	}
	return angles, nil
}

// relativeTolerance scales the comparison tolerance with the magnitude
// of the reference value, with a fixed floor for values near zero.
func relativeTolerance(ref float64) float64 {
	return math.Max(lengthTolerance*math.Max(math.Abs(ref), 1.0), lengthTolerance)
}

// fixedAngleTolerance compares angles in degrees with an absolute
// tolerance.
func fixedAngleTolerance(float64) float64 {
	return angleTolerance
}

// pairClose reports whether two lengths are equal within the relative
// tolerance of the larger one.
func pairClose(a, b float64) bool {
	return math.Abs(a-b) <= relativeTolerance(math.Max(math.Abs(a), math.Abs(b)))
}

// hasEqualSidePair reports whether any two of the lengths are equal.
func hasEqualSidePair(lengths []float64) bool {
	for i, a := range lengths {
		for _, b := range lengths[i+1:] {
			if pairClose(a, b) {
				return true
			}
		}
	}
	return false
}

// allClose reports whether every value equals the first within the
// tolerance produced by tol for the first value.
func allClose(values []float64, tol func(ref float64) float64) bool {
	if len(values) == 0 {
		return true
	}
	first := values[0]
	t := tol(first)
	for _, v := range values[1:] {
		if math.Abs(v-first) > t {
			return false
		}
	}
	return true
}

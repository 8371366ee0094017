package drawable

import "github.com/mathud/mathcanvas"

// Cartesian is the two-axis coordinate grid. It fills whatever viewport
// it is rendered into; TickSpacing is in math units.
type Cartesian struct {
	common
	TickSpacing float64
}

// NewCartesian creates a cartesian grid with unit tick spacing.
func NewCartesian() *Cartesian {
	return &Cartesian{
		common:      common{name: "cartesian", color: mathcanvas.Black},
		TickSpacing: 1,
	}
}

// Kind implements Drawable.
func (*Cartesian) Kind() Kind { return KindCartesian }

// Polar is the polar coordinate grid: concentric rings at TickSpacing
// plus radial spokes.
type Polar struct {
	common
	TickSpacing float64

	// SpokeDegrees is the angular spacing of radial lines.
	SpokeDegrees float64
}

// NewPolar creates a polar grid with unit ring spacing and 30 degree
// spokes.
func NewPolar() *Polar {
	return &Polar{
		common:       common{name: "polar", color: mathcanvas.Black},
		TickSpacing:  1,
		SpokeDegrees: 30,
	}
}

// Kind implements Drawable.
func (*Polar) Kind() Kind { return KindPolar }

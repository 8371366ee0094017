package mathcanvas

import "math"

// Style is a flat mapping from style keys to values consumed by every
// per-element render handler. Overrides shadow the defaults; the
// default table itself is never mutated. Unknown keys are ignored by
// consumers and missing keys fall back to the documented defaults.
//
// Values are float64, RGBA, or string depending on the key.
type Style map[string]any

// Default style values shared by all backends.
const (
	defaultPointRadius   = 2.0
	defaultStrokeWidth   = 1.0
	defaultLabelFontSize = 14.0
	defaultPointFontSize = 10.0
	defaultTickFontSize  = 8.0
	defaultTickSize      = 3.0
	defaultAreaOpacity   = 0.3
	defaultFontFamily    = "Arial"

	// Angle arc defaults: a fixed screen radius for the arc and a
	// factor positioning the degree label relative to that radius.
	defaultAngleArcRadius     = 25.0
	defaultAngleArcTextFactor = 1.6
)

// baseStyle holds the documented defaults for every recognized key.
// It is cloned, never handed out directly.
var baseStyle = Style{
	"point_color":                  Black,
	"point_radius":                 defaultPointRadius,
	"point_label_font_size":        defaultPointFontSize,
	"point_label_font_family":      defaultFontFamily,
	"label_text_color":             Black,
	"label_font_size":              defaultLabelFontSize,
	"label_font_family":            defaultFontFamily,
	"segment_color":                Black,
	"segment_stroke_width":         defaultStrokeWidth,
	"circle_color":                 Black,
	"circle_stroke_width":          defaultStrokeWidth,
	"ellipse_color":                Black,
	"ellipse_stroke_width":         defaultStrokeWidth,
	"vector_color":                 Black,
	"vector_tip_size":              defaultPointRadius * 4,
	"angle_color":                  Black,
	"angle_arc_radius":             defaultAngleArcRadius,
	"angle_label_font_size":        defaultPointFontSize,
	"angle_text_arc_radius_factor": defaultAngleArcTextFactor,
	"angle_label_font_family":      defaultFontFamily,
	"function_color":               Black,
	"function_stroke_width":        defaultStrokeWidth,
	"function_label_font_size":     defaultPointFontSize,
	"function_label_font_family":   defaultFontFamily,
	"area_fill_color":              Hex("#ffa500"),
	"area_opacity":                 defaultAreaOpacity,
	"cartesian_axis_color":         Black,
	"cartesian_grid_color":         LightGrey,
	"cartesian_tick_size":          defaultTickSize,
	"cartesian_tick_font_size":     defaultTickFontSize,
	"cartesian_label_color":        Grey,
	"cartesian_font_family":        defaultFontFamily,
	"polar_axis_color":             Black,
	"polar_circle_color":           LightGrey,
	"polar_radial_color":           LightGrey,
	"polar_label_color":            Grey,
	"polar_label_font_size":        defaultTickFontSize,
	"polar_font_family":            defaultFontFamily,
	"fill_style":                   Transparent,
	"font_family":                  defaultFontFamily,
	"canvas_background_color":      White,
}

// DefaultStyle returns a fresh copy of the base style table.
func DefaultStyle() Style {
	return NewStyle(nil)
}

// NewStyle returns a style with the given overrides applied on top of
// the defaults. The returned map is a new copy; mutating it does not
// affect the defaults or other styles.
func NewStyle(overrides Style) Style {
	s := make(Style, len(baseStyle)+len(overrides))
	for k, v := range baseStyle {
		s[k] = v
	}
	for k, v := range overrides {
		s[k] = v
	}
	return s
}

// Float returns the float64 value for key, falling back to def when the
// key is missing, the wrong type, or not a finite positive-or-zero
// candidate for the caller to use.
func (s Style) Float(key string, def float64) float64 {
	v, ok := s[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// ColorVal returns the RGBA value for key, or def when missing or of
// the wrong type.
func (s Style) ColorVal(key string, def RGBA) RGBA {
	v, ok := s[key]
	if !ok {
		return def
	}
	c, ok := v.(RGBA)
	if !ok {
		return def
	}
	return c
}

// String returns the string value for key, or def when missing or of
// the wrong type.
func (s Style) String(key string, def string) string {
	v, ok := s[key]
	if !ok {
		return def
	}
	str, ok := v.(string)
	if !ok {
		return def
	}
	return str
}

package mathcanvas

import "testing"

func TestNewStyleOverridesShadowDefaults(t *testing.T) {
	st := NewStyle(Style{"point_radius": 5.0})
	if got := st.Float("point_radius", 0); got != 5.0 {
		t.Errorf("point_radius = %v, want 5.0", got)
	}

	// The base table is untouched.
	if got := DefaultStyle().Float("point_radius", 0); got != defaultPointRadius {
		t.Errorf("default point_radius = %v, want %v", got, defaultPointRadius)
	}
}

func TestStyleClonesAreIndependent(t *testing.T) {
	a := DefaultStyle()
	b := DefaultStyle()
	a["segment_color"] = Red
	if b.ColorVal("segment_color", White) != Black {
		t.Error("mutating one style leaked into another")
	}
}

func TestStyleGetterFallbacks(t *testing.T) {
	st := NewStyle(Style{
		"point_radius": "not a number",
		"point_color":  42,
	})
	if got := st.Float("point_radius", 7); got != 7 {
		t.Errorf("wrong-typed float: got %v, want fallback 7", got)
	}
	if got := st.ColorVal("point_color", Green); got != Green {
		t.Errorf("wrong-typed color: got %v, want fallback", got)
	}
	if got := st.Float("no_such_key", 3); got != 3 {
		t.Errorf("missing key: got %v, want fallback 3", got)
	}
	if got := st.String("font_family", ""); got != defaultFontFamily {
		t.Errorf("font_family = %q, want %q", got, defaultFontFamily)
	}
}

func TestDefaultStyleCoversRenderKeys(t *testing.T) {
	st := DefaultStyle()
	for _, key := range []string{
		"point_radius", "label_font_size", "segment_stroke_width",
		"vector_tip_size", "angle_arc_radius", "angle_text_arc_radius_factor",
		"area_fill_color", "area_opacity",
		"cartesian_tick_size", "cartesian_tick_font_size",
		"polar_label_font_size", "canvas_background_color",
	} {
		if _, ok := st[key]; !ok {
			t.Errorf("default style is missing %q", key)
		}
	}
}

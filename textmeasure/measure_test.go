package textmeasure

import (
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestMeasureText(t *testing.T) {
	m, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}

	w, h := m.MeasureText("Hello", 16)
	if w <= 0 || h <= 0 {
		t.Fatalf("extent %v x %v for non-empty text", w, h)
	}
	if h < 16 {
		t.Errorf("line height %v below font size", h)
	}

	w2, _ := m.MeasureText("Hello Hello", 16)
	if w2 <= w {
		t.Errorf("longer text not wider: %v vs %v", w2, w)
	}

	wBig, _ := m.MeasureText("Hello", 32)
	if wBig <= w {
		t.Errorf("larger size not wider: %v vs %v", wBig, w)
	}
}

func TestMeasureTextDegenerate(t *testing.T) {
	m, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}
	if w, h := m.MeasureText("", 16); w != 0 || h != 0 {
		t.Errorf("empty text measured %v x %v", w, h)
	}
	if w, h := m.MeasureText("x", 0); w != 0 || h != 0 {
		t.Errorf("zero size measured %v x %v", w, h)
	}
	if w, h := m.MeasureText("x", -4); w != 0 || h != 0 {
		t.Errorf("negative size measured %v x %v", w, h)
	}
}

func TestAscent(t *testing.T) {
	m, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}
	a := m.Ascent(16)
	if a <= 0 || a > 16*1.5 {
		t.Errorf("ascent %v out of range for size 16", a)
	}
	if m.Ascent(0) != 0 {
		t.Error("zero size should have zero ascent")
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		text string
		want di.Direction
	}{
		{"hello", di.DirectionLTR},
		{"123", di.DirectionLTR},
		{"", di.DirectionLTR},
		{"שלום", di.DirectionRTL},
		{"مرحبا", di.DirectionRTL},
	}
	for _, tt := range tests {
		if got := DetectDirection(tt.text); got != tt.want {
			t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	if _, err := New([]byte("not a font")); err == nil {
		t.Error("garbage font data accepted")
	}
}

func TestConcurrentMeasure(t *testing.T) {
	m, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				m.MeasureText("concurrent shaping", 14)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

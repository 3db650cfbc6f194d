package main

import (
	"image/color"
	"testing"
)

func TestTrailOpacity(t *testing.T) {
	if trailOpacity(0, 5) != 0 {
		t.Error("oldest segment should be invisible")
	}
	if got := trailOpacity(4, 5); got != 0.8 {
		t.Errorf("newest segment opacity = %v", got)
	}
	if trailOpacity(2, 0) != 0 {
		t.Error("zero capacity should give zero opacity")
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := fade(c, 1); got != c {
		t.Errorf("fade(1) = %v", got)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("fade(0) = %v", got)
	}
	got := fade(c, 0.5)
	if got.A < 126 || got.A > 128 || got.R > got.A {
		t.Errorf("fade(0.5) = %v", got)
	}
	if fade(c, 2) != c {
		t.Error("opacity above 1 not clamped")
	}
}

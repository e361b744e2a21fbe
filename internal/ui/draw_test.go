package ui

import (
	"image/color"
	"testing"
)

func TestFade_StaysPremultiplied(t *testing.T) {
	for _, c := range append(blankPalette, colorWhite) {
		got := fade(c, 0.4)
		if got.R > got.A || got.G > got.A || got.B > got.A {
			t.Fatalf("fade(%v) = %v has a channel above alpha", c, got)
		}
	}
	if got := fade(colorWhite, 1); got != colorWhite {
		t.Fatalf("full alpha should be unchanged, got %v", got)
	}
	if got := fade(color.RGBA{R: 200, G: 100, A: 200}, 0.5); got != (color.RGBA{R: 100, G: 50, A: 100}) {
		t.Fatalf("unexpected half fade %v", got)
	}
}

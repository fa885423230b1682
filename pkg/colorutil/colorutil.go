// Package colorutil provides shared color utilities for the LSS galaxy viewer.
package colorutil

import (
	"image/color"
	"math"
)

// Sample colors, matching the classic "k", "r", "g", "b" plot codes.
var (
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	Blue  = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	Gray  = color.NRGBA{R: 176, G: 176, B: 176, A: 255}

	// Goldenrod is the light yellow used behind slider controls.
	Goldenrod = color.NRGBA{R: 250, G: 250, B: 210, A: 255}
)

// WithAlpha returns c with its alpha replaced by a (0-1, clamped).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(a) * 255))
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

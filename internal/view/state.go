package view

import (
	"math"

	"lssgal/internal/catalog"
)

// DefaultVisibility shows the background and the isolated galaxies.
var DefaultVisibility = [catalog.NumSamples]bool{true, true, false, false}

// State is the complete interaction state. It is a value; transitions
// return a modified copy.
type State struct {
	Center  float64
	Width   float64
	Alpha   float64 // opacity of the background sample
	Visible [catalog.NumSamples]bool
}

// NewState returns the start-up state for mode.
func NewState(m Mode) State {
	return State{
		Center:  m.DefaultCenter,
		Width:   m.DefaultWidth,
		Alpha:   m.DefaultAlpha,
		Visible: DefaultVisibility,
	}
}

// WithCenter moves the slice start, clamped to the mode's bounds.
func (s State) WithCenter(m Mode, v float64) State {
	s.Center = m.Center.Clamp(v)
	return s
}

// WithWidth changes the slice width, clamped to the mode's bounds.
func (s State) WithWidth(m Mode, v float64) State {
	s.Width = m.Width.Clamp(v)
	return s
}

// WithAlpha changes the background opacity, clamped to the mode's bounds.
func (s State) WithAlpha(m Mode, v float64) State {
	s.Alpha = m.Alpha.Clamp(v)
	return s
}

// Toggle flips the visibility of sample i. Out of range indices are ignored.
func (s State) Toggle(i int) State {
	if i >= 0 && i < catalog.NumSamples {
		s.Visible[i] = !s.Visible[i]
	}
	return s
}

// Reset restores center, width and alpha to the mode defaults. Visibility
// is left as is.
func (s State) Reset(m Mode) State {
	s.Center = m.DefaultCenter
	s.Width = m.DefaultWidth
	s.Alpha = m.DefaultAlpha
	return s
}

// inBounds reports whether every slider value lies within the mode's bounds.
func (s State) inBounds(m Mode) bool {
	return m.Center.Contains(s.Center) && m.Width.Contains(s.Width) && m.Alpha.Contains(s.Alpha)
}

// SameSlice reports whether a and b select the same points.
func SameSlice(a, b State) bool {
	return a.Center == b.Center && a.Width == b.Width
}

func round(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))
	return math.Round(v*p) / p
}
